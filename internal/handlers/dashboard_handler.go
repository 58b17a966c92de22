package handlers

import (
	"net/http"

	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, err, "Statistiques non trouvées")
		return
	}
	utils.OK(w, stats)
}

func (h *DashboardHandler) Evolution(w http.ResponseWriter, r *http.Request) {
	months, err := h.Service.Evolution(r.Context())
	if err != nil {
		handleServiceError(w, err, "Statistiques non trouvées")
		return
	}
	utils.OK(w, months)
}
