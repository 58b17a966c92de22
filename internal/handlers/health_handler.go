package handlers

import (
	"net/http"

	"transport-backend/internal/health"
	"transport-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(c *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: c}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()
	if status.Status != "healthy" {
		utils.JSON(w, http.StatusServiceUnavailable, utils.Response{Success: false, Data: status})
		return
	}
	utils.OK(w, status)
}
