package handlers

import (
	"encoding/json"
	"net/http"

	"transport-backend/internal/models"
	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

type ChauffeurHandler struct {
	Service *services.ChauffeurService
}

func NewChauffeurHandler(s *services.ChauffeurService) *ChauffeurHandler {
	return &ChauffeurHandler{Service: s}
}

func (h *ChauffeurHandler) CreateChauffeur(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChauffeurRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	c, err := h.Service.CreateChauffeur(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, "Chauffeur non trouvé")
		return
	}
	utils.Created(w, "Chauffeur créé avec succès", c)
}

func (h *ChauffeurHandler) GetChauffeur(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	c, err := h.Service.GetChauffeur(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Chauffeur non trouvé")
		return
	}
	utils.OK(w, c)
}

func (h *ChauffeurHandler) ListChauffeurs(w http.ResponseWriter, r *http.Request) {
	// actif=false includes deactivated drivers
	f := models.ChauffeurFilter{
		Search:    r.URL.Query().Get("search"),
		ActifOnly: r.URL.Query().Get("actif") != "false",
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	chauffeurs, total, err := h.Service.ListChauffeurs(r.Context(), f)
	if err != nil {
		handleServiceError(w, err, "Chauffeur non trouvé")
		return
	}
	utils.Paginated(w, chauffeurs, utils.NewPagination(total, normalizedPage(f.Page), normalizedLimit(f.Limit)))
}

func (h *ChauffeurHandler) UpdateChauffeur(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var req models.UpdateChauffeurRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	c, err := h.Service.UpdateChauffeur(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, "Chauffeur non trouvé")
		return
	}
	utils.OK(w, c)
}

func (h *ChauffeurHandler) DeleteChauffeur(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.Service.DeleteChauffeur(r.Context(), id); err != nil {
		handleServiceError(w, err, "Chauffeur non trouvé")
		return
	}
	utils.OKMessage(w, "Chauffeur supprimé avec succès")
}
