package handlers

import (
	"encoding/json"
	"net/http"

	"transport-backend/internal/models"
	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

type CategorieFraisHandler struct {
	Service *services.CategorieFraisService
}

func NewCategorieFraisHandler(s *services.CategorieFraisService) *CategorieFraisHandler {
	return &CategorieFraisHandler{Service: s}
}

func (h *CategorieFraisHandler) CreateCategorie(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategorieFraisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	c, err := h.Service.CreateCategorie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, "Catégorie non trouvée")
		return
	}
	utils.Created(w, "Catégorie créée avec succès", c)
}

func (h *CategorieFraisHandler) GetCategorie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	c, err := h.Service.GetCategorie(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Catégorie non trouvée")
		return
	}
	utils.OK(w, c)
}

func (h *CategorieFraisHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	f := models.CategorieFraisFilter{
		TypeCategorie: r.URL.Query().Get("type_categorie"),
		Page:          queryInt(r, "page"),
		Limit:         queryInt(r, "limit"),
	}

	categories, total, err := h.Service.ListCategories(r.Context(), f)
	if err != nil {
		handleServiceError(w, err, "Catégorie non trouvée")
		return
	}
	utils.Paginated(w, categories, utils.NewPagination(total, normalizedPage(f.Page), normalizedLimit(f.Limit)))
}

func (h *CategorieFraisHandler) UpdateCategorie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var req models.UpdateCategorieFraisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	c, err := h.Service.UpdateCategorie(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, "Catégorie non trouvée")
		return
	}
	utils.OK(w, c)
}

func (h *CategorieFraisHandler) DeleteCategorie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.Service.DeleteCategorie(r.Context(), id); err != nil {
		handleServiceError(w, err, "Catégorie non trouvée")
		return
	}
	utils.OKMessage(w, "Catégorie supprimée avec succès")
}
