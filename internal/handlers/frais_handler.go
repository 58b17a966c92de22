package handlers

import (
	"encoding/json"
	"net/http"

	"transport-backend/internal/models"
	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

type FraisHandler struct {
	Service *services.FraisService
}

func NewFraisHandler(s *services.FraisService) *FraisHandler {
	return &FraisHandler{Service: s}
}

func fraisFilterFromQuery(r *http.Request) models.FraisFilter {
	q := r.URL.Query()
	return models.FraisFilter{
		DateDebut:     q.Get("date_debut"),
		DateFin:       q.Get("date_fin"),
		CategorieID:   queryInt(r, "categorie_id"),
		TypeCategorie: q.Get("type_categorie"),
		NumeroCamion:  q.Get("numero_camion"),
		ModePaiement:  q.Get("mode_paiement"),
		Page:          queryInt(r, "page"),
		Limit:         queryInt(r, "limit"),
	}
}

func (h *FraisHandler) CreateFrais(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFraisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	f, err := h.Service.CreateFrais(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, "Frais non trouvé")
		return
	}
	utils.Created(w, "Frais créé avec succès", f)
}

func (h *FraisHandler) GetFrais(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	f, err := h.Service.GetFrais(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Frais non trouvé")
		return
	}
	utils.OK(w, f)
}

func (h *FraisHandler) ListFrais(w http.ResponseWriter, r *http.Request) {
	filter := fraisFilterFromQuery(r)

	frais, total, err := h.Service.ListFrais(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err, "Frais non trouvé")
		return
	}
	utils.Paginated(w, frais, utils.NewPagination(total, normalizedPage(filter.Page), normalizedLimit(filter.Limit)))
}

func (h *FraisHandler) UpdateFrais(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var req models.UpdateFraisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	f, err := h.Service.UpdateFrais(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, "Frais non trouvé")
		return
	}
	utils.OK(w, f)
}

func (h *FraisHandler) DeleteFrais(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.Service.DeleteFrais(r.Context(), id); err != nil {
		handleServiceError(w, err, "Frais non trouvé")
		return
	}
	utils.OKMessage(w, "Frais supprimé avec succès")
}

func (h *FraisHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context(), fraisFilterFromQuery(r))
	if err != nil {
		handleServiceError(w, err, "Frais non trouvé")
		return
	}
	utils.OK(w, stats)
}
