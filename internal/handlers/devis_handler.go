package handlers

import (
	"encoding/json"
	"net/http"

	"transport-backend/internal/models"
	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

type DevisHandler struct {
	Service *services.DevisService
}

func NewDevisHandler(s *services.DevisService) *DevisHandler {
	return &DevisHandler{Service: s}
}

func (h *DevisHandler) CreateDevis(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDevisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	d, err := h.Service.CreateDevis(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, "Devis non trouvé")
		return
	}
	utils.Created(w, "Devis créé avec succès", d)
}

func (h *DevisHandler) GetDevis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	d, err := h.Service.GetDevis(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Devis non trouvé")
		return
	}
	utils.OK(w, d)
}

func (h *DevisHandler) ListDevis(w http.ResponseWriter, r *http.Request) {
	f := models.DevisFilter{
		ClientID:  queryInt(r, "client_id"),
		DateDebut: r.URL.Query().Get("date_debut"),
		DateFin:   r.URL.Query().Get("date_fin"),
		Statut:    r.URL.Query().Get("statut"),
		Search:    r.URL.Query().Get("search"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	list, total, err := h.Service.ListDevis(r.Context(), f)
	if err != nil {
		handleServiceError(w, err, "Devis non trouvé")
		return
	}
	utils.Paginated(w, list, utils.NewPagination(total, normalizedPage(f.Page), normalizedLimit(f.Limit)))
}

func (h *DevisHandler) UpdateDevis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var req models.UpdateDevisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	d, err := h.Service.UpdateDevis(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, "Devis non trouvé")
		return
	}
	utils.OK(w, d)
}

func (h *DevisHandler) DeleteDevis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.Service.DeleteDevis(r.Context(), id); err != nil {
		handleServiceError(w, err, "Devis non trouvé")
		return
	}
	utils.OKMessage(w, "Devis supprimé avec succès")
}

// NextNumero previews the next number in the devis sequence.
func (h *DevisHandler) NextNumero(w http.ResponseWriter, r *http.Request) {
	numero, err := h.Service.NextNumero(r.Context())
	if err != nil {
		handleServiceError(w, err, "Devis non trouvé")
		return
	}
	writeNextNumero(w, numero)
}

// ConvertDevis turns a devis into an expedition.
func (h *DevisHandler) ConvertDevis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	e, err := h.Service.ConvertDevis(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Devis non trouvé")
		return
	}
	utils.Created(w, "Devis converti en expédition", e)
}
