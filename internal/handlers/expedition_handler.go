package handlers

import (
	"encoding/json"
	"net/http"

	"transport-backend/internal/models"
	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

type ExpeditionHandler struct {
	Service *services.ExpeditionService
}

func NewExpeditionHandler(s *services.ExpeditionService) *ExpeditionHandler {
	return &ExpeditionHandler{Service: s}
}

func expeditionFilterFromQuery(r *http.Request) models.ExpeditionFilter {
	return models.ExpeditionFilter{
		ClientID:        queryInt(r, "client_id"),
		DateDebut:       r.URL.Query().Get("date_debut"),
		DateFin:         r.URL.Query().Get("date_fin"),
		StatutPaiement:  r.URL.Query().Get("statut_paiement"),
		StatutLivraison: r.URL.Query().Get("statut_livraison"),
		Search:          r.URL.Query().Get("search"),
		Page:            queryInt(r, "page"),
		Limit:           queryInt(r, "limit"),
	}
}

func (h *ExpeditionHandler) CreateExpedition(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpeditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	e, err := h.Service.CreateExpedition(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, "Expédition non trouvée")
		return
	}
	utils.Created(w, "Expédition créée avec succès", e)
}

func (h *ExpeditionHandler) GetExpedition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	e, err := h.Service.GetExpedition(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Expédition non trouvée")
		return
	}
	utils.OK(w, e)
}

func (h *ExpeditionHandler) ListExpeditions(w http.ResponseWriter, r *http.Request) {
	f := expeditionFilterFromQuery(r)

	expeditions, total, err := h.Service.ListExpeditions(r.Context(), f)
	if err != nil {
		handleServiceError(w, err, "Expédition non trouvée")
		return
	}
	utils.Paginated(w, expeditions, utils.NewPagination(total, normalizedPage(f.Page), normalizedLimit(f.Limit)))
}

func (h *ExpeditionHandler) UpdateExpedition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var req models.UpdateExpeditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	e, err := h.Service.UpdateExpedition(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, "Expédition non trouvée")
		return
	}
	utils.OK(w, e)
}

func (h *ExpeditionHandler) DeleteExpedition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.Service.DeleteExpedition(r.Context(), id); err != nil {
		handleServiceError(w, err, "Expédition non trouvée")
		return
	}
	utils.OKMessage(w, "Expédition supprimée avec succès")
}

// NextNumero previews the next number in the current year's sequence.
func (h *ExpeditionHandler) NextNumero(w http.ResponseWriter, r *http.Request) {
	numero, err := h.Service.NextNumero(r.Context())
	if err != nil {
		handleServiceError(w, err, "Expédition non trouvée")
		return
	}
	writeNextNumero(w, numero)
}

func (h *ExpeditionHandler) Alertes(w http.ResponseWriter, r *http.Request) {
	alertes, err := h.Service.Alertes(r.Context())
	if err != nil {
		handleServiceError(w, err, "Expédition non trouvée")
		return
	}
	utils.OK(w, alertes)
}
