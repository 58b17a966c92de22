package handlers

import (
	"encoding/json"
	"net/http"

	"transport-backend/internal/models"
	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(s *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: s}
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	client, err := h.Service.CreateClient(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, "Client non trouvé")
		return
	}
	utils.Created(w, "Client créé avec succès", client)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	client, err := h.Service.GetClient(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Client non trouvé")
		return
	}
	utils.OK(w, client)
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	f := models.ClientFilter{
		Search:     r.URL.Query().Get("search"),
		TypeClient: r.URL.Query().Get("type_client"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	clients, total, err := h.Service.ListClients(r.Context(), f)
	if err != nil {
		handleServiceError(w, err, "Client non trouvé")
		return
	}
	utils.Paginated(w, clients, utils.NewPagination(total, normalizedPage(f.Page), normalizedLimit(f.Limit)))
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	var req models.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	client, err := h.Service.UpdateClient(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, "Client non trouvé")
		return
	}
	utils.OK(w, client)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.Service.DeleteClient(r.Context(), id); err != nil {
		handleServiceError(w, err, "Client non trouvé")
		return
	}
	utils.OKMessage(w, "Client supprimé avec succès")
}

func (h *ClientHandler) GetClientHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	history, err := h.Service.GetClientHistory(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Client non trouvé")
		return
	}
	utils.OK(w, history)
}
