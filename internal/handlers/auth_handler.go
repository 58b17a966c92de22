package handlers

import (
	"encoding/json"
	"net/http"

	"transport-backend/internal/models"
	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(s *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, "Utilisateur non trouvé")
		return
	}
	utils.OK(w, resp)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	user, err := h.Service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, "Utilisateur non trouvé")
		return
	}
	utils.Created(w, "Utilisateur créé avec succès", user)
}
