package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

// pathID reads the {id} route variable.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt reads an optional positive integer query parameter.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func normalizedPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizedLimit(limit int) int {
	if limit < 1 {
		return 20
	}
	return limit
}

// writeNextNumero keeps the flat shape the number-preview screens read.
func writeNextNumero(w http.ResponseWriter, numero string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "nextNumero": numero})
}

// handleServiceError maps a service error onto the JSON envelope.
// notFoundMsg carries the entity-specific French message.
func handleServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	if ve, ok := services.AsValidation(err); ok {
		utils.FailValidation(w, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.Fail(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, services.ErrDuplicateNumber):
		utils.Fail(w, http.StatusConflict, "Ce numéro est déjà utilisé")
	case errors.Is(err, services.ErrCategoryInUse):
		utils.Fail(w, http.StatusConflict, "Catégorie utilisée par des frais existants")
	case errors.Is(err, services.ErrNotConvertible):
		utils.Fail(w, http.StatusConflict, "Ce devis a déjà été converti")
	case errors.Is(err, services.ErrInvalidAmount):
		utils.Fail(w, http.StatusBadRequest, "Montant invalide")
	case errors.Is(err, services.ErrInvalidLogin):
		utils.Fail(w, http.StatusUnauthorized, "Nom d'utilisateur ou mot de passe incorrect")
	case errors.Is(err, services.ErrAccountDisabled):
		utils.Fail(w, http.StatusForbidden, "Compte désactivé")
	case errors.Is(err, services.ErrUsernameTaken):
		utils.Fail(w, http.StatusConflict, "Nom d'utilisateur déjà pris")
	default:
		log.Printf("[API] unexpected error: %v", err)
		utils.Fail(w, http.StatusInternalServerError, "Erreur serveur")
	}
}
