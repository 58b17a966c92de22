package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

func TestPathID(t *testing.T) {
	cases := []struct {
		raw    string
		wantID int
		wantOK bool
	}{
		{"42", 42, true},
		{"1", 1, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/clients/x", nil)
		req = mux.SetURLVars(req, map[string]string{"id": c.raw})

		id, ok := pathID(req)
		assert.Equal(t, c.wantOK, ok, "raw=%q", c.raw)
		assert.Equal(t, c.wantID, id, "raw=%q", c.raw)
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/frais?page=3&limit=abc&categorie_id=-2", nil)

	assert.Equal(t, 3, queryInt(req, "page"))
	assert.Equal(t, 0, queryInt(req, "limit"))
	assert.Equal(t, 0, queryInt(req, "categorie_id"))
	assert.Equal(t, 0, queryInt(req, "absent"))
}

func TestNormalizedPageAndLimit(t *testing.T) {
	assert.Equal(t, 1, normalizedPage(0))
	assert.Equal(t, 5, normalizedPage(5))
	assert.Equal(t, 20, normalizedLimit(0))
	assert.Equal(t, 50, normalizedLimit(50))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound, "Client non trouvé"},
		{"duplicate number", services.ErrDuplicateNumber, http.StatusConflict, "Ce numéro est déjà utilisé"},
		{"category in use", services.ErrCategoryInUse, http.StatusConflict, "Catégorie utilisée par des frais existants"},
		{"already converted", services.ErrNotConvertible, http.StatusConflict, "Ce devis a déjà été converti"},
		{"invalid amount", services.ErrInvalidAmount, http.StatusBadRequest, "Montant invalide"},
		{"bad login", services.ErrInvalidLogin, http.StatusUnauthorized, "Nom d'utilisateur ou mot de passe incorrect"},
		{"disabled account", services.ErrAccountDisabled, http.StatusForbidden, "Compte désactivé"},
		{"username taken", services.ErrUsernameTaken, http.StatusConflict, "Nom d'utilisateur déjà pris"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Erreur serveur"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, c.err, "Client non trouvé")

			assert.Equal(t, c.wantStatus, rec.Code)
			resp := decodeEnvelope(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, c.wantMsg, resp.Message)
		})
	}
}

func TestHandleServiceErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, &services.ValidationError{
		Fields: []utils.FieldError{{Field: "nom_entite", Message: "Le nom est requis"}},
	}, "Client non trouvé")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "nom_entite", resp.Errors[0].Field)
}
