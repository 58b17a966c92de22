package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-backend/internal/auth"
	"transport-backend/internal/config"
	"transport-backend/internal/models"
)

func testJWTManager() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "transport-backend"
	return auth.NewJWTManager(cfg)
}

func testToken(t *testing.T, m *auth.JWTManager) string {
	t.Helper()
	token, err := m.GenerateToken(&models.Utilisateur{
		ID:             7,
		NomUtilisateur: "admin",
		NomComplet:     "Administrateur",
		Role:           "admin",
	})
	require.NoError(t, err)
	return token
}

func protectedEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, 7, userID)

		role, ok := GetRoleFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin", role)

		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateWithBearerHeader(t *testing.T) {
	m := testJWTManager()
	mw := NewAuthMiddleware(m)

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, m))
	rec := httptest.NewRecorder()

	mw.Authenticate(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateWithQueryToken(t *testing.T) {
	m := testJWTManager()
	mw := NewAuthMiddleware(m)

	req := httptest.NewRequest(http.MethodGet, "/api/pdf/facture/3?token="+testToken(t, m), nil)
	rec := httptest.NewRecorder()

	mw.Authenticate(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateMissingToken(t *testing.T) {
	mw := NewAuthMiddleware(testJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	rec := httptest.NewRecorder()

	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token manquant")
}

func TestAuthenticateInvalidToken(t *testing.T) {
	mw := NewAuthMiddleware(testJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsTokenSignedWithOtherSecret(t *testing.T) {
	other := &config.Config{}
	other.JWT.Secret = "another-secret"
	other.JWT.ExpirationHours = 1
	foreign := testToken(t, auth.NewJWTManager(other))

	mw := NewAuthMiddleware(testJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	rec := httptest.NewRecorder()

	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminRejectsOperateur(t *testing.T) {
	m := testJWTManager()
	mw := NewAuthMiddleware(m)

	token, err := m.GenerateToken(&models.Utilisateur{
		ID:             12,
		NomUtilisateur: "agent",
		Role:           models.RoleOperateur,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	m := testJWTManager()
	mw := NewAuthMiddleware(m)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, m))
	rec := httptest.NewRecorder()

	called := false
	mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.True(t, called)
}
