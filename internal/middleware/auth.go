package middleware

import (
	"context"
	"net/http"
	"strings"

	"transport-backend/internal/auth"
	"transport-backend/pkg/utils"
)

type contextKey string

const UserIDKey contextKey = "user_id"
const NomUtilisateurKey contextKey = "nom_utilisateur"
const RoleKey contextKey = "role"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// extractToken pulls the bearer token from the Authorization header,
// falling back to the token query parameter. The query fallback exists
// because browsers open PDF links directly and cannot set headers.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

// Authenticate is a middleware that validates JWT tokens
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			utils.Fail(w, http.StatusUnauthorized, "Accès non autorisé. Token manquant.")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			utils.Fail(w, http.StatusUnauthorized, "Token invalide ou expiré.")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, NomUtilisateurKey, claims.NomUtilisateur)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin ensures the authenticated user has the admin role.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRoleFromContext(r.Context())
		if !ok || role != "admin" {
			utils.Fail(w, http.StatusForbidden, "Accès réservé aux administrateurs.")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// GetUserIDFromContext extracts user ID from request context
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetRoleFromContext extracts role from request context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
