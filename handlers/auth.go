package handlers

import (
	"context"
	"net/http"
	"strings"

	"streamvault/models"
	"streamvault/services/accounts"
)

type contextKey string

const userContextKey contextKey = "streamvault.user"

// userFromContext returns the authenticated user stored by RequireAuth, or
// nil when the request is unauthenticated.
func userFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
}

// AuthMiddleware resolves bearer tokens to users for protected routes.
type AuthMiddleware struct {
	accountsService *accounts.Service
}

// NewAuthMiddleware creates an auth middleware backed by the accounts service.
func NewAuthMiddleware(accountsService *accounts.Service) *AuthMiddleware {
	return &AuthMiddleware{accountsService: accountsService}
}

// RequireAuth rejects requests without a valid session token and stores the
// resolved user in the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			jsonError(w, "Missing bearer token", http.StatusUnauthorized)
			return
		}

		user, err := m.accountsService.Authenticate(r.Context(), token)
		if err != nil {
			jsonError(w, "Invalid or expired session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
