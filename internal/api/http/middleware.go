package http

import (
	"context"
	"net/http"
	"strings"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/security"
	"ngobooks-backend/internal/service"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware validates the bearer token and injects the resolved actor
// into the request context. Handlers pass the actor explicitly to services.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeFail(w, http.StatusUnauthorized, "Missing token")
			return
		}

		claims, err := m.tokenManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeFail(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		actor := service.Actor{
			ID:   claims.UserID,
			Role: domain.ParseRole(claims.Role),
		}
		next(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	}
}

// actorFrom returns the authenticated actor injected by RequireAuth.
func actorFrom(r *http.Request) service.Actor {
	actor, _ := r.Context().Value(actorKey).(service.Actor)
	return actor
}
