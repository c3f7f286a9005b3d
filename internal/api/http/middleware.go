package http

import (
	"context"
	"net/http"
	"strings"

	"cleansweep-backend/internal/security"
)

type contextKey string

const (
	userIDKey   contextKey = "user-id"
	userRoleKey contextKey = "user-role"
)

// AuthMiddleware authenticates requests with a bearer access token and
// injects the caller's identity into the request context. Anonymous
// requests are rejected before any store operation happens.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAccess guards a route with access-token authentication.
func (m *AuthMiddleware) RequireAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, http.StatusUnauthorized, "access token required")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:], true
	}
	return header, true
}

// UserIDFromContext extracts the authenticated user id set by the
// middleware.
func UserIDFromContext(ctx context.Context) (int32, bool) {
	id, ok := ctx.Value(userIDKey).(int32)
	return id, ok
}
