package auth

import (
	"context"
	"fmt"
	"net/http"

	"flightly/internal/errs"
	"flightly/internal/logger"
	"flightly/internal/models"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// UserID returns the authenticated user's ID from the request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RoleFrom returns the authenticated user's role from the request context.
func RoleFrom(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(roleKey).(models.Role)
	return role, ok
}

// Middleware verifies the bearer token and stores the caller's identity
// in the request context.
func Middleware(tokens *TokenIssuer, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := ExtractToken(r)
			if err != nil {
				log.LogSecurity("AUTH", fmt.Sprintf("%s %s: %v", r.Method, r.URL.Path, err))
				http.Error(w, err.Error(), errs.HTTPStatus(err))
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				log.LogSecurity("AUTH", fmt.Sprintf("%s %s: %v", r.Method, r.URL.Path, err))
				http.Error(w, err.Error(), errs.HTTPStatus(err))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
			ctx = context.WithValue(ctx, roleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose session role does not match.
func RequireRole(role models.Role, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerRole, ok := RoleFrom(r.Context())
			if !ok || callerRole != role {
				log.LogSecurity("AUTH", fmt.Sprintf("%s %s: role %q denied, requires %q", r.Method, r.URL.Path, callerRole, role))
				http.Error(w, "Insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
