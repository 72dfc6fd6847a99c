package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itemsim/server/internal/auth"
	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/logger"
)

// UserFinder resolves a user ID to its account. Satisfied by user.Service.
type UserFinder interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type ctxKey string

const userIDKey ctxKey = "userID"

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the authenticated user ID, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok && id != "" {
		return id, true
	}
	return "", false
}

// Auth requires a valid bearer token for an account that still exists and
// stores the resolved user ID in the request context. A token for a deleted
// account gets 401 like any other invalid credential.
func Auth(issuer *auth.TokenIssuer, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			userID, err := resolveBearer(r.Context(), issuer, users, r)
			if err != nil {
				log.Warn("Authentication failed", "error", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// OptionalAuth resolves the bearer token when one is present but lets
// anonymous requests through. Used by endpoints whose response shape depends
// on who is asking.
func OptionalAuth(issuer *auth.TokenIssuer, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := resolveBearer(r.Context(), issuer, users, r)
			if err != nil {
				// A presented-but-invalid token is rejected rather than
				// silently downgraded to anonymous.
				logger.FromContext(r.Context()).Warn("Authentication failed", "error", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// resolveBearer verifies the bearer token and confirms the account behind it
// still exists.
func resolveBearer(ctx context.Context, issuer *auth.TokenIssuer, users UserFinder, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errMissingAuthHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errInvalidAuthHeader
	}

	userID, err := issuer.Verify(parts[1])
	if err != nil {
		return "", err
	}

	if _, err := users.GetByID(ctx, userID); err != nil {
		return "", errUnknownTokenUser
	}
	return userID, nil
}
