// Package middleware provides HTTP middleware: bearer-token
// authentication, request logging and prometheus metrics.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"tripsplit/internal/auth"
	"tripsplit/internal/fault"
	"tripsplit/internal/models"
	"tripsplit/internal/service"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userKey is the context key for storing the authenticated user.
const userKey contextKey = "user"

// CurrentUser extracts the authenticated user from the context.
// Returns nil if the request did not pass RequireAuth.
func CurrentUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// ErrorWriter renders a fault-kinded error as an HTTP response.
// Declared here so the middleware package does not depend on the API
// package's JSON helpers.
type ErrorWriter func(w http.ResponseWriter, err error)

// RequireAuth returns middleware that validates bearer tokens and
// resolves the token subject against the user directory. The resolved
// user is added to the request context; a token whose subject no
// longer exists is rejected even if the signature verifies.
func RequireAuth(jwtManager *auth.JWTManager, directory *service.Directory, writeError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				writeError(w, err)
				return
			}

			email, err := jwtManager.Validate(token)
			if err != nil {
				writeError(w, err)
				return
			}

			user, err := directory.Lookup(r.Context(), email)
			if err != nil {
				writeError(w, err)
				return
			}
			if user == nil {
				writeError(w, fault.New(fault.Unauthorized, "could not validate credentials"))
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fault.New(fault.Unauthorized, "authorization token required")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fault.New(fault.Unauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
