package middleware

import (
	"context"
	"net/http"
	"strings"
)

// TokenValidator authenticates a bearer token and returns the user id it
// was issued to. Implemented by service.AuthService.
type TokenValidator interface {
	Authenticate(token string) (int64, error)
}

// ctxKey is unexported so other packages cannot collide with our context keys.
type ctxKey int

const userIDKey ctxKey = iota

// authCookie is the cookie browsers carry the token in; API clients use the
// Authorization header instead.
const authCookie = "auth_token"

// NewAuthHandler returns a middleware that authenticates each request and
// stores the caller's user id in the request context. Requests without a
// valid token are rejected with 401 before reaching the handler.
//
// The token is read from the auth_token cookie first (browser sessions),
// then from an Authorization: Bearer header (API clients).
func NewAuthHandler(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				unauthorized(w)
				return
			}

			userID, err := validator.Authenticate(token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id stored by NewAuthHandler.
// ok is false on routes that did not pass through the auth middleware.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// tokenFromRequest extracts the token string, preferring the session cookie.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(authCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); h != "" {
		if parts := strings.SplitN(h, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return ""
}

// unauthorized writes the same error envelope the handlers use, keeping
// error responses uniform whether they come from middleware or a handler.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"unauthenticated","message":"not authenticated"}}`))
}
