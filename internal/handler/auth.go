package handler

import (
	"net/http"
	"time"

	"github.com/yalrayes/rihla/internal/domain"
	"github.com/yalrayes/rihla/internal/middleware"
)

// authResponse is returned by register and login: the account plus a token
// API clients can carry in an Authorization header. Browser clients get the
// same token in an HttpOnly cookie and can ignore this field.
type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Register handles POST /api/auth/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if !decodeJSON(w, r, &reg) || !s.checkStruct(w, reg) {
		return
	}

	user, token, err := s.auth.Register(r.Context(), reg)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setAuthCookie(w, token)
	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !decodeJSON(w, r, &creds) || !s.checkStruct(w, creds) {
		return
	}

	user, token, err := s.auth.Login(r.Context(), creds)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout is
// purely clearing the browser cookie; bearer clients just drop the token.
func (s *Server) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// GetCurrentUser handles GET /api/user.
func (s *Server) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "not authenticated")
		return
	}

	user, err := s.auth.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// setAuthCookie attaches the session token as an HttpOnly cookie.
// The Max-Age mirrors the token TTL loosely; an expired token inside a
// live cookie still fails validation server-side.
func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
