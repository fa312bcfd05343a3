package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yalrayes/rihla/internal/domain"
	"github.com/yalrayes/rihla/internal/middleware"
)

// CreatePreferences handles POST /api/travel-preferences.
// The payload is validated structurally here (field-level 400s) and against
// the business rules in the service; on success the caller's previous
// active record is superseded and the new one returned with 201.
func (s *Server) CreatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "not authenticated")
		return
	}

	var in domain.PreferenceInput
	if !decodeJSON(w, r, &in) || !s.checkStruct(w, in) {
		return
	}

	pref, err := s.prefs.Submit(r.Context(), userID, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, pref)
}

// GetActivePreferences handles GET /api/travel-preferences/active.
func (s *Server) GetActivePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "not authenticated")
		return
	}

	pref, err := s.prefs.GetActive(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pref)
}

// RevealDestination handles POST /api/reveal-destination/{preferenceId}.
// Revealing twice is fine: the second call returns the same revealed record.
func (s *Server) RevealDestination(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "not authenticated")
		return
	}

	prefID, ok := pathID(w, r, "preferenceId")
	if !ok {
		return
	}

	pref, err := s.prefs.Reveal(r.Context(), userID, prefID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pref)
}

// DeletePreferences handles DELETE /api/travel-preferences/{id}.
// The id is used for lookup and the ownership check; the deactivation
// itself is owner-scoped — all of the caller's active records are
// cancelled, by design (see DESIGN.md).
func (s *Server) DeletePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "not authenticated")
		return
	}

	prefID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.prefs.Cancel(r.Context(), userID, prefID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "travel preferences deleted"})
}

// pathID parses a numeric id from the URL path, writing a 400 when it is
// not a valid integer.
func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid preference ID")
		return 0, false
	}
	return id, true
}
