package handler

import (
	"net/http"

	"github.com/yalrayes/rihla/internal/catalog"
	"github.com/yalrayes/rihla/internal/middleware"
)

// GetSampleDestination handles GET /api/destination.
// Unauthenticated preview: returns one arbitrary catalog entry.
func (s *Server) GetSampleDestination(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Random())
}

// GetRecommendedDestinations handles GET /api/recommended-destinations.
// Unauthenticated: returns the fixed explore-page subset of the catalog.
func (s *Server) GetRecommendedDestinations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Recommended())
}

// GetMatchedDestination handles GET /api/destination/{preferenceId}.
// Requires ownership of the referenced preference record; returns the
// catalog entry its stored destination id points at.
func (s *Server) GetMatchedDestination(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "not authenticated")
		return
	}

	prefID, ok := pathID(w, r, "preferenceId")
	if !ok {
		return
	}

	dest, err := s.prefs.Destination(r.Context(), userID, prefID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dest)
}
