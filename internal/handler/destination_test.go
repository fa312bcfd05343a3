package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yalrayes/rihla/internal/catalog"
	"github.com/yalrayes/rihla/internal/domain"
)

// ---- GET /api/destination --------------------------------------------------

func TestGetSampleDestination_200(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/destination", nil)

	newTestHandler(nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var dest catalog.Destination
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dest))

	_, ok := catalog.ByID(dest.ID)
	assert.True(t, ok, "sample destination %q must come from the catalog", dest.ID)
}

// ---- GET /api/recommended-destinations -------------------------------------

func TestGetRecommendedDestinations_200(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommended-destinations", nil)

	newTestHandler(nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var dests []catalog.Destination
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dests))
	assert.Len(t, dests, 3)
	for _, d := range dests {
		assert.NotEqual(t, catalog.DefaultID, d.ID)
	}
}

// ---- GET /api/destination/{preferenceId} -----------------------------------

func TestGetMatchedDestination_200(t *testing.T) {
	want, ok := catalog.ByID("maldives")
	require.True(t, ok)

	prefs := &mockPreferenceServicer{
		destination: func(_ context.Context, userID, prefID int64) (catalog.Destination, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, int64(1), prefID)
			return want, nil
		},
	}

	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodGet, "/api/destination/1", nil)
	newTestHandler(nil, prefs).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var dest catalog.Destination
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dest))
	assert.Equal(t, "maldives", dest.ID)
	assert.Equal(t, want.Name, dest.Name)
}

func TestGetMatchedDestination_403_NotOwner(t *testing.T) {
	prefs := &mockPreferenceServicer{
		destination: func(_ context.Context, _, _ int64) (catalog.Destination, error) {
			return catalog.Destination{}, fmt.Errorf("not yours: %w", domain.ErrForbidden)
		},
	}

	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodGet, "/api/destination/1", nil)
	newTestHandler(nil, prefs).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetMatchedDestination_400_BadID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodGet, "/api/destination/xyz", nil)
	newTestHandler(nil, &mockPreferenceServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
