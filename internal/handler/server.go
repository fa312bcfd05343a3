// Package handler implements the HTTP handlers for the Rihla API.
// All handlers are methods on Server; methods are split into domain-specific
// files (auth.go, preference.go, destination.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/yalrayes/rihla/internal/catalog"
	"github.com/yalrayes/rihla/internal/domain"
	"github.com/yalrayes/rihla/spec"
)

// AuthServicer defines the account operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type AuthServicer interface {
	Register(ctx context.Context, reg domain.Registration) (domain.User, string, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.User, string, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
}

// PreferenceServicer defines the travel-preference operations the handlers
// depend on.
type PreferenceServicer interface {
	Submit(ctx context.Context, userID int64, in domain.PreferenceInput) (domain.Preference, error)
	GetActive(ctx context.Context, userID int64) (domain.Preference, error)
	Destination(ctx context.Context, userID, prefID int64) (catalog.Destination, error)
	Reveal(ctx context.Context, userID, prefID int64) (domain.Preference, error)
	Cancel(ctx context.Context, userID, prefID int64) error
}

// Server holds the dependencies shared by all API endpoints.
type Server struct {
	auth     AuthServicer
	prefs    PreferenceServicer
	validate *validator.Validate
}

// NewServer constructs the Server with all its dependencies.
func NewServer(auth AuthServicer, prefs PreferenceServicer) *Server {
	return &Server{
		auth:     auth,
		prefs:    prefs,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes builds the route tree. requireAuth guards the endpoints that need
// an authenticated caller; everything else is public.
func (s *Server) Routes(requireAuth func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Post("/auth/logout", s.Logout)
		r.Get("/destination", s.GetSampleDestination)
		r.Get("/recommended-destinations", s.GetRecommendedDestinations)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/user", s.GetCurrentUser)
			r.Post("/travel-preferences", s.CreatePreferences)
			r.Get("/travel-preferences/active", s.GetActivePreferences)
			r.Delete("/travel-preferences/{id}", s.DeletePreferences)
			r.Get("/destination/{preferenceId}", s.GetMatchedDestination)
			r.Post("/reveal-destination/{preferenceId}", s.RevealDestination)
		})
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetOpenAPI handles GET /openapi.yaml, serving the embedded API spec.
// Serving it from the binary means the spec and the running code are always
// in sync.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
