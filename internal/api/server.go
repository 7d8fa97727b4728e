// Package api exposes the tripsplit domain services over a REST surface:
// form-encoded registration and token endpoints, JSON group and expense
// endpoints behind bearer authentication.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripsplit/internal/auth"
	"tripsplit/internal/middleware"
	"tripsplit/internal/service"
)

// Server holds the handlers' dependencies.
type Server struct {
	directory *service.Directory
	groups    *service.GroupService
	jwt       *auth.JWTManager
}

// NewServer creates an API server over the given services.
func NewServer(directory *service.Directory, groups *service.GroupService, jwt *auth.JWTManager) *Server {
	return &Server{
		directory: directory,
		groups:    groups,
		jwt:       jwt,
	}
}

// Routes builds the HTTP router: public auth endpoints, authenticated
// group/expense endpoints, health and metrics.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)

	r.Post("/register", s.handleRegister)
	r.Post("/token", s.handleToken)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(s.jwt, s.directory, writeError))

		r.Post("/groups", s.handleCreateGroup)
		r.Get("/groups", s.handleListGroups)
		r.Get("/groups/{groupID}", s.handleGetGroup)
		r.Post("/groups/{groupID}/expenses", s.handleAddExpense)
		r.Get("/groups/{groupID}/expenses", s.handleListExpenses)
	})

	return r
}
