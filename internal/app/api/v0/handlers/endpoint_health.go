package handlers

import (
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/h44z/groupbackend-portal/internal"
	"github.com/h44z/groupbackend-portal/internal/app/api/core/respond"
	"github.com/h44z/groupbackend-portal/internal/app/api/v0/model"
)

type HealthEndpoint struct{}

func NewHealthEndpoint() HealthEndpoint {
	return HealthEndpoint{}
}

func (e HealthEndpoint) GetName() string {
	return "HealthEndpoint"
}

func (e HealthEndpoint) RegisterRoutes(g *routegroup.Bundle) {
	g.HandleFunc("GET /health", e.handleHealthGet())
}

// handleHealthGet represents the liveness endpoint.
//
// @ID health_handleHealthGet
// @Tags Testing
// @Summary Get the service state.
// @Produce json
// @Success 200 {object} model.Health
// @Router /health [get]
func (e HealthEndpoint) handleHealthGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, model.Health{
			Status:  "ok",
			Version: internal.Version,
		})
	}
}
