package handlers

import (
	"context"
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/h44z/groupbackend-portal/internal/app/api/core/request"
	"github.com/h44z/groupbackend-portal/internal/app/api/core/respond"
	"github.com/h44z/groupbackend-portal/internal/app/api/v0/model"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

type ResourceService interface {
	// ProbeResource checks whether the named LDAP resource is reachable.
	ProbeResource(ctx context.Context, name string) (domain.ResourceProbeResult, error)
}

type ResourceEndpoint struct {
	service ResourceService
}

func NewResourceEndpoint(service ResourceService) ResourceEndpoint {
	return ResourceEndpoint{
		service: service,
	}
}

func (e ResourceEndpoint) GetName() string {
	return "ResourceEndpoint"
}

func (e ResourceEndpoint) RegisterRoutes(g *routegroup.Bundle) {
	apiGroup := g.Mount("/config/resources")

	apiGroup.HandleFunc("POST /{name}/probe", e.handleProbePost())
}

// handleProbePost returns a Handler function.
//
// @ID resources_handleProbePost
// @Tags Resources
// @Summary Test the connection to a LDAP resource.
// @Param name path string true "The resource name"
// @Produce json
// @Success 200 {object} model.ProbeResult
// @Failure 404 {object} model.Error
// @Router /config/resources/{name}/probe [post]
func (e ResourceEndpoint) handleProbePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := e.service.ProbeResource(r.Context(), request.Path(r, "name"))
		if err != nil {
			respondError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, model.NewProbeResult(result))
	}
}
