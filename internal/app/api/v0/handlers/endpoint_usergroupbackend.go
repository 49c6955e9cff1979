package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/h44z/groupbackend-portal/internal/app/api/core/request"
	"github.com/h44z/groupbackend-portal/internal/app/api/core/respond"
	"github.com/h44z/groupbackend-portal/internal/app/api/v0/model"
	"github.com/h44z/groupbackend-portal/internal/app/groupbackend"
	"github.com/h44z/groupbackend-portal/internal/config"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

type UserGroupBackendService interface {
	// BuildForm resolves the configuration form for the given input.
	BuildForm(ctx context.Context, loc groupbackend.Localizer, in groupbackend.FormInput) (*domain.Form, error)
	// EditForm resolves the configuration form of a stored user group backend.
	EditForm(ctx context.Context, loc groupbackend.Localizer, id domain.UserGroupBackendIdentifier) (*domain.Form, error)
	// Submit validates and stores a user group backend.
	Submit(
		ctx context.Context,
		loc groupbackend.Localizer,
		id domain.UserGroupBackendIdentifier,
		values groupbackend.FormValues,
	) (*domain.UserGroupBackend, error)
	// GetUserGroupBackend returns the user group backend with the given name.
	GetUserGroupBackend(ctx context.Context, id domain.UserGroupBackendIdentifier) (*domain.UserGroupBackend, error)
	// GetAllUserGroupBackends returns all user group backends.
	GetAllUserGroupBackends(ctx context.Context) ([]domain.UserGroupBackend, error)
	// DeleteUserGroupBackend removes the user group backend with the given name.
	DeleteUserGroupBackend(ctx context.Context, id domain.UserGroupBackendIdentifier) error
}

type UserGroupBackendEndpoint struct {
	cfg        *config.Config
	service    UserGroupBackendService
	session    Session
	translator Translator
}

func NewUserGroupBackendEndpoint(
	cfg *config.Config,
	service UserGroupBackendService,
	session Session,
	translator Translator,
) UserGroupBackendEndpoint {
	return UserGroupBackendEndpoint{
		cfg:        cfg,
		service:    service,
		session:    session,
		translator: translator,
	}
}

func (e UserGroupBackendEndpoint) GetName() string {
	return "UserGroupBackendEndpoint"
}

func (e UserGroupBackendEndpoint) RegisterRoutes(g *routegroup.Bundle) {
	apiGroup := g.Mount("/config/usergroupbackends")

	apiGroup.HandleFunc("GET /form", e.handleFormGet())
	apiGroup.HandleFunc("GET /all", e.handleAllGet())
	apiGroup.HandleFunc("GET /{name}", e.handleSingleGet())
	apiGroup.HandleFunc("GET /{name}/form", e.handleEditFormGet())
	apiGroup.HandleFunc("POST /{name}", e.handleSubmitPost())
	apiGroup.HandleFunc("DELETE /{name}", e.handleDelete())
}

// handleFormGet returns a Handler function.
//
// @ID usergroupbackends_handleFormGet
// @Tags UserGroupBackends
// @Summary Resolve the configuration form of a LDAP user group backend.
// @Param type query string true "The directory flavor, ldap or msldap"
// @Param resource query string false "The selected resource"
// @Param user_backend query string false "The selected user backend"
// @Produce json
// @Success 200 {object} model.Form
// @Success 303 "No LDAP resource configured"
// @Failure 400 {object} model.Error
// @Failure 500 {object} model.Error
// @Router /config/usergroupbackends/form [get]
func (e UserGroupBackendEndpoint) handleFormGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := e.translator.Printer(request.Header(r, "Accept-Language"))
		in := groupbackend.FormInput{
			Type:        request.QueryDefault(r, "type", string(domain.DirectoryFlavorOpenLdap)),
			Resource:    request.Query(r, domain.FieldResource),
			UserBackend: request.Query(r, domain.FieldUserBackend),
		}

		form, err := e.service.BuildForm(r.Context(), loc, in)
		if err != nil {
			e.handleError(w, r, loc, err)
			return
		}

		respond.JSON(w, http.StatusOK, model.NewForm(form))
	}
}

// handleEditFormGet returns a Handler function.
//
// @ID usergroupbackends_handleEditFormGet
// @Tags UserGroupBackends
// @Summary Resolve the configuration form of a stored LDAP user group backend.
// @Param name path string true "The user group backend name"
// @Produce json
// @Success 200 {object} model.Form
// @Success 303 "No LDAP resource configured"
// @Failure 404 {object} model.Error
// @Failure 500 {object} model.Error
// @Router /config/usergroupbackends/{name}/form [get]
func (e UserGroupBackendEndpoint) handleEditFormGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := e.translator.Printer(request.Header(r, "Accept-Language"))
		id := domain.UserGroupBackendIdentifier(request.Path(r, "name"))

		form, err := e.service.EditForm(r.Context(), loc, id)
		if err != nil {
			e.handleError(w, r, loc, err)
			return
		}

		respond.JSON(w, http.StatusOK, model.NewForm(form))
	}
}

// handleSubmitPost returns a Handler function.
//
// @ID usergroupbackends_handleSubmitPost
// @Tags UserGroupBackends
// @Summary Create or update a LDAP user group backend.
// @Param name path string true "The user group backend name"
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} model.UserGroupBackend
// @Success 303 "No LDAP resource configured"
// @Failure 400 {object} model.ValidationError
// @Failure 500 {object} model.Error
// @Router /config/usergroupbackends/{name} [post]
func (e UserGroupBackendEndpoint) handleSubmitPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := e.translator.Printer(request.Header(r, "Accept-Language"))
		id := domain.UserGroupBackendIdentifier(request.Path(r, "name"))

		values, err := parseFormValues(r)
		if err != nil {
			respond.JSON(w, http.StatusBadRequest, model.Error{Code: http.StatusBadRequest, Message: err.Error()})
			return
		}

		saved, err := e.service.Submit(r.Context(), loc, id, values)
		if err != nil {
			e.handleError(w, r, loc, err)
			return
		}

		respond.JSON(w, http.StatusOK, model.NewUserGroupBackend(saved))
	}
}

// handleAllGet returns a Handler function.
//
// @ID usergroupbackends_handleAllGet
// @Tags UserGroupBackends
// @Summary Get all user group backends.
// @Produce json
// @Success 200 {object} []model.UserGroupBackend
// @Failure 500 {object} model.Error
// @Router /config/usergroupbackends/all [get]
func (e UserGroupBackendEndpoint) handleAllGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		backends, err := e.service.GetAllUserGroupBackends(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, model.NewUserGroupBackends(backends))
	}
}

// handleSingleGet returns a Handler function.
//
// @ID usergroupbackends_handleSingleGet
// @Tags UserGroupBackends
// @Summary Get a single user group backend.
// @Param name path string true "The user group backend name"
// @Produce json
// @Success 200 {object} model.UserGroupBackend
// @Failure 404 {object} model.Error
// @Router /config/usergroupbackends/{name} [get]
func (e UserGroupBackendEndpoint) handleSingleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		backend, err := e.service.GetUserGroupBackend(r.Context(), domain.UserGroupBackendIdentifier(request.Path(r, "name")))
		if err != nil {
			respondError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, model.NewUserGroupBackend(backend))
	}
}

// handleDelete returns a Handler function.
//
// @ID usergroupbackends_handleDelete
// @Tags UserGroupBackends
// @Summary Delete a user group backend.
// @Param name path string true "The user group backend name"
// @Success 204 "No content if deletion was successful"
// @Failure 404 {object} model.Error
// @Router /config/usergroupbackends/{name} [delete]
func (e UserGroupBackendEndpoint) handleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := e.service.DeleteUserGroupBackend(r.Context(), domain.UserGroupBackendIdentifier(request.Path(r, "name")))
		if err != nil {
			respondError(w, err)
			return
		}

		respond.Status(w, http.StatusNoContent)
	}
}

func (e UserGroupBackendEndpoint) handleError(
	w http.ResponseWriter,
	r *http.Request,
	loc groupbackend.Localizer,
	err error,
) {
	var fieldErrs domain.FieldErrors
	switch {
	case errors.Is(err, domain.ErrConfigurationMissing):
		e.session.AddNotification(r.Context(), model.Notification{
			Type:    "error",
			Message: loc.Sprintf(groupbackend.MsgNoLdapResources),
		})
		respond.Redirect(w, r, http.StatusSeeOther, e.cfg.Web.CreateResourceUrl)
	case errors.As(err, &fieldErrs):
		respond.JSON(w, http.StatusBadRequest, model.ValidationError{
			Code:    http.StatusBadRequest,
			Message: "invalid form values",
			Fields:  fieldErrs,
		})
	default:
		respondError(w, err)
	}
}

// parseFormValues reads the submitted values either from a JSON or from a form encoded body.
func parseFormValues(r *http.Request) (groupbackend.FormValues, error) {
	var values groupbackend.FormValues

	if request.IsJson(r) {
		if err := request.BodyJson(r, &values); err != nil {
			return values, fmt.Errorf("failed to decode body: %w", err)
		}
		return values, nil
	}

	fields := append([]string{"type", domain.FieldResource, domain.FieldUserBackend},
		groupbackend.AttributeFieldNames()...)
	raw, err := request.BodyForm(r, fields...)
	if err != nil {
		return values, err
	}

	attributes := domain.AttributeDefaults{}
	for _, name := range groupbackend.AttributeFieldNames() {
		attributes.SetValue(name, raw[name])
	}

	values.Type = raw["type"]
	values.Resource = raw[domain.FieldResource]
	values.UserBackend = raw[domain.FieldUserBackend]
	values.SetAttributes(attributes)

	return values, nil
}
