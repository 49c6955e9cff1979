package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-pkgz/routegroup"
	"golang.org/x/text/message"

	"github.com/h44z/groupbackend-portal/internal/app/api/core"
	"github.com/h44z/groupbackend-portal/internal/app/api/core/respond"
	"github.com/h44z/groupbackend-portal/internal/app/api/v0/model"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

type Handler interface {
	// GetName returns the name of the handler.
	GetName() string
	// RegisterRoutes registers the routes for the handler.
	RegisterRoutes(g *routegroup.Bundle)
}

type SessionMiddleware interface {
	// LoadAndSave is a middleware that loads the session data for the given request and saves it after the request is
	// finished.
	LoadAndSave(next http.Handler) http.Handler
}

// @title Group Backend Portal API
// @version 0.0
// @description Configuration of LDAP user group backends

// @BasePath /api/v0

func NewRestApi(
	session SessionMiddleware,
	handlers ...Handler,
) core.ApiEndpointSetupFunc {
	return func() (core.ApiVersion, core.GroupSetupFn) {
		return "v0", func(group *routegroup.Bundle) {
			group.Use(session.LoadAndSave)

			// Handler functions
			for _, h := range handlers {
				slog.Debug("registering api handler", "handler", h.GetName())
				h.RegisterRoutes(group)
			}
		}
	}
}

// region handler-interfaces

type Session interface {
	// AddNotification queues a notification that is shown on the next page load.
	AddNotification(ctx context.Context, n model.Notification)
	// PopNotifications returns all queued notifications and removes them from the session.
	PopNotifications(ctx context.Context) []model.Notification
}

type Translator interface {
	// Printer returns a message printer for the given Accept-Language header value.
	Printer(acceptLanguage ...string) *message.Printer
}

// endregion handler-interfaces

// respondError maps domain errors to the matching HTTP status code.
func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidData):
		code = http.StatusBadRequest
	}

	respond.JSON(w, code, model.Error{Code: code, Message: err.Error()})
}
