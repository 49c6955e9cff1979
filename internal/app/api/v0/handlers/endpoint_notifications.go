package handlers

import (
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/h44z/groupbackend-portal/internal/app/api/core/respond"
	"github.com/h44z/groupbackend-portal/internal/app/api/v0/model"
)

type NotificationEndpoint struct {
	session Session
}

func NewNotificationEndpoint(session Session) NotificationEndpoint {
	return NotificationEndpoint{
		session: session,
	}
}

func (e NotificationEndpoint) GetName() string {
	return "NotificationEndpoint"
}

func (e NotificationEndpoint) RegisterRoutes(g *routegroup.Bundle) {
	g.HandleFunc("GET /notifications", e.handleNotificationsGet())
}

// handleNotificationsGet returns a Handler function.
//
// @ID notifications_handleNotificationsGet
// @Tags Notifications
// @Summary Get and clear all pending notifications of the current session.
// @Produce json
// @Success 200 {object} []model.Notification
// @Router /notifications [get]
func (e NotificationEndpoint) handleNotificationsGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notifications := e.session.PopNotifications(r.Context())
		if notifications == nil {
			notifications = []model.Notification{}
		}

		respond.JSON(w, http.StatusOK, notifications)
	}
}
