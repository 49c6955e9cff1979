package handlers

import (
	"context"
	"encoding/gob"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/h44z/groupbackend-portal/internal/app/api/v0/model"
	"github.com/h44z/groupbackend-portal/internal/config"
)

func init() {
	gob.Register(SessionData{})
}

type SessionData struct {
	Notifications []model.Notification
}

const sessionApiV0Key = "session_api_v0"

type SessionWrapper struct {
	*scs.SessionManager
}

func NewSessionWrapper(cfg *config.Config) *SessionWrapper {
	sessionManager := scs.New()
	sessionManager.Lifetime = 24 * time.Hour
	sessionManager.Cookie.Name = cfg.Web.SessionIdentifier
	sessionManager.Cookie.Secure = strings.HasPrefix(cfg.Web.ExternalUrl, "https")
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Path = "/"
	sessionManager.Cookie.Persist = false

	return &SessionWrapper{sessionManager}
}

func (s *SessionWrapper) SetData(ctx context.Context, value SessionData) {
	s.SessionManager.Put(ctx, sessionApiV0Key, value)
}

func (s *SessionWrapper) GetData(ctx context.Context) SessionData {
	sessionData, ok := s.SessionManager.Get(ctx, sessionApiV0Key).(SessionData)
	if !ok {
		return SessionData{}
	}
	return sessionData
}

// AddNotification queues a notification that is shown on the next page load.
func (s *SessionWrapper) AddNotification(ctx context.Context, n model.Notification) {
	data := s.GetData(ctx)
	data.Notifications = append(data.Notifications, n)
	s.SetData(ctx, data)
}

// PopNotifications returns all queued notifications and removes them from the session.
func (s *SessionWrapper) PopNotifications(ctx context.Context) []model.Notification {
	data := s.GetData(ctx)
	notifications := data.Notifications
	if len(notifications) > 0 {
		data.Notifications = nil
		s.SetData(ctx, data)
	}
	return notifications
}
