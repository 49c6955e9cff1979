package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/h44z/groupbackend-portal/internal/app"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

// Recorder writes an audit entry for every change of a user group backend.
type Recorder struct {
	enabled bool
	bus     EventBus

	db DatabaseRepo
}

func NewAuditRecorder(enabled bool, bus EventBus, db DatabaseRepo) (*Recorder, error) {
	r := &Recorder{
		enabled: enabled,
		bus:     bus,

		db: db,
	}

	err := r.connectToMessageBus()
	if err != nil {
		return nil, fmt.Errorf("failed to setup message bus: %w", err)
	}

	return r, nil
}

func (r *Recorder) connectToMessageBus() error {
	if !r.enabled {
		return nil // noting to do
	}

	subscriptions := map[string]any{
		app.TopicUserGroupBackendSaved:   r.handleSavedEvent,
		app.TopicUserGroupBackendDeleted: r.handleDeletedEvent,
		app.TopicResourceProbed:          r.handleProbedEvent,
	}
	for topic, fn := range subscriptions {
		if err := r.bus.Subscribe(topic, fn); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}

	return nil
}

func (r *Recorder) handleSavedEvent(b domain.UserGroupBackend) {
	msg := fmt.Sprintf("user group backend %s saved (resource %s)", b.Identifier, b.Resource)
	if b.LinksUserBackend() {
		msg += fmt.Sprintf(", linked to user backend %s", b.UserBackend)
	}
	r.save(app.TopicUserGroupBackendSaved, string(b.Identifier), domain.AuditSeverityLevelMedium, msg)
}

func (r *Recorder) handleDeletedEvent(b domain.UserGroupBackend) {
	r.save(app.TopicUserGroupBackendDeleted, string(b.Identifier), domain.AuditSeverityLevelHigh,
		fmt.Sprintf("user group backend %s deleted", b.Identifier))
}

func (r *Recorder) handleProbedEvent(result domain.ResourceProbeResult) {
	msg := fmt.Sprintf("resource %s is reachable", result.Resource)
	if !result.Reachable {
		msg = fmt.Sprintf("resource %s is not reachable: %s", result.Resource, result.Error)
	}
	r.save(app.TopicResourceProbed, result.Resource, domain.AuditSeverityLevelLow, msg)
}

func (r *Recorder) save(topic, subject string, severity domain.AuditSeverityLevel, msg string) {
	err := r.db.SaveAuditEntry(context.Background(), &domain.AuditEntry{
		CreatedAt: time.Now(),
		Severity:  severity,
		Origin:    domain.AuditOrigin(topic),
		Subject:   subject,
		Message:   msg,
	})
	if err != nil {
		slog.Error("failed to create audit entry", "origin", topic, "subject", subject, "error", err)
	}
}
