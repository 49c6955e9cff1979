package audit

import (
	"context"

	"github.com/h44z/groupbackend-portal/internal/domain"
)

type DatabaseRepo interface {
	// SaveAuditEntry stores a new audit entry.
	SaveAuditEntry(ctx context.Context, entry *domain.AuditEntry) error
	// GetAllAuditEntries retrieves all audit entries from the database.
	// The entries are ordered by timestamp, with the newest entries first.
	GetAllAuditEntries(ctx context.Context) ([]domain.AuditEntry, error)
}

type EventBus interface {
	// Subscribe subscribes to a topic
	Subscribe(topic string, fn interface{}) error
}
