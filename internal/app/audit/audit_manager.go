package audit

import (
	"context"
	"fmt"

	"github.com/h44z/groupbackend-portal/internal/domain"
)

type Manager struct {
	db DatabaseRepo
}

func NewManager(db DatabaseRepo) *Manager {
	return &Manager{db: db}
}

func (m *Manager) GetAll(ctx context.Context) ([]domain.AuditEntry, error) {
	entries, err := m.db.GetAllAuditEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}

	return entries, nil
}
