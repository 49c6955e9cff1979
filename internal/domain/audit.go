package domain

import "time"

type AuditSeverityLevel string

const (
	AuditSeverityLevelLow    AuditSeverityLevel = "low"
	AuditSeverityLevelMedium AuditSeverityLevel = "medium"
	AuditSeverityLevelHigh   AuditSeverityLevel = "high"
)

// AuditOrigin is the event bus topic that caused an audit entry, for example usergroupbackend:saved.
type AuditOrigin string

// AuditEntry records a change of a user group backend or the outcome of a resource probe.
type AuditEntry struct {
	UniqueId  uint64    `gorm:"primaryKey;autoIncrement:true;column:id"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_au_created"`

	Severity AuditSeverityLevel `gorm:"column:severity;index:idx_au_severity"`
	Origin   AuditOrigin        `gorm:"column:origin;index:idx_au_origin"`

	// Subject is the name of the affected user group backend or resource.
	Subject string `gorm:"column:subject;index:idx_au_subject"`
	Message string `gorm:"column:message"`
}
