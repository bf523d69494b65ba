package models

import (
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
)

type AuditEntryModel struct {
	ID          string               `gorm:"primaryKey"`
	ActorID     string               `gorm:"not null;index:idx_actor_ts"`
	ActorKind   domain.PrincipalKind `gorm:"not null;index:idx_kind_ts"`
	Action      domain.AuditAction   `gorm:"not null;index:idx_action_ts"`
	EntityType  string
	EntityID    string
	Description string               `gorm:"not null"`
	IPAddress   string
	UserAgent   string
	Severity    domain.AuditSeverity `gorm:"not null;index:idx_severity_ts"`
	Timestamp   time.Time            `gorm:"not null;index:idx_actor_ts;index:idx_kind_ts;index:idx_action_ts;index:idx_severity_ts"`
}
