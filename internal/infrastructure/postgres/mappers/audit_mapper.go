package mappers

import (
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres/models"
)

func ToDomainAuditEntry(model *models.AuditEntryModel) *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:          model.ID,
		ActorID:     model.ActorID,
		ActorKind:   model.ActorKind,
		Action:      model.Action,
		EntityType:  model.EntityType,
		EntityID:    model.EntityID,
		Description: model.Description,
		IPAddress:   model.IPAddress,
		UserAgent:   model.UserAgent,
		Severity:    model.Severity,
		Timestamp:   model.Timestamp,
	}
}

func ToGORMAuditEntry(entry *domain.AuditEntry) *models.AuditEntryModel {
	return &models.AuditEntryModel{
		ID:          entry.ID,
		ActorID:     entry.ActorID,
		ActorKind:   entry.ActorKind,
		Action:      entry.Action,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		Description: entry.Description,
		IPAddress:   entry.IPAddress,
		UserAgent:   entry.UserAgent,
		Severity:    entry.Severity,
		Timestamp:   entry.Timestamp,
	}
}
