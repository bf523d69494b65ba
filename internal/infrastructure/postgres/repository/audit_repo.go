package repository

import (
	"context"
	"fmt"

	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres/mappers"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAuditRepository struct {
	DB *gorm.DB
}

func NewDefaultAuditRepository(db *gorm.DB) *DefaultAuditRepository {
	return &DefaultAuditRepository{DB: db}
}

func (r *DefaultAuditRepository) CreateEntry(ctx context.Context, entry *domain.AuditEntry) error {
	entryModel := mappers.ToGORMAuditEntry(entry)
	if err := r.DB.WithContext(ctx).Create(entryModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultAuditRepository) GetEntries(
	ctx context.Context,
	filters domain.AuditFilters,
	page, limit int64,
) ([]*domain.AuditEntry, int64, error) {
	var entryModels []models.AuditEntryModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.AuditEntryModel{})

	if filters.ActorKind != "" {
		baseQuery = baseQuery.Where("actor_kind = ?", filters.ActorKind)
	}

	if filters.Action != "" {
		baseQuery = baseQuery.Where("action = ?", filters.Action)
	}

	if filters.Severity != "" {
		baseQuery = baseQuery.Where("severity = ?", filters.Severity)
	}

	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("timestamp >= ?", filters.DateFrom)
	}

	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("timestamp <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("timestamp DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&entryModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find audit entries: %w", err)
	}

	entries := make([]*domain.AuditEntry, len(entryModels))
	for i, entryModel := range entryModels {
		entries[i] = mappers.ToDomainAuditEntry(&entryModel)
	}

	return entries, total, nil
}
