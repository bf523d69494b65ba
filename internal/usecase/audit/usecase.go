package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/metrics"
	auditdto "github.com/securebank/payment-portal-service/internal/usecase/dto/audit"
)

type AuditUsecase interface {
	domain.AuditSink
	Query(ctx context.Context, input *auditdto.QueryInput) (*auditdto.QueryOutput, error)
}

type DefaultAuditUsecase struct {
	AuditRepo domain.AuditRepository
	Metrics   *metrics.PortalMetrics
}

func NewDefaultAuditUsecase(auditRepo domain.AuditRepository, portalMetrics *metrics.PortalMetrics) *DefaultAuditUsecase {
	return &DefaultAuditUsecase{
		AuditRepo: auditRepo,
		Metrics:   portalMetrics,
	}
}

// Record appends an audit entry. Failures are logged and counted but never
// propagated: the audit trail is observability, not a correctness gate for
// the caller's mutation.
func (uc *DefaultAuditUsecase) Record(ctx context.Context, entry domain.AuditEntry) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		slog.Error("failed to init audit id generator", "error", err.Error())
		uc.Metrics.AuditWriteFailuresTotal.Inc()
		return
	}
	entry.ID = idGenerator()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := uc.AuditRepo.CreateEntry(ctx, &entry); err != nil {
		slog.Error("failed to write audit entry",
			"action", string(entry.Action),
			"actor_id", entry.ActorID,
			"error", err.Error(),
		)
		uc.Metrics.AuditWriteFailuresTotal.Inc()
	}
}

func (uc *DefaultAuditUsecase) Query(ctx context.Context, input *auditdto.QueryInput) (*auditdto.QueryOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}

	filters := domain.AuditFilters{
		ActorKind: input.ActorKind,
		Action:    input.Action,
		Severity:  input.Severity,
		DateFrom:  input.DateFrom,
		DateTo:    input.DateTo,
	}

	entries, total, err := uc.AuditRepo.GetEntries(ctx, filters, page, limit)
	if err != nil {
		return nil, err
	}

	return &auditdto.QueryOutput{
		Entries: entries,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}
