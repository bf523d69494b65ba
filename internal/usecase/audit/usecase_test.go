package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/metrics"
	auditdto "github.com/securebank/payment-portal-service/internal/usecase/dto/audit"
)

var testMetrics = metrics.NewPortalMetrics()

type fakeAuditRepo struct {
	mu        sync.Mutex
	entries   []*domain.AuditEntry
	createErr error
}

func (r *fakeAuditRepo) CreateEntry(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeAuditRepo) GetEntries(_ context.Context, filters domain.AuditFilters, page, limit int64) ([]*domain.AuditEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.AuditEntry
	for _, e := range r.entries {
		if filters.Action != "" && e.Action != filters.Action {
			continue
		}
		if filters.Severity != "" && e.Severity != filters.Severity {
			continue
		}
		matched = append(matched, e)
	}
	total := int64(len(matched))
	offset := (page - 1) * limit
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := NewDefaultAuditUsecase(repo, testMetrics)

	uc.Record(context.Background(), domain.AuditEntry{
		ActorID:  "c-1",
		Action:   domain.ActionLoginSuccess,
		Severity: domain.SeverityLow,
	})

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.entries) != 1 {
		t.Fatalf("stored %d entries, want 1", len(repo.entries))
	}
	stored := repo.entries[0]
	if stored.ID == "" {
		t.Error("entry was stored without an id")
	}
	if stored.Timestamp.IsZero() {
		t.Error("entry was stored without a timestamp")
	}
}

func TestRecordKeepsCallerTimestamp(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := NewDefaultAuditUsecase(repo, testMetrics)

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	uc.Record(context.Background(), domain.AuditEntry{
		ActorID:   "e-1",
		Action:    domain.ActionVerifyPayment,
		Timestamp: at,
	})

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if !repo.entries[0].Timestamp.Equal(at) {
		t.Errorf("timestamp overwritten: got %v, want %v", repo.entries[0].Timestamp, at)
	}
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	repo := &fakeAuditRepo{createErr: errors.New("connection refused")}
	uc := NewDefaultAuditUsecase(repo, testMetrics)

	// Must not panic and has no error to return; the caller's operation
	// proceeds regardless of sink health.
	uc.Record(context.Background(), domain.AuditEntry{
		ActorID: "c-1",
		Action:  domain.ActionPaymentCreate,
	})
}

func TestQueryPaginationDefaults(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := NewDefaultAuditUsecase(repo, testMetrics)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		uc.Record(ctx, domain.AuditEntry{
			ActorID:  "c-1",
			Action:   domain.ActionLoginFailed,
			Severity: domain.SeverityMedium,
		})
	}

	tests := []struct {
		name      string
		input     auditdto.QueryInput
		wantPage  int64
		wantLimit int64
		wantLen   int
	}{
		{"zero values fall back", auditdto.QueryInput{}, 1, 50, 50},
		{"negative page falls back", auditdto.QueryInput{Page: -3, Limit: 10}, 1, 10, 10},
		{"oversized limit clamped", auditdto.QueryInput{Page: 1, Limit: 5000}, 1, 50, 50},
		{"second page remainder", auditdto.QueryInput{Page: 2, Limit: 50}, 2, 50, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Query(ctx, &tt.input)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if out.Page != tt.wantPage || out.Limit != tt.wantLimit {
				t.Errorf("page/limit = %d/%d, want %d/%d", out.Page, out.Limit, tt.wantPage, tt.wantLimit)
			}
			if len(out.Entries) != tt.wantLen {
				t.Errorf("got %d entries, want %d", len(out.Entries), tt.wantLen)
			}
			if out.Total != 60 {
				t.Errorf("total = %d, want 60", out.Total)
			}
		})
	}
}

func TestQueryFilters(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := NewDefaultAuditUsecase(repo, testMetrics)
	ctx := context.Background()

	uc.Record(ctx, domain.AuditEntry{ActorID: "c-1", Action: domain.ActionLoginSuccess, Severity: domain.SeverityLow})
	uc.Record(ctx, domain.AuditEntry{ActorID: "c-1", Action: domain.ActionLoginFailed, Severity: domain.SeverityMedium})
	uc.Record(ctx, domain.AuditEntry{ActorID: "e-1", Action: domain.ActionSubmitToSwift, Severity: domain.SeverityHigh})

	out, err := uc.Query(ctx, &auditdto.QueryInput{Action: domain.ActionLoginFailed})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if out.Total != 1 || len(out.Entries) != 1 {
		t.Fatalf("got %d/%d entries for action filter, want 1", len(out.Entries), out.Total)
	}
	if out.Entries[0].Action != domain.ActionLoginFailed {
		t.Errorf("wrong entry returned: %s", out.Entries[0].Action)
	}
}
