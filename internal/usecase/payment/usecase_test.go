package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/kafka"
	"github.com/securebank/payment-portal-service/internal/infrastructure/metrics"
	paymentdto "github.com/securebank/payment-portal-service/internal/usecase/dto/payment"
)

var testMetrics = metrics.NewPortalMetrics()

// fakePaymentRepo mirrors the conditional-update semantics of the postgres
// repository: status transitions only apply when the current status matches.
type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (r *fakePaymentRepo) CreatePayment(_ context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *payment
	r.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetPaymentByID(_ context.Context, paymentID string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[paymentID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) GetPaymentsByStatus(_ context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Payment
	for _, p := range r.payments {
		if p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) GetPaymentsByCustomerID(_ context.Context, customerID string) ([]*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Payment
	for _, p := range r.payments {
		if p.CustomerID == customerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) UpdateStatusIfPending(_ context.Context, paymentID string, newStatus domain.PaymentStatus, reviewerID string, reviewedAt time.Time, rejectionReason *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[paymentID]
	if !ok || p.Status != domain.StatusPending {
		return false, nil
	}
	p.Status = newStatus
	p.VerifiedBy = &reviewerID
	p.VerifiedAt = &reviewedAt
	if rejectionReason != nil {
		reason := *rejectionReason
		p.RejectionReason = &reason
	}
	return true, nil
}

func (r *fakePaymentRepo) MarkSubmittedIfVerified(_ context.Context, paymentID string, submittedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[paymentID]
	if !ok || p.Status != domain.StatusVerified {
		return false, nil
	}
	p.Status = domain.StatusSubmitted
	p.SubmittedAt = &submittedAt
	return true, nil
}

type recordingSink struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (s *recordingSink) Record(_ context.Context, entry domain.AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.SettlementEvent
}

func (p *recordingPublisher) PublishSettlement(event kafka.SettlementEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func newTestUsecase() (*DefaultPaymentUsecase, *fakePaymentRepo, *recordingSink, *recordingPublisher) {
	repo := newFakePaymentRepo()
	sink := &recordingSink{}
	publisher := &recordingPublisher{}
	uc := NewDefaultPaymentUsecase(repo, sink, publisher, testMetrics)
	return uc, repo, sink, publisher
}

func validCreateInput() *paymentdto.CreatePaymentInput {
	return &paymentdto.CreatePaymentInput{
		CustomerID:   "c-1",
		Amount:       2500.00,
		Currency:     "USD",
		PayeeName:    "Jane Doe",
		PayeeAccount: "GB29NWBK60161331926819",
		SwiftCode:    "NWBKGB2L",
	}
}

func TestCreatePaymentRoundTrip(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()

	out, err := uc.CreatePayment(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Status != domain.StatusPending {
		t.Errorf("status = %s, want PENDING", out.Status)
	}
	if out.ReferenceNumber == "" {
		t.Error("expected a reference number")
	}
	if out.Provider != "SWIFT" {
		t.Errorf("provider = %s, want SWIFT default", out.Provider)
	}

	stored, err := repo.GetPaymentByID(context.Background(), out.ID)
	if err != nil {
		t.Fatalf("fetch after create: %v", err)
	}
	if stored.Status != domain.StatusPending {
		t.Errorf("stored status = %s, want PENDING", stored.Status)
	}
	if stored.VerifiedBy != nil || stored.VerifiedAt != nil || stored.RejectionReason != nil || stored.SubmittedAt != nil {
		t.Error("reviewer fields must be null on a fresh payment")
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()

	tests := []struct {
		name   string
		mutate func(*paymentdto.CreatePaymentInput)
		field  string
	}{
		{"negative amount", func(i *paymentdto.CreatePaymentInput) { i.Amount = -5 }, "amount"},
		{"excess precision", func(i *paymentdto.CreatePaymentInput) { i.Amount = 10.005 }, "amount"},
		{"bad currency", func(i *paymentdto.CreatePaymentInput) { i.Currency = "RUB" }, "currency"},
		{"bad payee name", func(i *paymentdto.CreatePaymentInput) { i.PayeeName = "Jane123" }, "payeeName"},
		{"bad account", func(i *paymentdto.CreatePaymentInput) { i.PayeeAccount = "short" }, "payeeAccountNumber"},
		{"bad swift code", func(i *paymentdto.CreatePaymentInput) { i.SwiftCode = "XX" }, "swiftCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(input)
			_, err := uc.CreatePayment(context.Background(), input)
			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("violated field = %s, want %s", validationErr.Field, tt.field)
			}
		})
	}

	// Nothing may be persisted on validation failure.
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.payments) != 0 {
		t.Errorf("repo holds %d payments after failed creations, want 0", len(repo.payments))
	}
}

func TestVerifyPayment(t *testing.T) {
	uc, _, sink, _ := newTestUsecase()

	out, _ := uc.CreatePayment(context.Background(), validCreateInput())

	verified, err := uc.VerifyPayment(context.Background(), &paymentdto.ReviewPaymentInput{
		EmployeeID: "e-1",
		PaymentID:  out.ID,
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if verified.Status != domain.StatusVerified {
		t.Errorf("status = %s, want VERIFIED", verified.Status)
	}
	if verified.VerifiedBy == nil || *verified.VerifiedBy != "e-1" {
		t.Error("reviewer was not recorded")
	}
	if verified.VerifiedAt == nil {
		t.Error("review timestamp was not recorded")
	}

	sink.mu.Lock()
	last := sink.entries[len(sink.entries)-1]
	sink.mu.Unlock()
	if last.Action != domain.ActionVerifyPayment {
		t.Errorf("last audit action = %s, want VERIFY_PAYMENT", last.Action)
	}
}

func TestTransitionGraphIsClosed(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	ctx := context.Background()

	out, _ := uc.CreatePayment(ctx, validCreateInput())
	review := &paymentdto.ReviewPaymentInput{EmployeeID: "e-1", PaymentID: out.ID}

	if _, err := uc.VerifyPayment(ctx, review); err != nil {
		t.Fatalf("first verify: %v", err)
	}

	// VERIFIED accepts neither verify nor reject.
	if _, err := uc.VerifyPayment(ctx, review); !errors.Is(err, domain.ErrPaymentNotPending) {
		t.Errorf("second verify: got %v, want ErrPaymentNotPending", err)
	}
	if _, err := uc.RejectPayment(ctx, &paymentdto.RejectPaymentInput{
		EmployeeID: "e-1", PaymentID: out.ID, Reason: "duplicate payment request",
	}); !errors.Is(err, domain.ErrPaymentNotPending) {
		t.Errorf("reject after verify: got %v, want ErrPaymentNotPending", err)
	}

	// SUBMITTED is terminal.
	if _, err := uc.SubmitBatch(ctx, &paymentdto.SubmitBatchInput{EmployeeID: "m-1", PaymentIDs: []string{out.ID}}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := uc.VerifyPayment(ctx, review); !errors.Is(err, domain.ErrPaymentNotPending) {
		t.Errorf("verify after submit: got %v, want ErrPaymentNotPending", err)
	}

	// Unknown ids resolve to not-found, not a state violation.
	if _, err := uc.VerifyPayment(ctx, &paymentdto.ReviewPaymentInput{EmployeeID: "e-1", PaymentID: "missing"}); !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Errorf("verify unknown id: got %v, want ErrPaymentNotFound", err)
	}
}

func TestRejectPayment(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	ctx := context.Background()

	out, _ := uc.CreatePayment(ctx, validCreateInput())

	rejected, err := uc.RejectPayment(ctx, &paymentdto.RejectPaymentInput{
		EmployeeID: "e-1",
		PaymentID:  out.ID,
		Reason:     "payee account does not match payee name",
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.StatusRejected {
		t.Errorf("status = %s, want REJECTED", rejected.Status)
	}
	if rejected.RejectionReason == nil {
		t.Error("rejection reason was not stored")
	}
}

func TestRejectShortReasonLeavesStatusUnchanged(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()
	ctx := context.Background()

	out, _ := uc.CreatePayment(ctx, validCreateInput())

	_, err := uc.RejectPayment(ctx, &paymentdto.RejectPaymentInput{
		EmployeeID: "e-1",
		PaymentID:  out.ID,
		Reason:     "too short",
	})
	if !errors.Is(err, domain.ErrReasonTooShort) {
		t.Fatalf("got %v, want ErrReasonTooShort", err)
	}

	stored, _ := repo.GetPaymentByID(ctx, out.ID)
	if stored.Status != domain.StatusPending {
		t.Errorf("status changed to %s on failed reject", stored.Status)
	}

	// Whitespace padding does not satisfy the minimum.
	_, err = uc.RejectPayment(ctx, &paymentdto.RejectPaymentInput{
		EmployeeID: "e-1",
		PaymentID:  out.ID,
		Reason:     "short     \t\t",
	})
	if !errors.Is(err, domain.ErrReasonTooShort) {
		t.Errorf("padded reason: got %v, want ErrReasonTooShort", err)
	}
}

func TestSubmitBatchFiltersSilently(t *testing.T) {
	uc, _, _, publisher := newTestUsecase()
	ctx := context.Background()

	verified, _ := uc.CreatePayment(ctx, validCreateInput())
	uc.VerifyPayment(ctx, &paymentdto.ReviewPaymentInput{EmployeeID: "e-1", PaymentID: verified.ID})
	pending, _ := uc.CreatePayment(ctx, validCreateInput())

	receipts, err := uc.SubmitBatch(ctx, &paymentdto.SubmitBatchInput{
		EmployeeID: "m-1",
		PaymentIDs: []string{verified.ID, pending.ID, "missing-id"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(receipts) != 1 {
		t.Fatalf("got %d receipts, want 1 (non-verified ids are dropped, not errored)", len(receipts))
	}
	receipt := receipts[0]
	if receipt.PaymentID != verified.ID {
		t.Errorf("receipt for %s, want %s", receipt.PaymentID, verified.ID)
	}
	if receipt.Status != domain.StatusSubmitted {
		t.Errorf("receipt status = %s, want SUBMITTED", receipt.Status)
	}
	if receipt.BatchReference == "" {
		t.Error("expected a batch reference")
	}

	// Re-submitting the same id finds nothing eligible.
	_, err = uc.SubmitBatch(ctx, &paymentdto.SubmitBatchInput{
		EmployeeID: "m-1",
		PaymentIDs: []string{verified.ID},
	})
	if !errors.Is(err, domain.ErrNoEligiblePayments) {
		t.Errorf("resubmit: got %v, want ErrNoEligiblePayments", err)
	}

	// The settlement event goes out asynchronously.
	deadline := time.After(time.Second)
	for {
		publisher.mu.Lock()
		n := len(publisher.events)
		publisher.mu.Unlock()
		if n == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("settlement events published = %d, want 1", n)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestSubmitBatchEmptyEligibleSet(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	_, err := uc.SubmitBatch(context.Background(), &paymentdto.SubmitBatchInput{
		EmployeeID: "m-1",
		PaymentIDs: []string{"nope", "also-nope"},
	})
	if !errors.Is(err, domain.ErrNoEligiblePayments) {
		t.Errorf("got %v, want ErrNoEligiblePayments", err)
	}
}

func TestConcurrentVerifyOnlyOneWins(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	ctx := context.Background()

	out, _ := uc.CreatePayment(ctx, validCreateInput())

	const reviewers = 8
	var wg sync.WaitGroup
	errs := make([]error, reviewers)
	for i := 0; i < reviewers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.VerifyPayment(ctx, &paymentdto.ReviewPaymentInput{
				EmployeeID: "e-1",
				PaymentID:  out.ID,
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrPaymentNotPending):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("%d concurrent verifies succeeded, want exactly 1", wins)
	}
}

func TestCustomerPaymentsQuery(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	ctx := context.Background()

	uc.CreatePayment(ctx, validCreateInput())
	other := validCreateInput()
	other.CustomerID = "c-2"
	uc.CreatePayment(ctx, other)

	payments, err := uc.GetCustomerPayments(ctx, "c-1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("got %d payments for c-1, want 1", len(payments))
	}
}
