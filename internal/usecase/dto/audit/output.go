package auditdto

import "github.com/securebank/payment-portal-service/internal/domain"

type QueryOutput struct {
	Entries []*domain.AuditEntry
	Total   int64
	Page    int64
	Limit   int64
}
