package auditdto

import (
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
)

type QueryInput struct {
	ActorKind domain.PrincipalKind
	Action    domain.AuditAction
	Severity  domain.AuditSeverity
	DateFrom  time.Time
	DateTo    time.Time
	Page      int64
	Limit     int64
}
