package authz

import "github.com/securebank/payment-portal-service/internal/domain"

type Action string

const (
	ActionCreatePayment   Action = "payment.create"
	ActionListOwnPayments Action = "payment.list-own"
	ActionListPending     Action = "payment.list-pending"
	ActionListVerified    Action = "payment.list-verified"
	ActionGetPayment      Action = "payment.get"
	ActionVerifyPayment   Action = "payment.verify"
	ActionRejectPayment   Action = "payment.reject"
	ActionSubmitBatch     Action = "payment.submit-batch"
	ActionQueryAuditTrail Action = "audit.query"
)

type rule struct {
	kind  domain.PrincipalKind
	roles map[domain.EmployeeRole]bool
}

// Customer-only and employee-only actions are disjoint; a nil role set means
// any role of the matching kind.
var policy = map[Action]rule{
	ActionCreatePayment:   {kind: domain.KindCustomer},
	ActionListOwnPayments: {kind: domain.KindCustomer},

	ActionListPending:   {kind: domain.KindEmployee},
	ActionGetPayment:    {kind: domain.KindEmployee},
	ActionVerifyPayment: {kind: domain.KindEmployee},
	ActionRejectPayment: {kind: domain.KindEmployee},

	ActionListVerified: {kind: domain.KindEmployee, roles: map[domain.EmployeeRole]bool{
		domain.RoleManager: true,
		domain.RoleAdmin:   true,
	}},
	ActionSubmitBatch: {kind: domain.KindEmployee, roles: map[domain.EmployeeRole]bool{
		domain.RoleManager: true,
		domain.RoleAdmin:   true,
	}},

	ActionQueryAuditTrail: {kind: domain.KindEmployee, roles: map[domain.EmployeeRole]bool{
		domain.RoleAdmin: true,
	}},
}

// Authorize checks the caller's principal kind and, for role-restricted
// employee actions, the role. Violations are reported, never silently
// ignored.
func Authorize(kind domain.PrincipalKind, role domain.EmployeeRole, action Action) error {
	r, ok := policy[action]
	if !ok {
		return domain.ErrWrongPrincipalKind
	}

	if r.kind != kind {
		return domain.ErrWrongPrincipalKind
	}

	if r.roles != nil && !r.roles[role] {
		return domain.ErrInsufficientRole
	}

	return nil
}
