package purchase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MockPurchaser is the shipped Purchaser. Real payment processing is out of
// scope, so it deterministically grants (or, when FailWith is set, rejects)
// every purchase. Also used by the paywall tests.
type MockPurchaser struct {
	// FailWith, when non-empty, makes every purchase fail with that reason.
	FailWith string

	// Granted accumulates every entitlement handed out.
	Granted []Entitlement
}

var _ Purchaser = (*MockPurchaser)(nil)

// Purchase grants a fresh entitlement for the plan.
func (m *MockPurchaser) Purchase(ctx context.Context, plan Plan) (Entitlement, error) {
	if err := ctx.Err(); err != nil {
		return Entitlement{}, err
	}
	if m.FailWith != "" {
		return Entitlement{}, &PaymentError{Plan: plan, Reason: m.FailWith}
	}
	ent := Entitlement{
		ID:        uuid.New().String(),
		Plan:      plan,
		GrantedAt: time.Now(),
	}
	m.Granted = append(m.Granted, ent)
	return ent, nil
}
