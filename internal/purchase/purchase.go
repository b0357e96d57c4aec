package purchase

import (
	"context"
	"fmt"
	"time"
)

// Plan identifies a paywall subscription plan.
type Plan string

const (
	PlanMonthly Plan = "monthly"
	PlanYearly  Plan = "yearly"
)

// DisplayName returns a human-readable label for the plan.
func (p Plan) DisplayName() string {
	switch p {
	case PlanMonthly:
		return "Monthly"
	case PlanYearly:
		return "Yearly"
	default:
		return string(p)
	}
}

// Price returns the display price string for the plan.
func (p Plan) Price() string {
	switch p {
	case PlanMonthly:
		return "$4.99 / month"
	case PlanYearly:
		return "$39.99 / year"
	default:
		return ""
	}
}

// AllPlans returns the purchasable plans in display order.
func AllPlans() []Plan {
	return []Plan{PlanMonthly, PlanYearly}
}

// Entitlement is the proof of a granted purchase.
type Entitlement struct {
	ID        string
	Plan      Plan
	GrantedAt time.Time
}

// PaymentError reports a failed purchase attempt.
type PaymentError struct {
	Plan   Plan
	Reason string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("purchase %s failed: %s", e.Plan, e.Reason)
}

// Purchaser is the injected purchase capability behind the paywall. The
// journey core never calls it; only the paywall screen does.
type Purchaser interface {
	Purchase(ctx context.Context, plan Plan) (Entitlement, error)
}
