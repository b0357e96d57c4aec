package purchase

import (
	"context"
	"errors"
	"testing"
)

func TestMockGrantsEntitlement(t *testing.T) {
	m := &MockPurchaser{}

	ent, err := m.Purchase(context.Background(), PlanMonthly)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if ent.ID == "" {
		t.Error("entitlement should carry an id")
	}
	if ent.Plan != PlanMonthly {
		t.Errorf("plan = %s, want monthly", ent.Plan)
	}
	if len(m.Granted) != 1 {
		t.Errorf("granted ledger has %d entries, want 1", len(m.Granted))
	}
}

func TestMockFailure(t *testing.T) {
	m := &MockPurchaser{FailWith: "card declined"}

	_, err := m.Purchase(context.Background(), PlanYearly)
	var pe *PaymentError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want PaymentError", err)
	}
	if pe.Plan != PlanYearly {
		t.Errorf("error plan = %s, want yearly", pe.Plan)
	}
	if len(m.Granted) != 0 {
		t.Error("failed purchase must not grant")
	}
}

func TestMockHonorsContext(t *testing.T) {
	m := &MockPurchaser{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Purchase(ctx, PlanMonthly); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestPlanDisplay(t *testing.T) {
	for _, p := range AllPlans() {
		if p.DisplayName() == "" || p.Price() == "" {
			t.Errorf("plan %s missing display name or price", p)
		}
	}
}
