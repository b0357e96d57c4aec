package paywall

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/purchase"
	"github.com/sproutfi/sprout/internal/router"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// buy selects nothing extra, presses enter, and delivers the async result.
func buy(t *testing.T, s *PaywallScreen) {
	t.Helper()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a purchase command")
	}
	s.Update(cmd())
}

func TestPurchaseGrantsEntitlement(t *testing.T) {
	p := &purchase.MockPurchaser{}
	s := New(p)

	buy(t, s)

	if s.entitlement == nil {
		t.Fatal("no entitlement after purchase")
	}
	if s.entitlement.Plan != purchase.PlanMonthly {
		t.Errorf("plan = %v, want monthly", s.entitlement.Plan)
	}
	if len(p.Granted) != 1 {
		t.Errorf("purchaser granted %d entitlements, want 1", len(p.Granted))
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Welcome to Premium") {
		t.Error("view missing granted confirmation")
	}
}

func TestPlanSelection(t *testing.T) {
	p := &purchase.MockPurchaser{}
	s := New(p)

	s.Update(key('l'))
	buy(t, s)

	if s.entitlement == nil {
		t.Fatal("no entitlement after purchase")
	}
	if s.entitlement.Plan != purchase.PlanYearly {
		t.Errorf("plan = %v, want yearly", s.entitlement.Plan)
	}
}

func TestFailedPurchaseShowsError(t *testing.T) {
	p := &purchase.MockPurchaser{FailWith: "card declined"}
	s := New(p)

	buy(t, s)

	if s.entitlement != nil {
		t.Error("entitlement granted despite failure")
	}
	if !strings.Contains(s.errMsg, "card declined") {
		t.Errorf("errMsg = %q, want the decline reason", s.errMsg)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "card declined") {
		t.Error("view missing the error message")
	}
}

func TestKeysLockedWhilePurchasing(t *testing.T) {
	p := &purchase.MockPurchaser{}
	s := New(p)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a purchase command")
	}

	// A second enter mid-purchase must not trigger another buy.
	_, second := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if second != nil {
		t.Error("keypress while purchasing produced a command")
	}

	s.Update(cmd())
	if len(p.Granted) != 1 {
		t.Errorf("purchaser granted %d entitlements, want 1", len(p.Granted))
	}
}

func TestEscDeclines(t *testing.T) {
	s := New(&purchase.MockPurchaser{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a navigate command")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if nav.To != flow.ScreenDashboard {
		t.Errorf("navigate to %v, want dashboard", nav.To)
	}
}

func TestDismissButtonDeclines(t *testing.T) {
	s := New(&purchase.MockPurchaser{})

	// Tab moves focus to "Not now"; enter then navigates back instead of
	// buying.
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigate command")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if nav.To != flow.ScreenDashboard {
		t.Errorf("navigate to %v, want dashboard", nav.To)
	}
	if s.entitlement != nil {
		t.Error("dismissing must not grant an entitlement")
	}
}

func TestActionButtonsRender(t *testing.T) {
	s := New(&purchase.MockPurchaser{})

	view := s.View(80, 24)
	if !strings.Contains(view, "Subscribe") {
		t.Error("view missing subscribe button")
	}
	if !strings.Contains(view, "Not now") {
		t.Error("view missing dismiss button")
	}

	if !s.subscribe.Active || s.dismiss.Active {
		t.Error("subscribe should start focused")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.subscribe.Active || !s.dismiss.Active {
		t.Error("tab should move focus to the dismiss button")
	}
}

func TestNilPurchaser(t *testing.T) {
	s := New(nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command without a purchaser")
	}
	if s.errMsg == "" {
		t.Error("expected an error message without a purchaser")
	}
}
