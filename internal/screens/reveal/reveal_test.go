package reveal

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
)

func newRevealStore(t *testing.T) *flow.Store {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	fs := flow.NewStore(cat)
	if err := fs.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	answers := []int{1, 2, 0, 3}
	for i, a := range answers {
		if _, err := fs.SelectAnswer(i, a); err != nil {
			t.Fatalf("SelectAnswer(%d, %d): %v", i, a, err)
		}
	}
	return fs
}

func TestViewShowsPersona(t *testing.T) {
	fs := newRevealStore(t)
	s := New(fs)

	view := s.View(80, 24)
	if !strings.Contains(view, "The Oracle") {
		t.Error("view missing persona name")
	}
	if !strings.Contains(view, "You are...") {
		t.Error("view missing reveal lead-in")
	}
}

func TestEnterNavigatesToDashboard(t *testing.T) {
	fs := newRevealStore(t)
	s := New(fs)

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
}

func TestOtherKeysIgnored(t *testing.T) {
	fs := newRevealStore(t)
	s := New(fs)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("non-enter key should not navigate")
	}
}

func TestViewWithoutPersona(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	s := New(flow.NewStore(cat))

	view := s.View(80, 24)
	if !strings.Contains(view, "No persona") {
		t.Error("expected the no-persona guard message")
	}
}
