package dashboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
)

func newDashboardStore(t *testing.T) *flow.Store {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	fs := flow.NewStore(cat)
	if err := fs.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < len(cat.Questions); i++ {
		if _, err := fs.SelectAnswer(i, 0); err != nil {
			t.Fatalf("SelectAnswer(%d): %v", i, err)
		}
	}
	fs.Navigate(flow.ScreenDashboard)
	return fs
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestViewShowsStats(t *testing.T) {
	fs := newDashboardStore(t)
	c := fs.Catalog().Challenges[0]
	fs.CompleteChallenge(c)
	fs.DismissReward()

	s := New(fs)
	view := s.View(80, 24)

	if !strings.Contains(view, "Level 1") {
		t.Error("view missing level")
	}
	if !strings.Contains(view, "50 XP") {
		t.Error("view missing XP")
	}
	if !strings.Contains(view, "10 coins") {
		t.Error("view missing coins")
	}
	if !strings.Contains(view, "1 of 8 challenges") {
		t.Error("view missing challenge count")
	}
	if !strings.Contains(view, "The Guardian") {
		t.Error("view missing persona chip")
	}
}

func TestRepeatCompletionCountsOnce(t *testing.T) {
	fs := newDashboardStore(t)
	c := fs.Catalog().Challenges[0]
	fs.CompleteChallenge(c)
	fs.CompleteChallenge(c)

	s := New(fs)
	view := s.View(80, 24)

	if !strings.Contains(view, "1 of 8 challenges") {
		t.Error("repeat completion should not raise the unique count")
	}
}

func TestMenuNavigatesToChallengePath(t *testing.T) {
	s := New(newDashboardStore(t))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if nav.To != flow.ScreenChallengePath {
		t.Errorf("navigate to %v, want challengePath", nav.To)
	}
}

func TestMenuNavigatesToPaywall(t *testing.T) {
	s := New(newDashboardStore(t))

	s.Update(key('j'))
	s.Update(key('j'))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if nav.To != flow.ScreenPaywall {
		t.Errorf("navigate to %v, want paywall", nav.To)
	}
}
