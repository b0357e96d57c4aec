package challengepath

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
)

func newPathStore(t *testing.T) *flow.Store {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	fs := flow.NewStore(cat)
	fs.Navigate(flow.ScreenChallengePath)
	return fs
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestEnterOpensHighlightedChallenge(t *testing.T) {
	fs := newPathStore(t)

	var opened catalog.Challenge
	s := New(fs, func(c catalog.Challenge) tea.Cmd {
		opened = c
		return nil
	})

	s.Update(key('j'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	want := fs.Catalog().Challenges[1]
	if opened.ID != want.ID {
		t.Errorf("opened %q, want %q", opened.ID, want.ID)
	}
}

func TestEscReturnsToDashboard(t *testing.T) {
	s := New(newPathStore(t), nil)

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

func TestSelectionClampedAtEnds(t *testing.T) {
	fs := newPathStore(t)
	s := New(fs, nil)

	s.Update(key('k'))
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}

	for i := 0; i < len(fs.Catalog().Challenges)+3; i++ {
		s.Update(key('j'))
	}
	if s.selected != len(fs.Catalog().Challenges)-1 {
		t.Errorf("selected = %d, want last", s.selected)
	}
}

func TestCompletedChallengeMarked(t *testing.T) {
	fs := newPathStore(t)
	c := fs.Catalog().Challenges[0]
	fs.CompleteChallenge(c)

	s := New(fs, nil)
	view := s.View(80, 24)

	if !strings.Contains(view, "●") {
		t.Error("completed challenge missing filled marker")
	}
	if !strings.Contains(view, c.Title) {
		t.Error("view missing challenge title")
	}
}
