package leaderboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
)

func newLeaderboardStore(t *testing.T) *flow.Store {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	fs := flow.NewStore(cat)
	fs.Navigate(flow.ScreenLeaderboard)
	return fs
}

func TestUserRankedByXP(t *testing.T) {
	fs := newLeaderboardStore(t)
	s := New(fs)

	rankings := s.Rankings()
	if len(rankings) != len(sampleEntries)+1 {
		t.Fatalf("rankings has %d rows, want %d", len(rankings), len(sampleEntries)+1)
	}

	// Zero XP ties with nobody below Kai's 40 — the user lands last.
	last := rankings[len(rankings)-1]
	if !last.You {
		t.Errorf("expected the user last at 0 XP, got %q", last.Name)
	}

	// Completing challenges moves the user up.
	for _, c := range fs.Catalog().Challenges {
		fs.CompleteChallenge(c)
		fs.CompleteChallenge(c)
	}
	rankings = s.Rankings()
	var userRank int
	for i, e := range rankings {
		if e.You {
			userRank = i
		}
	}
	if userRank == len(rankings)-1 {
		t.Error("user did not climb after earning XP")
	}
}

func TestTiesFavorUser(t *testing.T) {
	fs := newLeaderboardStore(t)
	s := New(fs)

	// Land the user exactly on Sam's 410 XP.
	fs.CompleteChallenge(catalog.Challenge{ID: "tie", XPReward: 410})

	rankings := s.Rankings()
	for i, e := range rankings {
		if e.You {
			if i == 0 || rankings[i-1].XP == e.XP {
				t.Error("tie should rank the user above the sample entry")
			}
			if i+1 < len(rankings) && rankings[i+1].XP != e.XP {
				t.Error("expected the tied sample entry directly below the user")
			}
			return
		}
	}
	t.Fatal("user row missing")
}

func TestViewMarksUserRow(t *testing.T) {
	s := New(newLeaderboardStore(t))

	view := s.View(80, 24)
	if !strings.Contains(view, "◂ you") {
		t.Error("view missing user marker")
	}
	if !strings.Contains(view, "Maya") {
		t.Error("view missing sample entries")
	}
}

func TestEscReturnsToDashboard(t *testing.T) {
	s := New(newLeaderboardStore(t))

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
