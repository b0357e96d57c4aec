package challengedetail

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/coach"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/llm"
	"github.com/sproutfi/sprout/internal/router"
)

func newDetailStore(t *testing.T) (*flow.Store, catalog.Challenge) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	fs := flow.NewStore(cat)
	fs.Navigate(flow.ScreenChallengeDetail)
	return fs, cat.Challenges[0]
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestCompleteAppliesReward(t *testing.T) {
	fs, c := newDetailStore(t)
	s := New(fs, nil, nil, "test-session", c)

	s.Update(enter())

	st := fs.State()
	if !st.ShowReward {
		t.Error("overlay not raised")
	}
	if st.User.XP != c.XPReward {
		t.Errorf("XP = %d, want %d", st.User.XP, c.XPReward)
	}
	if st.User.Coins != c.CoinReward {
		t.Errorf("coins = %d, want %d", st.User.Coins, c.CoinReward)
	}
	if st.User.ChallengeStreak != 1 {
		t.Errorf("streak = %d, want 1", st.User.ChallengeStreak)
	}
}

func TestDismissLandsOnDashboard(t *testing.T) {
	fs, c := newDetailStore(t)
	s := New(fs, nil, nil, "test-session", c)

	s.Update(enter())
	_, cmd := s.Update(enter())

	if cmd == nil {
		t.Fatal("expected a sync command from dismissing")
	}
	if _, ok := cmd().(router.SyncMsg); !ok {
		t.Fatalf("expected SyncMsg, got %T", cmd())
	}

	st := fs.State()
	if st.ShowReward {
		t.Error("overlay still raised after dismiss")
	}
	if st.Current != flow.ScreenDashboard {
		t.Errorf("current = %v, want dashboard", st.Current)
	}
}

func TestRepeatCompletionPaysAgain(t *testing.T) {
	fs, c := newDetailStore(t)

	s := New(fs, nil, nil, "test-session", c)
	s.Update(enter())
	s.Update(enter())

	fs.Navigate(flow.ScreenChallengeDetail)
	s = New(fs, nil, nil, "test-session", c)
	view := s.View(80, 24)
	if !strings.Contains(view, "do it again") {
		t.Error("repeat visit missing the completed note")
	}

	s.Update(enter())

	st := fs.State()
	if st.User.XP != 2*c.XPReward {
		t.Errorf("XP = %d, want %d", st.User.XP, 2*c.XPReward)
	}
	if st.User.Coins != 2*c.CoinReward {
		t.Errorf("coins = %d, want %d", st.User.Coins, 2*c.CoinReward)
	}
}

func TestEscBeforeCompletionGoesBack(t *testing.T) {
	fs, c := newDetailStore(t)
	s := New(fs, nil, nil, "test-session", c)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a navigate command")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if nav.To != flow.ScreenChallengePath {
		t.Errorf("navigate to %v, want challengePath", nav.To)
	}
}

func TestCoachTipShown(t *testing.T) {
	fs, c := newDetailStore(t)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"Start small","body":"Even tiny amounts compound."}`),
	})
	s := New(fs, nil, coach.NewService(mock), "test-session", c)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected an init command when the coach is wired")
	}
	s.Update(tipLoadedMsg{tip: &coach.Tip{Headline: "Start small", Body: "Even tiny amounts compound."}})

	view := s.View(80, 30)
	if !strings.Contains(view, "Start small") {
		t.Error("view missing coach tip headline")
	}
}

func TestNoCoachNoInitCommand(t *testing.T) {
	fs, c := newDetailStore(t)
	s := New(fs, nil, nil, "test-session", c)

	if cmd := s.Init(); cmd != nil {
		t.Error("expected no init command without a coach")
	}
}

func TestRewardOverlayView(t *testing.T) {
	fs, c := newDetailStore(t)
	s := New(fs, nil, nil, "test-session", c)

	s.Update(enter())
	view := s.View(80, 24)

	if !strings.Contains(view, "CHALLENGE COMPLETE") {
		t.Error("overlay missing banner")
	}
	if !strings.Contains(view, "+50 XP") {
		t.Error("overlay missing XP delta")
	}
	if !strings.Contains(view, "+10 coins") {
		t.Error("overlay missing coin delta")
	}
}
