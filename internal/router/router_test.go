package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func newTestRouter(t *testing.T) (*Router, *flow.Store, map[flow.Screen]*stubScreen) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	store := flow.NewStore(cat)

	built := make(map[flow.Screen]*stubScreen)
	factories := make(map[flow.Screen]Factory)
	for _, sc := range flow.AllScreens() {
		sc := sc
		factories[sc] = func() screen.Screen {
			s := &stubScreen{title: sc.String()}
			built[sc] = s
			return s
		}
	}

	return New(store, factories), store, built
}

func TestStartsOnStoreScreen(t *testing.T) {
	r, _, built := newTestRouter(t)

	if r.Current() != flow.ScreenWelcome {
		t.Errorf("Current = %v, want welcome", r.Current())
	}
	if r.Active().Title() != "welcome" {
		t.Errorf("active = %q, want welcome", r.Active().Title())
	}
	if built[flow.ScreenWelcome] == nil {
		t.Fatal("welcome factory never ran")
	}
}

func TestGoSwapsModelAndStore(t *testing.T) {
	r, store, built := newTestRouter(t)

	r.Go(flow.ScreenDashboard)

	if store.State().Current != flow.ScreenDashboard {
		t.Errorf("store current = %v, want dashboard", store.State().Current)
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("active = %q, want dashboard", r.Active().Title())
	}
	if s := built[flow.ScreenDashboard]; s == nil || !s.initRan {
		t.Error("dashboard screen not built or Init not run")
	}
}

func TestNavigateMsg(t *testing.T) {
	r, store, _ := newTestRouter(t)

	r.Update(NavigateMsg{To: flow.ScreenLeaderboard})

	if store.State().Current != flow.ScreenLeaderboard {
		t.Errorf("store current = %v, want leaderboard", store.State().Current)
	}
	if r.Active().Title() != "leaderboard" {
		t.Errorf("active = %q, want leaderboard", r.Active().Title())
	}
}

func TestSyncPicksUpStoreTransition(t *testing.T) {
	r, store, _ := newTestRouter(t)

	// The store moves on its own (a screen drove a transition).
	if err := store.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.Update(SyncMsg{})

	if r.Current() != flow.ScreenQuiz {
		t.Errorf("Current = %v, want quiz", r.Current())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
}

func TestSyncNoopWhenStoreAgrees(t *testing.T) {
	r, _, _ := newTestRouter(t)

	before := r.Active()
	r.Update(SyncMsg{})

	if r.Active() != before {
		t.Error("sync rebuilt the model without a screen change")
	}
}

func TestForwardsOtherMessages(t *testing.T) {
	r, _, built := newTestRouter(t)

	r.Update(tea.KeyPressMsg{Code: 'x'})

	welcome := built[flow.ScreenWelcome]
	if _, ok := welcome.lastMsg.(tea.KeyPressMsg); !ok {
		t.Errorf("active screen got %T, want KeyPressMsg", welcome.lastMsg)
	}
}

func TestFreshModelPerVisit(t *testing.T) {
	r, _, built := newTestRouter(t)

	r.Go(flow.ScreenDashboard)
	first := built[flow.ScreenDashboard]

	r.Go(flow.ScreenPaywall)
	r.Go(flow.ScreenDashboard)
	second := built[flow.ScreenDashboard]

	if first == second {
		t.Error("revisiting a screen should build a fresh model")
	}
}

func TestMissingFactoryFallsBack(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	store := flow.NewStore(cat)
	r := New(store, map[flow.Screen]Factory{})

	if r.Active() == nil {
		t.Fatal("expected a fallback screen, got nil")
	}
	if got := r.Active().Title(); got != "welcome" {
		t.Errorf("fallback title = %q, want welcome", got)
	}
}
