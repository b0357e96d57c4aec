package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
)

func newTestWelcome(t *testing.T) (*WelcomeScreen, *flow.Store) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	store := flow.NewStore(cat)
	return New(store), store
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome(t)

	// Initially at phase 0 — no banner visible
	view := w.View(80, 24)
	if strings.Contains(view, "money smarts") {
		t.Error("tagline should not be visible at start")
	}

	// After 5 ticks (500ms) — phase 1 complete, sparkles start
	sendTicks(w, 5)
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", w.elapsed)
	}

	// After 15 ticks (1500ms) — banner + tagline visible
	sendTicks(w, 10)
	view = w.View(80, 24)
	if !strings.Contains(view, "money smarts") {
		t.Error("tagline should be visible after phase 2")
	}

	// The "press any key" hint only appears once the animation finishes
	if strings.Contains(view, "press any key") {
		t.Error("hint should not be visible before the animation ends")
	}
	sendTicks(w, 15)
	view = w.View(80, 24)
	if !strings.Contains(view, "press any key") {
		t.Error("hint should be visible after the animation ends")
	}
}

func TestKeypressDuringAnimationSkipsToEnd(t *testing.T) {
	w, store := newTestWelcome(t)

	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("keypress mid-animation should not start the quiz")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected animation skipped to %v, got %v", totalDur, w.elapsed)
	}
	if store.State().Current != flow.ScreenWelcome {
		t.Errorf("store should still be on welcome, got %v", store.State().Current)
	}
}

func TestKeypressAfterAnimationStartsQuiz(t *testing.T) {
	w, store := newTestWelcome(t)

	sendTicks(w, 30)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command from keypress after animation")
	}
	if _, ok := cmd().(router.SyncMsg); !ok {
		t.Fatalf("expected SyncMsg, got %T", cmd())
	}
	if store.State().Current != flow.ScreenQuiz {
		t.Errorf("store current = %v, want quiz", store.State().Current)
	}
}

func TestNoAutoStart(t *testing.T) {
	w, store := newTestWelcome(t)

	// Ticks keep going (for sparkles) but the quiz only starts on a keypress.
	sendTicks(w, 45)
	if store.State().Current != flow.ScreenWelcome {
		t.Errorf("store moved to %v without a keypress", store.State().Current)
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestStartOnlyOnce(t *testing.T) {
	w, _ := newTestWelcome(t)

	sendTicks(w, 30)
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome(t)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
