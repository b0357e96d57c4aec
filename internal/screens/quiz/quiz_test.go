package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
)

func newTestQuiz(t *testing.T) (*QuizScreen, *flow.Store) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	fs := flow.NewStore(cat)
	if err := fs.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return New(fs, nil, "test-session"), fs
}

func pressEnter(s *QuizScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func press(s *QuizScreen, key rune) {
	s.Update(tea.KeyPressMsg{Code: key, Text: string(key)})
}

// answer locks in the currently highlighted option and fires the advance
// timer immediately, skipping the presentational delay.
func answer(t *testing.T, s *QuizScreen) tea.Cmd {
	t.Helper()
	if cmd := pressEnter(s); cmd == nil {
		t.Fatal("expected a command from answering")
	}
	_, cmd := s.Update(advanceMsg{gen: s.gen})
	return cmd
}

func TestAnswerAdvances(t *testing.T) {
	s, fs := newTestQuiz(t)

	answer(t, s)

	if s.index != 1 {
		t.Errorf("index = %d, want 1", s.index)
	}
	if got := fs.State().QuizAnswers; len(got) != 1 || got[0] != 0 {
		t.Errorf("answers = %v, want [0]", got)
	}
}

func TestStaleAdvanceIgnored(t *testing.T) {
	s, _ := newTestQuiz(t)

	pressEnter(s)
	s.Update(advanceMsg{gen: s.gen - 1})

	if s.index != 0 {
		t.Errorf("stale advance moved index to %d", s.index)
	}
	if !s.pending {
		t.Error("stale advance cleared pending")
	}
}

func TestKeysLockedWhilePending(t *testing.T) {
	s, fs := newTestQuiz(t)

	pressEnter(s)
	press(s, 'j')
	pressEnter(s)

	if got := len(fs.State().QuizAnswers); got != 1 {
		t.Errorf("answers recorded while pending: %d", got)
	}
}

func TestBackNavigationOverwrites(t *testing.T) {
	s, fs := newTestQuiz(t)

	answer(t, s) // question 0, option 0

	press(s, 'h')
	if s.index != 0 {
		t.Fatalf("index = %d, want 0 after back", s.index)
	}
	if s.choices.Selected != 0 {
		t.Errorf("previous selection not pre-highlighted: %d", s.choices.Selected)
	}

	press(s, 'j')
	answer(t, s)

	if got := fs.State().QuizAnswers; got[0] != 1 {
		t.Errorf("answers = %v, want first answer overwritten to 1", got)
	}
	if got := len(fs.State().QuizAnswers); got != 1 {
		t.Errorf("overwrite grew the answer list to %d", got)
	}
}

func TestBackAtFirstQuestionNoop(t *testing.T) {
	s, _ := newTestQuiz(t)

	press(s, 'h')
	if s.index != 0 {
		t.Errorf("index = %d, want 0", s.index)
	}
}

func TestFinalAnswerAssignsPersonaAndSyncs(t *testing.T) {
	s, fs := newTestQuiz(t)

	total := len(fs.Catalog().Questions)
	var cmd tea.Cmd
	for i := 0; i < total; i++ {
		if i == total-1 {
			// Choose the fourth option on the final question.
			press(s, 'j')
			press(s, 'j')
			press(s, 'j')
		}
		cmd = answer(t, s)
	}

	if cmd == nil {
		t.Fatal("expected a sync command after the final answer")
	}
	if _, ok := cmd().(router.SyncMsg); !ok {
		t.Fatalf("expected SyncMsg, got %T", cmd())
	}

	st := fs.State()
	if st.Current != flow.ScreenPersonaReveal {
		t.Errorf("current = %v, want personaReveal", st.Current)
	}
	if st.User.Persona == nil {
		t.Fatal("persona not assigned")
	}
	if st.User.Persona.Name != "The Oracle" {
		t.Errorf("persona = %q, want The Oracle", st.User.Persona.Name)
	}
}

func TestViewShowsCounter(t *testing.T) {
	s, _ := newTestQuiz(t)

	view := s.View(80, 24)
	if !strings.Contains(view, "Question 1 of 4") {
		t.Error("view missing question counter")
	}
}
