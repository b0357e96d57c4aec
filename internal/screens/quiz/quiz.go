// Package quiz drives the four-question intro quiz. Answering the final
// question assigns the persona and hands off to the reveal screen.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
	"github.com/sproutfi/sprout/internal/screen"
	"github.com/sproutfi/sprout/internal/store"
	"github.com/sproutfi/sprout/internal/ui/components"
	"github.com/sproutfi/sprout/internal/ui/layout"
	"github.com/sproutfi/sprout/internal/ui/theme"
)

// advanceDelay is the breathing room between locking in an answer and
// showing the next question. Purely presentational; the store transition
// has already happened when the timer starts.
const advanceDelay = 600 * time.Millisecond

type advanceMsg struct {
	gen int
}

type answerLoggedMsg struct {
	err error
}

// QuizScreen presents one question at a time with back-navigation over
// already-answered questions.
type QuizScreen struct {
	flowStore *flow.Store
	eventRepo store.EventRepo
	sessionID string

	index   int // question being displayed
	choices components.ChoiceList
	pending bool // answer locked in, waiting on the advance timer
	done    bool // final answer recorded, persona assigned
	gen     int  // invalidates stale advance timers
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. eventRepo may be nil; answers are then not
// journaled.
func New(flowStore *flow.Store, eventRepo store.EventRepo, sessionID string) *QuizScreen {
	s := &QuizScreen{
		flowStore: flowStore,
		eventRepo: eventRepo,
		sessionID: sessionID,
		index:     flowStore.State().QuestionIndex,
	}
	s.choices = s.buildChoices()
	return s
}

func (s *QuizScreen) Title() string {
	return "Find Your Investor Type"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
	}
	if s.index > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		return s, s.advance()

	case answerLoggedMsg:
		// Journaling is best-effort; a failed append never blocks the quiz.
		return s, nil

	case tea.KeyMsg:
		if s.pending {
			return s, nil
		}
		switch msg.String() {
		case "left", "h":
			if s.index > 0 {
				s.index--
				s.gen++
				s.choices = s.buildChoices()
			}
			return s, nil
		case "right", "l":
			if s.index < len(s.flowStore.State().QuizAnswers) && s.index < len(s.flowStore.Catalog().Questions)-1 {
				s.index++
				s.gen++
				s.choices = s.buildChoices()
			}
			return s, nil
		}
	}

	wasSubmitted := s.choices.Submitted
	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	if !wasSubmitted && s.choices.Submitted {
		return s, tea.Batch(cmd, s.submit(s.choices.Chosen))
	}
	return s, cmd
}

// submit records the answer in the store, journals it, and schedules the
// advance to the next question.
func (s *QuizScreen) submit(optionIndex int) tea.Cmd {
	wasAnswered := s.index < len(s.flowStore.State().QuizAnswers)

	done, err := s.flowStore.SelectAnswer(s.index, optionIndex)
	if err != nil {
		s.errMsg = err.Error()
		s.choices = s.choices.Reset()
		return nil
	}
	s.errMsg = ""
	s.pending = true
	s.done = done
	s.gen++
	gen := s.gen

	cmds := []tea.Cmd{
		tea.Tick(advanceDelay, func(time.Time) tea.Msg {
			return advanceMsg{gen: gen}
		}),
	}
	if s.eventRepo != nil {
		data := store.QuizAnswerEventData{
			SessionID:     s.sessionID,
			QuestionIndex: s.index,
			OptionIndex:   optionIndex,
			Overwrite:     wasAnswered,
		}
		repo := s.eventRepo
		cmds = append(cmds, func() tea.Msg {
			return answerLoggedMsg{err: repo.AppendQuizAnswer(context.Background(), data)}
		})
	}
	return tea.Batch(cmds...)
}

// advance moves to the next question, or hands off to the reveal once the
// final answer is in.
func (s *QuizScreen) advance() tea.Cmd {
	s.pending = false
	if s.done {
		return func() tea.Msg {
			return router.SyncMsg{}
		}
	}
	s.index = s.flowStore.State().QuestionIndex
	s.choices = s.buildChoices()
	return nil
}

func (s *QuizScreen) buildChoices() components.ChoiceList {
	st := s.flowStore.State()
	q := s.flowStore.Catalog().Questions[s.index]
	initial := -1
	if s.index < len(st.QuizAnswers) {
		initial = st.QuizAnswers[s.index]
	}
	return components.NewChoiceList(q.Question, q.Options, initial)
}

func (s *QuizScreen) View(width, height int) string {
	total := len(s.flowStore.Catalog().Questions)

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.index+1, total))
	b.WriteString(counter)
	b.WriteString("\n")

	barWidth := min(width-8, 48)
	bar := components.NewProgressBar("", float64(s.index)/float64(total), false, barWidth)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(s.choices.View())

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	if s.pending {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("✓ Got it!"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
