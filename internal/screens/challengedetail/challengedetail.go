// Package challengedetail shows a single challenge, an optional coach tip,
// and the completion flow with its reward overlay.
package challengedetail

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/coach"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
	"github.com/sproutfi/sprout/internal/screen"
	"github.com/sproutfi/sprout/internal/store"
	"github.com/sproutfi/sprout/internal/ui/layout"
	"github.com/sproutfi/sprout/internal/ui/theme"
)

type tipLoadedMsg struct {
	tip *coach.Tip
	err error
}

type completionLoggedMsg struct {
	err error
}

// DetailScreen presents one challenge. Completing it applies the reward
// and raises the overlay; dismissing the overlay lands on the dashboard.
type DetailScreen struct {
	flowStore *flow.Store
	eventRepo store.EventRepo
	coachSvc  *coach.Service
	sessionID string
	challenge catalog.Challenge

	spin       spinner.Model
	tip        *coach.Tip
	tipPending bool
	completed  bool
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a DetailScreen for the given challenge. Both eventRepo and
// coachSvc may be nil.
func New(flowStore *flow.Store, eventRepo store.EventRepo, coachSvc *coach.Service, sessionID string, c catalog.Challenge) *DetailScreen {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Secondary)
	return &DetailScreen{
		flowStore: flowStore,
		eventRepo: eventRepo,
		coachSvc:  coachSvc,
		sessionID: sessionID,
		challenge: c,
		spin:      sp,
	}
}

func (s *DetailScreen) Title() string {
	return "Challenge"
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	if s.flowStore.State().ShowReward {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Collect"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Init() tea.Cmd {
	if s.coachSvc == nil {
		return nil
	}
	s.tipPending = true
	svc, c := s.coachSvc, s.challenge
	persona := s.flowStore.State().User.Persona
	return tea.Batch(
		s.spin.Tick,
		func() tea.Msg {
			tip, err := svc.TipForChallenge(context.Background(), c, persona)
			return tipLoadedMsg{tip: tip, err: err}
		},
	)
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tipLoadedMsg:
		s.tipPending = false
		if msg.err == nil {
			s.tip = msg.tip
		}
		// A failed tip just means no tip; the challenge flow is unaffected.
		return s, nil

	case spinner.TickMsg:
		if !s.tipPending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case completionLoggedMsg:
		return s, nil

	case tea.KeyMsg:
		if s.flowStore.State().ShowReward {
			switch msg.String() {
			case "enter", "esc", " ":
				return s, s.dismiss()
			}
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg {
				return router.NavigateMsg{To: flow.ScreenChallengePath}
			}
		case "enter":
			return s, s.complete()
		}
	}
	return s, nil
}

// complete applies the reward through the store and journals the event.
// Completing an already-completed challenge pays out again.
func (s *DetailScreen) complete() tea.Cmd {
	user := s.flowStore.State().User
	repeat := user.HasCompleted(s.challenge.ID)
	s.flowStore.CompleteChallenge(s.challenge)
	s.completed = true

	if s.eventRepo == nil {
		return nil
	}
	data := store.ChallengeEventData{
		SessionID:      s.sessionID,
		ChallengeID:    s.challenge.ID,
		ChallengeTitle: s.challenge.Title,
		ChallengeType:  string(s.challenge.Type),
		XPAwarded:      s.challenge.XPReward,
		CoinsAwarded:   s.challenge.CoinReward,
		Repeat:         repeat,
	}
	repo := s.eventRepo
	return func() tea.Msg {
		return completionLoggedMsg{err: repo.AppendChallenge(context.Background(), data)}
	}
}

func (s *DetailScreen) dismiss() tea.Cmd {
	s.flowStore.DismissReward()
	return func() tea.Msg {
		return router.SyncMsg{}
	}
}

func (s *DetailScreen) View(width, height int) string {
	if s.flowStore.State().ShowReward {
		return s.rewardView(width, height)
	}

	c := s.challenge
	var b strings.Builder

	kind := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(fmt.Sprintf("%s %s · %s", c.Type.Icon(), c.Type.DisplayName(), c.Duration))
	b.WriteString(kind)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(c.Title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-16, 52)).
		Render(c.Description))
	b.WriteString("\n\n")

	reward := lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("✦ %d XP", c.XPReward)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("◉ %d coins", c.CoinReward))
	b.WriteString(reward)
	b.WriteString("\n")

	user := s.flowStore.State().User
	if user.HasCompleted(c.ID) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Success).
			Render("✓ Completed — do it again for another reward"))
		b.WriteString("\n")
	}

	if s.tipPending {
		b.WriteString("\n")
		b.WriteString(s.spin.View() + theme.Hint.Render(" your coach is thinking..."))
		b.WriteString("\n")
	} else if s.tip != nil {
		b.WriteString("\n")
		tipBody := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(min(width-20, 48)).
			Render(s.tip.Body)
		tipCard := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 2).
			Render(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("☘ "+s.tip.Headline) +
				"\n" + tipBody)
		b.WriteString(tipCard)
		b.WriteString("\n")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(b.String())

	hint := theme.Hint.Render("press enter to complete this challenge")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card+"\n\n"+hint)
}

func (s *DetailScreen) rewardView(width, height int) string {
	c := s.challenge
	user := s.flowStore.State().User

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("★  CHALLENGE COMPLETE  ★"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render(fmt.Sprintf("+%d XP", c.XPReward)))
	b.WriteString("   ")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("+%d coins", c.CoinReward)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Total: %d XP · %d coins · level %d", user.XP, user.Coins, user.Level)))
	b.WriteString("\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(b.String())

	hint := theme.Hint.Render("press enter to collect")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card+"\n\n"+hint)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
