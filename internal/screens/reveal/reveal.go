// Package reveal shows the persona assigned by the quiz.
package reveal

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
	"github.com/sproutfi/sprout/internal/screen"
	"github.com/sproutfi/sprout/internal/ui/layout"
	"github.com/sproutfi/sprout/internal/ui/theme"
)

// RevealScreen presents the assigned persona card and moves on to the
// dashboard.
type RevealScreen struct {
	flowStore *flow.Store
}

var _ screen.Screen = (*RevealScreen)(nil)
var _ screen.KeyHintProvider = (*RevealScreen)(nil)

// New creates a RevealScreen over the journey store.
func New(flowStore *flow.Store) *RevealScreen {
	return &RevealScreen{flowStore: flowStore}
}

func (s *RevealScreen) Title() string {
	return "Your Investor Type"
}

func (s *RevealScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *RevealScreen) Init() tea.Cmd {
	return nil
}

func (s *RevealScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" {
			return s, func() tea.Msg {
				return router.NavigateMsg{To: flow.ScreenDashboard}
			}
		}
	}
	return s, nil
}

func (s *RevealScreen) View(width, height int) string {
	p := s.flowStore.State().User.Persona
	if p == nil {
		// The reveal is only reachable after persona assignment; this is
		// a guard for direct navigation, not a real state.
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No persona assigned yet"))
	}

	accent := theme.PersonaColor(p.Theme)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("You are..."))
	b.WriteString("\n\n")

	name := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Render(fmt.Sprintf("%s  %s", p.Emoji, p.Name))
	b.WriteString(name)
	b.WriteString("\n\n")

	desc := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-12, 48)).
		Align(lipgloss.Center).
		Render(p.Description)
	b.WriteString(desc)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Typical starting range: ") +
		lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(p.InvestmentRange))
	b.WriteString("\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(b.String())

	hint := theme.Hint.Render("press enter to see your dashboard")

	content := card + "\n\n" + hint
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
