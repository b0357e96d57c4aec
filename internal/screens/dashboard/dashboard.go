// Package dashboard is the session hub: progress stats plus the menu into
// the challenge path, leaderboard, and premium paywall.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/progress"
	"github.com/sproutfi/sprout/internal/router"
	"github.com/sproutfi/sprout/internal/screen"
	"github.com/sproutfi/sprout/internal/ui/components"
	"github.com/sproutfi/sprout/internal/ui/theme"
)

// DashboardScreen shows the user's progress and the main menu.
type DashboardScreen struct {
	flowStore *flow.Store
	menu      components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a DashboardScreen over the journey store.
func New(flowStore *flow.Store) *DashboardScreen {
	navigate := func(to flow.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.NavigateMsg{To: to}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "CHALLENGE PATH", Action: navigate(flow.ScreenChallengePath)},
		{Label: "LEADERBOARD", Action: navigate(flow.ScreenLeaderboard)},
		{Label: "GO PREMIUM", Action: navigate(flow.ScreenPaywall)},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &DashboardScreen{
		flowStore: flowStore,
		menu:      components.NewMenu(items),
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DashboardScreen) View(width, height int) string {
	user := s.flowStore.State().User

	var b strings.Builder

	if user.Persona != nil {
		chip := lipgloss.NewStyle().
			Foreground(theme.PersonaColor(user.Persona.Theme)).
			Bold(true).
			Render(fmt.Sprintf("%s %s", user.Persona.Emoji, user.Persona.Name))
		b.WriteString(chip)
		b.WriteString("\n\n")
	}

	level := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Level %d", user.Level))
	b.WriteString(level)
	b.WriteString("\n")

	barWidth := min(width-12, 40)
	bar := components.NewProgressBar("", progress.LevelProgress(user.XP), true, barWidth)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	stats := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("✦ %d XP", user.XP)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("◉ %d coins", user.Coins)),
		lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("♦ %d streak", user.ChallengeStreak)),
	}
	b.WriteString(strings.Join(stats, "    "))
	b.WriteString("\n")

	unique := make(map[string]bool, len(user.CompletedChallenges))
	for _, c := range user.CompletedChallenges {
		unique[c.ID] = true
	}
	done := len(unique)
	total := len(s.flowStore.Catalog().Challenges)
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d challenges completed", done, total)))
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
