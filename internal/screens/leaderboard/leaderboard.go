// Package leaderboard shows a demo leaderboard. The other rows are fixed
// sample data; only the "You" row is live.
package leaderboard

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
	"github.com/sproutfi/sprout/internal/screen"
	"github.com/sproutfi/sprout/internal/ui/layout"
	"github.com/sproutfi/sprout/internal/ui/theme"
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string
	Badge string
	XP    int
	You   bool
}

// sampleEntries is the fixed demo field the user ranks against.
var sampleEntries = []Entry{
	{Name: "Maya", Badge: "🦉", XP: 920},
	{Name: "Jordan", Badge: "🧭", XP: 640},
	{Name: "Sam", Badge: "🛡", XP: 410},
	{Name: "Priya", Badge: "🔧", XP: 260},
	{Name: "Alex", Badge: "🃏", XP: 120},
	{Name: "Kai", Badge: "🛡", XP: 40},
}

// LeaderboardScreen renders the ranking table.
type LeaderboardScreen struct {
	flowStore *flow.Store
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen over the journey store.
func New(flowStore *flow.Store) *LeaderboardScreen {
	return &LeaderboardScreen{flowStore: flowStore}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Dashboard"},
	}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return nil
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return s, func() tea.Msg {
				return router.NavigateMsg{To: flow.ScreenDashboard}
			}
		}
	}
	return s, nil
}

// Rankings returns the demo field plus the user, sorted by XP descending.
// Ties go to the user.
func (s *LeaderboardScreen) Rankings() []Entry {
	user := s.flowStore.State().User

	you := Entry{Name: "You", Badge: "🌱", XP: user.XP, You: true}
	if user.Persona != nil {
		you.Badge = user.Persona.Emoji
	}

	entries := make([]Entry, 0, len(sampleEntries)+1)
	entries = append(entries, sampleEntries...)
	entries = append(entries, you)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].XP != entries[j].XP {
			return entries[i].XP > entries[j].XP
		}
		return entries[i].You
	})
	return entries
}

func (s *LeaderboardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("This week's growers"))
	b.WriteString("\n\n")

	for i, e := range s.Rankings() {
		medal := fmt.Sprintf("%2d.", i+1)
		switch i {
		case 0:
			medal = " 🥇"
		case 1:
			medal = " 🥈"
		case 2:
			medal = " 🥉"
		}

		line := fmt.Sprintf("%s %s %-10s %5d XP", medal, e.Badge, e.Name, e.XP)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.You {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			line += "  ◂ you"
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("sample field — complete challenges to climb"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
