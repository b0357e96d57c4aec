// Package challengepath lists the challenges as a vertical path.
package challengepath

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/router"
	"github.com/sproutfi/sprout/internal/screen"
	"github.com/sproutfi/sprout/internal/ui/layout"
	"github.com/sproutfi/sprout/internal/ui/theme"
)

// PathScreen is a scrollable list of challenges. Enter opens the
// highlighted challenge's detail screen.
type PathScreen struct {
	flowStore    *flow.Store
	onOpen       func(catalog.Challenge) tea.Cmd
	selected     int
	scrollOffset int
}

var _ screen.Screen = (*PathScreen)(nil)
var _ screen.KeyHintProvider = (*PathScreen)(nil)

// New creates a PathScreen. onOpen is invoked with the chosen challenge
// and should navigate to its detail screen.
func New(flowStore *flow.Store, onOpen func(catalog.Challenge) tea.Cmd) *PathScreen {
	return &PathScreen{
		flowStore: flowStore,
		onOpen:    onOpen,
	}
}

func (s *PathScreen) Title() string {
	return "Challenge Path"
}

func (s *PathScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Dashboard"},
	}
}

func (s *PathScreen) Init() tea.Cmd {
	return nil
}

func (s *PathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	challenges := s.flowStore.Catalog().Challenges

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg {
			return router.NavigateMsg{To: flow.ScreenDashboard}
		}
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			if s.selected < s.scrollOffset {
				s.scrollOffset = s.selected
			}
		}
	case "down", "j":
		if s.selected < len(challenges)-1 {
			s.selected++
		}
	case "enter":
		if s.onOpen != nil && s.selected < len(challenges) {
			return s, s.onOpen(challenges[s.selected])
		}
	}
	return s, nil
}

func (s *PathScreen) View(width, height int) string {
	user := s.flowStore.State().User
	challenges := s.flowStore.Catalog().Challenges

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("\nYour path to money smarts"))
	b.WriteString("\n\n")

	// Keep the highlighted row inside the visible window.
	maxVisible := height - 6
	if maxVisible < 3 {
		maxVisible = 3
	}
	if s.selected >= s.scrollOffset+maxVisible {
		s.scrollOffset = s.selected - maxVisible + 1
	}

	start := s.scrollOffset
	end := start + maxVisible
	if end > len(challenges) {
		end = len(challenges)
	}

	for i := start; i < end; i++ {
		c := challenges[i]
		completed := user.HasCompleted(c.ID)

		marker := "○"
		if completed {
			marker = "●"
		}

		line := fmt.Sprintf("%s %s %-32s %s  ✦%d ◉%d",
			marker, c.Type.Icon(), c.Title, c.Duration, c.XPReward, c.CoinReward)

		var style lipgloss.Style
		switch {
		case i == s.selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			line = "▸ " + line
		case completed:
			style = lipgloss.NewStyle().Foreground(theme.Success)
			line = "  " + line
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
			line = "  " + line
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(challenges) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(challenges)-end)))
	}

	return b.String()
}
