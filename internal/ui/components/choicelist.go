package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sproutfi/sprout/internal/ui/theme"
)

// ChoiceList is a single-select option list. Unlike a graded question
// there is no right answer — Enter just locks in whichever option is
// highlighted.
type ChoiceList struct {
	Prompt    string
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int
}

// NewChoiceList creates a choice list. A non-negative initial index
// pre-highlights a previously chosen option.
func NewChoiceList(prompt string, options []string, initial int) ChoiceList {
	selected := 0
	if initial >= 0 && initial < len(options) {
		selected = initial
	}
	return ChoiceList{
		Prompt:   prompt,
		Options:  options,
		Selected: selected,
		Chosen:   -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.Chosen = c.Selected
	}

	return c, nil
}

// Reset clears the submission so the list can be answered again.
func (c ChoiceList) Reset() ChoiceList {
	c.Submitted = false
	c.Chosen = -1
	return c
}

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// View renders the choice list.
func (c ChoiceList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		label := "?"
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case c.Submitted && i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
