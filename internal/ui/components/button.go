package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/ui/theme"
)

// Button is a focusable action button. Only an active button reacts to
// enter; screens toggle Active to move focus between actions.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a button that runs onPress when activated.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update fires OnPress when an active button receives enter.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button, marking the active one with a focus arrow.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render(" ▸ " + b.Label + " ")
	}
	return theme.ButtonInactive.Render("   " + b.Label + " ")
}
