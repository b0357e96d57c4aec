// Package paywall sells the premium subscription through an injected
// Purchaser. The journey works the same whether or not the user buys.
package paywall

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/purchase"
	"github.com/sproutfi/sprout/internal/router"
	"github.com/sproutfi/sprout/internal/screen"
	"github.com/sproutfi/sprout/internal/ui/components"
	"github.com/sproutfi/sprout/internal/ui/layout"
	"github.com/sproutfi/sprout/internal/ui/theme"
)

var perks = []string{
	"Unlimited challenge retries",
	"Weekly coach deep-dives",
	"Exclusive persona insights",
	"Early access to new paths",
}

type purchaseDoneMsg struct {
	entitlement purchase.Entitlement
	err         error
}

// PaywallScreen offers the premium plans.
type PaywallScreen struct {
	purchaser purchase.Purchaser

	plans       []purchase.Plan
	selected    int
	subscribe   components.Button
	dismiss     components.Button
	focused     int
	purchasing  bool
	entitlement *purchase.Entitlement
	errMsg      string
}

var _ screen.Screen = (*PaywallScreen)(nil)
var _ screen.KeyHintProvider = (*PaywallScreen)(nil)

// New creates a PaywallScreen buying through the given purchaser.
func New(purchaser purchase.Purchaser) *PaywallScreen {
	s := &PaywallScreen{
		purchaser: purchaser,
		plans:     purchase.AllPlans(),
	}
	s.subscribe = components.NewButton("Subscribe", true, s.buy)
	s.dismiss = components.NewButton("Not now", false, backToDashboard)
	return s
}

func (s *PaywallScreen) Title() string {
	return "Sprout Premium"
}

func (s *PaywallScreen) KeyHints() []layout.KeyHint {
	if s.entitlement != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Dashboard"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Plan"},
		{Key: "Tab", Description: "Focus"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Not now"},
	}
}

func (s *PaywallScreen) Init() tea.Cmd {
	return nil
}

func (s *PaywallScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case purchaseDoneMsg:
		s.purchasing = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.errMsg = ""
		ent := msg.entitlement
		s.entitlement = &ent
		return s, nil

	case tea.KeyMsg:
		if s.purchasing {
			return s, nil
		}
		if s.entitlement != nil {
			switch msg.String() {
			case "enter", "esc":
				return s, backToDashboard()
			}
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, backToDashboard()
		case "left", "h":
			if s.selected > 0 {
				s.selected--
			}
		case "right", "l":
			if s.selected < len(s.plans)-1 {
				s.selected++
			}
		case "tab", "up", "down", "j", "k":
			s.toggleFocus()
		case "enter":
			var cmd tea.Cmd
			if s.focused == 0 {
				s.subscribe, cmd = s.subscribe.Update(msg)
			} else {
				s.dismiss, cmd = s.dismiss.Update(msg)
			}
			return s, cmd
		}
	}
	return s, nil
}

// toggleFocus moves focus between the subscribe and dismiss buttons.
func (s *PaywallScreen) toggleFocus() {
	s.focused = 1 - s.focused
	s.subscribe.Active = s.focused == 0
	s.dismiss.Active = s.focused == 1
}

func backToDashboard() tea.Cmd {
	return func() tea.Msg {
		return router.NavigateMsg{To: flow.ScreenDashboard}
	}
}

func (s *PaywallScreen) buy() tea.Cmd {
	if s.purchaser == nil {
		s.errMsg = "purchases are not available"
		return nil
	}
	s.purchasing = true
	plan := s.plans[s.selected]
	purchaser := s.purchaser
	return func() tea.Msg {
		ent, err := purchaser.Purchase(context.Background(), plan)
		return purchaseDoneMsg{entitlement: ent, err: err}
	}
}

func (s *PaywallScreen) View(width, height int) string {
	if s.entitlement != nil {
		return s.grantedView(width, height)
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("⟡ SPROUT PREMIUM ⟡"))
	b.WriteString("\n\n")

	for _, perk := range perks {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(perk))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var cards []string
	for i, plan := range s.plans {
		label := plan.DisplayName() + "\n" + plan.Price()
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 3).
			Align(lipgloss.Center)
		if i == s.selected {
			style = style.BorderForeground(theme.Primary).Bold(true)
		} else {
			style = style.BorderForeground(theme.Border).Foreground(theme.TextDim)
		}
		cards = append(cards, style.Render(label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cards[0], "   ", cards[1]))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, s.subscribe.View(), "  ", s.dismiss.View()))
	b.WriteString("\n")

	if s.purchasing {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("processing..."))
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *PaywallScreen) grantedView(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render("✓ Welcome to Premium!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%s plan · %s", s.entitlement.Plan.DisplayName(), s.entitlement.Plan.Price())))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("press enter to return to your dashboard"))

	card := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Success).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
