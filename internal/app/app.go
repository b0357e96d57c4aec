// Package app assembles the journey: flow store, screen router, and the
// header/footer frame around whichever screen is showing.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/coach"
	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/purchase"
	"github.com/sproutfi/sprout/internal/router"
	"github.com/sproutfi/sprout/internal/screen"
	"github.com/sproutfi/sprout/internal/screens/challengedetail"
	"github.com/sproutfi/sprout/internal/screens/challengepath"
	"github.com/sproutfi/sprout/internal/screens/dashboard"
	"github.com/sproutfi/sprout/internal/screens/leaderboard"
	"github.com/sproutfi/sprout/internal/screens/paywall"
	"github.com/sproutfi/sprout/internal/screens/quiz"
	"github.com/sproutfi/sprout/internal/screens/reveal"
	"github.com/sproutfi/sprout/internal/screens/welcome"
	"github.com/sproutfi/sprout/internal/store"
	"github.com/sproutfi/sprout/internal/ui/layout"
)

// Options carries the app's injected capabilities. EventRepo, Purchaser,
// and Coach may all be nil; the journey runs without them.
type Options struct {
	Catalog   *catalog.Catalog
	EventRepo store.EventRepo
	Purchaser purchase.Purchaser
	Coach     *coach.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	flowStore *flow.Store
	router    *router.Router
	sessionID string
	width     int
	height    int
}

// newAppModel wires the flow store and the screen factory table.
func newAppModel(opts Options) AppModel {
	flowStore := flow.NewStore(opts.Catalog)
	sessionID := uuid.New().String()

	// The challenge the user opened from the path; shared between the
	// path and detail factories.
	var selected catalog.Challenge

	factories := map[flow.Screen]router.Factory{
		flow.ScreenWelcome: func() screen.Screen {
			return welcome.New(flowStore)
		},
		flow.ScreenQuiz: func() screen.Screen {
			return quiz.New(flowStore, opts.EventRepo, sessionID)
		},
		flow.ScreenPersonaReveal: func() screen.Screen {
			return reveal.New(flowStore)
		},
		flow.ScreenDashboard: func() screen.Screen {
			return dashboard.New(flowStore)
		},
		flow.ScreenChallengePath: func() screen.Screen {
			return challengepath.New(flowStore, func(c catalog.Challenge) tea.Cmd {
				selected = c
				return func() tea.Msg {
					return router.NavigateMsg{To: flow.ScreenChallengeDetail}
				}
			})
		},
		flow.ScreenChallengeDetail: func() screen.Screen {
			return challengedetail.New(flowStore, opts.EventRepo, opts.Coach, sessionID, selected)
		},
		flow.ScreenPaywall: func() screen.Screen {
			return paywall.New(opts.Purchaser)
		},
		flow.ScreenLeaderboard: func() screen.Screen {
			return leaderboard.New(flowStore)
		},
	}

	return AppModel{
		flowStore: flowStore,
		router:    router.New(flowStore, factories),
		sessionID: sessionID,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	// The welcome splash renders frameless.
	if m.router.Current() == flow.ScreenWelcome {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	user := m.flowStore.State().User
	header := layout.RenderHeader(title, layout.HeaderStats{
		XP:     user.XP,
		Coins:  user.Coins,
		Streak: user.ChallengeStreak,
	}, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and journals the session around it.
func Run(opts Options) error {
	model := newAppModel(opts)
	startedAt := time.Now()

	if opts.EventRepo != nil {
		_ = opts.EventRepo.AppendSession(context.Background(), store.SessionEventData{
			SessionID: model.sessionID,
			Action:    "start",
		})
	}

	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}

	if opts.EventRepo != nil {
		if m, ok := final.(AppModel); ok {
			user := m.flowStore.State().User
			persona := ""
			if user.Persona != nil {
				persona = user.Persona.Name
			}
			_ = opts.EventRepo.AppendSession(context.Background(), store.SessionEventData{
				SessionID:           m.sessionID,
				Action:              "end",
				Persona:             persona,
				XP:                  user.XP,
				Coins:               user.Coins,
				ChallengesCompleted: len(user.CompletedChallenges),
				DurationSecs:        int(time.Since(startedAt).Seconds()),
			})
		}
	}
	return nil
}
