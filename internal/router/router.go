// Package router dispatches between screens with a flat table keyed by
// flow.Screen. The flow store is the single source of truth for which
// screen is showing; the router mirrors it, swapping screen models when
// the store's current screen changes.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sproutfi/sprout/internal/flow"
	"github.com/sproutfi/sprout/internal/screen"
	"github.com/sproutfi/sprout/internal/screens/placeholder"
)

// NavigateMsg requests an unconditional jump to the target screen.
type NavigateMsg struct {
	To flow.Screen
}

// SyncMsg tells the router to re-read the store's current screen. Screens
// emit it after driving a store transition themselves (starting the quiz,
// answering the final question, dismissing a reward).
type SyncMsg struct{}

// Factory builds the screen model for one flow.Screen. Factories run each
// time the journey lands on the screen, so models always start fresh.
type Factory func() screen.Screen

// Router maps flow screens to their models.
type Router struct {
	store     *flow.Store
	factories map[flow.Screen]Factory
	current   flow.Screen
	active    screen.Screen
}

// New creates a Router over the given store and factory table, building
// the model for whatever screen the store is on.
func New(store *flow.Store, factories map[flow.Screen]Factory) *Router {
	r := &Router{
		store:     store,
		factories: factories,
	}
	r.current = store.State().Current
	r.active = r.build(r.current)
	return r
}

// Init returns the active screen's initial command.
func (r *Router) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

// Active returns the screen model currently showing.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Current returns the flow screen currently showing.
func (r *Router) Current() flow.Screen {
	return r.current
}

// Go jumps to the target screen through the store and swaps the model.
func (r *Router) Go(target flow.Screen) tea.Cmd {
	r.store.Navigate(target)
	return r.sync()
}

// Update handles navigation messages itself and forwards everything else
// to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Go(msg.To)
	case SyncMsg:
		return r.sync()
	}

	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}

// sync rebuilds the active model when the store has moved to a different
// screen. A no-op when the store and router already agree.
func (r *Router) sync() tea.Cmd {
	target := r.store.State().Current
	if target == r.current && r.active != nil {
		return nil
	}
	r.current = target
	r.active = r.build(target)
	return r.active.Init()
}

func (r *Router) build(target flow.Screen) screen.Screen {
	if f, ok := r.factories[target]; ok {
		return f()
	}
	return placeholder.New(target.String())
}
