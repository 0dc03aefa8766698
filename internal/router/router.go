package router

import (
	"github.com/abhisek/quizterm/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// ReplaceScreenMsg requests the router to swap the active screen, so the
// replaced screen cannot be returned to.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the active screen. The quiz flow only moves forward, so there
// is no history to return to.
type Router struct {
	active screen.Screen
}

// New creates a new Router with the given initial screen.
// The caller is responsible for running the initial screen's Init().
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Replace swaps the active screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.active = s
	return s.Init()
}

// Active returns the active screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ReplaceScreenMsg); ok {
		return r.Replace(msg.Screen)
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
