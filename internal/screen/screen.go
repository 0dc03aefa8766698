package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizterm/internal/quiz"
	"github.com/abhisek/quizterm/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for a short status shown on the
// right of the header.
type StatusProvider interface {
	Status() string
}

// ShowResultsMsg hands a submitted result to the shell, which replaces the
// quiz screen with the results screen.
type ShowResultsMsg struct {
	Result quiz.Result
}

// RestartMsg asks the shell to start a fresh quiz.
type RestartMsg struct {
	PreviousSessionID string
}
