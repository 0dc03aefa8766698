package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizterm/internal/question"
	"github.com/abhisek/quizterm/internal/quiz"
	"github.com/abhisek/quizterm/internal/router"
	"github.com/abhisek/quizterm/internal/screen"
	quizscreen "github.com/abhisek/quizterm/internal/screens/quiz"
	resultsscreen "github.com/abhisek/quizterm/internal/screens/results"
	"github.com/abhisek/quizterm/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Source   question.Source
	Cooldown time.Duration
	Logger   *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel showing a fresh quiz.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := AppModel{opts: opts, log: log}
	m.router = router.New(m.newQuiz())
	return m
}

func (m AppModel) newQuiz() *quizscreen.QuizScreen {
	return quizscreen.New(m.opts.Source, m.log, quiz.WithCooldown(m.opts.Cooldown))
}

// replaceWith asks the router to make s the active screen.
func replaceWith(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.ShowResultsMsg:
		res := msg.Result
		m.log.Debug("showing results", zap.String("session_id", res.SessionID))
		return m, replaceWith(resultsscreen.New(&res, m.log))

	case screen.RestartMsg:
		m.log.Debug("starting new quiz", zap.String("previous_session", msg.PreviousSessionID))
		return m, replaceWith(m.newQuiz())
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

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	var title, status string
	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if active := m.router.Active(); active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
