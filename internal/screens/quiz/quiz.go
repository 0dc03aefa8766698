package quiz

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizterm/internal/question"
	qz "github.com/abhisek/quizterm/internal/quiz"
	"github.com/abhisek/quizterm/internal/screen"
	"github.com/abhisek/quizterm/internal/ui/layout"
)

// QuizScreen drives a quiz session from key presses. Rendering and cursor
// position live here; every state change goes through the session.
type QuizScreen struct {
	source  question.Source
	session *qz.Session
	keys    keyMap
	log     *zap.Logger
	cursor  int
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen with a fresh session. Questions are loaded from
// source when the screen is initialized.
func New(source question.Source, log *zap.Logger, opts ...qz.Option) *QuizScreen {
	if log == nil {
		log = zap.NewNop()
	}
	opts = append(opts, qz.WithLogger(log))
	return &QuizScreen{
		source:  source,
		session: qz.New(opts...),
		keys:    defaultKeyMap(),
		log:     log.Named("quiz-screen"),
	}
}

// Session exposes the underlying session for read-only inspection.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.loadQuestions()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	if s.session.Phase() == qz.PhaseLoading {
		return "Loading..."
	}
	return fmt.Sprintf("Question %d of %d", s.session.CurrentIndex()+1, s.session.Len())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Phase() != qz.PhaseInProgress {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		hint(s.keys.Up),
		hint(s.keys.Select),
		hint(s.keys.Prev),
		hint(s.keys.Next),
		hint(s.keys.Submit),
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return s.handleLoaded(msg)

	case cooldownDoneMsg:
		// Nothing to change; the next View redraws the buttons.
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) loadQuestions() tea.Cmd {
	source := s.source
	return func() tea.Msg {
		if source == nil {
			return questionsLoadedMsg{Err: fmt.Errorf("no question source configured")}
		}
		qs, err := source.Load(context.Background())
		return questionsLoadedMsg{Questions: qs, Err: err}
	}
}

func (s *QuizScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.log.Error("load questions", zap.Error(msg.Err))
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if err := s.session.Initialize(msg.Questions); err != nil {
		s.log.Error("initialize session", zap.Error(err))
		s.errMsg = err.Error()
		return s, nil
	}
	s.syncCursor()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	q, ok := s.session.CurrentQuestion()
	if !ok || s.session.Phase() != qz.PhaseInProgress {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}

	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(q.Options)-1 {
			s.cursor++
		}

	case key.Matches(msg, s.keys.Select):
		s.session.SelectAnswer(s.cursor)

	case key.Matches(msg, s.keys.Digit):
		opt := int(msg.String()[0] - '1')
		if s.session.SelectAnswer(opt) {
			s.cursor = opt
		}

	case key.Matches(msg, s.keys.Next):
		if s.session.Advance() {
			s.syncCursor()
			return s, s.cooldownCmd()
		}

	case key.Matches(msg, s.keys.Prev):
		if s.session.Retreat() {
			s.syncCursor()
			return s, s.cooldownCmd()
		}

	case key.Matches(msg, s.keys.Submit):
		if res, ok := s.session.Submit(); ok {
			return s, func() tea.Msg { return screen.ShowResultsMsg{Result: res} }
		}
	}

	return s, nil
}

// syncCursor puts the cursor on the current question's selection, or on
// the first option when it is unanswered.
func (s *QuizScreen) syncCursor() {
	if sel := s.session.Selected(); sel != qz.Unanswered {
		s.cursor = sel
		return
	}
	s.cursor = 0
}

func (s *QuizScreen) cooldownCmd() tea.Cmd {
	d := s.session.Cooldown()
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return cooldownDoneMsg{} })
}
