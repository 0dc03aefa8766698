package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizterm/internal/quiz"
	rs "github.com/abhisek/quizterm/internal/results"
	"github.com/abhisek/quizterm/internal/screen"
	"github.com/abhisek/quizterm/internal/ui/layout"
	"github.com/abhisek/quizterm/internal/ui/theme"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Restart key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("Enter", "Restart Quiz"),
		),
	}
}

// ResultsScreen shows the score and a card per question.
type ResultsScreen struct {
	review    *rs.Review
	keys      keyMap
	log       *zap.Logger
	offset    int
	maxOffset int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a submitted result. r may be nil, which
// shows the empty state.
func New(r *quiz.Result, log *zap.Logger) *ResultsScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResultsScreen{
		review: rs.NewReview(r),
		keys:   defaultKeyMap(),
		log:    log.Named("results-screen"),
	}
}

// Report returns the report being displayed.
func (s *ResultsScreen) Report() rs.Report {
	return s.review.Report()
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Status() string {
	return "Summary"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, 3)
	for _, b := range []key.Binding{s.keys.Up, s.keys.Restart} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Up):
		if s.offset > 0 {
			s.offset--
		}
	case key.Matches(kmsg, s.keys.Down):
		if s.offset < s.maxOffset {
			s.offset++
		}
	case key.Matches(kmsg, s.keys.Restart):
		sig := s.review.Restart()
		s.log.Info("restart requested", zap.String("previous_session", sig.PreviousSessionID))
		return s, func() tea.Msg {
			return screen.RestartMsg{PreviousSessionID: sig.PreviousSessionID}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	report := s.review.Report()
	if !report.Valid {
		s.maxOffset = 0
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo results to show. Start a new quiz."))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.ButtonEnabled.Render("Back to Quiz (Enter)")))
		return b.String()
	}

	var head strings.Builder
	head.WriteString("\n")
	head.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(report.Summary()))
	head.WriteString("\n\n")

	cardWidth := min(max(width-8, 30), 80)
	var body []string
	for _, o := range report.Outcomes {
		card := lipgloss.PlaceHorizontal(width, lipgloss.Center, renderCard(o, cardWidth))
		body = append(body, strings.Split(card, "\n")...)
	}

	footer := "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.ButtonEnabled.Render("Restart Quiz (Enter)"))

	visible := height - lipgloss.Height(head.String()) - lipgloss.Height(footer)
	if visible < 1 {
		visible = 1
	}
	s.maxOffset = max(len(body)-visible, 0)
	s.offset = min(s.offset, s.maxOffset)

	end := min(s.offset+visible, len(body))
	return head.String() + strings.Join(body[s.offset:end], "\n") + footer
}

func renderCard(o rs.Outcome, width int) string {
	verdict := theme.Incorrect.Render("✗ Incorrect")
	if o.Correct {
		verdict = theme.Correct.Render("✓ Correct")
	}

	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Q%d.", o.Position+1)))
	b.WriteString(" ")
	b.WriteString(verdict)
	b.WriteString("\n")
	b.WriteString(theme.Body.Width(width - 6).Render(o.Question.Question))
	b.WriteString("\n\n")

	yours := o.YourAnswer
	if o.Answered && !o.Correct {
		yours = theme.Incorrect.Render(yours)
	}
	b.WriteString(theme.Muted.Render("Your answer: ") + yours)
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render("Correct answer: ") + theme.Correct.Render(o.CorrectAnswer))

	return theme.Card.Width(width).Render(b.String())
}
