package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/quizterm/internal/quiz"
	"github.com/abhisek/quizterm/internal/ui/components"
	"github.com/abhisek/quizterm/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nLoading questions…")
	}

	sess := s.session
	busy := sess.Busy()
	innerWidth := max(width-8, 20)

	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("Progress: %d/%d", sess.AnsweredCount(), sess.Len()),
		sess.ProgressPercent(),
		innerWidth,
	)
	b.WriteString(indent(bar.View()))
	b.WriteString("\n\n")

	b.WriteString(indent(lipgloss.NewStyle().
		Width(innerWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question)))
	b.WriteString("\n\n")

	opts := components.NewOptionList(q.Options, s.cursor, sess.Selected())
	for _, line := range strings.Split(strings.TrimRight(opts.View(), "\n"), "\n") {
		b.WriteString(indent(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	row := components.ButtonRow(
		components.NewButton("Previous", "←", !sess.AtFirst() && !busy),
		components.NewButton("Next", "→", sess.CanAdvance() && !busy),
		components.NewButton("Submit", "s", sess.CanSubmit() && !busy),
	)
	b.WriteString(indent(row))
	b.WriteString("\n")

	if sess.Selected() == qz.Unanswered {
		b.WriteString("\n")
		b.WriteString(indent(theme.Hint.Render("Select an option to continue")))
	}

	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}

func renderError(width int, msg string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Could not start the quiz"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg))
	return b.String()
}
