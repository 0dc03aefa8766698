package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent int // 0..100
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
	}
}

// Filled returns the number of bar cells to fill for barWidth cells.
func (p ProgressBar) Filled(barWidth int) int {
	filled := barWidth * p.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// View renders the bar followed by the percentage and label.
func (p ProgressBar) View() string {
	suffix := theme.Muted.Render(fmt.Sprintf("  %3d%%", p.Percent))
	if p.Label != "" {
		suffix += theme.Muted.Render("  " + p.Label)
	}

	barWidth := p.Width - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := p.Filled(barWidth)
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		suffix
}
