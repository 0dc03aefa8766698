package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizterm/internal/ui/theme"
)

// OptionList renders the options of one question with a movable cursor and
// the recorded selection. Selected is -1 when nothing is chosen.
type OptionList struct {
	Options  []string
	Cursor   int
	Selected int
}

// NewOptionList creates an option list.
func NewOptionList(options []string, cursor, selected int) OptionList {
	return OptionList{Options: options, Cursor: cursor, Selected: selected}
}

// View renders one line per option: cursor marker, radio marker, number, text.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		radio := "( )"
		if i == o.Selected {
			radio = "(•)"
		}
		line := fmt.Sprintf("%s%s %d) %s", prefix, radio, i+1, opt)

		switch {
		case i == o.Selected:
			b.WriteString(theme.Chosen.Render(line))
		case i == o.Cursor:
			b.WriteString(theme.Cursor.Render(line))
		default:
			b.WriteString(theme.Body.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
