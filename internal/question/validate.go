package question

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one malformed entry in a question set.
type ValidationError struct {
	Index   int // 0-based position in the set
	ID      ID
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("question %d: %s: %s", e.Index+1, e.Field, e.Message)
	}
	return fmt.Sprintf("question %d (id %q): %s: %s", e.Index+1, e.ID, e.Field, e.Message)
}

// Validate checks every question and reports all problems at once, joined
// with errors.Join. An empty set is not an error here; callers decide what
// an empty set means.
func Validate(questions []Question) error {
	var errs []error
	seen := make(map[ID]int, len(questions))

	for i, q := range questions {
		fail := func(field, msg string) {
			errs = append(errs, &ValidationError{Index: i, ID: q.ID, Field: field, Message: msg})
		}

		if strings.TrimSpace(string(q.ID)) == "" {
			fail("id", "must not be empty")
		} else if prev, dup := seen[q.ID]; dup {
			fail("id", fmt.Sprintf("duplicates question %d", prev+1))
		} else {
			seen[q.ID] = i
		}

		if strings.TrimSpace(q.Question) == "" {
			fail("question", "must not be empty")
		}

		if len(q.Options) < 2 {
			fail("options", fmt.Sprintf("need at least 2 options, got %d", len(q.Options)))
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				fail("options", fmt.Sprintf("option %d is empty", j+1))
			}
		}

		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			fail("correctIndex", fmt.Sprintf("%d is outside 0..%d", q.CorrectIndex, len(q.Options)-1))
		}
	}

	return errors.Join(errs...)
}
