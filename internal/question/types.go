package question

import (
	"encoding/json"
	"fmt"
)

// ID identifies a question within a set. Question files may use either a
// number or a string; both are held as a string.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("question id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Question is one multiple-choice item. Questions are supplied whole when a
// quiz starts and are never mutated afterwards.
type Question struct {
	ID           ID       `json:"id" yaml:"id"`
	Question     string   `json:"question" yaml:"question"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correctIndex" yaml:"correctIndex"`
}

// CorrectOption returns the text of the correct option, or "" if
// CorrectIndex is out of range.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// Option returns the text of option i and whether i is in range.
func (q Question) Option(i int) (string, bool) {
	if i < 0 || i >= len(q.Options) {
		return "", false
	}
	return q.Options[i], true
}
