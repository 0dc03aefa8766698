// Package results turns a submitted quiz into a per-question report.
// Every function here is total: missing or inconsistent input produces an
// invalid Report, which the view renders as its empty state.
package results

import (
	"fmt"
	"slices"

	"github.com/abhisek/quizterm/internal/question"
	"github.com/abhisek/quizterm/internal/quiz"
)

// EmptySelection is displayed in place of the learner's answer when a
// position has no selection.
const EmptySelection = "—"

// Outcome is the evaluated state of one question.
type Outcome struct {
	Position      int // 0-based
	Question      question.Question
	Answered      bool
	Correct       bool
	YourAnswer    string
	CorrectAnswer string
}

// Report is the display model for a results view.
type Report struct {
	Valid    bool
	Score    int
	Total    int
	Outcomes []Outcome
}

// Validate reports whether questions and answers describe a complete attempt.
func Validate(questions []question.Question, answers []int) bool {
	return len(questions) > 0 && len(answers) == len(questions)
}

// EvaluateQuestion compares one recorded answer with the question's correct
// option. Unanswered and out-of-range answers are never correct.
func EvaluateQuestion(q question.Question, answer int) Outcome {
	o := Outcome{
		Question:      q,
		YourAnswer:    EmptySelection,
		CorrectAnswer: q.CorrectOption(),
	}
	if text, ok := q.Option(answer); ok {
		o.Answered = true
		o.YourAnswer = text
		o.Correct = answer == q.CorrectIndex
	}
	return o
}

// Evaluate builds the report for a submitted result. A nil or inconsistent
// result yields a Report with Valid false.
func Evaluate(r *quiz.Result) Report {
	if r == nil || !Validate(r.Questions, r.Answers) {
		return Report{}
	}

	outcomes := make([]Outcome, len(r.Questions))
	for i, q := range r.Questions {
		o := EvaluateQuestion(q, r.Answers[i])
		o.Position = i
		outcomes[i] = o
	}

	return Report{
		Valid:    true,
		Score:    r.Score,
		Total:    len(r.Questions),
		Outcomes: outcomes,
	}
}

// CorrectCount recounts correct outcomes.
func (r Report) CorrectCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Correct {
			n++
		}
	}
	return n
}

// Summary returns the one-line score text.
func (r Report) Summary() string {
	return fmt.Sprintf("You scored %d/%d", r.Score, r.Total)
}

// RestartSignal tells the caller to start a fresh session.
type RestartSignal struct {
	PreviousSessionID string
}

// Review holds the result handed over at submission. It keeps its own copy
// of the answers so the session that produced it cannot change it.
type Review struct {
	result *quiz.Result
	report Report
}

// NewReview takes ownership of a copy of r. r may be nil.
func NewReview(r *quiz.Result) *Review {
	if r == nil {
		return &Review{report: Evaluate(nil)}
	}
	owned := *r
	owned.Answers = slices.Clone(r.Answers)
	return &Review{result: &owned, report: Evaluate(&owned)}
}

// Report returns the evaluated report.
func (v *Review) Report() Report {
	return v.report
}

// Restart discards the held result and returns the restart signal.
func (v *Review) Restart() RestartSignal {
	var sig RestartSignal
	if v.result != nil {
		sig.PreviousSessionID = v.result.SessionID
	}
	v.result = nil
	v.report = Report{}
	return sig
}
