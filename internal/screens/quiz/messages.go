package quiz

import "github.com/abhisek/quizterm/internal/question"

// questionsLoadedMsg carries the outcome of loading the question set.
type questionsLoadedMsg struct {
	Questions []question.Question
	Err       error
}

// cooldownDoneMsg is sent when the navigation cooldown has elapsed so the
// buttons can be redrawn as enabled.
type cooldownDoneMsg struct{}
