package quiz

import (
	"time"

	"github.com/abhisek/quizterm/internal/question"
)

// Result is the immutable outcome of a submitted session. Answers is a copy
// taken at submission time; Questions is shared and must be treated as
// read-only.
type Result struct {
	SessionID   string
	Questions   []question.Question
	Answers     []int
	Score       int
	SubmittedAt time.Time
}

// Total returns the number of questions in the result.
func (r Result) Total() int {
	return len(r.Questions)
}

// Score counts positions whose recorded answer equals the question's
// correct index. Unanswered positions never count.
func Score(questions []question.Question, answers []int) int {
	n := min(len(questions), len(answers))
	score := 0
	for i := 0; i < n; i++ {
		if answers[i] != Unanswered && answers[i] == questions[i].CorrectIndex {
			score++
		}
	}
	return score
}
