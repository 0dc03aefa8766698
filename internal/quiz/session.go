package quiz

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizterm/internal/question"
)

// Phase is the lifecycle phase of a Session.
type Phase int

const (
	PhaseLoading    Phase = iota // No questions loaded yet
	PhaseInProgress              // Questions loaded, navigating
	PhaseSubmitted               // Terminal; a Result has been produced
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseInProgress:
		return "in-progress"
	case PhaseSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Unanswered marks a position with no selected option.
const Unanswered = -1

// DefaultCooldown is the window after a navigation during which further
// Advance, Retreat and Submit calls are dropped.
const DefaultCooldown = 220 * time.Millisecond

var (
	// ErrEmptyQuestionSet is returned by Initialize for an empty set.
	// The session stays in PhaseLoading.
	ErrEmptyQuestionSet = errors.New("empty question set")

	// ErrAlreadyInitialized is returned when Initialize is called twice.
	ErrAlreadyInitialized = errors.New("session already initialized")
)

// Option configures a Session.
type Option func(*Session)

// WithCooldown overrides DefaultCooldown. Zero disables the cooldown.
func WithCooldown(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.cooldown = d
		}
	}
}

// WithClock sets the time source used for the cooldown.
func WithClock(c Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is the state of a single quiz attempt. It is owned by one view and
// is not safe for concurrent use. Operations that violate a precondition are
// dropped and report false; they never return errors.
type Session struct {
	id        string
	questions []question.Question
	answers   []int
	current   int
	phase     Phase

	cooldown  time.Duration
	busyUntil time.Time
	clock     Clock
	log       *zap.Logger

	result *Result
}

// New creates a session in PhaseLoading.
func New(opts ...Option) *Session {
	s := &Session{
		id:       uuid.New().String(),
		cooldown: DefaultCooldown,
		clock:    systemClock{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session_id", s.id))
	return s
}

// Initialize loads the question set and moves the session to
// PhaseInProgress with every position unanswered. An empty or malformed set
// leaves the session in PhaseLoading.
func (s *Session) Initialize(questions []question.Question) error {
	if s.phase != PhaseLoading {
		return ErrAlreadyInitialized
	}
	if len(questions) == 0 {
		s.log.Warn("initialize with empty question set")
		return ErrEmptyQuestionSet
	}
	if err := question.Validate(questions); err != nil {
		s.log.Warn("initialize with malformed question set", zap.Error(err))
		return fmt.Errorf("invalid question set: %w", err)
	}

	s.questions = slices.Clone(questions)
	s.answers = make([]int, len(questions))
	for i := range s.answers {
		s.answers[i] = Unanswered
	}
	s.current = 0
	s.phase = PhaseInProgress

	s.log.Debug("session initialized", zap.Int("questions", len(questions)))
	return nil
}

// SelectAnswer records option for the current question, replacing any
// earlier choice.
func (s *Session) SelectAnswer(option int) bool {
	if s.phase != PhaseInProgress {
		return s.refuse("select", "not in progress")
	}
	if option < 0 || option >= len(s.questions[s.current].Options) {
		return s.refuse("select", "option out of range")
	}

	s.answers[s.current] = option
	s.log.Debug("answer selected", zap.Int("position", s.current), zap.Int("option", option))
	return true
}

// Advance moves to the next question. The current question must be
// answered and must not be the last one.
func (s *Session) Advance() bool {
	switch {
	case s.phase != PhaseInProgress:
		return s.refuse("advance", "not in progress")
	case s.Busy():
		return s.refuse("advance", "busy")
	case s.answers[s.current] == Unanswered:
		return s.refuse("advance", "current question unanswered")
	case s.current >= len(s.questions)-1:
		return s.refuse("advance", "at last question")
	}

	s.current++
	s.startCooldown()
	s.log.Debug("advanced", zap.Int("position", s.current))
	return true
}

// Retreat moves to the previous question. It neither requires nor clears
// an answer on the question being left.
func (s *Session) Retreat() bool {
	switch {
	case s.phase != PhaseInProgress:
		return s.refuse("retreat", "not in progress")
	case s.Busy():
		return s.refuse("retreat", "busy")
	case s.current == 0:
		return s.refuse("retreat", "at first question")
	}

	s.current--
	s.startCooldown()
	s.log.Debug("retreated", zap.Int("position", s.current))
	return true
}

// Submit scores the session and moves it to PhaseSubmitted. Only the last
// question may submit, and it must be answered. The returned Result owns a
// copy of the answers.
func (s *Session) Submit() (Result, bool) {
	switch {
	case s.phase != PhaseInProgress:
		return Result{}, s.refuse("submit", "not in progress")
	case s.Busy():
		return Result{}, s.refuse("submit", "busy")
	case len(s.questions) == 0:
		return Result{}, s.refuse("submit", "no questions")
	case s.answers[s.current] == Unanswered:
		return Result{}, s.refuse("submit", "current question unanswered")
	case s.current != len(s.questions)-1:
		return Result{}, s.refuse("submit", "not at last question")
	}

	res := Result{
		SessionID:   s.id,
		Questions:   s.questions,
		Answers:     slices.Clone(s.answers),
		Score:       Score(s.questions, s.answers),
		SubmittedAt: s.clock.Now(),
	}
	stored := res
	stored.Answers = slices.Clone(res.Answers)
	s.result = &stored
	s.phase = PhaseSubmitted
	s.startCooldown()

	s.log.Info("quiz submitted", zap.Int("score", res.Score), zap.Int("total", res.Total()))
	return res, true
}

func (s *Session) refuse(op, reason string) bool {
	s.log.Debug("operation refused", zap.String("op", op), zap.String("reason", reason))
	return false
}

func (s *Session) startCooldown() {
	if s.cooldown > 0 {
		s.busyUntil = s.clock.Now().Add(s.cooldown)
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Cooldown returns the configured navigation cooldown.
func (s *Session) Cooldown() time.Duration { return s.cooldown }

// Busy reports whether the navigation cooldown is still running.
func (s *Session) Busy() bool {
	return s.clock.Now().Before(s.busyUntil)
}

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// CurrentIndex returns the 0-based position of the current question.
func (s *Session) CurrentIndex() int { return s.current }

// CurrentQuestion returns the question at the current position, if any.
func (s *Session) CurrentQuestion() (question.Question, bool) {
	if len(s.questions) == 0 {
		return question.Question{}, false
	}
	return s.questions[s.current], true
}

// Selected returns the option chosen for the current question, or Unanswered.
func (s *Session) Selected() int {
	if len(s.answers) == 0 {
		return Unanswered
	}
	return s.answers[s.current]
}

// Answers returns a copy of the recorded answers.
func (s *Session) Answers() []int {
	return slices.Clone(s.answers)
}

// AnsweredCount returns how many positions have a selection.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, a := range s.answers {
		if a != Unanswered {
			n++
		}
	}
	return n
}

// ProgressPercent returns the rounded share of answered questions, 0..100.
func (s *Session) ProgressPercent() int {
	if len(s.questions) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.AnsweredCount()) / float64(len(s.questions))))
}

// AtFirst reports whether the current question is the first one.
func (s *Session) AtFirst() bool { return s.current == 0 }

// AtLast reports whether the current question is the last one.
func (s *Session) AtLast() bool {
	return len(s.questions) > 0 && s.current == len(s.questions)-1
}

// CanAdvance reports whether the current question is answered and not last.
// Both Can* helpers ignore the cooldown; callers combine them with Busy.
func (s *Session) CanAdvance() bool {
	return s.phase == PhaseInProgress && s.Selected() != Unanswered && !s.AtLast()
}

// CanSubmit reports whether the current question is answered and last.
func (s *Session) CanSubmit() bool {
	return s.phase == PhaseInProgress && s.Selected() != Unanswered && s.AtLast()
}

// Result returns the submitted result, or nil before submission.
func (s *Session) Result() *Result {
	if s.result == nil {
		return nil
	}
	res := *s.result
	res.Answers = slices.Clone(s.result.Answers)
	return &res
}
