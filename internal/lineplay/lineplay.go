// Package lineplay runs a quiz over plain line-oriented input and output,
// for terminals where the full-screen interface is unavailable.
package lineplay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/quizterm/internal/question"
	"github.com/abhisek/quizterm/internal/quiz"
	"github.com/abhisek/quizterm/internal/results"
)

// ErrAborted is returned when the player quits or input ends before the
// quiz is submitted.
var ErrAborted = errors.New("quiz aborted")

type player struct {
	session *quiz.Session
	scanner *bufio.Scanner
	out     io.Writer
}

// Play runs questions to completion and returns the evaluated report.
func Play(ctx context.Context, in io.Reader, out io.Writer, questions []question.Question, log *zap.Logger) (results.Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	session := quiz.New(quiz.WithCooldown(0), quiz.WithLogger(log))
	if err := session.Initialize(questions); err != nil {
		return results.Report{}, err
	}

	p := &player{
		session: session,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	res, err := p.run(ctx)
	if err != nil {
		return results.Report{}, err
	}

	report := results.Evaluate(&res)
	printReport(out, report)
	return report, nil
}

func (p *player) run(ctx context.Context) (quiz.Result, error) {
	shown := -1
	for {
		if err := ctx.Err(); err != nil {
			return quiz.Result{}, err
		}
		if idx := p.session.CurrentIndex(); idx != shown {
			p.printQuestion()
			shown = idx
		}

		fmt.Fprintf(p.out, "Answer [1-%d, n, p, s, q]: ", len(p.current().Options))
		if !p.scanner.Scan() {
			fmt.Fprintln(p.out)
			if err := p.scanner.Err(); err != nil {
				return quiz.Result{}, fmt.Errorf("read input: %w", err)
			}
			return quiz.Result{}, ErrAborted
		}

		input := strings.ToLower(strings.TrimSpace(p.scanner.Text()))
		switch input {
		case "":
			continue
		case "q":
			return quiz.Result{}, ErrAborted
		case "n":
			if !p.session.Advance() {
				p.explainAdvance()
			}
		case "p":
			if !p.session.Retreat() {
				fmt.Fprintln(p.out, "Already at the first question.")
			}
		case "s":
			if res, ok := p.session.Submit(); ok {
				return res, nil
			}
			p.explainSubmit()
		default:
			p.choose(input)
		}
	}
}

func (p *player) current() question.Question {
	q, _ := p.session.CurrentQuestion()
	return q
}

// choose selects a 1-based option and moves on unless this is the last
// question, where the player submits explicitly.
func (p *player) choose(input string) {
	n, err := strconv.Atoi(input)
	if err != nil || !p.session.SelectAnswer(n-1) {
		fmt.Fprintf(p.out, "Enter a number from 1 to %d, or n, p, s, q.\n", len(p.current().Options))
		return
	}
	if p.session.AtLast() {
		fmt.Fprintln(p.out, "Answer recorded. Enter s to submit.")
		return
	}
	p.session.Advance()
}

func (p *player) explainAdvance() {
	if p.session.AtLast() {
		fmt.Fprintln(p.out, "This is the last question. Enter s to submit.")
		return
	}
	fmt.Fprintln(p.out, "Select an option to continue.")
}

func (p *player) explainSubmit() {
	if !p.session.AtLast() {
		fmt.Fprintln(p.out, "Submit is available on the last question.")
		return
	}
	fmt.Fprintln(p.out, "Select an option before submitting.")
}

func (p *player) printQuestion() {
	s := p.session
	q := p.current()
	fmt.Fprintf(p.out, "\n── Question %d/%d ── (answered %d/%d)\n", s.CurrentIndex()+1, s.Len(), s.AnsweredCount(), s.Len())
	fmt.Fprintln(p.out, q.Question)
	for i, opt := range q.Options {
		mark := " "
		if i == s.Selected() {
			mark = "*"
		}
		fmt.Fprintf(p.out, " %s %d) %s\n", mark, i+1, opt)
	}
}

func printReport(out io.Writer, r results.Report) {
	if !r.Valid {
		fmt.Fprintln(out, "No results to show.")
		return
	}
	fmt.Fprintf(out, "\n%s\n", r.Summary())
	for _, o := range r.Outcomes {
		verdict := "✗ Incorrect"
		if o.Correct {
			verdict = "✓ Correct"
		}
		fmt.Fprintf(out, "\nQ%d. %s\n%s\n", o.Position+1, verdict, o.Question.Question)
		fmt.Fprintf(out, "  Your answer: %s\n", o.YourAnswer)
		fmt.Fprintf(out, "  Correct answer: %s\n", o.CorrectAnswer)
	}
}
