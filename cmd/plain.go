package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/lineplay"
	"github.com/abhisek/quizterm/internal/question"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Take the quiz with line-based input (no full-screen UI)",
	Long: `Print each question with numbered options and read answers line by line.

Enter an option number to answer (and move on), n for next, p for previous,
s to submit on the last question, or q to quit.`,
	RunE: runPlain,
}

func runPlain(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	questions, err := question.NewSource(cfg.QuestionsPath).Load(ctx)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	_, err = lineplay.Play(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), questions, log)
	if errors.Is(err, lineplay.ErrAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "Quiz aborted.")
		return nil
	}
	return err
}
