package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/question"
)

var errCheckFailed = errors.New("question file is invalid")

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a question file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := question.FileSource{Path: args[0]}.Load(cmd.Context())
		if err != nil {
			cmd.PrintErrln(err)
			return errCheckFailed
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d questions\n", len(qs))
		return nil
	},
}
