package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "quizterm",
	Short: "Multiple-choice quizzes in the terminal",
	Long:  "quizterm: answer a set of multiple-choice questions one at a time, then review your score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().String("questions", "", "Path to a JSON or YAML question file (overrides QUIZTERM_QUESTIONS)")
	rootCmd.PersistentFlags().Duration("cooldown", quiz.DefaultCooldown, "Navigation cooldown between questions")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (disabled when empty)")

	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
