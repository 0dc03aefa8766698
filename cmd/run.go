package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizterm/internal/app"
	"github.com/abhisek/quizterm/internal/config"
	"github.com/abhisek/quizterm/internal/logger"
	"github.com/abhisek/quizterm/internal/question"
)

// setup loads configuration and builds the logger shared by every command.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, log, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting quiz",
		zap.String("questions", cfg.QuestionsPath),
		zap.Duration("cooldown", cfg.Cooldown))

	return app.Run(app.Options{
		Source:   question.NewSource(cfg.QuestionsPath),
		Cooldown: cfg.Cooldown,
		Logger:   log,
	})
}
