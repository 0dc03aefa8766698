package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/quizterm/internal/config"
)

// New builds the application logger. The terminal belongs to the UI, so
// logs only go to cfg.LogFile; without one, logging is disabled.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.Production() {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}

	return zc.Build()
}
