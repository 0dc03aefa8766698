package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrNegativeCooldown is returned when the configured cooldown is below zero.
var ErrNegativeCooldown = errors.New("cooldown must not be negative")

// Config holds application configuration loaded from flags, environment
// variables and an optional config file.
type Config struct {
	Env           string        `mapstructure:"env"`       // local, production
	QuestionsPath string        `mapstructure:"questions"` // JSON or YAML question file; empty uses the built-in set
	Cooldown      time.Duration `mapstructure:"cooldown"`  // navigation debounce window
	LogFile       string        `mapstructure:"log_file"`  // empty disables logging
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"questions": "questions",
	"cooldown":  "cooldown",
	"log-file":  "log_file",
}

// Load reads configuration. Precedence, highest first: flags, QUIZTERM_*
// environment variables (including a .env file), quizterm.yaml, defaults.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("quizterm")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "quizterm"))
	}

	v.SetDefault("env", "local")
	v.SetDefault("questions", "")
	v.SetDefault("cooldown", "220ms")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("QUIZTERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Cooldown < 0 {
		return nil, ErrNegativeCooldown
	}
	return &cfg, nil
}

// Production reports whether the production environment is selected.
func (c *Config) Production() bool {
	return c.Env == "production"
}
