package cli

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI configuration
type Config struct {
	WordsPath string `env:"WORDGUESS_WORDS"`
	Seed      uint64 `env:"WORDGUESS_SEED"`
	LogLevel  string `env:"WORDGUESS_LOG_LEVEL"`
}

// DefaultConfig returns a Config with default values overridden by any
// WORDGUESS_* environment variables. The defaults are returned even when
// the environment cannot be parsed.
func DefaultConfig() (*Config, error) {
	cfg := &Config{
		WordsPath: "words.txt",
		Seed:      0,
		LogLevel:  "warn",
	}
	if err := env.Parse(cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level parses LogLevel into a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
