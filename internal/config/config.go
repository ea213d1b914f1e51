// Package config loads runtime settings from ARCHETYPE_* environment variables.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "ARCHETYPE_"

// Scale bounds for exported cards.
const (
	MinExportScale = 1
	MaxExportScale = 4
)

type Config struct {
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFile     string     `env:"LOG_FILE"`
	ExportDir   string     `env:"EXPORT_DIR" envDefault:"."`
	ExportScale int        `env:"EXPORT_SCALE" envDefault:"2"`
	CardFont    string     `env:"CARD_FONT"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: EnvPrefix})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges the parser cannot express.
func (c *Config) Validate() error {
	if c.ExportScale < MinExportScale || c.ExportScale > MaxExportScale {
		return fmt.Errorf("%sEXPORT_SCALE must be between %d and %d, got %d",
			EnvPrefix, MinExportScale, MaxExportScale, c.ExportScale)
	}
	if c.ExportDir == "" {
		return fmt.Errorf("%sEXPORT_DIR must not be empty", EnvPrefix)
	}
	return nil
}

// OpenLogger builds the JSON logger. Records go to LogFile when set,
// otherwise to fallback. The returned closer releases the file.
func (c *Config) OpenLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer = nopCloser{}

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: c.LogLevel,
	}))
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
