package config

import (
	"fmt"
	"log/slog"

	"github.com/benoitkugler/okx3d/x3dgeom"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from OKX3D_* environment variables.
type Config struct {
	ArcSegments int    `envconfig:"ARC_SEGMENTS" default:"10"`
	ErrorMode   string `envconfig:"ERROR_MODE" default:"warn"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("OKX3D", &cfg); err != nil {
		return nil, err
	}
	if cfg.ArcSegments < 1 {
		return nil, fmt.Errorf("OKX3D_ARC_SEGMENTS must be at least 1, got %d", cfg.ArcSegments)
	}
	return &cfg, nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("OKX3D_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// Options returns the import options matching the configuration.
func (c *Config) Options(logger *slog.Logger) (x3dgeom.Options, error) {
	mode, err := x3dgeom.ParseErrorMode(c.ErrorMode)
	if err != nil {
		return x3dgeom.Options{}, fmt.Errorf("OKX3D_ERROR_MODE: %w", err)
	}
	return x3dgeom.Options{Segments: c.ArcSegments, ErrorMode: mode, Logger: logger}, nil
}
