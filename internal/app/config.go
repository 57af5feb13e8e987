package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/jointinit/internal/report"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorldPath string // file or directory of .hcl / .json world files

	LogFormat    string
	LogLevel     string
	OutputFormat string
	// Lenient disables the format check of plugin bodies.
	Lenient      bool
	// ValidateOnly runs every plugin but writes no report.
	ValidateOnly bool
}

// NewConfig validates cfg and fills in defaults for empty fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorldPath == "" {
		return nil, errors.New("WorldPath is a required configuration field and cannot be empty")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = report.FormatText
	}

	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %v", cfg.LogLevel, logLevels)
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %v", cfg.LogFormat, logFormats)
	}
	if !slices.Contains(report.Formats, cfg.OutputFormat) {
		return nil, fmt.Errorf("invalid output %q: must be one of %v", cfg.OutputFormat, report.Formats)
	}
	return &cfg, nil
}
