package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/mpwizard/internal/cli/output"
	"github.com/leapstack-labs/mpwizard/pkg/format"
)

// ParseLogLevel parses debug, info, warn or error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if !output.Mode(c.Output).Valid() {
		modes := make([]string, 0, len(output.Modes()))
		for _, m := range output.Modes() {
			modes = append(modes, string(m))
		}
		errs = append(errs, fmt.Errorf("invalid output %q\nHint: Use one of: %s", c.Output, strings.Join(modes, ", ")))
	}

	if c.Format != "" {
		if _, err := format.ParseKind(c.Format); err != nil {
			errs = append(errs, fmt.Errorf("invalid format: %w", err))
		}
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w\nHint: Use one of: debug, info, warn, error", err))
	}

	return errors.Join(errs...)
}
