package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tarteel/internal/config"
)

// NewFromConfig creates a logger using application config defaults. When
// verbose is set the level is forced to debug regardless of the configured
// level.
func NewFromConfig(cfg *config.Config, verbose bool) (*slog.Logger, error) {
	opts := Options{Level: "info", Format: "console", OutputPaths: []string{"stdout"}}
	if cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
		if strings.TrimSpace(cfg.Paths.LogDir) != "" {
			if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
				return nil, fmt.Errorf("ensure log directory: %w", err)
			}
			opts.OutputPaths = append(opts.OutputPaths, filepath.Join(cfg.Paths.LogDir, "tarteel.log"))
		}
	}
	if verbose {
		opts.Level = "debug"
	}
	return New(opts)
}
