package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/config/layouts"
)

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallback.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig resolves the game config from --config, --layout and
// difficulty, in that order. An empty difficulty leaves the loaded values
// untouched.
func loadGameConfig(difficulty string) (config.BreakoutConfig, error) {
	cfg, err := loadBaseConfig()
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	return cfg, nil
}

// loadBaseConfig resolves --config and --layout without any preset.
func loadBaseConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagLayout != "" {
		layout, loadErr := layouts.LoadFile(flagLayout)
		if loadErr != nil {
			return cfg, loadErr
		}
		cfg.Layout = layout.Rows
	}
	return cfg, nil
}
