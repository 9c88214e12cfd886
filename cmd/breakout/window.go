package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window sized to the arena and play with a captured mouse.

Only relative mouse motion moves the paddle. The window closes when
the ball is lost or Esc is pressed.

Examples:
  breakout window
  breakout window --scale 2 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per arena unit")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("breakout", os.Stderr)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	cfg, err := loadGameConfig(flagDifficulty)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	session, err := breakout.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	logger.Info("session started", "bricks", session.Remaining())

	if err := window.Run(session, window.Options{
		Title:    "Breakout",
		TickRate: flagFPS,
		Scale:    flagScale,
		Nudge:    cfg.Paddle.Nudge,
		Logger:   logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("session ended", "outcome", session.Outcome(), "remaining", session.Remaining())
	return nil
}
