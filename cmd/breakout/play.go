package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a Breakout session in the terminal.

Without --difficulty a start menu asks for one.

Controls:
  Mouse      - Move the paddle (relative motion)
  Left/Right - Nudge the paddle (also h/l, a/d)
  R          - Restart (after the ball is lost)
  Esc/Q      - Quit

Logs are discarded unless --log-file is given, since the terminal is
busy drawing the game.

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("breakout", io.Discard)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	difficulty := flagDifficulty
	if !cmd.Flags().Changed("difficulty") {
		preset, ok, menuErr := tui.RunMenu(rt)
		if menuErr != nil {
			return fmt.Errorf("running menu: %w", menuErr)
		}
		if !ok {
			return nil
		}
		difficulty = string(preset)
	}

	cfg, err := loadGameConfig(difficulty)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	session, err := breakout.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	logger.Info("session started", "difficulty", difficulty, "bricks", session.Remaining())

	if err := tui.Run(session, tui.Options{
		Runtime: rt,
		Nudge:   cfg.Paddle.Nudge,
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
