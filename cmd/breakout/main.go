// breakout is a minimal Breakout game for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	breakout                      - Play in the terminal (same as play)
//	breakout play                 - Play in the terminal
//	breakout window               - Play in a desktop window with a captured mouse
//	breakout serve                - Start SSH server for remote play
//	breakout layout check <file>  - Validate brick layout files
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom game config YAML
//	--layout <path>       - Brick layout file (.yaml, .yml, .toml)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagLayout     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, break the bricks",
	Long: `Breakout is a single-ball, single-paddle brick breaker.
The ball bounces off the walls and your paddle; every brick it touches
is destroyed. Let the ball past the paddle and the round ends.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  layout   - Work with brick layout files

Examples:
  breakout
  breakout play --difficulty hard
  breakout window --layout ./levels/pyramid.toml
  breakout serve --ssh :2222
  breakout layout check ./levels/*.yaml`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Path to a brick layout file (.yaml, .yml, .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(layoutCmd)
}
