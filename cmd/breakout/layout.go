package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config/layouts"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Work with brick layout files",
}

var layoutCheckCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate brick layout files",
	Long: `Parse each layout file and report problems.

Rows must have an even number of cells. Allowed labels:
  #      - red brick
  M      - green brick
  X      - blue brick
  space  - empty cell (also '.')

Examples:
  breakout layout check pyramid.toml
  breakout layout check levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLayoutCheck,
}

func init() {
	layoutCmd.AddCommand(layoutCheckCmd)
}

func runLayoutCheck(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := checkLayout(path); err != nil {
			failed++
			fmt.Printf("%s %s\n", failStyle.Render("FAIL"), path)
			for _, e := range flattenErrors(err) {
				fmt.Printf("     %v\n", e)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d layouts invalid", failed, len(args))
	}
	return nil
}

// checkLayout loads one file and prints a summary when it is valid.
func checkLayout(path string) error {
	if !layouts.IsSupported(path) {
		return fmt.Errorf("unsupported layout format %q (use .yaml, .yml or .toml)", filepath.Ext(path))
	}

	layout, err := layouts.LoadFile(path)
	if err != nil {
		return err
	}

	rows := breakout.Layout(layout.Rows)
	if err := rows.Validate(); err != nil {
		return err
	}

	bricks := 0
	for _, row := range rows {
		for _, ch := range row {
			if kind, _ := breakout.ParseLabel(ch); kind != breakout.BrickEmpty {
				bricks++
			}
		}
	}

	fmt.Printf("%s %s (%s: %d rows, %d bricks)\n", okStyle.Render("ok  "), path, layout.Name, len(rows), bricks)
	return nil
}

// flattenErrors splits an errors.Join result into its parts.
func flattenErrors(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
