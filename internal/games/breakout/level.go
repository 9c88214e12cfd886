// Package breakout implements a single-screen brick breaker: a ball bouncing off
// arena walls, a mouse-driven paddle and a grid of one-hit bricks.
package breakout

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickKind represents the label of a single grid cell.
type BrickKind int

const (
	BrickEmpty BrickKind = iota // No brick
	BrickRed                    // '#'
	BrickGreen                  // 'M'
	BrickBlue                   // 'X'
)

// String returns a human-readable name for the brick kind.
func (k BrickKind) String() string {
	switch k {
	case BrickEmpty:
		return "empty"
	case BrickRed:
		return "red"
	case BrickGreen:
		return "green"
	case BrickBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Label returns the layout character for the brick kind.
func (k BrickKind) Label() rune {
	switch k {
	case BrickRed:
		return '#'
	case BrickGreen:
		return 'M'
	case BrickBlue:
		return 'X'
	default:
		return ' '
	}
}

// ParseLabel converts a layout character into a brick kind.
// Characters:
//
//	'#' = red brick
//	'M' = green brick
//	'X' = blue brick
//	' ' or '.' = empty
func ParseLabel(ch rune) (BrickKind, bool) {
	switch ch {
	case '#':
		return BrickRed, true
	case 'M':
		return BrickGreen, true
	case 'X':
		return BrickBlue, true
	case ' ', '.':
		return BrickEmpty, true
	default:
		return BrickEmpty, false
	}
}

// ErrConfig is the root of every layout configuration error.
var ErrConfig = errors.New("breakout: configuration error")

// RowLengthError reports a layout row whose length is odd.
type RowLengthError struct {
	Row    int
	Length int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("breakout: row %d has odd length %d", e.Row, e.Length)
}

// Unwrap makes errors.Is(err, ErrConfig) succeed.
func (e *RowLengthError) Unwrap() error {
	return ErrConfig
}

// LabelError reports an unknown cell label in a layout row.
type LabelError struct {
	Row, Col int
	Label    rune
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("breakout: row %d col %d has unknown label %q", e.Row, e.Col, e.Label)
}

// Unwrap makes errors.Is(err, ErrConfig) succeed.
func (e *LabelError) Unwrap() error {
	return ErrConfig
}

// Layout is the initial brick layout, one string of cell labels per row.
type Layout []string

// DefaultLayout returns the stock five-row layout.
func DefaultLayout() Layout {
	return Layout{
		"####",
		"MX  XM",
		"XX XX XX",
		"M#  #M",
		"#XX#",
	}
}

// Validate checks every row and returns all problems joined together,
// or nil when the layout is usable.
func (l Layout) Validate() error {
	var errs []error
	for r, row := range l {
		cells := []rune(row)
		if len(cells)%2 != 0 {
			errs = append(errs, &RowLengthError{Row: r, Length: len(cells)})
		}
		for c, ch := range cells {
			if _, ok := ParseLabel(ch); !ok {
				errs = append(errs, &LabelError{Row: r, Col: c, Label: ch})
			}
		}
	}
	return errors.Join(errs...)
}

// BrickGeometry holds the fixed sizes used to derive brick rectangles.
type BrickGeometry struct {
	Width      float64 // Brick width
	Height     float64 // Brick height
	TopMargin  float64 // Y of the first row
	ArenaWidth float64 // Rows are centered under the arena midpoint
}

// Brick is a live grid cell together with its world rectangle.
type Brick struct {
	Row, Col int
	Rect     core.Rect
	Kind     BrickKind
}

// Grid owns the destructible bricks. Rectangles are derived from row/column
// on demand and never stored.
type Grid struct {
	cells [][]BrickKind
	geom  BrickGeometry
}

// NewGrid builds a grid from a layout. It fails if the layout does not validate.
func NewGrid(layout Layout, geom BrickGeometry) (*Grid, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	cells := make([][]BrickKind, len(layout))
	for r, row := range layout {
		labels := []rune(row)
		cells[r] = make([]BrickKind, len(labels))
		for c, ch := range labels {
			kind, _ := ParseLabel(ch)
			cells[r][c] = kind
		}
	}

	return &Grid{cells: cells, geom: geom}, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// RowLen returns the number of cells in a row, or 0 for an invalid row.
func (g *Grid) RowLen(row int) int {
	if row < 0 || row >= len(g.cells) {
		return 0
	}
	return len(g.cells[row])
}

// At returns the kind of the cell, or BrickEmpty when out of range.
func (g *Grid) At(row, col int) BrickKind {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return BrickEmpty
	}
	return g.cells[row][col]
}

// RowWorldRect computes the rectangle of the brick at (row, col).
// The row is centered under the integer arena midpoint.
func (g *Grid) RowWorldRect(row, col int) (core.Rect, error) {
	if row < 0 || row >= len(g.cells) {
		return core.Rect{}, fmt.Errorf("breakout: row %d out of range", row)
	}

	n := len(g.cells[row])
	if n%2 != 0 {
		return core.Rect{}, &RowLengthError{Row: row, Length: n}
	}

	rowY := g.geom.TopMargin + float64(row)*g.geom.Height
	rowX := math.Floor(g.geom.ArenaWidth/2) - float64(n/2)*g.geom.Width

	return core.NewRect(
		rowX+float64(col)*g.geom.Width,
		rowY,
		g.geom.Width,
		g.geom.Height,
	), nil
}

// DestroyAt empties a cell. Destroying an empty or out-of-range cell is a no-op.
func (g *Grid) DestroyAt(row, col int) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return
	}
	g.cells[row][col] = BrickEmpty
}

// Row returns a lazy left-to-right sequence of the live bricks in a row.
// Each call yields a fresh sequence that reflects the grid at iteration time.
func (g *Grid) Row(row int) (iter.Seq[Brick], error) {
	if _, err := g.RowWorldRect(row, 0); err != nil {
		return nil, err
	}

	return func(yield func(Brick) bool) {
		for col, kind := range g.cells[row] {
			if kind == BrickEmpty {
				continue
			}
			rect, _ := g.RowWorldRect(row, col)
			if !yield(Brick{Row: row, Col: col, Rect: rect, Kind: kind}) {
				return
			}
		}
	}, nil
}

// Remaining returns the number of live bricks.
func (g *Grid) Remaining() int {
	count := 0
	for _, row := range g.cells {
		for _, kind := range row {
			if kind != BrickEmpty {
				count++
			}
		}
	}
	return count
}

// String renders the grid back into layout labels, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for _, kind := range row {
			sb.WriteRune(kind.Label())
		}
	}
	return sb.String()
}
