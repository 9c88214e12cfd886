package breakout

import (
	"image/color"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// FanStep is the angular step (radians) used to tessellate the ball.
const FanStep = 0.5

// Visual characters for terminal rendering
const (
	BrickGlyph  = '█'
	PaddleGlyph = '▀'
	BallGlyph   = '●'
	BallFill    = '█'
)

// Triangle is three world-space vertices.
type Triangle [3]core.Vec

// CircleFan approximates a circle with a fan of triangles around its center.
// Each triangle spans [a, a+step] on the rim for a = 0, step, ... below 2π.
func CircleFan(center core.Vec, radius, step float64) []Triangle {
	if step <= 0 || radius <= 0 {
		return nil
	}

	fan := make([]Triangle, 0, int(2*math.Pi/step)+1)
	for a := 0.0; a < 2*math.Pi; a += step {
		fan = append(fan, Triangle{
			{X: center.X + math.Cos(a)*radius, Y: center.Y + math.Sin(a)*radius},
			{X: center.X + math.Cos(a+step)*radius, Y: center.Y + math.Sin(a+step)*radius},
			center,
		})
	}
	return fan
}

// Contains reports whether p lies inside the triangle or on its boundary.
func (t Triangle) Contains(p core.Vec) bool {
	d1 := edgeSign(p, t[0], t[1])
	d2 := edgeSign(p, t[1], t[2])
	d3 := edgeSign(p, t[2], t[0])

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(p, a, b core.Vec) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// Palette is the fill/outline color pair for a brick.
type Palette struct {
	Fill    color.RGBA
	Outline color.RGBA
}

// Fixed colors shared by frontends.
var (
	PaddleColor     = color.RGBA{R: 100, G: 50, A: 255}
	BallColor       = color.RGBA{R: 25, G: 150, B: 25, A: 255}
	BackgroundColor = color.RGBA{A: 255}
)

// BrickPalette returns the colors for a brick kind. Fill brightens with the row index.
func BrickPalette(kind BrickKind, row int) Palette {
	shade := uint8(core.Clamp(120+row*10, 0, 255)) //#nosec G115 -- clamped to byte range

	switch kind {
	case BrickRed:
		return Palette{
			Fill:    color.RGBA{R: shade, A: 255},
			Outline: color.RGBA{R: 200, A: 255},
		}
	case BrickGreen:
		return Palette{
			Fill:    color.RGBA{G: shade, A: 255},
			Outline: color.RGBA{G: 200, A: 255},
		}
	case BrickBlue:
		return Palette{
			Fill:    color.RGBA{B: shade, A: 255},
			Outline: color.RGBA{B: 200, A: 255},
		}
	default:
		return Palette{}
	}
}

// BrickCellColors returns the terminal fill/outline colors for a brick kind.
func BrickCellColors(kind BrickKind) (fill, outline core.Color) {
	switch kind {
	case BrickRed:
		return core.ColorRed, core.ColorBrightRed
	case BrickGreen:
		return core.ColorGreen, core.ColorBrightGreen
	case BrickBlue:
		return core.ColorBlue, core.ColorBrightBlue
	default:
		return core.ColorDefault, core.ColorDefault
	}
}

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(arena Arena, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / arena.Width,
		sy: float64(dst.Height()) / arena.Height,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

// cells returns the cell span covered by a world rectangle, at least one cell each way.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Round(r.X * v.sx))
	x1 := int(math.Round(r.Right() * v.sx))
	y0 := int(math.Round(r.Y * v.sy))
	y1 := int(math.Round(r.Bottom() * v.sy))
	return x0, y0, max(x1-x0, 1), max(y1-y0, 1)
}

// world returns the world-space center of a cell.
func (v viewport) world(x, y int) core.Vec {
	return core.Vec{
		X: (float64(x) + 0.5) / v.sx,
		Y: (float64(y) + 0.5) / v.sy,
	}
}

// Render draws a snapshot into a terminal cell buffer scaled to fit the arena.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.Arena.Width <= 0 || snap.Arena.Height <= 0 {
		return
	}

	vp := newViewport(snap.Arena, dst)

	renderBricks(vp, snap.Bricks, dst)
	renderPaddle(vp, snap.Paddle, dst)
	renderBall(vp, snap, dst)
}

// renderBricks draws each brick with outline-colored end columns.
func renderBricks(vp viewport, bricks []Brick, dst *core.Screen) {
	for _, b := range bricks {
		fill, outline := BrickCellColors(b.Kind)
		x, y, w, h := vp.cells(b.Rect)

		dst.FillRect(x, y, w, h, BrickGlyph, fill)
		if w > 2 {
			dst.FillRect(x, y, 1, h, BrickGlyph, outline)
			dst.FillRect(x+w-1, y, 1, h, BrickGlyph, outline)
		}
	}
}

// renderPaddle draws the player's paddle.
func renderPaddle(vp viewport, paddle core.Rect, dst *core.Screen) {
	x, y, w, h := vp.cells(paddle)
	dst.FillRect(x, y, w, h, PaddleGlyph, core.ColorBrown)
}

// renderBall rasterizes the triangle fan onto cell centers. A ball smaller
// than a cell falls back to a single glyph at its center.
func renderBall(vp viewport, snap Snapshot, dst *core.Screen) {
	fan := CircleFan(snap.BallPos, snap.BallRadius, FanStep)
	bounds := core.Square(snap.BallPos, snap.BallRadius)
	bx, by, bw, bh := vp.cells(bounds)

	var covered [][2]int
	for y := by; y < by+bh; y++ {
		for x := bx; x < bx+bw; x++ {
			p := vp.world(x, y)
			for _, tri := range fan {
				if tri.Contains(p) {
					covered = append(covered, [2]int{x, y})
					break
				}
			}
		}
	}

	if len(covered) < 2 {
		cx := int(math.Floor(snap.BallPos.X * vp.sx))
		cy := int(math.Floor(snap.BallPos.Y * vp.sy))
		dst.SetColored(cx, cy, BallGlyph, core.ColorBallGreen)
		return
	}

	for _, c := range covered {
		dst.SetColored(c[0], c[1], BallFill, core.ColorBallGreen)
	}
}

// DrawBanner draws a centered message box over the playfield.
func DrawBanner(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
