// Package window runs Breakout in a desktop window through Ebitengine.
// The mouse is captured and only relative motion moves the paddle.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// keyRepeatDivisor slows held-key steering relative to one nudge per press.
const keyRepeatDivisor = 4

// Options configures the window frontend.
type Options struct {
	Title    string
	TickRate int
	Scale    int         // Window pixels per world unit
	Nudge    float64     // Paddle motion per frame while an arrow key is held
	Logger   *log.Logger // Nil discards log output
}

// Game adapts a Breakout session to the ebiten.Game interface.
type Game struct {
	session *breakout.Session
	queue   core.EventQueue
	nudge   float64
	logger  *log.Logger

	cursorX, cursorY int
	cursorSeen       bool

	white *ebiten.Image
}

// NewGame wraps a session for ebiten.RunGame.
func NewGame(session *breakout.Session, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session: session,
		nudge:   opts.Nudge,
		logger:  logger,
	}
}

// Update collects input and advances the simulation by one tick.
// It returns ebiten.Termination when the player leaves or the ball is lost.
func (g *Game) Update() error {
	g.pollInput()

	for _, ev := range g.queue.Drain() {
		if !g.session.HandleEvent(ev) {
			g.logger.Info("player left", "tick", g.session.Tick(), "remaining", g.session.Remaining())
			return ebiten.Termination
		}
	}

	res := g.session.Step()
	for _, b := range res.Destroyed {
		g.logger.Debug("brick destroyed", "row", b.Row, "col", b.Col, "kind", b.Kind, "remaining", g.session.Remaining())
	}

	switch res.Outcome {
	case breakout.OutcomeBallLost:
		g.logger.Info("ball lost", "tick", g.session.Tick(), "remaining", g.session.Remaining())
		return ebiten.Termination
	case breakout.OutcomeConfigError:
		return fmt.Errorf("layout: %w", res.Err)
	}
	return nil
}

// pollInput turns this frame's device state into queued events.
func (g *Game) pollInput() {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(core.Quit())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.queue.Push(core.KeyDown(core.KeyEscape))
	}

	x, y := ebiten.CursorPosition()
	if g.cursorSeen && (x != g.cursorX || y != g.cursorY) {
		g.queue.Push(core.MouseMotion(float64(x-g.cursorX), float64(y-g.cursorY)))
	}
	g.cursorX, g.cursorY, g.cursorSeen = x, y, true

	step := g.nudge / keyRepeatDivisor
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.queue.Push(core.MouseMotion(-step, 0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.queue.Push(core.MouseMotion(step, 0))
	}
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	screen.Fill(breakout.BackgroundColor)

	for _, b := range snap.Bricks {
		p := breakout.BrickPalette(b.Kind, b.Row)
		x, y, w, h := float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H)
		vector.DrawFilledRect(screen, x, y, w, h, p.Fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, p.Outline, false)
	}

	pr := snap.Paddle
	vector.DrawFilledRect(screen, float32(pr.X), float32(pr.Y), float32(pr.W), float32(pr.H), breakout.PaddleColor, false)

	g.drawBall(screen, snap)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("bricks %d", len(snap.Bricks)), 4, 4)
}

// drawBall draws the ball as a triangle fan.
func (g *Game) drawBall(screen *ebiten.Image, snap breakout.Snapshot) {
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	vertices, indices := fanVertices(breakout.CircleFan(snap.BallPos, snap.BallRadius, breakout.FanStep), breakout.BallColor)
	screen.DrawTriangles(vertices, indices, g.white, &ebiten.DrawTrianglesOptions{})
}

// fanVertices flattens triangles into an ebiten vertex list.
func fanVertices(fan []breakout.Triangle, c color.RGBA) ([]ebiten.Vertex, []uint16) {
	r, gr, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255

	vertices := make([]ebiten.Vertex, 0, len(fan)*3)
	indices := make([]uint16, 0, len(fan)*3)
	for _, tri := range fan {
		for _, p := range tri {
			indices = append(indices, uint16(len(vertices))) //#nosec G115 -- a fan has a few dozen vertices
			vertices = append(vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: gr, ColorB: b, ColorA: a,
			})
		}
	}
	return vertices, indices
}

// Layout keeps the logical screen equal to the arena so world units are pixels.
func (g *Game) Layout(_, _ int) (int, int) {
	arena := g.session.Arena()
	return int(arena.Width), int(arena.Height)
}

// Run opens a window and plays the session until it ends.
func Run(session *breakout.Session, opts Options) error {
	arena := session.Arena()
	scale := max(opts.Scale, 1)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(arena.Width)*scale, int(arena.Height)*scale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	err := ebiten.RunGame(NewGame(session, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
