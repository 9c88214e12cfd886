package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Arena is the playfield. Walls are its edges.
type Arena struct {
	Width, Height float64
}

// Ball represents the ball state in world units.
type Ball struct {
	Pos    core.Vec // Center
	Vel    core.Vec // Direction, scaled by Speed each tick
	Radius float64
	Speed  float64
}

// Rect returns the ball's bounding box at its current position.
func (b *Ball) Rect() core.Rect {
	return core.Square(b.Pos, b.Radius)
}

// SetDirection points the ball along angle (radians) with a unit direction.
func (b *Ball) SetDirection(angle float64) {
	b.Vel = core.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Paddle represents the player's paddle.
type Paddle struct {
	Rect core.Rect
}

// Nudge moves the paddle horizontally by dx, keeping it fully inside [0, arenaWidth].
func (p *Paddle) Nudge(dx, arenaWidth float64) {
	p.Rect.X = math.Max(0, math.Min(p.Rect.X+dx, arenaWidth-p.Rect.W))
}

// Resolution is the engine's answer for one tick.
type Resolution struct {
	Next      core.Vec // Position to commit
	Vel       core.Vec // Velocity after all reflections
	Lost      bool     // Ball crossed the bottom edge; Next is not meaningful
	Destroyed []Brick  // Bricks removed this tick, in scan order
}

// Engine performs collision detection and velocity reflection for a single ball.
type Engine struct {
	Arena Arena
}

// contact tracks the provisional position while checks run.
// Every velocity change recomputes the affected axis from the original position.
type contact struct {
	pos   core.Vec
	vel   core.Vec
	next  core.Vec
	speed float64
}

func (c *contact) flipX() {
	c.vel.X = -c.vel.X
	c.next.X = c.pos.X + c.vel.X*c.speed
}

func (c *contact) flipY() {
	c.vel.Y = -c.vel.Y
	c.next.Y = c.pos.Y + c.vel.Y*c.speed
}

func (c *contact) redirect(vel core.Vec) {
	c.vel = vel
	c.next = c.pos.Add(vel.Scale(c.speed))
}

// Resolve runs wall/loss, paddle and brick checks in that order and returns the
// ball's next state. Destroyed bricks are removed from grid. The only error is
// a configuration error from the grid.
func (e Engine) Resolve(ball Ball, paddle core.Rect, grid *Grid) (Resolution, error) {
	c := &contact{
		pos:   ball.Pos,
		vel:   ball.Vel,
		next:  ball.Pos.Add(ball.Vel.Scale(ball.Speed)),
		speed: ball.Speed,
	}

	if e.collideWalls(c, ball.Radius) {
		return Resolution{Vel: c.vel, Lost: true}, nil
	}

	// Paddle and bricks test against the box at the committed position.
	box := ball.Rect()

	collidePaddle(c, box, paddle)

	destroyed, err := collideBricks(c, box, grid)
	if err != nil {
		return Resolution{}, err
	}

	return Resolution{Next: c.next, Vel: c.vel, Destroyed: destroyed}, nil
}

// collideWalls reflects off the side and top walls. It returns true when the
// ball would cross the bottom edge.
func (e Engine) collideWalls(c *contact, radius float64) bool {
	switch {
	case c.next.X-radius < 0 || c.next.X+radius > e.Arena.Width:
		c.flipX()
	case c.next.Y-radius < 0:
		c.flipY()
	case c.next.Y+radius > e.Arena.Height:
		return true
	}
	return false
}

// collidePaddle handles the two paddle responses: a side hit flips X, a face
// hit replaces the velocity with a direction chosen by the hit offset.
func collidePaddle(c *contact, box, paddle core.Rect) {
	if !box.Overlaps(paddle) {
		return
	}

	if paddle.SpansY(c.pos.Y) {
		c.flipX()
		return
	}

	offset := (c.pos.X - paddle.CenterX()) / (paddle.W / 2)
	c.redirect(paddleRebound(core.ClampF(offset, -1, 1)))
}

// paddleRebound maps a normalized hit offset in [-1, 1] to a rebound direction:
// center goes straight up, the edges go sideways.
//
// The result is a unit vector while axis flips keep whatever magnitude the
// velocity already had. Any change to that model belongs here.
func paddleRebound(offset float64) core.Vec {
	angle := math.Acos(offset)
	return core.Vec{X: math.Cos(-angle), Y: math.Sin(-angle)}
}

// collideBricks scans live bricks in row-major order. Every overlapping brick
// flips one velocity axis and is destroyed, so flips compound within a tick.
func collideBricks(c *contact, box core.Rect, grid *Grid) ([]Brick, error) {
	var destroyed []Brick

	for r := range grid.Rows() {
		bricks, err := grid.Row(r)
		if err != nil {
			return nil, err
		}

		for brick := range bricks {
			if !box.Overlaps(brick.Rect) {
				continue
			}

			if brick.Rect.SpansY(c.pos.Y) {
				c.flipX()
			} else {
				c.flipY()
			}

			grid.DestroyAt(brick.Row, brick.Col)
			destroyed = append(destroyed, brick)
		}
	}

	return destroyed, nil
}
