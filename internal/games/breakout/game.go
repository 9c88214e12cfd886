package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Outcome is the tagged result of a simulation step.
type Outcome int

const (
	OutcomeContinue    Outcome = iota // Keep running
	OutcomeBallLost                   // Session ended: the ball passed the paddle
	OutcomeConfigError                // Session aborted: the layout is invalid
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeBallLost:
		return "ball lost"
	case OutcomeConfigError:
		return "config error"
	default:
		return "unknown"
	}
}

// Ended reports whether the outcome terminates the session.
func (o Outcome) Ended() bool {
	return o != OutcomeContinue
}

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	Outcome   Outcome
	Destroyed []Brick // Bricks removed during this tick
	Err       error   // Set with OutcomeConfigError
}

// Session owns all mutable game state for one play-through.
// It is driven by a single goroutine: events, then Step, then Snapshot.
type Session struct {
	cfg    config.BreakoutConfig
	engine Engine

	ball   Ball
	paddle Paddle
	grid   *Grid

	tick    uint64
	outcome Outcome
	quit    bool
}

// NewSession validates cfg and creates a session at its starting state.
func NewSession(cfg config.BreakoutConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset restores the starting state: ball at the arena center, paddle centered
// near the bottom, a fresh grid from the configured layout.
func (s *Session) Reset() error {
	cfg := s.cfg
	arena := Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height}

	grid, err := NewGrid(Layout(cfg.Layout), BrickGeometry{
		Width:      cfg.Bricks.Width,
		Height:     cfg.Bricks.Height,
		TopMargin:  cfg.Bricks.TopMargin,
		ArenaWidth: arena.Width,
	})
	if err != nil {
		return fmt.Errorf("breakout: invalid layout: %w", err)
	}

	s.engine = Engine{Arena: arena}
	s.grid = grid

	s.ball = Ball{
		Pos:    core.Vec{X: arena.Width / 2, Y: arena.Height / 2},
		Radius: cfg.Ball.Radius,
		Speed:  cfg.Ball.Speed,
	}
	s.ball.SetDirection(cfg.Ball.Angle)

	s.paddle = Paddle{Rect: core.NewRect(
		arena.Width/2-cfg.Paddle.Width/2,
		cfg.Paddle.Y,
		cfg.Paddle.Width,
		cfg.Paddle.Height,
	)}

	s.tick = 0
	s.outcome = OutcomeContinue
	s.quit = false
	return nil
}

// HandleEvent applies one input event. It returns false once the player asked
// to leave (quit or escape); the driver should stop its loop.
func (s *Session) HandleEvent(ev core.Event) bool {
	switch ev.Kind {
	case core.EventQuit:
		s.quit = true
	case core.EventMouseMotion:
		s.paddle.Nudge(ev.DX, s.engine.Arena.Width)
	case core.EventKeyDown:
		if ev.Key == core.KeyEscape {
			s.quit = true
		}
	}
	return !s.quit
}

// Quit reports whether a quit or escape event was received.
func (s *Session) Quit() bool {
	return s.quit
}

// Step advances the simulation by one fixed tick and commits the ball state.
// Once the session has ended, Step keeps returning the terminal outcome.
func (s *Session) Step() StepResult {
	if s.outcome.Ended() {
		return StepResult{Outcome: s.outcome}
	}

	res, err := s.engine.Resolve(s.ball, s.paddle.Rect, s.grid)
	if err != nil {
		s.outcome = OutcomeConfigError
		return StepResult{Outcome: s.outcome, Err: err}
	}

	s.tick++
	s.ball.Vel = res.Vel

	if res.Lost {
		s.outcome = OutcomeBallLost
		return StepResult{Outcome: s.outcome}
	}

	s.ball.Pos = res.Next
	return StepResult{Outcome: OutcomeContinue, Destroyed: res.Destroyed}
}

// Outcome returns the current session outcome.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Tick returns the number of completed simulation steps.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Arena returns the playfield dimensions.
func (s *Session) Arena() Arena {
	return s.engine.Arena
}

// Remaining returns the number of live bricks.
func (s *Session) Remaining() int {
	return s.grid.Remaining()
}
