package breakout

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot is a read-only copy of everything a frontend needs to draw a frame.
// Frontends never touch the session directly.
type Snapshot struct {
	Tick    uint64
	Outcome Outcome
	Arena   Arena

	Paddle core.Rect

	BallPos    core.Vec
	BallVel    core.Vec
	BallRadius float64

	// Live bricks in row-major order
	Bricks []Brick

	// Err holds the errors of rows left out of Bricks. It is only set
	// once the grid is malformed, which Step reports as OutcomeConfigError.
	Err error
}

// Snapshot returns the current state. Call it after Step has committed.
func (s *Session) Snapshot() Snapshot {
	bricks := make([]Brick, 0, s.grid.Remaining())
	var errs []error
	for r := range s.grid.Rows() {
		row, err := s.grid.Row(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for b := range row {
			bricks = append(bricks, b)
		}
	}

	return Snapshot{
		Tick:       s.tick,
		Outcome:    s.outcome,
		Arena:      s.engine.Arena,
		Paddle:     s.paddle.Rect,
		BallPos:    s.ball.Pos,
		BallVel:    s.ball.Vel,
		BallRadius: s.ball.Radius,
		Bricks:     bricks,
		Err:        errors.Join(errs...),
	}
}

// Hash returns a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 128+len(snap.Bricks)*24)

	putF := func(v float64) {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	putI := func(v int) {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v)) //#nosec G115 -- hash computation
	}

	buf = binary.LittleEndian.AppendUint64(buf, snap.Tick)
	putI(int(snap.Outcome))
	putF(snap.Paddle.X)
	putF(snap.Paddle.Y)
	putF(snap.Paddle.W)
	putF(snap.Paddle.H)
	putF(snap.BallPos.X)
	putF(snap.BallPos.Y)
	putF(snap.BallVel.X)
	putF(snap.BallVel.Y)
	putF(snap.BallRadius)

	for _, b := range snap.Bricks {
		putI(b.Row)
		putI(b.Col)
		putI(int(b.Kind))
	}

	return xxhash.Sum64(buf)
}
