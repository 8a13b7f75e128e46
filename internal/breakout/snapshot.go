package breakout

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot is a read-only view of the scene, sufficient to draw one frame.
// It shares no memory with the session.
type Snapshot struct {
	Tick      uint64
	ArenaW    float64
	ArenaH    float64
	Ball      Ball
	Paddle    core.RectF
	Bricks    []Brick
	Rows      int
	Cols      int
	Score     int
	Total     int
	HighScore int
	Phase     Phase
	Outcome   Outcome
	Message   Message
}

// Snapshot returns the current render snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		ArenaW:    s.cfg.Arena.Width,
		ArenaH:    s.cfg.Arena.Height,
		Ball:      s.ball,
		Paddle:    s.paddle.Rect(s.cfg.Arena.Height),
		Bricks:    s.grid.Bricks(),
		Rows:      s.grid.Rows(),
		Cols:      s.grid.Cols(),
		Score:     s.score,
		Total:     s.grid.Total(),
		HighScore: s.highScore,
		Phase:     s.phase,
		Outcome:   s.outcome,
		Message:   s.Message(),
	}
}

// AliveBricks returns the number of bricks still standing in the snapshot.
func (snap *Snapshot) AliveBricks() int {
	n := 0
	for _, b := range snap.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Hash returns a digest of the dynamic state, for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never fails
	}
	putF := func(f float64) { putU(math.Float64bits(f)) }

	putU(snap.Tick)
	putF(snap.Ball.X)
	putF(snap.Ball.Y)
	putF(snap.Ball.DX)
	putF(snap.Ball.DY)
	putF(snap.Paddle.X)
	putU(uint64(snap.Score))     //#nosec G115 -- hash computation
	putU(uint64(snap.HighScore)) //#nosec G115 -- hash computation
	putU(uint64(snap.Phase))     //#nosec G115 -- hash computation
	putU(uint64(snap.Outcome))   //#nosec G115 -- hash computation
	for _, b := range snap.Bricks {
		if b.Alive {
			putU(1)
		} else {
			putU(0)
		}
	}

	return h.Sum64()
}
