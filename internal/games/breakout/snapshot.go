package breakout

import "math"

// Snapshot contains the complete simulation state for replay comparison.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	State   string
	PaddleX float64

	// Ball as X, Y, DX, DY
	BallData [4]float64

	// Active block handles in scan order
	Blocks []uint32
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	blocks := make([]uint32, len(s.blocks))
	for i, b := range s.blocks {
		blocks[i] = uint32(b.Handle)
	}

	return Snapshot{
		Tick:     s.tick,
		State:    s.state.String(),
		PaddleX:  s.paddle.X,
		BallData: [4]float64{s.ball.X, s.ball.Y, s.ball.DX, s.ball.DY},
		Blocks:   blocks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.Blocks {
		h = h*31 + uint64(v)
	}

	return h
}
