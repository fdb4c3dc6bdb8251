package breakout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pagebreak/internal/registry"
)

func TestLoopStepStopsOnTerminalFrame(t *testing.T) {
	s := newTestSession(farBlock())
	placeBall(s, 10, 580, 0, 5)

	var frames []Frame
	var presented []Outcome
	l := NewLoop(s,
		WithRender(func(f Frame) { frames = append(frames, f) }),
		WithPresenter(func(o Outcome) { presented = append(presented, o) }),
	)

	steps := 0
	for l.Step() {
		steps++
		require.Less(t, steps, 100, "loop never stopped")
	}

	// y: 585, 590, 595, 600
	assert.Equal(t, 3, steps)
	require.Len(t, frames, 4)
	assert.Equal(t, OutcomeLost, frames[3].Outcome)
	assert.Equal(t, []Outcome{OutcomeLost}, presented)

	assert.False(t, l.Step())
	assert.False(t, l.Active())
	assert.Len(t, frames, 4, "no frames after the terminal one")
	assert.Len(t, presented, 1)
}

func TestLoopStepAfterClose(t *testing.T) {
	s := newTestSession(farBlock())
	rendered := 0
	l := NewLoop(s, WithRender(func(Frame) { rendered++ }))

	require.True(t, l.Step())
	s.Close()

	assert.False(t, l.Step())
	assert.Equal(t, 1, rendered)
}

func TestLoopWithoutSession(t *testing.T) {
	l := NewLoop(nil)

	assert.False(t, l.Active())
	assert.False(t, l.Step())
	assert.Nil(t, l.Session())
	assert.Equal(t, OutcomeNone, l.Run(context.Background(), nil, nil))
}

func TestLoopRunUntilLost(t *testing.T) {
	s := newTestSession(farBlock())
	placeBall(s, 10, 580, 0, 5)

	frames := make(chan time.Time, 10)
	for i := 0; i < cap(frames); i++ {
		frames <- time.Time{}
	}

	out := NewLoop(s).Run(context.Background(), frames, nil)

	assert.Equal(t, OutcomeLost, out)
	assert.False(t, s.Closed(), "host closes after presenting")
	assert.Len(t, frames, 6)
}

func TestLoopRunCancelledIsExit(t *testing.T) {
	reg := registry.New()
	var rec exitRecorder
	s, status := Start(reg, testParams(rec.record, target(1, 100, 50, 50, 20)))
	require.Equal(t, StatusStarted, status)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := NewLoop(s).Run(ctx, make(chan time.Time), nil)

	assert.Equal(t, OutcomeExited, out)
	assert.Equal(t, []Outcome{OutcomeExited}, rec.calls)
	_, active := reg.Active()
	assert.False(t, active)
}

func TestLoopRunClosedFramesIsExit(t *testing.T) {
	s := newTestSession(farBlock())
	frames := make(chan time.Time)
	close(frames)

	out := NewLoop(s).Run(context.Background(), frames, nil)

	assert.Equal(t, OutcomeExited, out)
	assert.True(t, s.Closed())
}

// chase moves the paddle under the ball every tick, the way the demo autopilot does.
func chase(s *Session, ticks int) {
	for i := 0; i < ticks; i++ {
		if s.Terminal() {
			return
		}
		b := s.Ball()
		s.MovePointer(b.X + b.Size/2)
		s.Tick()
	}
}

func TestDeterministicReplay(t *testing.T) {
	board := func() []Block {
		return []Block{
			block(1, 40, 140, 40, 70),
			block(2, 200, 300, 40, 70),
			block(3, 360, 460, 40, 70),
			block(4, 520, 620, 120, 150),
			block(5, 680, 780, 200, 230),
		}
	}

	a := newTestSession(board()...)
	b := newTestSession(board()...)

	chase(a, 2000)
	chase(b, 2000)

	snapA := a.Snapshot()
	snapB := b.Snapshot()

	assert.Equal(t, snapA, snapB)
	assert.Equal(t, snapA.Hash(), snapB.Hash())
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	s := newTestSession(farBlock())
	before := s.Snapshot()
	s.Tick()
	after := s.Snapshot()

	assert.NotEqual(t, before.Hash(), after.Hash())
}

func TestLoopRunAppliesPointer(t *testing.T) {
	s := newTestSession(farBlock())
	frames := make(chan time.Time)
	pointer := make(chan float64)

	go func() {
		// Unbuffered: the send completes only once Run has taken the value.
		pointer <- 10000
		close(frames)
	}()

	out := NewLoop(s).Run(context.Background(), frames, pointer)

	assert.Equal(t, OutcomeExited, out)
	assert.Equal(t, 636.0, s.Paddle().X)
}
