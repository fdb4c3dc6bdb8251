package breakout

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

func target(h Handle, x, y, w, height float64) Target {
	return Target{Handle: h, Rect: core.NewRect(x, y, w, height)}
}

func testParams(onExit func(Outcome), targets ...Target) Params {
	return Params{
		Config:   config.DefaultBreakoutConfig(),
		Viewport: testViewport,
		Targets:  targets,
		Owner:    "test",
		OnExit:   onExit,
	}
}

type exitRecorder struct {
	calls []Outcome
}

func (r *exitRecorder) record(o Outcome) {
	r.calls = append(r.calls, o)
}

func TestStartPlacesPaddleAndBall(t *testing.T) {
	reg := registry.New()
	s, status := Start(reg, testParams(nil, target(1, 100, 50, 50, 20)))
	require.Equal(t, StatusStarted, status)
	defer s.Close()

	p := s.Paddle()
	b := s.Ball()

	assert.Equal(t, 320.0, p.X)
	assert.Equal(t, 400.0, b.X)
	assert.Equal(t, 600.0-20-14-20, b.Y)
	assert.Equal(t, 5.0, b.DX)
	assert.Equal(t, -5.0, b.DY)
	assert.Equal(t, 8.0, b.Speed)
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, 1, s.TotalBlocks())

	entry, ok := reg.Active()
	require.True(t, ok)
	assert.Equal(t, s.ID(), entry.ID)
	assert.Equal(t, "test", entry.Owner)
}

func TestStartRefusedWhileActive(t *testing.T) {
	reg := registry.New()
	first, status := Start(reg, testParams(nil, target(1, 100, 50, 50, 20)))
	require.Equal(t, StatusStarted, status)

	before := first.Snapshot()

	var rec exitRecorder
	second, status := Start(reg, testParams(rec.record, target(2, 300, 50, 50, 20)))

	assert.Nil(t, second)
	assert.Equal(t, StatusAlreadyActive, status)
	assert.Empty(t, rec.calls, "refused start must not report completion")
	assert.Equal(t, before, first.Snapshot())

	entry, ok := reg.Active()
	require.True(t, ok)
	assert.Equal(t, first.ID(), entry.ID)

	first.Close()
	third, status := Start(reg, testParams(nil, target(3, 300, 50, 50, 20)))
	require.Equal(t, StatusStarted, status)
	third.Close()
}

func TestStartEmptyBoard(t *testing.T) {
	reg := registry.New()
	var rec exitRecorder

	// Both targets sit inside the bottom band.
	s, status := Start(reg, testParams(rec.record,
		target(1, 100, 400, 50, 20),
		target(2, 100, 590, 50, 20),
	))

	assert.Nil(t, s)
	assert.Equal(t, StatusEmptyBoard, status)
	assert.Equal(t, []Outcome{OutcomeEmptyBoard}, rec.calls)

	_, active := reg.Active()
	assert.False(t, active, "empty board must not hold the slot")

	_, status = Start(reg, testParams(nil, target(3, 100, 10, 50, 20)))
	assert.Equal(t, StatusStarted, status)
}

func TestStartLogsSession(t *testing.T) {
	var buf bytes.Buffer
	p := testParams(nil, target(1, 100, 50, 50, 20))
	p.Logger = log.New(&buf)

	s, status := Start(registry.New(), p)
	require.Equal(t, StatusStarted, status)
	s.Close()

	assert.Contains(t, buf.String(), "session started")
	assert.Contains(t, buf.String(), "session closed")
}

func TestFilterTargets(t *testing.T) {
	tests := []struct {
		name    string
		top     float64
		scrollY float64
		want    bool
	}{
		{"above viewport", -10, 0, false},
		{"at top edge", 0, 0, true},
		{"just above band", 349, 0, true},
		{"at band", 350, 0, false},
		{"below viewport", 700, 0, false},
		{"scrolled into view", 120, 100, true},
		{"scrolled out of view", 50, 100, false},
		{"scrolled out of band", 460, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blocks := FilterTargets(
				[]Target{target(7, 10, tc.top, 40, 20)},
				tc.scrollY, testViewport, 250,
			)
			if !tc.want {
				assert.Empty(t, blocks)
				return
			}
			require.Len(t, blocks, 1)
			assert.Equal(t, Handle(7), blocks[0].Handle)
			assert.Equal(t, tc.top-tc.scrollY, blocks[0].Rect.Top)
			assert.Equal(t, tc.top-tc.scrollY+20, blocks[0].Rect.Bottom)
		})
	}
}

func TestFilterTargetsKeepsOrder(t *testing.T) {
	blocks := FilterTargets([]Target{
		target(3, 0, 10, 10, 10),
		target(1, 0, 500, 10, 10),
		target(2, 0, 20, 10, 10),
	}, 0, testViewport, 250)

	assert.Equal(t, []Handle{3, 2}, handles(blocks))
}

func TestMovePointerClamps(t *testing.T) {
	tests := []struct {
		pointer float64
		want    float64
	}{
		{0, 0},
		{-50, 0},
		{80, 0},
		{400, 320},
		{720, 636},
		{10000, 636},
	}

	for _, tc := range tests {
		s := newTestSession(farBlock())
		s.MovePointer(tc.pointer)
		assert.Equal(t, tc.want, s.Paddle().X, "pointer %v", tc.pointer)
	}
}

func TestMovePointerStaysInBoundsForAnyX(t *testing.T) {
	s := newTestSession(farBlock())
	maxX := testViewport.Width - s.paddle.Width - s.paddle.Margin

	for x := -1000.0; x <= 2000; x += 37.5 {
		s.MovePointer(x)
		assert.GreaterOrEqual(t, s.Paddle().X, 0.0)
		assert.LessOrEqual(t, s.Paddle().X, maxX)
	}
}

func TestResizeReclampsPaddle(t *testing.T) {
	s := newTestSession(farBlock())
	s.MovePointer(10000)
	require.Equal(t, 636.0, s.Paddle().X)

	s.Resize(core.Viewport{Width: 400, Height: 600})

	assert.Equal(t, 236.0, s.Paddle().X)
	assert.Equal(t, 400.0, s.Viewport().Width)
}

func TestCloseRunsOnce(t *testing.T) {
	reg := registry.New()
	var rec exitRecorder

	s, status := Start(reg, testParams(rec.record, target(1, 100, 50, 50, 20)))
	require.Equal(t, StatusStarted, status)

	assert.True(t, s.Close())
	assert.False(t, s.Close())
	assert.False(t, s.Close())

	assert.Equal(t, []Outcome{OutcomeExited}, rec.calls)
	assert.True(t, s.Closed())
	assert.Equal(t, OutcomeExited, s.Outcome())

	_, active := reg.Active()
	assert.False(t, active)
}

func TestCloseAfterWinReportsWin(t *testing.T) {
	reg := registry.New()
	var rec exitRecorder

	s, status := Start(reg, testParams(rec.record, target(1, 100, 50, 100, 20)))
	require.Equal(t, StatusStarted, status)

	placeBall(s, 150, 69, 0, -5)
	f := s.Tick()
	require.Equal(t, OutcomeWon, f.Outcome)
	assert.Empty(t, rec.calls, "completion waits for teardown")

	s.Close()
	assert.Equal(t, []Outcome{OutcomeWon}, rec.calls)
}

func TestTickAfterTerminalIsNoop(t *testing.T) {
	s := newTestSession(farBlock())
	placeBall(s, 10, 598, 0, 5)

	f := s.Tick()
	require.Equal(t, StateLost, f.State)

	ball := s.Ball()
	again := s.Tick()

	assert.Equal(t, f.Tick, again.Tick)
	assert.Equal(t, ball, s.Ball())
	assert.Equal(t, OutcomeNone, again.Outcome, "terminal outcome is reported once")
}

func TestTickAfterCloseIsNoop(t *testing.T) {
	s := newTestSession(farBlock())
	s.Close()

	ball := s.Ball()
	f := s.Tick()

	assert.Equal(t, uint64(0), f.Tick)
	assert.Equal(t, ball, s.Ball())
}

func TestWonOnlyWhenLastBlockRemoved(t *testing.T) {
	s := newTestSession(block(1, 100, 200, 50, 70), block(2, 300, 400, 50, 70))

	placeBall(s, 150, 75, 0, -8)
	f := s.Tick()
	require.Equal(t, []Handle{1}, f.Removed)
	assert.Equal(t, StateRunning, f.State)

	placeBall(s, 350, 75, 0, -8)
	f = s.Tick()
	require.Equal(t, []Handle{2}, f.Removed)
	assert.Equal(t, StateWon, f.State)
	assert.Equal(t, 0, s.BlockCount())
	assert.Equal(t, 2, s.TotalBlocks())
}

func TestOutcomeNames(t *testing.T) {
	assert.Equal(t, "won", OutcomeWon.String())
	assert.Equal(t, "lost", OutcomeLost.String())
	assert.Equal(t, "aborted-empty-board", OutcomeEmptyBoard.String())
	assert.Equal(t, "exited", OutcomeExited.String())
}
