// Package breakout implements the overlay brick-breaker engine: one ball, one
// paddle and a shrinking set of rectangular blocks taken from a host page.
// The package is pure logic; hosts feed it targets and pointer positions and
// render the Frames it returns.
package breakout

import (
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

// State is the engine state of a running session.
type State int

const (
	StateRunning State = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome is reported to the host's completion callback exactly once.
type Outcome int

const (
	OutcomeNone       Outcome = iota
	OutcomeWon                // All blocks removed
	OutcomeLost               // Ball fell past the bottom edge
	OutcomeEmptyBoard         // Nothing qualified as a block; the session never ran
	OutcomeExited             // Host closed the session before it ended
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeEmptyBoard:
		return "aborted-empty-board"
	case OutcomeExited:
		return "exited"
	default:
		return "none"
	}
}

// StartStatus is the result of Start.
type StartStatus int

const (
	StatusStarted       StartStatus = iota
	StatusAlreadyActive             // Another session holds the registry; nothing changed
	StatusEmptyBoard                // No target qualified; completion already reported
)

// String returns a human-readable name for the status.
func (s StartStatus) String() string {
	switch s {
	case StatusStarted:
		return "started"
	case StatusAlreadyActive:
		return "already-active"
	case StatusEmptyBoard:
		return "empty-board"
	default:
		return "unknown"
	}
}

// Frame is what a host renders after each tick.
type Frame struct {
	Tick    uint64
	Ball    Ball
	Paddle  Paddle
	Removed []Handle // Blocks removed this tick, in removal order
	State   State
	Outcome Outcome // Set only on the tick that ended the game
}

// Params configures a new session.
type Params struct {
	Config   config.BreakoutConfig
	Viewport core.Viewport
	Targets  []Target
	ScrollY  float64 // Page scroll offset subtracted from target tops
	Owner    string  // Registry label
	Logger   *log.Logger
	OnExit   func(Outcome) // Completion callback, invoked exactly once
}

// Session is one run of the game from start to teardown.
// It is not safe for concurrent use; hosts drive it from a single goroutine.
type Session struct {
	id       uuid.UUID
	cfg      config.BreakoutConfig
	viewport core.Viewport
	ball     Ball
	paddle   Paddle
	blocks   []Block
	total    int
	state    State
	tick     uint64

	lease     *registry.Lease
	onExit    func(Outcome)
	logger    *log.Logger
	closeOnce sync.Once
	closed    bool
	outcome   Outcome
}

// Start builds a session from the host's targets.
//
// If reg already holds a live session, Start returns StatusAlreadyActive and
// touches nothing. If no target qualifies, the slot is released, OnExit is
// called with OutcomeEmptyBoard and StatusEmptyBoard is returned.
func Start(reg *registry.Registry, p Params) (*Session, StartStatus) {
	logger := p.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	lease, err := reg.Acquire(p.Owner)
	if err != nil {
		logger.Info("session refused", "owner", p.Owner, "error", err)
		return nil, StatusAlreadyActive
	}

	blocks := FilterTargets(p.Targets, p.ScrollY, p.Viewport, p.Config.Targets.BottomBand)
	if len(blocks) == 0 {
		// There is nothing to hit. Pretend this never happened.
		lease.Release()
		logger.Info("no qualifying targets", "owner", p.Owner, "candidates", len(p.Targets))
		if p.OnExit != nil {
			p.OnExit(OutcomeEmptyBoard)
		}
		return nil, StatusEmptyBoard
	}

	s := newSession(p.Config, p.Viewport, blocks)
	s.id = lease.ID()
	s.lease = lease
	s.onExit = p.OnExit
	s.logger = logger

	logger.Info("session started", "session", s.id, "owner", p.Owner, "blocks", len(blocks))
	return s, StatusStarted
}

// newSession lays out the paddle and ball for a fresh game.
func newSession(cfg config.BreakoutConfig, vp core.Viewport, blocks []Block) *Session {
	paddle := Paddle{
		Width:      cfg.Paddle.Width,
		Height:     cfg.Paddle.Height,
		FromBottom: cfg.Paddle.FromBottom,
		Margin:     cfg.Paddle.Margin,
	}
	paddle.X = math.Round((vp.Width - paddle.Width) / 2)

	ball := Ball{
		X:     paddle.X + math.Round(paddle.Width/2),
		Y:     vp.Height - paddle.FromBottom - paddle.Height - cfg.Ball.Size,
		Size:  cfg.Ball.Size,
		DX:    cfg.Ball.DirX,
		DY:    cfg.Ball.DirY,
		Speed: cfg.Ball.Speed,
	}

	return &Session{
		id:       uuid.New(),
		cfg:      cfg,
		viewport: vp,
		ball:     ball,
		paddle:   paddle,
		blocks:   blocks,
		total:    len(blocks),
		state:    StateRunning,
		logger:   log.New(io.Discard),
	}
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current engine state.
func (s *Session) State() State {
	return s.state
}

// Terminal reports whether the game has been won or lost.
func (s *Session) Terminal() bool {
	return s.state != StateRunning
}

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool {
	return s.closed
}

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball {
	return s.ball
}

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle {
	return s.paddle
}

// Viewport returns the current viewport.
func (s *Session) Viewport() core.Viewport {
	return s.viewport
}

// Blocks returns a copy of the active blocks in scan order.
func (s *Session) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// BlockCount returns the number of active blocks.
func (s *Session) BlockCount() int {
	return len(s.blocks)
}

// TotalBlocks returns the number of blocks the session started with.
func (s *Session) TotalBlocks() int {
	return s.total
}

// Resize updates the viewport used by walls, the paddle and the loss check.
func (s *Session) Resize(vp core.Viewport) {
	s.viewport = vp
	s.paddle.X = core.ClampF(s.paddle.X, 0, s.paddle.MaxX(vp))
}

// MovePointer moves the paddle under the pointer's x-coordinate.
func (s *Session) MovePointer(x float64) {
	if s.closed {
		return
	}
	s.paddle.MoveTo(x, s.viewport)
}

// Tick advances the simulation one step. A terminal or closed session is
// left untouched and the returned frame only reports its state.
func (s *Session) Tick() Frame {
	if s.closed || s.Terminal() {
		return s.frame()
	}

	s.tick++
	f := Frame{}
	s.moveBall(&f)

	out := s.frame()
	out.Removed = f.Removed

	switch s.state {
	case StateWon:
		out.Outcome = OutcomeWon
	case StateLost:
		out.Outcome = OutcomeLost
	}
	if out.Outcome != OutcomeNone {
		s.logger.Info("game over", "session", s.id, "outcome", out.Outcome, "tick", s.tick)
	}
	return out
}

func (s *Session) frame() Frame {
	return Frame{
		Tick:   s.tick,
		Ball:   s.ball,
		Paddle: s.paddle,
		State:  s.state,
	}
}

// Outcome returns the reported outcome once closed, or the outcome implied
// by the current state otherwise.
func (s *Session) Outcome() Outcome {
	if s.closed {
		return s.outcome
	}
	switch s.state {
	case StateWon:
		return OutcomeWon
	case StateLost:
		return OutcomeLost
	default:
		return OutcomeNone
	}
}

// Close tears the session down: it releases the registry slot and invokes
// the completion callback. Only the first call has an effect; it reports
// whether this call performed the teardown.
func (s *Session) Close() bool {
	done := false
	s.closeOnce.Do(func() {
		done = true
		s.outcome = s.Outcome()
		if s.outcome == OutcomeNone {
			s.outcome = OutcomeExited
		}
		s.closed = true

		if s.lease != nil {
			s.lease.Release()
		}
		s.logger.Info("session closed", "session", s.id, "outcome", s.outcome)
		if s.onExit != nil {
			s.onExit(s.outcome)
		}
	})
	return done
}
