package breakout

import (
	"context"
	"time"
)

// Loop drives a session one scheduled frame at a time.
// There is no fixed timestep: one Step is one frame, and speeds are tuned
// for roughly 60 frames per second.
type Loop struct {
	session   *Session
	render    func(Frame)
	present   func(Outcome)
	presented bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithRender sets the callback that receives every ticked frame.
func WithRender(fn func(Frame)) LoopOption {
	return func(l *Loop) {
		l.render = fn
	}
}

// WithPresenter sets the end-of-game presentation callback.
// It runs once, on the frame that ended the game.
func WithPresenter(fn func(Outcome)) LoopOption {
	return func(l *Loop) {
		l.present = fn
	}
}

// NewLoop creates a loop for s. A nil session yields a loop that never runs.
func NewLoop(s *Session, opts ...LoopOption) *Loop {
	l := &Loop{session: s}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Active reports whether another frame may run.
func (l *Loop) Active() bool {
	return l.session != nil && !l.session.Closed() && !l.session.Terminal()
}

// Step runs one frame and reports whether the host should schedule another.
func (l *Loop) Step() bool {
	if !l.Active() {
		return false
	}

	f := l.session.Tick()
	if l.render != nil {
		l.render(f)
	}

	if f.Outcome != OutcomeNone {
		if l.present != nil && !l.presented {
			l.presented = true
			l.present(f.Outcome)
		}
		return false
	}
	return true
}

// Run steps the loop on every value from frames until the game ends.
// Pointer positions are applied between frames on the same goroutine.
// Cancelling ctx is an explicit exit: the session is closed and
// OutcomeExited is returned. On a win or loss the session is left open
// so the host can present the result before closing it.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time, pointer <-chan float64) Outcome {
	if l.session == nil {
		return OutcomeNone
	}

	for l.Active() {
		select {
		case <-ctx.Done():
			l.session.Close()
			return l.session.Outcome()

		case x, ok := <-pointer:
			if !ok {
				pointer = nil
				continue
			}
			l.session.MovePointer(x)

		case _, ok := <-frames:
			if !ok {
				l.session.Close()
				return l.session.Outcome()
			}
			l.Step()
		}
	}

	return l.session.Outcome()
}
