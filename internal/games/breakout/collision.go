package breakout

import "math"

// moveBall advances the ball one tick and resolves collisions.
// The phase order is load-bearing: vertical, horizontal, paddle, bottom edge.
//
// NOTE: collisions only detect a ball that ends the tick inside a block, so a
// ball moving faster than a block is thin can pass over it. Speed and size are
// tuned so this practically never happens.
func (s *Session) moveBall(f *Frame) {
	b := &s.ball

	// Optimistic that we will continue to move forward.
	b.Move()

	hit := s.inBlock()
	if s.hasCollideVert() || hit >= 0 {
		b.BounceY()
		if hit >= 0 && hit == s.inBlock() {
			// Flipping did not get us out of the block (corner contact).
			// Undo it; the horizontal pass resolves this one.
			b.BounceY()
		} else if hit >= 0 {
			s.removeBlock(hit, f)
		}
	}

	hit = s.inBlock()
	if s.hasCollideHorz() || hit >= 0 {
		b.BounceX()
		if hit >= 0 {
			s.removeBlock(hit, f)
		}
	}

	if offset, ok := s.paddleHit(); ok {
		angle := offset/s.paddle.Width*s.cfg.Bounce.Arc() + s.cfg.Bounce.MinAngle
		rad := angle * math.Pi / 180
		// Negative speed sends the ball up, left edge hits go left.
		b.DX = math.Cos(rad) * -b.Speed
		b.DY = math.Sin(rad) * -b.Speed
	}

	if s.state != StateWon && b.Y >= s.viewport.Height {
		s.state = StateLost
	}
}

// hasCollideVert reports a top-wall hit. Blocks and the paddle are handled separately.
func (s *Session) hasCollideVert() bool {
	return s.ball.Y < 0
}

// hasCollideHorz reports a side-wall hit.
func (s *Session) hasCollideHorz() bool {
	return s.ball.X+s.ball.Size > s.viewport.Width-s.paddle.Margin ||
		s.ball.X < 0
}

// inBlock returns the index of the first block the ball overlaps, or -1.
func (s *Session) inBlock() int {
	for i := range s.blocks {
		if s.blocks[i].Rect.Overlaps(s.ball.X, s.ball.Y, s.ball.Size) {
			return i
		}
	}
	return -1
}

// paddleHit reports whether the ball came down onto the paddle this tick and,
// if so, the hit offset from the paddle's left edge.
func (s *Session) paddleHit() (float64, bool) {
	b := &s.ball
	p := &s.paddle
	top := p.Top(s.viewport)

	if b.X+b.Size >= p.X &&
		b.X <= p.X+p.Width &&
		// bottom edge is on or below the paddle now
		b.Bottom() >= top &&
		// and was above it before this tick's vertical move
		b.Bottom()-b.DY < top {
		return b.X - p.X, true
	}
	return 0, false
}

// removeBlock deletes block i, records its handle and checks for a win.
func (s *Session) removeBlock(i int, f *Frame) {
	handle := s.blocks[i].Handle
	s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
	f.Removed = append(f.Removed, handle)

	s.logger.Debug("block removed", "session", s.id, "handle", handle, "remaining", len(s.blocks))

	if len(s.blocks) == 0 {
		s.state = StateWon
	}
}
