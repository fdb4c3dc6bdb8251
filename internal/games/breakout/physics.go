package breakout

import (
	"math"

	"github.com/vovakirdan/pagebreak/internal/core"
)

// Handle identifies a target on the host side. The engine never interprets it;
// it only hands it back when the block is removed.
type Handle uint32

// Target is a candidate block supplied by the host, in page coordinates.
type Target struct {
	Handle Handle
	Rect   core.Rect
}

// Block is an active target in viewport coordinates.
type Block struct {
	Handle Handle
	Rect   core.Rect
}

// Ball is the single ball of a session. X, Y is the top-left corner of its
// square bounding box.
type Ball struct {
	X, Y   float64
	Size   float64
	DX, DY float64 // Delta per tick
	Speed  float64 // Magnitude applied by paddle hits
}

// Move advances the ball by its direction vector.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses the horizontal direction and re-applies it.
func (b *Ball) BounceX() {
	b.DX = -b.DX
	b.X += b.DX
}

// BounceY reverses the vertical direction and re-applies it.
func (b *Ball) BounceY() {
	b.DY = -b.DY
	b.Y += b.DY
}

// Bottom returns the y-coordinate of the ball's bottom edge.
func (b *Ball) Bottom() float64 {
	return b.Y + b.Size
}

// Paddle is the player-controlled bar. X is its left edge; the vertical
// position is derived from the viewport.
type Paddle struct {
	X          float64
	Width      float64
	Height     float64
	FromBottom float64
	Margin     float64
}

// Top returns the y-coordinate of the paddle's top edge.
func (p *Paddle) Top(vp core.Viewport) float64 {
	return vp.Height - p.FromBottom - p.Height
}

// MaxX returns the largest allowed left edge.
func (p *Paddle) MaxX(vp core.Viewport) float64 {
	return vp.Width - p.Width - p.Margin
}

// MoveTo centers the paddle under the pointer, clamped to
// [0, viewportWidth - width - margin].
func (p *Paddle) MoveTo(pointerX float64, vp core.Viewport) {
	p.X = core.ClampF(pointerX-math.Round(p.Width/2), 0, p.MaxX(vp))
}

// Rect returns the paddle bounds.
func (p *Paddle) Rect(vp core.Viewport) core.Rect {
	return core.NewRect(p.X, p.Top(vp), p.Width, p.Height)
}

// FilterTargets converts page targets to viewport blocks, keeping only those
// whose top edge lies in [0, viewportHeight - band) after scrolling.
// Order is preserved.
func FilterTargets(targets []Target, scrollY float64, vp core.Viewport, band float64) []Block {
	blocks := make([]Block, 0, len(targets))
	for _, t := range targets {
		r := t.Rect.Offset(0, -scrollY)
		if r.Top < 0 || r.Top >= vp.Height-band {
			continue
		}
		blocks = append(blocks, Block{Handle: t.Handle, Rect: r})
	}
	return blocks
}
