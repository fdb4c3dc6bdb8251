// Package overlay is the host side of a game: it turns page elements into
// engine targets, applies removal events back to the page and restores the
// page when the session ends. Terminal and window hosts share it.
package overlay

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/page"
)

// Adapter binds one page to the engine.
// Not safe for concurrent use; it lives on the host's update goroutine.
type Adapter struct {
	page     *page.Page
	selector page.Selector
	rt       core.RuntimeConfig

	handles *intmap.Map[uint32, int] // handle -> element index
	next    uint32
	removed []bool
	styled  []bool
}

// New creates an adapter for p. Elements matching sel are game candidates.
func New(p *page.Page, sel page.Selector, rt core.RuntimeConfig) *Adapter {
	return &Adapter{
		page:     p,
		selector: sel,
		rt:       rt,
		handles:  intmap.New[uint32, int](len(p.Elements)),
		removed:  make([]bool, len(p.Elements)),
		styled:   make([]bool, len(p.Elements)),
	}
}

// Page returns the bound page.
func (a *Adapter) Page() *page.Page {
	return a.page
}

// Selector returns the candidate selector.
func (a *Adapter) Selector() page.Selector {
	return a.selector
}

// Runtime returns the cell geometry used for conversions.
func (a *Adapter) Runtime() core.RuntimeConfig {
	return a.rt
}

// Resize updates the screen size in cells.
func (a *Adapter) Resize(w, h int) {
	a.rt.ScreenW = w
	a.rt.ScreenH = h
}

// Viewport returns the screen size in pixels.
func (a *Adapter) Viewport() core.Viewport {
	return a.rt.Viewport()
}

// ScrollY converts a scroll offset in rows to pixels.
func (a *Adapter) ScrollY(rows int) float64 {
	return float64(rows) * a.rt.CellH
}

// Targets returns every visible matching element as an engine target in page
// pixel coordinates, in document order. Handles are reissued on every call;
// handles from an earlier call no longer resolve.
func (a *Adapter) Targets() []breakout.Target {
	a.handles.Clear()

	idx := a.page.Query(a.selector)
	targets := make([]breakout.Target, 0, len(idx))
	for _, i := range idx {
		if a.removed[i] {
			continue
		}
		a.next++
		a.handles.Put(a.next, i)
		targets = append(targets, breakout.Target{
			Handle: breakout.Handle(a.next),
			Rect:   a.rt.BoxToRect(a.page.Elements[i].Box),
		})
	}
	return targets
}

// Params builds session parameters for the current page scroll.
func (a *Adapter) Params(scrollRows int) breakout.Params {
	return breakout.Params{
		Viewport: a.Viewport(),
		Targets:  a.Targets(),
		ScrollY:  a.ScrollY(scrollRows),
	}
}

// Begin marks the elements that became blocks of s.
func (a *Adapter) Begin(s *breakout.Session) {
	for _, b := range s.Blocks() {
		if i, ok := a.lookup(b.Handle); ok {
			a.styled[i] = true
		}
	}
}

// Apply hides the elements removed in f. Unknown handles are ignored.
func (a *Adapter) Apply(f breakout.Frame) {
	for _, h := range f.Removed {
		if i, ok := a.lookup(h); ok {
			a.removed[i] = true
		}
	}
}

// Element resolves a handle to its page element.
func (a *Adapter) Element(h breakout.Handle) (*page.Element, bool) {
	i, ok := a.lookup(h)
	if !ok {
		return nil, false
	}
	return &a.page.Elements[i], true
}

func (a *Adapter) lookup(h breakout.Handle) (int, bool) {
	return a.handles.Get(uint32(h))
}

// Removed reports whether element i was knocked out in the current game.
func (a *Adapter) Removed(i int) bool {
	return i >= 0 && i < len(a.removed) && a.removed[i]
}

// Styled reports whether element i is drawn as a block.
func (a *Adapter) Styled(i int) bool {
	return i >= 0 && i < len(a.styled) && a.styled[i]
}

// Remaining returns how many styled elements are still on the page.
func (a *Adapter) Remaining() int {
	n := 0
	for i := range a.styled {
		if a.styled[i] && !a.removed[i] {
			n++
		}
	}
	return n
}

// Restore puts the page back the way it was before the game.
func (a *Adapter) Restore() {
	clear(a.removed)
	clear(a.styled)
	a.handles.Clear()
}
