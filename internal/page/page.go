// Package page models the document a host overlays the game on.
//
// A page is a flat list of positioned elements laid out in character cells.
// Elements carry a tag, an optional id and classes so hosts can pick game
// targets with a CSS-like selector, the way a browser picks DOM nodes.
package page

import (
	"slices"

	"github.com/vovakirdan/pagebreak/internal/core"
)

// Element is one positioned node of a page.
type Element struct {
	ID      string
	Tag     string
	Classes []string
	Text    string
	Box     core.Box
	Hidden  bool
	Color   core.Color
}

// HasClass reports whether the element carries class c.
func (e *Element) HasClass(c string) bool {
	return slices.Contains(e.Classes, c)
}

// Visible reports whether the element takes up space on screen.
func (e *Element) Visible() bool {
	return !e.Hidden && e.Box.W > 0 && e.Box.H > 0
}

// Page is a loaded document.
type Page struct {
	Title    string
	Width    int // Layout width in cells
	Height   int // Layout height in cells; may exceed the screen
	Elements []Element
}

// Query returns the indices of visible elements matching sel, in document order.
func (p *Page) Query(sel Selector) []int {
	var out []int
	for i := range p.Elements {
		e := &p.Elements[i]
		if e.Visible() && sel.Matches(e) {
			out = append(out, i)
		}
	}
	return out
}

// MaxScroll returns the largest useful scroll offset for a screen of the
// given height, in rows.
func (p *Page) MaxScroll(screenH int) int {
	return max(p.Height-screenH, 0)
}

// extent returns the bottom-right corner covered by the elements.
func (p *Page) extent() (w, h int) {
	for _, e := range p.Elements {
		w = max(w, e.Box.Right())
		h = max(h, e.Box.Bottom())
	}
	return w, h
}
