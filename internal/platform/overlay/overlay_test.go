package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/page"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

func testPage() *page.Page {
	return &page.Page{
		Width:  80,
		Height: 40,
		Elements: []page.Element{
			{Tag: "h1", Text: "title", Box: core.NewBox(0, 0, 20, 1)},
			{Tag: "li", Classes: []string{"block"}, Box: core.NewBox(2, 3, 10, 1)},
			{Tag: "li", Classes: []string{"block"}, Box: core.NewBox(20, 3, 10, 1), Hidden: true},
			{Tag: "li", Classes: []string{"block"}, Box: core.NewBox(40, 5, 10, 1)},
			{Tag: "li", Classes: []string{"block"}, Box: core.NewBox(40, 30, 10, 1)}, // below the band
		},
	}
}

func newTestAdapter() *Adapter {
	return New(testPage(), page.MustParseSelector(".block"), core.DefaultConfig())
}

func TestTargetsConvertCellsToPixels(t *testing.T) {
	a := newTestAdapter()

	targets := a.Targets()
	require.Len(t, targets, 3, "hidden element is not a candidate")

	assert.Equal(t, core.Rect{Left: 20, Right: 120, Top: 60, Bottom: 80}, targets[0].Rect)
	assert.Equal(t, core.Rect{Left: 400, Right: 500, Top: 100, Bottom: 120}, targets[1].Rect)

	seen := map[breakout.Handle]bool{}
	for _, tg := range targets {
		assert.False(t, seen[tg.Handle], "handles are unique")
		seen[tg.Handle] = true
	}

	el, ok := a.Element(targets[1].Handle)
	require.True(t, ok)
	assert.Equal(t, core.NewBox(40, 5, 10, 1), el.Box)
}

func TestTargetsReissueHandles(t *testing.T) {
	a := newTestAdapter()

	first := a.Targets()
	second := a.Targets()

	_, ok := a.Element(first[0].Handle)
	assert.False(t, ok, "stale handle")
	_, ok = a.Element(second[0].Handle)
	assert.True(t, ok)
}

func TestScrollAndViewport(t *testing.T) {
	a := newTestAdapter()
	assert.Equal(t, 60.0, a.ScrollY(3))
	assert.Equal(t, core.Viewport{Width: 800, Height: 480}, a.Viewport())

	a.Resize(100, 30)
	assert.Equal(t, core.Viewport{Width: 1000, Height: 600}, a.Viewport())
}

func TestGameRoundTrip(t *testing.T) {
	a := newTestAdapter()
	reg := registry.New()

	var outcomes []breakout.Outcome
	p := a.Params(0)
	p.Config = config.DefaultBreakoutConfig()
	p.OnExit = func(o breakout.Outcome) { outcomes = append(outcomes, o) }

	s, status := breakout.Start(reg, p)
	require.Equal(t, breakout.StatusStarted, status)
	a.Begin(s)

	// Only the two elements inside the band became blocks.
	assert.Equal(t, 2, s.BlockCount())
	assert.True(t, a.Styled(1))
	assert.True(t, a.Styled(3))
	assert.False(t, a.Styled(4))
	assert.Equal(t, 2, a.Remaining())

	blocks := s.Blocks()
	a.Apply(breakout.Frame{Removed: []breakout.Handle{blocks[1].Handle, 9999}})

	assert.True(t, a.Removed(3))
	assert.False(t, a.Removed(1))
	assert.Equal(t, 1, a.Remaining())

	s.Close()
	a.Restore()

	assert.Equal(t, []breakout.Outcome{breakout.OutcomeExited}, outcomes)
	for i := range a.Page().Elements {
		assert.False(t, a.Removed(i), "element %d restored", i)
		assert.False(t, a.Styled(i), "element %d unstyled", i)
	}
	assert.False(t, a.Removed(-1))
	assert.False(t, a.Styled(100))
}

func TestScrolledParams(t *testing.T) {
	a := newTestAdapter()

	p := a.Params(4)
	p.Config = config.DefaultBreakoutConfig()

	// Scrolling four rows pushes the first block above the top edge.
	s, status := breakout.Start(registry.New(), p)
	require.Equal(t, breakout.StatusStarted, status)
	defer s.Close()

	require.Equal(t, 1, s.BlockCount())
	el, ok := a.Element(s.Blocks()[0].Handle)
	require.True(t, ok)
	assert.Equal(t, 40, el.Box.X)
	assert.Equal(t, 20.0, s.Blocks()[0].Rect.Top)
}
