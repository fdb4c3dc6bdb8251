// Package gui is the pixel window host. It draws the page with Ebiten and
// plays the game with the mouse, the way the page would be played in a browser.
package gui

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/page"
	"github.com/vovakirdan/pagebreak/internal/platform/overlay"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

// Layout of the exit button and the text baseline, in pixels.
const (
	exitSize   = 24
	textInsetX = 4
	textInsetY = 3
)

var (
	background  = color.RGBA{0x16, 0x18, 0x1d, 0xff}
	paddleColor = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	ballColor   = color.RGBA{0xe0, 0xc0, 0x30, 0xff}
	exitColor   = color.RGBA{0xd0, 0x3b, 0x3b, 0xff}
	bannerColor = color.RGBA{0x00, 0x00, 0x00, 0xc0}
)

// Options configures a Host.
type Options struct {
	Page     *page.Page
	Selector page.Selector
	Config   config.BreakoutConfig
	Runtime  core.RuntimeConfig
	Registry *registry.Registry
	Logger   *log.Logger
}

// Host implements ebiten.Game.
type Host struct {
	opts    Options
	adapter *overlay.Adapter
	logger  *log.Logger

	session *breakout.Session
	loop    *breakout.Loop
	frame   breakout.Frame
	over    bool
	scroll  int
	status  string
}

// New creates a window host.
func New(opts Options) *Host {
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		opts:    opts,
		adapter: overlay.New(opts.Page, opts.Selector, opts.Runtime),
		logger:  logger,
	}
}

// Update runs one frame. Ebiten calls it at TPS, which is the game's frame rate.
func (h *Host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		h.Close()
		return ebiten.Termination
	}

	cx, cy := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch {
	case h.over:
		if clicked || len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			h.exit()
		}

	case h.session != nil:
		h.session.MovePointer(float64(cx))
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || (clicked && h.exitRect().Contains(float64(cx), float64(cy))) {
			h.exit()
			return nil
		}
		if !h.loop.Step() && h.session.Terminal() {
			h.over = true
		}

	default:
		if _, dy := ebiten.Wheel(); dy != 0 {
			h.scrollBy(-int(dy))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
			h.scrollBy(1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
			h.scrollBy(-1)
		}
		if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			h.start(float64(cx))
		}
	}
	return nil
}

// start builds a session from the visible part of the page.
func (h *Host) start(pointerX float64) {
	p := h.adapter.Params(h.scroll)
	p.Config = h.opts.Config
	p.Owner = "window"
	p.Logger = h.logger
	p.OnExit = func(o breakout.Outcome) {
		h.status = fmt.Sprintf("last game: %s", o)
	}

	s, status := breakout.Start(h.opts.Registry, p)
	switch status {
	case breakout.StatusAlreadyActive:
		h.status = "board busy"
		return
	case breakout.StatusEmptyBoard:
		h.status = "nothing to break here, scroll to some blocks"
		return
	}

	h.adapter.Begin(s)
	s.MovePointer(pointerX)
	h.session = s
	h.frame = breakout.Frame{Ball: s.Ball(), Paddle: s.Paddle()}
	h.over = false
	h.loop = breakout.NewLoop(s,
		breakout.WithRender(func(f breakout.Frame) {
			h.frame = f
			h.adapter.Apply(f)
		}),
	)
}

// exit tears the session down and restores the page.
func (h *Host) exit() {
	h.Close()
	h.adapter.Restore()
	h.over = false
}

// Close releases the running session, if any.
func (h *Host) Close() {
	if h.session == nil {
		return
	}
	h.session.Close()
	h.session = nil
	h.loop = nil
}

func (h *Host) scrollBy(rows int) {
	maxScroll := h.opts.Page.MaxScroll(h.adapter.Runtime().ScreenH)
	h.scroll = core.Clamp(h.scroll+rows, 0, maxScroll)
}

func (h *Host) exitRect() core.Rect {
	vp := h.adapter.Viewport()
	return core.NewRect(vp.Width-exitSize, 0, exitSize, exitSize)
}

// Draw renders the page and, while playing, the ball, paddle and controls.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	rt := h.adapter.Runtime()
	scrollY := h.adapter.ScrollY(h.scroll)
	for i := range h.opts.Page.Elements {
		e := &h.opts.Page.Elements[i]
		if !e.Visible() || h.adapter.Removed(i) {
			continue
		}
		r := rt.BoxToRect(e.Box).Offset(0, -scrollY)
		r8, g8, b8 := e.Color.RGB()
		if h.adapter.Styled(i) {
			fillRect(screen, r, color.RGBA{r8, g8, b8, 0xff})
			ebitenutil.DebugPrintAt(screen, e.Text, int(r.Left)+textInsetX, int(r.Top)+textInsetY)
			continue
		}
		ebitenutil.DebugPrintAt(screen, e.Text, int(r.Left), int(r.Top)+textInsetY)
	}

	if h.session == nil {
		msg := "click or press enter to break this page, wheel to scroll, q to quit"
		if h.status != "" {
			msg = h.status + "  |  " + msg
		}
		ebitenutil.DebugPrintAt(screen, msg, textInsetX, int(h.adapter.Viewport().Height)-16)
		return
	}

	vp := h.adapter.Viewport()
	fillRect(screen, h.frame.Paddle.Rect(vp), paddleColor)
	b := h.frame.Ball
	fillRect(screen, core.NewRect(b.X, b.Y, b.Size, b.Size), ballColor)

	exit := h.exitRect()
	fillRect(screen, exit, exitColor)
	ebitenutil.DebugPrintAt(screen, "x", int(exit.Left)+9, int(exit.Top)+4)

	if h.over {
		h.drawBanner(screen)
	}
}

func (h *Host) drawBanner(screen *ebiten.Image) {
	vp := h.adapter.Viewport()
	title := "GAME OVER"
	if h.session.Outcome() == breakout.OutcomeWon {
		title = "YOU WIN"
	}

	box := core.NewRect(vp.Width/2-120, vp.Height/2-30, 240, 60)
	fillRect(screen, box, bannerColor)
	ebitenutil.DebugPrintAt(screen, title, int(box.Left)+90, int(box.Top)+14)
	ebitenutil.DebugPrintAt(screen, "click or press any key", int(box.Left)+54, int(box.Top)+32)
}

// Layout keeps one screen pixel per engine pixel and resizes the page viewport.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	rt := h.adapter.Runtime()
	w := max(int(float64(outsideWidth)/rt.CellW), 1)
	hh := max(int(float64(outsideHeight)/rt.CellH), 1)
	if w != rt.ScreenW || hh != rt.ScreenH {
		h.adapter.Resize(w, hh)
		if h.session != nil {
			h.session.Resize(h.adapter.Viewport())
		}
	}
	return outsideWidth, outsideHeight
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), c, false)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	h := New(opts)
	defer h.Close()

	vp := opts.Runtime.Viewport()
	ebiten.SetWindowSize(int(vp.Width), int(vp.Height))
	ebiten.SetWindowTitle("pagebreak: " + opts.Page.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
