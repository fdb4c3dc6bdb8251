package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/page"
	"github.com/vovakirdan/pagebreak/internal/platform/overlay"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

// pointerStep is how far the arrow keys move the pointer, in cells.
const pointerStep = 3

// Options configures a Model.
type Options struct {
	Page     *page.Page
	Selector page.Selector
	Config   config.BreakoutConfig
	Runtime  core.RuntimeConfig
	Registry *registry.Registry // Defaults to registry.Default()
	Owner    string             // Registry label, e.g. the SSH user
	Logger   *log.Logger
}

type phase int

const (
	phaseBrowse phase = iota
	phasePlaying
	phaseOver // End banner shown, waiting for the player
)

// play is the game state shared by every copy of the model.
type play struct {
	session *breakout.Session
	loop    *breakout.Loop
	gen     int
	last    breakout.Outcome // Last outcome reported by the completion callback
	frame   breakout.Frame
	over    bool // Set by the loop's presenter on the final frame
}

// teardown closes the running session, if any, and reports whether it did.
func (p *play) teardown() bool {
	if p.session == nil {
		return false
	}
	done := p.session.Close()
	p.session = nil
	p.loop = nil
	return done
}

// Model is the Bubble Tea model of the page host: browse the page, play,
// show the end banner, then back to browsing.
type Model struct {
	opts     Options
	adapter  *overlay.Adapter
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	game     *play
	phase    phase
	scroll   int
	pointer  int // Pointer column
	status   string
	quitting bool
}

// NewModel creates a page host model.
func NewModel(opts Options) Model {
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	// The last row holds the help line.
	rt.ScreenH = max(rt.ScreenH-1, 1)

	return Model{
		opts:    opts,
		adapter: overlay.New(opts.Page, opts.Selector, rt),
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		game:    &play{},
		pointer: rt.ScreenW / 2,
	}
}

// Init initializes the model. Ticks only run while a game is in progress.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.endGame()
		m.quitting = true
		return m, tea.Quit
	}

	if m.phase == phaseOver {
		// Any key dismisses the banner.
		m.endGame()
		return m, nil
	}

	switch action {
	case core.ActionStart:
		if m.phase == phaseBrowse {
			return m.startGame()
		}
	case core.ActionExit:
		if m.phase == phasePlaying {
			m.endGame()
		}
	case core.ActionPointerLeft:
		m.movePointer(m.pointer - pointerStep)
	case core.ActionPointerRight:
		m.movePointer(m.pointer + pointerStep)
	case core.ActionScrollUp:
		m.scrollBy(-1)
	case core.ActionScrollDown:
		m.scrollBy(1)
	default:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// handleMouse moves the paddle with the pointer and handles clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(1)
		return m, nil
	}

	m.movePointer(msg.X)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.phase {
	case phaseOver:
		m.endGame()
	case phasePlaying:
		if exitBox(m.screen.Width()).Contains(msg.X, msg.Y) {
			m.endGame()
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := max(msg.Height-1, 1)
	m.screen.Resize(msg.Width, h)
	m.adapter.Resize(msg.Width, h)
	m.help.Width = msg.Width
	m.scroll = core.Clamp(m.scroll, 0, m.opts.Page.MaxScroll(h))

	if m.game.session != nil {
		m.game.session.Resize(m.adapter.Viewport())
	}
	return m, nil
}

// handleTick runs one game frame and schedules the next while the game runs.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.game.gen || m.game.loop == nil {
		return m, nil
	}

	if m.game.loop.Step() {
		return m, tickCmd(m.opts.Runtime.TickRate, m.game.gen)
	}
	if m.game.over {
		m.phase = phaseOver
	}
	return m, nil
}

// startGame turns the visible part of the page into a game.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	p := m.adapter.Params(m.scroll)
	p.Config = m.opts.Config
	p.Owner = m.opts.Owner
	p.Logger = m.logger
	game := m.game
	p.OnExit = func(o breakout.Outcome) {
		game.last = o
	}

	s, status := breakout.Start(m.opts.Registry, p)
	switch status {
	case breakout.StatusAlreadyActive:
		m.status = "board busy: someone else is playing"
		return m, nil
	case breakout.StatusEmptyBoard:
		m.status = "nothing to break here, scroll to some blocks"
		return m, nil
	}

	m.adapter.Begin(s)
	s.MovePointer(m.adapter.Runtime().PointerX(m.pointer))

	adapter, logger := m.adapter, m.logger
	game.gen++
	game.session = s
	game.over = false
	game.frame = breakout.Frame{Ball: s.Ball(), Paddle: s.Paddle()}
	game.loop = breakout.NewLoop(s,
		breakout.WithRender(func(f breakout.Frame) {
			game.frame = f
			adapter.Apply(f)
		}),
		breakout.WithPresenter(func(o breakout.Outcome) {
			game.over = true
			logger.Debug("showing end banner", "session", s.ID(), "outcome", o)
		}),
	)

	m.phase = phasePlaying
	m.status = ""
	return m, tickCmd(m.opts.Runtime.TickRate, game.gen)
}

// endGame tears the game down and restores the page.
func (m *Model) endGame() {
	if m.game.teardown() {
		m.status = fmt.Sprintf("last game: %s", m.game.last)
	}
	m.adapter.Restore()
	m.phase = phaseBrowse
}

// Close tears down any running game. Hosts call it when the program exits.
func (m Model) Close() {
	m.game.teardown()
}

func (m *Model) movePointer(col int) {
	m.pointer = core.Clamp(col, 0, max(m.screen.Width()-1, 0))
	if m.game.session != nil {
		m.game.session.MovePointer(m.adapter.Runtime().PointerX(m.pointer))
	}
}

func (m *Model) scrollBy(rows int) {
	if m.phase != phaseBrowse {
		return
	}
	m.scroll = core.Clamp(m.scroll+rows, 0, m.opts.Page.MaxScroll(m.screen.Height()))
}

// Playing reports whether a game is running.
func (m Model) Playing() bool {
	return m.phase == phasePlaying
}

// GameOver reports whether the end banner is showing.
func (m Model) GameOver() bool {
	return m.phase == phaseOver
}

// Status returns the status line message.
func (m Model) Status() string {
	return m.status
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawPage(m.screen, m.adapter, m.scroll)
	if m.phase != phaseBrowse {
		drawFrame(m.screen, m.adapter.Runtime(), m.game.frame)
		drawExit(m.screen)
	}
	if m.phase == phaseOver {
		drawBanner(m.screen, m.game.session.Outcome())
	}

	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	if m.phase != phaseBrowse {
		return statusStyle.Render(fmt.Sprintf(" %s  blocks %d/%d",
			m.opts.Page.Title, m.adapter.Remaining(), m.game.session.TotalBlocks()))
	}
	if m.status != "" {
		return statusStyle.Render(" "+m.status+"  ") + m.help.View(m.keys)
	}
	return m.help.View(m.keys)
}

// Run starts the Bubble Tea program with a page host model.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the mouse without a button held
	)

	_, err := p.Run()
	return err
}
