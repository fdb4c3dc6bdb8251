package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/platform/overlay"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Glyphs used on the character screen.
const (
	glyphBlock  = '▒'
	glyphBall   = '●'
	glyphPaddle = '▀'
	exitButton  = "[x]"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawPage draws the page scrolled by scroll rows. Removed elements are
// skipped and elements in play are drawn as solid blocks.
func drawPage(s *core.Screen, a *overlay.Adapter, scroll int) {
	s.Clear()
	for i := range a.Page().Elements {
		e := &a.Page().Elements[i]
		if !e.Visible() || a.Removed(i) {
			continue
		}

		box := e.Box
		box.Y -= scroll
		if box.Bottom() <= 0 || box.Y >= s.Height() {
			continue
		}

		if a.Styled(i) {
			s.DrawRect(box, glyphBlock, e.Color)
		}
		drawLabel(s, box, e.Text, e.Color)
	}
}

// drawLabel writes text into the first row of box, clipped to its width.
func drawLabel(s *core.Screen, box core.Box, text string, c core.Color) {
	runes := []rune(text)
	if len(runes) > box.W {
		runes = runes[:box.W]
	}
	s.DrawTextColored(box.X, box.Y, string(runes), c)
}

// drawFrame draws the ball and paddle of a frame in cell coordinates.
func drawFrame(s *core.Screen, rt core.RuntimeConfig, f breakout.Frame) {
	vp := rt.Viewport()

	p := f.Paddle
	row := rt.CellY(p.Top(vp))
	for x := rt.CellX(p.X); x < rt.CellX(p.X+p.Width); x++ {
		s.SetColored(x, row, glyphPaddle, core.ColorWhite)
	}

	b := f.Ball
	ballRow := rt.CellY(b.Y + b.Size/2)
	for x := rt.CellX(b.X); x < max(rt.CellX(b.X+b.Size), rt.CellX(b.X)+1); x++ {
		s.SetColored(x, ballRow, glyphBall, core.ColorYellow)
	}
}

// exitBox returns the cell box of the exit button for a screen width.
func exitBox(width int) core.Box {
	w := len(exitButton)
	return core.NewBox(width-w, 0, w, 1)
}

// drawExit draws the exit button in the top-right corner.
func drawExit(s *core.Screen) {
	b := exitBox(s.Width())
	s.DrawTextColored(b.X, b.Y, exitButton, core.ColorRed)
}

// drawBanner draws the end-of-game message in the middle of the screen.
func drawBanner(s *core.Screen, outcome breakout.Outcome) {
	title := "GAME OVER"
	color := core.ColorRed
	if outcome == breakout.OutcomeWon {
		title = "YOU WIN"
		color = core.ColorGreen
	}
	hint := "click or press any key"

	w := max(len(hint), len(title)) + 4
	box := core.NewBox((s.Width()-w)/2, s.Height()/2-2, w, 4)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, color)
	s.DrawTextColored(box.X+(w-len(title))/2, box.Y+1, title, color)
	s.DrawTextColored(box.X+2, box.Y+2, hint, core.ColorGray)
}
