package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/page"
)

// setup is what every command needs: a page, a selector and the engine config.
type setup struct {
	page     *page.Page
	selector page.Selector
	cfg      config.BreakoutConfig
}

// loadSetup resolves the global flags and the optional page argument.
func loadSetup(args []string) (setup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return setup{}, err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	p, err := page.LoadOrDemo(path)
	if err != nil {
		return setup{}, err
	}

	expr := flagSelector
	if expr == "" {
		expr = cfg.Targets.Selector
	}
	sel, err := page.ParseSelector(expr)
	if err != nil {
		return setup{}, err
	}

	return setup{page: p, selector: sel, cfg: cfg}, nil
}

// runtimeConfig builds the host geometry for a screen of w x h cells.
func (s setup) runtimeConfig(w, h int) core.RuntimeConfig {
	rt := core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: s.cfg.Display.TickRate,
		CellW:    s.cfg.Display.CellWidth,
		CellH:    s.cfg.Display.CellHeight,
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	return rt
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
