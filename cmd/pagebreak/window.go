package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/platform/gui"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

var (
	flagCols int
	flagRows int
)

var windowCmd = &cobra.Command{
	Use:   "window [page]",
	Short: "Play in a window",
	Long: `Open the page in a window and play with the mouse.

Controls:
  Click/Enter  - Start a game on the visible page
  Mouse        - Move the paddle
  Wheel/Up/Down - Scroll the page (before a game)
  Esc, [x]     - Leave the game
  Q            - Quit

Examples:
  pagebreak window
  pagebreak window ./pages/news.yaml --cols 100 --rows 36`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCols, "cols", 80, "Window width in page cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 30, "Window height in page cells")
}

func runWindow(_ *cobra.Command, args []string) {
	s, err := loadSetup(args)
	if err != nil {
		fatal("%v", err)
	}

	// The window does not own the terminal, so logs go to stderr.
	logger := newLogger(os.Stderr, logLevel())

	err = gui.Run(gui.Options{
		Page:     s.page,
		Selector: s.selector,
		Config:   s.cfg,
		Runtime:  s.runtimeConfig(flagCols, flagRows),
		Registry: registry.Default(),
		Logger:   logger,
	})
	if err != nil {
		fatal("running window: %v", err)
	}
}
