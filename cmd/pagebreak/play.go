package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/platform/tui"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [page]",
	Short: "Play in the terminal",
	Long: `Show the page in the terminal and turn it into a game.

Only elements in the upper part of the screen become bricks; scroll the
page to choose which ones. If the argument is a directory, a picker lists
its pages first.

Controls:
  Enter/Space  - Start a game on the visible page
  Mouse        - Move the paddle
  Left/Right   - Nudge the paddle
  Up/Down      - Scroll the page (before a game)
  Esc/X, [x]   - Leave the game
  Q/Ctrl+C     - Quit

Examples:
  pagebreak play
  pagebreak play ./pages/news.yaml
  pagebreak play ./pages/news.toml --selector "li.story"
  pagebreak play ./pages/
  pagebreak play --log-file pagebreak.log -v`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	width, height := terminalSize()

	if len(args) > 0 {
		if info, statErr := os.Stat(args[0]); statErr == nil && info.IsDir() {
			items, err := pageItems(args[0])
			if err != nil {
				fatal("%v", err)
			}
			path, ok, err := tui.RunPicker(items, width, height)
			if err != nil {
				fatal("%v", err)
			}
			if !ok {
				return
			}
			args = []string{path}
		}
	}

	s, err := loadSetup(args)
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := hostLogger()
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	err = tui.Run(tui.Options{
		Page:     s.page,
		Selector: s.selector,
		Config:   s.cfg,
		Runtime:  s.runtimeConfig(width, height),
		Registry: registry.Default(),
		Owner:    "terminal",
		Logger:   logger,
	})
	if err != nil {
		closeLog()
		fatal("running game: %v", err)
	}
}
