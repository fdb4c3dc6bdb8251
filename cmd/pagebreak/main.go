// pagebreak turns a page into a brick-breaker game: the page's elements are
// the bricks, the pointer drives the paddle.
//
// Usage:
//
//	pagebreak play [page]      - Play in the terminal
//	pagebreak window [page]    - Play in a window
//	pagebreak serve            - Start SSH server, one player at a time
//	pagebreak demo [page]      - Let the autopilot play without a screen
//	pagebreak targets [page]   - Show which elements become bricks
//	pagebreak pages [dir]      - List page files
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--config <path>      - Engine config YAML
//	--selector <sel>     - Which elements become bricks (default: .block)
//	--verbose            - Debug logging
//	--log-file <path>    - Log file for the terminal hosts
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagSelector string
	flagVerbose  bool
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pagebreak",
	Short: "pagebreak - break the page you are looking at",
	Long: `pagebreak overlays a brick-breaker game on a page. Elements matching
the selector become bricks, the pointer moves the paddle, and the page is put
back together when the game ends.

Pages are YAML or TOML files listing positioned elements. Without a page
argument the built-in demo page is used.

Available commands:
  play     - Play in the terminal
  window   - Play in a window
  serve    - Start SSH server for remote play
  demo     - Autopilot run, prints the outcome
  targets  - Show which elements become bricks
  pages    - List page files in a directory

Examples:
  pagebreak play
  pagebreak play ./pages/news.yaml --selector "li, .card"
  pagebreak window ./pages/news.toml
  pagebreak serve --ssh :2222
  pagebreak demo --max-ticks 5000`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSelector, "selector", "", "Selector for brick elements (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs of the terminal hosts to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(pagesCmd)
}
