package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/platform/overlay"
)

var (
	flagScroll int
	flagRowsT  int
	flagColsT  int
)

var targetsCmd = &cobra.Command{
	Use:   "targets [page]",
	Short: "Show which elements become bricks",
	Long: `List the elements matching the selector and whether they would become
bricks on a screen of the given size at the given scroll offset.

Examples:
  pagebreak targets
  pagebreak targets ./pages/news.yaml --scroll 3
  pagebreak targets --selector "li, .card" --rows 40`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTargets,
}

func init() {
	targetsCmd.Flags().IntVar(&flagScroll, "scroll", 0, "Page scroll offset in rows")
	targetsCmd.Flags().IntVar(&flagColsT, "cols", 80, "Screen width in page cells")
	targetsCmd.Flags().IntVar(&flagRowsT, "rows", 24, "Screen height in page cells")
}

func runTargets(_ *cobra.Command, args []string) {
	s, err := loadSetup(args)
	if err != nil {
		fatal("%v", err)
	}

	a := overlay.New(s.page, s.selector, s.runtimeConfig(flagColsT, flagRowsT))
	targets := a.Targets()
	blocks := breakout.FilterTargets(targets, a.ScrollY(flagScroll), a.Viewport(), s.cfg.Targets.BottomBand)

	inPlay := make(map[breakout.Handle]bool, len(blocks))
	for _, b := range blocks {
		inPlay[b.Handle] = true
	}

	fmt.Printf("Page %q, selector %q, scroll %d\n\n", s.page.Title, s.selector.String(), flagScroll)
	if len(targets) == 0 {
		fmt.Println("No elements match.")
		return
	}

	fmt.Printf("  %-4s  %-24s  %-16s  %-22s  %s\n", "#", "Element", "Cells", "Pixels", "Brick")
	fmt.Printf("  %-4s  %-24s  %-16s  %-22s  %s\n", "-", "-------", "-----", "------", "-----")
	for i, t := range targets {
		e, _ := a.Element(t.Handle)
		brick := "no"
		if inPlay[t.Handle] {
			brick = "yes"
		}
		fmt.Printf("  %-4d  %-24s  %-16s  %-22s  %s\n",
			i+1,
			describe(e.Tag, e.ID, e.Classes),
			fmt.Sprintf("%d,%d %dx%d", e.Box.X, e.Box.Y, e.Box.W, e.Box.H),
			fmt.Sprintf("%.0f,%.0f-%.0f,%.0f", t.Rect.Left, t.Rect.Top, t.Rect.Right, t.Rect.Bottom),
			brick,
		)
	}

	fmt.Println()
	fmt.Printf("%d of %d matching elements are bricks.\n", len(blocks), len(targets))
}

// describe formats an element like a selector, e.g. li#first.block.red.
func describe(tag, id string, classes []string) string {
	var sb strings.Builder
	sb.WriteString(tag)
	if id != "" {
		sb.WriteString("#" + id)
	}
	for _, c := range classes {
		sb.WriteString("." + c)
	}
	return sb.String()
}
