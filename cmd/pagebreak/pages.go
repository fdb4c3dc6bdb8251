package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/page"
	"github.com/vovakirdan/pagebreak/internal/platform/tui"
)

var pagesCmd = &cobra.Command{
	Use:   "pages [dir]",
	Short: "List page files",
	Long:  `Shows the page files in a directory (default: current directory) and the built-in demo page.`,
	Args:  cobra.MaximumNArgs(1),
	Run:   runPages,
}

// pageItems lists the demo page and the readable pages of dir.
func pageItems(dir string) ([]tui.PageItem, error) {
	files, err := page.List(dir)
	if err != nil {
		return nil, err
	}

	demo := page.Demo()
	items := []tui.PageItem{{
		Path:  page.DemoName,
		Title: demo.Title,
		Info:  fmt.Sprintf("%d elements, built in", len(demo.Elements)),
	}}
	for _, f := range files {
		p, err := page.Load(f)
		if err != nil {
			items = append(items, tui.PageItem{Path: f, Title: "-", Info: err.Error()})
			continue
		}
		items = append(items, tui.PageItem{
			Path:  f,
			Title: p.Title,
			Info:  fmt.Sprintf("%d elements", len(p.Elements)),
		})
	}
	return items, nil
}

func runPages(_ *cobra.Command, args []string) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	items, err := pageItems(dir)
	if err != nil {
		fatal("%v", err)
	}

	// Calculate column widths
	maxPath, maxTitle := 4, 5 // "Page", "Title" headers
	for _, it := range items {
		maxPath = max(maxPath, len(it.Path))
		maxTitle = max(maxTitle, len(it.Title))
	}

	fmt.Println("Available pages:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxPath, "Page", maxTitle, "Title", "Contents")
	fmt.Printf("  %-*s  %-*s  %s\n", maxPath, "----", maxTitle, "-----", "--------")

	for _, it := range items {
		fmt.Printf("  %-*s  %-*s  %s\n", maxPath, it.Path, maxTitle, it.Title, it.Info)
	}

	fmt.Println()
	fmt.Println("Run 'pagebreak play <page>' to play one.")
}
