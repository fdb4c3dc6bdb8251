package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/platform/overlay"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

var (
	flagMaxTicks int
	flagRealtime bool
	flagDemoCols int
	flagDemoRows int
)

var demoCmd = &cobra.Command{
	Use:   "demo [page]",
	Short: "Let the autopilot play without a screen",
	Long: `Run a game headless with an autopilot steering the paddle under the
ball, then print the outcome. Useful for checking that a page's layout
makes a playable board.

Examples:
  pagebreak demo
  pagebreak demo ./pages/news.yaml --max-ticks 50000
  pagebreak demo --realtime -v`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 20000, "Give up after this many frames")
	demoCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
	demoCmd.Flags().IntVar(&flagDemoCols, "cols", 80, "Screen width in page cells")
	demoCmd.Flags().IntVar(&flagDemoRows, "rows", 24, "Screen height in page cells")
}

// autopilot keeps the paddle under the ball, hitting it off-center so the
// ball does not bounce straight up and down forever.
func autopilot(f breakout.Frame) float64 {
	lean := 0.3
	if (f.Tick/600)%2 == 1 {
		lean = 0.7
	}
	center := f.Ball.X + f.Ball.Size/2
	return center + f.Paddle.Width*(0.5-lean)
}

func runDemo(_ *cobra.Command, args []string) {
	s, err := loadSetup(args)
	if err != nil {
		fatal("%v", err)
	}
	logger := newLogger(os.Stderr, logLevel())

	rt := s.runtimeConfig(flagDemoCols, flagDemoRows)
	adapter := overlay.New(s.page, s.selector, rt)

	p := adapter.Params(0)
	p.Config = s.cfg
	p.Owner = "demo"
	p.Logger = logger

	session, status := breakout.Start(registry.Default(), p)
	switch status {
	case breakout.StatusEmptyBoard:
		fmt.Printf("outcome: %s\n", breakout.OutcomeEmptyBoard)
		return
	case breakout.StatusAlreadyActive:
		fatal("another game is already running")
	}
	adapter.Begin(session)
	defer session.Close()

	pointer := make(chan float64, 1)
	loop := breakout.NewLoop(session,
		breakout.WithRender(func(f breakout.Frame) {
			adapter.Apply(f)
			select {
			case pointer <- autopilot(f):
			default:
			}
		}),
		breakout.WithPresenter(func(o breakout.Outcome) {
			logger.Info("game over", "outcome", o)
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	outcome := loop.Run(ctx, frames(ctx, rt.TickRate), pointer)

	snap := session.Snapshot()
	fmt.Printf("outcome: %s\n", outcome)
	fmt.Printf("ticks:   %d\n", snap.Tick)
	fmt.Printf("blocks:  %d/%d removed\n", session.TotalBlocks()-session.BlockCount(), session.TotalBlocks())
	fmt.Printf("state:   %016x\n", snap.Hash())
	logger.Debug("demo finished", "elapsed", time.Since(started))
}

// frames feeds up to --max-ticks frames, paced by a ticker with --realtime,
// and closes the channel when done.
func frames(ctx context.Context, tickRate int) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)

		var tick <-chan time.Time
		if flagRealtime && tickRate > 0 {
			ticker := time.NewTicker(time.Second / time.Duration(tickRate))
			defer ticker.Stop()
			tick = ticker.C
		}

		for i := 0; i < flagMaxTicks; i++ {
			now := time.Now()
			if tick != nil {
				select {
				case now = <-tick:
				case <-ctx.Done():
					return
				}
			}
			select {
			case out <- now:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
