package main

import (
	"math"
	"testing"

	"github.com/vovakirdan/pagebreak/internal/games/breakout"
)

func TestAutopilotHitsOffCenter(t *testing.T) {
	f := breakout.Frame{
		Ball:   breakout.Ball{X: 390, Size: 20},
		Paddle: breakout.Paddle{Width: 160},
	}

	// Ball center 400; paddle center leans 32px right, so the ball lands left of center.
	if got := autopilot(f); math.Abs(got-432) > 1e-9 {
		t.Errorf("autopilot() = %v, expected 432", got)
	}

	f.Tick = 600
	if got := autopilot(f); math.Abs(got-368) > 1e-9 {
		t.Errorf("autopilot() after switch = %v, expected 368", got)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		tag, id string
		classes []string
		want    string
	}{
		{"li", "", nil, "li"},
		{"li", "first", []string{"block", "red"}, "li#first.block.red"},
		{"div", "", []string{"card"}, "div.card"},
	}

	for _, tc := range tests {
		if got := describe(tc.tag, tc.id, tc.classes); got != tc.want {
			t.Errorf("describe() = %q, expected %q", got, tc.want)
		}
	}
}
