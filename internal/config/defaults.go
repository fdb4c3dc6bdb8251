package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default engine configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Paddle: PaddleConfig{
			Width:      160,
			Height:     14,
			FromBottom: 20,
			Margin:     4,
		},
		Ball: BallConfig{
			Size:  20,
			Speed: 8,
			DirX:  5,
			DirY:  -5,
		},
		Targets: TargetsConfig{
			Selector:   ".block",
			BottomBand: 250,
		},
		Bounce: BounceConfig{
			MinAngle: 20,
			MaxAngle: 160,
		},
		Display: DisplayConfig{
			TickRate:   60,
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
