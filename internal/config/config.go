// Package config provides YAML-based engine configuration loading for the
// breakout overlay. Every tunable constant of the engine lives here.
package config

// BreakoutConfig contains all configuration for the overlay breakout engine.
type BreakoutConfig struct {
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Targets TargetsConfig `yaml:"targets"`
	Bounce  BounceConfig  `yaml:"bounce"`
	Display DisplayConfig `yaml:"display"`
}

// PaddleConfig defines paddle geometry in pixels.
type PaddleConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FromBottom float64 `yaml:"from_bottom"` // Gap between paddle and the viewport bottom
	Margin     float64 `yaml:"margin"`      // Right-edge margin for paddle clamp and wall bounce
}

// BallConfig defines ball size and motion.
type BallConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // Magnitude applied after a paddle hit
	DirX  float64 `yaml:"dir_x"` // Initial horizontal delta per tick
	DirY  float64 `yaml:"dir_y"` // Initial vertical delta per tick
}

// TargetsConfig defines which targets qualify as blocks.
type TargetsConfig struct {
	Selector   string  `yaml:"selector"`
	BottomBand float64 `yaml:"bottom_band"` // Targets starting in the bottom band are ignored
}

// BounceConfig defines the paddle reflection arc in degrees.
type BounceConfig struct {
	MinAngle float64 `yaml:"min_angle"`
	MaxAngle float64 `yaml:"max_angle"`
}

// DisplayConfig defines host timing and the cell-to-pixel scale of terminal hosts.
type DisplayConfig struct {
	TickRate   int     `yaml:"tick_rate"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Arc returns the width of the reflection arc in degrees.
func (b BounceConfig) Arc() float64 {
	return b.MaxAngle - b.MinAngle
}
