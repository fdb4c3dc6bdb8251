package core

// RuntimeConfig contains configuration passed to hosts at initialization.
// Hosts lay pages out in character cells and the engine works in pixels;
// CellW and CellH convert between the two.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	CellW    float64 // Pixels per cell horizontally
	CellH    float64 // Pixels per cell vertically
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		CellW:    10,
		CellH:    20,
	}
}

// Viewport returns the screen size in pixels.
func (c RuntimeConfig) Viewport() Viewport {
	return Viewport{
		Width:  float64(c.ScreenW) * c.CellW,
		Height: float64(c.ScreenH) * c.CellH,
	}
}

// BoxToRect converts a cell box to a pixel rectangle.
func (c RuntimeConfig) BoxToRect(b Box) Rect {
	return NewRect(
		float64(b.X)*c.CellW,
		float64(b.Y)*c.CellH,
		float64(b.W)*c.CellW,
		float64(b.H)*c.CellH,
	)
}

// CellX converts a pixel x-coordinate to a cell column.
func (c RuntimeConfig) CellX(px float64) int {
	if c.CellW <= 0 {
		return int(px)
	}
	return int(px / c.CellW)
}

// CellY converts a pixel y-coordinate to a cell row.
func (c RuntimeConfig) CellY(py float64) int {
	if c.CellH <= 0 {
		return int(py)
	}
	return int(py / c.CellH)
}

// PointerX converts a cell column to the pixel x of the cell's center.
func (c RuntimeConfig) PointerX(col int) float64 {
	return (float64(col) + 0.5) * c.CellW
}
