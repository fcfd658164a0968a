package core

// FloatGrid stores a 2D grid of float32 samples in row-major order.
type FloatGrid struct {
	W, H int
	data []float32
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float32, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// ClampCoords restricts the provided coordinates to the grid bounds.
func (g *FloatGrid) ClampCoords(x, y int) (int, int) {
	if x < 0 {
		x = 0
	}
	if x >= g.W {
		x = g.W - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= g.H {
		y = g.H - 1
	}
	return x, y
}

// At returns the sample at (x, y), clamping out-of-range coordinates to the
// nearest edge cell.
func (g *FloatGrid) At(x, y int) float32 {
	x, y = g.ClampCoords(x, y)
	return g.data[g.Index(x, y)]
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
