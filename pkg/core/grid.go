package core

// ByteGrid stores a bounded window of byte-sized cell values in row-major
// order. The window starts at (MinX, MinY) in world coordinates; reads outside
// it return zero.
type ByteGrid struct {
	MinX, MinY int
	W, H       int
	data       []uint8
}

// NewByteGrid allocates a grid covering [minX, minX+w) x [minY, minY+h).
func NewByteGrid(minX, minY, w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{MinX: minX, MinY: minY, W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for world coordinates (x, y), or -1
// when they fall outside the window.
func (g *ByteGrid) Index(x, y int) int {
	lx, ly := x-g.MinX, y-g.MinY
	if lx < 0 || ly < 0 || lx >= g.W || ly >= g.H {
		return -1
	}
	return ly*g.W + lx
}

// At returns the value at world coordinates (x, y).
func (g *ByteGrid) At(x, y int) uint8 {
	idx := g.Index(x, y)
	if idx < 0 {
		return 0
	}
	return g.data[idx]
}

// Set stores v at (x, y). Writes outside the window are dropped.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if idx := g.Index(x, y); idx >= 0 {
		g.data[idx] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
