package core

import "fmt"

// Cell is a coordinate on the unbounded grid. It doubles as a relative offset
// when used inside a Brush.
type Cell struct {
	X int
	Y int
}

// Add returns the component-wise sum of c and o.
func (c Cell) Add(o Cell) Cell { return Cell{X: c.X + o.X, Y: c.Y + o.Y} }

func (c Cell) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Neighbors lists the eight Moore-neighborhood offsets.
var Neighbors = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Less orders cells by x, then y.
func Less(a, b Cell) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Compare is the three-way form of Less, for slices.SortFunc.
func Compare(a, b Cell) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	}
	return 0
}
