package life

import (
	"slices"

	"sparse-life/pkg/core"
)

// StepDense computes the generation after cells by scanning every coordinate
// of their bounding box plus a one-cell margin. It is the slow reference the
// sparse engine is checked against. A cell with no live neighbors is never
// alive afterwards, which is what the sparse tally implies for every rule.
func StepDense(cells []core.Cell, rule core.Rule) []core.Cell {
	if len(cells) == 0 {
		return nil
	}
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	grid := core.NewByteGrid(minX-1, minY-1, maxX-minX+3, maxY-minY+3)
	for _, c := range cells {
		grid.Set(c.X, c.Y, 1)
	}

	var out []core.Cell
	for y := grid.MinY; y < grid.MinY+grid.H; y++ {
		for x := grid.MinX; x < grid.MinX+grid.W; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					neighbors += int(grid.At(x+dx, y+dy))
				}
			}
			if neighbors == 0 {
				continue
			}
			if rule.Next(grid.At(x, y) == 1, neighbors) {
				out = append(out, core.Cell{X: x, Y: y})
			}
		}
	}
	slices.SortFunc(out, core.Compare)
	return out
}
