package life

import (
	"image"
	"slices"

	"sparse-life/pkg/core"
)

// Engine runs a Life-like automaton on an unbounded grid. Only live cells are
// stored, so the cost of a generation depends on the population rather than
// on any grid extent.
type Engine struct {
	cur   map[core.Cell]struct{}
	nxt   map[core.Cell]struct{}
	tally map[core.Cell]uint8
	gen   int
}

// New returns an engine with no live cells.
func New() *Engine {
	return &Engine{
		cur:   make(map[core.Cell]struct{}),
		nxt:   make(map[core.Cell]struct{}),
		tally: make(map[core.Cell]uint8),
	}
}

// Generation counts the steps taken since the engine was created or cleared.
func (e *Engine) Generation() int { return e.gen }

// Population returns the number of live cells.
func (e *Engine) Population() int { return len(e.cur) }

// Alive reports whether c is a live cell.
func (e *Engine) Alive(c core.Cell) bool {
	_, ok := e.cur[c]
	return ok
}

// Each calls fn for every live cell in unspecified order.
func (e *Engine) Each(fn func(core.Cell)) {
	for c := range e.cur {
		fn(c)
	}
}

// Cells returns a sorted copy of the live-cell set.
func (e *Engine) Cells() []core.Cell {
	out := make([]core.Cell, 0, len(e.cur))
	for c := range e.cur {
		out = append(out, c)
	}
	slices.SortFunc(out, core.Compare)
	return out
}

// SetCells replaces the whole state with cells. Repeated coordinates collapse
// into one live cell.
func (e *Engine) SetCells(cells []core.Cell) {
	clear(e.cur)
	for _, c := range cells {
		e.cur[c] = struct{}{}
	}
}

// Clear kills every cell and resets the generation counter.
func (e *Engine) Clear() {
	clear(e.cur)
	e.gen = 0
}

// Toggle flips the state of c.
func (e *Engine) Toggle(c core.Cell) {
	if _, ok := e.cur[c]; ok {
		delete(e.cur, c)
		return
	}
	e.cur[c] = struct{}{}
}

// Set makes c alive or dead regardless of its current state.
func (e *Engine) Set(c core.Cell, alive bool) {
	if alive {
		e.cur[c] = struct{}{}
		return
	}
	delete(e.cur, c)
}

// Stamp toggles every cell of b translated to origin.
func (e *Engine) Stamp(origin core.Cell, b core.Brush) {
	for _, o := range b.Offsets {
		e.Toggle(origin.Add(o))
	}
}

// Bounds returns the smallest rectangle containing every live cell, or the
// empty rectangle when there are none.
func (e *Engine) Bounds() image.Rectangle {
	var r image.Rectangle
	first := true
	for c := range e.cur {
		cell := image.Rect(c.X, c.Y, c.X+1, c.Y+1)
		if first {
			r = cell
			first = false
			continue
		}
		r = r.Union(cell)
	}
	return r
}

// Step advances the simulation by one generation under rule.
func (e *Engine) Step(rule core.Rule) {
	clear(e.tally)
	for c := range e.cur {
		for _, o := range core.Neighbors {
			e.tally[c.Add(o)]++
		}
	}

	clear(e.nxt)
	for c, n := range e.tally {
		_, alive := e.cur[c]
		if rule.Next(alive, int(n)) {
			e.nxt[c] = struct{}{}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.gen++
}
