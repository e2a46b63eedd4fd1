package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDuplicateOffset reports a brush that would toggle a cell twice.
	ErrDuplicateOffset = errors.New("duplicate brush offset")
	// ErrUnknownBrush reports a brush name missing from the registry.
	ErrUnknownBrush = errors.New("unknown brush")
)

// Brush is a named stamp pattern. Offsets are relative to the stamp origin.
type Brush struct {
	Name    string
	Offsets []Cell
}

// SingleCell is the default brush; stamping it is equivalent to a toggle.
var SingleCell = Brush{Name: "cell", Offsets: []Cell{{0, 0}}}

// NewBrush validates offsets and returns an immutable brush. A repeated offset
// would cancel itself when stamped, so it is rejected.
func NewBrush(name string, offsets []Cell) (Brush, error) {
	seen := make(map[Cell]struct{}, len(offsets))
	for _, o := range offsets {
		if _, dup := seen[o]; dup {
			return Brush{}, fmt.Errorf("brush %q: %w %v", name, ErrDuplicateOffset, o)
		}
		seen[o] = struct{}{}
	}
	return Brush{Name: name, Offsets: slices.Clone(offsets)}, nil
}

// ParseBrush builds a brush from a plaintext pattern: one row per line, 'O'
// or '*' for a live cell, '.' or ' ' for a dead one. The top-left corner of
// the pattern is offset (0, 0).
func ParseBrush(name, pattern string) (Brush, error) {
	var offsets []Cell
	lines := strings.Split(strings.Trim(pattern, "\n"), "\n")
	for y, line := range lines {
		for x, ch := range strings.TrimRight(line, "\r") {
			switch ch {
			case 'O', 'o', '*':
				offsets = append(offsets, Cell{X: x, Y: y})
			case '.', ' ':
			default:
				return Brush{}, fmt.Errorf("brush %q: unexpected %q at row %d col %d", name, ch, y, x)
			}
		}
	}
	if len(offsets) == 0 {
		return Brush{}, fmt.Errorf("brush %q: pattern has no live cells", name)
	}
	return NewBrush(name, offsets)
}

// MustBrush is like ParseBrush but panics on error. It is meant for
// package-level pattern tables.
func MustBrush(name, pattern string) Brush {
	b, err := ParseBrush(name, pattern)
	if err != nil {
		panic(err)
	}
	return b
}

var brushes = map[string]Brush{}

// RegisterBrush adds a brush to the registry under its name.
func RegisterBrush(b Brush) {
	if b.Name == "" || len(b.Offsets) == 0 {
		return
	}
	brushes[strings.ToLower(b.Name)] = b
}

// LookupBrush returns the brush registered under name.
func LookupBrush(name string) (Brush, bool) {
	b, ok := brushes[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// BrushNames lists the registered brushes, the default single cell first.
func BrushNames() []string {
	names := make([]string, 0, len(brushes))
	for name := range brushes {
		if name == SingleCell.Name {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return append([]string{SingleCell.Name}, names...)
}

func init() {
	RegisterBrush(SingleCell)
	RegisterBrush(MustBrush("block", `
OO
OO`))
	RegisterBrush(MustBrush("blinker", `OOO`))
	RegisterBrush(MustBrush("glider", `
.O.
..O
OOO`))
	RegisterBrush(MustBrush("lwss", `
.O..O
O....
O...O
OOOO.`))
	RegisterBrush(MustBrush("r-pentomino", `
.OO
OO.
.O.`))
	RegisterBrush(MustBrush("acorn", `
.O.....
...O...
OO..OOO`))
	RegisterBrush(MustBrush("diehard", `
......O.
OO......
.O...OOO`))
}
