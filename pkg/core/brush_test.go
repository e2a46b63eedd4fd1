package core

import (
	"errors"
	"slices"
	"testing"
)

func TestParseBrush(t *testing.T) {
	b, err := ParseBrush("glider", `
.O.
..O
OOO`)
	if err != nil {
		t.Fatal(err)
	}
	want := []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if !slices.Equal(b.Offsets, want) {
		t.Fatalf("offsets = %v, expected %v", b.Offsets, want)
	}
}

func TestParseBrushRejectsJunk(t *testing.T) {
	if _, err := ParseBrush("bad", "O#O"); err == nil {
		t.Fatal("expected error for unknown pattern character")
	}
	if _, err := ParseBrush("empty", "...\n..."); err == nil {
		t.Fatal("expected error for pattern without live cells")
	}
}

func TestNewBrushRejectsDuplicates(t *testing.T) {
	_, err := NewBrush("twice", []Cell{{0, 0}, {1, 0}, {0, 0}})
	if !errors.Is(err, ErrDuplicateOffset) {
		t.Fatalf("expected ErrDuplicateOffset, got %v", err)
	}
}

func TestNewBrushCopiesOffsets(t *testing.T) {
	offsets := []Cell{{0, 0}, {1, 0}}
	b, err := NewBrush("pair", offsets)
	if err != nil {
		t.Fatal(err)
	}
	offsets[0] = Cell{X: 9, Y: 9}
	if b.Offsets[0] != (Cell{}) {
		t.Fatal("brush must not alias the caller's slice")
	}
}

func TestBrushRegistry(t *testing.T) {
	names := BrushNames()
	if len(names) == 0 || names[0] != SingleCell.Name {
		t.Fatalf("single cell brush should be listed first: %v", names)
	}
	for _, name := range names {
		b, ok := LookupBrush(name)
		if !ok {
			t.Fatalf("brush %q listed but not found", name)
		}
		if _, err := NewBrush(b.Name, b.Offsets); err != nil {
			t.Fatalf("registered brush %q invalid: %v", name, err)
		}
	}
	if _, ok := LookupBrush(" Glider "); !ok {
		t.Fatal("lookup should ignore case and surrounding space")
	}
}
