package core

import (
	"image"
	"image/color"

	"sparse-life/pkg/savefile"
)

// Surface is the display a Session renders into. Each host implements it
// over its own screen.
type Surface interface {
	// FillRect paints r with c. Empty rectangles draw nothing.
	FillRect(r image.Rectangle, c color.Color)
}

// Store reads and writes serialized live-cell sets by slot name. A slot that
// does not exist yet reads as the empty set.
type Store interface {
	Read(slot string) ([]byte, error)
	Write(slot string, data []byte) error
}

// MemStore is an in-memory Store, used by headless hosts and tests.
type MemStore map[string][]byte

// Read returns the data stored in slot, or the empty set.
func (m MemStore) Read(slot string) ([]byte, error) {
	if data, ok := m[slot]; ok {
		return append([]byte(nil), data...), nil
	}
	return []byte(savefile.Empty), nil
}

// Write replaces the contents of slot.
func (m MemStore) Write(slot string, data []byte) error {
	m[slot] = append([]byte(nil), data...)
	return nil
}
