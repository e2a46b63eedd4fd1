// Package viewport maps cells of the unbounded grid onto a rectangle of
// screen pixels and back.
//
// The camera position is the world coordinate drawn at the centre of the
// rectangle. Scale is the edge length of one cell in pixels. Cells whose
// pixel span crosses an edge of the rectangle are clipped so nothing is drawn
// outside it and no gap is left along it.
package viewport

import (
	"image"
	"math"
	"strings"

	"sparse-life/pkg/core"
)

// Clip records which edges of the viewport cut a cell.
type Clip uint8

const (
	ClipLeft Clip = 1 << iota
	ClipRight
	ClipUp
	ClipDown
)

// Has reports whether every edge in e is set.
func (c Clip) Has(e Clip) bool { return c&e == e }

func (c Clip) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, e := range []struct {
		bit  Clip
		name string
	}{{ClipLeft, "left"}, {ClipRight, "right"}, {ClipUp, "up"}, {ClipDown, "down"}} {
		if c&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

// Tile is the on-screen footprint of a visible cell.
type Tile struct {
	Cell core.Cell
	Rect image.Rectangle
	Clip Clip
}

// Viewport is a camera over the grid drawn into Bounds.
type Viewport struct {
	CamX, CamY float64
	Scale      int
	Bounds     image.Rectangle
}

// New returns a viewport; scale is clamped to at least 1.
func New(bounds image.Rectangle, scale int, camX, camY float64) *Viewport {
	v := &Viewport{CamX: camX, CamY: camY, Bounds: bounds.Canon()}
	v.SetScale(scale)
	return v
}

// SetScale sets the cell size in pixels, clamped to at least 1.
func (v *Viewport) SetScale(s int) {
	if s < 1 {
		s = 1
	}
	v.Scale = s
}

// Zoom changes the scale by delta. A result below 1 is clamped to 1.
func (v *Viewport) Zoom(delta int) { v.SetScale(v.Scale + delta) }

// Pan moves the camera by a delta in world units.
func (v *Viewport) Pan(dx, dy float64) {
	v.CamX += dx
	v.CamY += dy
}

// PanStep is the distance, in world units, of one keyboard pan for a field
// of the given pixel width.
func (v *Viewport) PanStep(fieldWidth int) float64 {
	return float64(fieldWidth) / 20 / float64(v.Scale)
}

// Resize moves the viewport to a new screen rectangle. Camera and scale are
// kept.
func (v *Viewport) Resize(bounds image.Rectangle) { v.Bounds = bounds.Canon() }

// Contains reports whether p lies inside the viewport rectangle.
func (v *Viewport) Contains(p image.Point) bool { return p.In(v.Bounds) }

// WorldToScreen returns the tile for c and whether any part of it is
// visible. Fractional camera offsets are floored to whole pixels.
func (v *Viewport) WorldToScreen(c core.Cell) (Tile, bool) {
	s := v.Scale
	halfW := v.Bounds.Dx() / 2
	halfH := v.Bounds.Dy() / 2

	px := (float64(c.X) - v.CamX) * float64(s)
	py := (float64(c.Y) - v.CamY) * float64(s)

	x, w, clipX, ok := clipAxis(px, halfW, s, ClipLeft, ClipRight)
	if !ok {
		return Tile{}, false
	}
	y, h, clipY, ok := clipAxis(py, halfH, s, ClipUp, ClipDown)
	if !ok {
		return Tile{}, false
	}

	r := image.Rect(x, y, x+w, y+h).Add(v.Bounds.Min)
	return Tile{Cell: c, Rect: r, Clip: clipX | clipY}, true
}

// clipAxis classifies one axis of a cell whose leading edge sits offset
// pixels from the viewport centre and returns its clipped start and length
// relative to the viewport origin.
func clipAxis(offset float64, half, s int, before, after Clip) (start, length int, clip Clip, ok bool) {
	fh, fs := float64(half), float64(s)
	if offset < -fh-fs || offset >= fh {
		return 0, 0, 0, false
	}
	start = int(math.Floor(offset + fh))
	length = s
	if offset < -fh {
		clip |= before
		length = start + s
		start = 0
	}
	if offset >= fh-fs {
		clip |= after
		length = 2*half - start
	}
	return start, length, clip, true
}

// ScreenToWorld returns the cell under pixel p. Near cell edges the result
// can differ by one from the tile WorldToScreen draws there; the formula is
// kept as is so clicks land where they always have.
func (v *Viewport) ScreenToWorld(p image.Point) core.Cell {
	s := float64(v.Scale)
	w := float64(v.Bounds.Dx())
	h := float64(v.Bounds.Dy())
	x := math.Floor(v.CamX - (w/2-float64(p.X)+float64(v.Bounds.Min.X)-1)/s)
	y := math.Floor(v.CamY - (h/2-float64(p.Y)+float64(v.Bounds.Min.Y)-1)/s)
	return core.Cell{X: int(x), Y: int(y)}
}

// Project returns the tiles of the visible cells in cells.
func (v *Viewport) Project(cells []core.Cell) []Tile {
	tiles := make([]Tile, 0, len(cells))
	for _, c := range cells {
		if t, ok := v.WorldToScreen(c); ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Visible returns the range of world cells that can produce a tile, as a
// half-open rectangle.
func (v *Viewport) Visible() image.Rectangle {
	s := float64(v.Scale)
	halfW := float64(v.Bounds.Dx() / 2)
	halfH := float64(v.Bounds.Dy() / 2)
	minX := int(math.Ceil(v.CamX + (-halfW-s)/s))
	minY := int(math.Ceil(v.CamY + (-halfH-s)/s))
	maxX := int(math.Ceil(v.CamX + halfW/s))
	maxY := int(math.Ceil(v.CamY + halfH/s))
	return image.Rect(minX, minY, maxX, maxY)
}
