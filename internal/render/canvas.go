package render

import (
	"image"
	"image/color"
)

// Canvas is an in-memory RGBA surface. Headless hosts and tests render a
// session into it and inspect the pixels afterwards.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a transparent canvas covering bounds.
func NewCanvas(bounds image.Rectangle) *Canvas {
	return &Canvas{img: image.NewRGBA(bounds)}
}

// Bounds returns the pixel rectangle of the canvas.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// At returns the pixel at (x, y), or transparent black outside the canvas.
func (c *Canvas) At(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

// Fill paints the whole canvas.
func (c *Canvas) Fill(col color.Color) { c.FillRect(c.img.Rect, col) }

// FillRect paints r clipped to the canvas.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Canon().Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	px := rgba(col)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := c.img.PixOffset(r.Min.X, y)
		fillRow(c.img.Pix[start:start+4*r.Dx()], px)
	}
}

// Count returns how many pixels inside r carry exactly col.
func (c *Canvas) Count(r image.Rectangle, col color.Color) int {
	r = r.Canon().Intersect(c.img.Rect)
	want := rgba(col)
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

// fillRow writes px into every 4-byte pixel of buf.
func fillRow(buf []byte, px color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

func rgba(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
