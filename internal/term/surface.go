package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// ContentSetter is the part of tcell.Screen a Surface draws through.
type ContentSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Surface paints session frames onto terminal cells, one pixel per cell.
type Surface struct {
	dst    ContentSetter
	bounds image.Rectangle
}

// NewSurface returns a surface that never writes outside bounds.
func NewSurface(dst ContentSetter, bounds image.Rectangle) *Surface {
	return &Surface{dst: dst, bounds: bounds.Canon()}
}

// SetBounds moves the drawable area after a resize.
func (s *Surface) SetBounds(bounds image.Rectangle) { s.bounds = bounds.Canon() }

// FillRect paints r as blank cells with c as background.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	r = r.Canon().Intersect(s.bounds)
	if r.Empty() {
		return
	}
	style := tcell.StyleDefault.Background(tcellColor(c))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.dst.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes str left to right from (x, y).
func drawText(dst ContentSetter, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		dst.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func tcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
