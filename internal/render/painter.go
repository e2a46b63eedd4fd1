//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws session frames onto an ebiten image.
type Painter struct {
	dst *ebiten.Image
}

// NewPainter returns a painter with no target; call Target before drawing.
func NewPainter() *Painter { return &Painter{} }

// Target selects the image the next FillRect calls draw on.
func (p *Painter) Target(dst *ebiten.Image) { p.dst = dst }

// FillRect paints r. Pixels outside the target are dropped by ebiten.
func (p *Painter) FillRect(r image.Rectangle, c color.Color) {
	if p.dst == nil {
		return
	}
	r = r.Canon()
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(p.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}
