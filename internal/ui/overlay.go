//go:build ebiten

package ui

import (
	"image"
	"image/color"

	grid "sparse-life/pkg/core"
	"sparse-life/pkg/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// minGridScale is the smallest cell size that still gets grid lines.
const minGridScale = 4

var (
	gridColor  = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	ghostColor = color.RGBA{R: 120, G: 180, B: 255, A: 110}
	barText    = color.RGBA{R: 245, G: 245, B: 245, A: 255}
)

// Overlay draws the pause bar plus the optional grid lines and brush preview
// over the field.
type Overlay struct {
	Bar       Bar
	showGrid  bool
	showGhost bool
}

// NewOverlay constructs an overlay with the brush preview enabled.
func NewOverlay() *Overlay { return &Overlay{showGhost: true} }

// Update toggles the grid (G) and brush preview (H). It reports whether the
// pause bar was clicked.
func (o *Overlay) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showGhost = !o.showGhost
	}
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return false
	}
	return o.Bar.Hit(image.Pt(ebiten.CursorPosition()))
}

// DrawField paints grid lines and the brush preview under the cursor.
func (o *Overlay) DrawField(screen *ebiten.Image, v *viewport.Viewport, brush grid.Brush) {
	if o.showGrid && v.Scale >= minGridScale {
		o.drawGrid(screen, v)
	}
	if !o.showGhost {
		return
	}
	p := image.Pt(ebiten.CursorPosition())
	if !v.Contains(p) {
		return
	}
	origin := v.ScreenToWorld(p)
	cells := make([]grid.Cell, len(brush.Offsets))
	for i, off := range brush.Offsets {
		cells[i] = origin.Add(off)
	}
	for _, t := range v.Project(cells) {
		r := t.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), ghostColor, false)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, v *viewport.Viewport) {
	vis := v.Visible()
	b := v.Bounds
	for x := vis.Min.X; x <= vis.Max.X; x++ {
		t, ok := v.WorldToScreen(grid.Cell{X: x, Y: vis.Min.Y})
		if !ok || t.Clip.Has(viewport.ClipLeft) {
			continue
		}
		fx := float32(t.Rect.Min.X)
		vector.StrokeLine(screen, fx, float32(b.Min.Y), fx, float32(b.Max.Y), 1, gridColor, false)
	}
	for y := vis.Min.Y; y <= vis.Max.Y; y++ {
		t, ok := v.WorldToScreen(grid.Cell{X: vis.Min.X, Y: y})
		if !ok || t.Clip.Has(viewport.ClipUp) {
			continue
		}
		fy := float32(t.Rect.Min.Y)
		vector.StrokeLine(screen, float32(b.Min.X), fy, float32(b.Max.X), fy, 1, gridColor, false)
	}
}

// DrawBar paints the pause bar with its label and the status line.
func (o *Overlay) DrawBar(screen *ebiten.Image, paused bool, status string) {
	r := o.Bar.Rect
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), o.Bar.Color(paused), false)

	face := basicfont.Face7x13
	label := o.Bar.Label(paused)
	b := text.BoundString(face, label)
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(screen, label, face, r.Min.X+(r.Dx()-b.Dx())/2, y, barText)
	text.Draw(screen, status, face, r.Min.X+panelPadding, y, barText)
}
