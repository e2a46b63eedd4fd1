//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff    = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonTextOn = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonTextNo = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the parameter panel to the right of the field.
type HUD struct {
	src      ParameterSource
	controls *Controls
	rect     image.Rectangle
}

// NewHUD constructs a HUD for src with a panel of the given width.
func NewHUD(src ParameterSource, width int) *HUD {
	return &HUD{src: src, controls: NewControls(src, width)}
}

// Update refreshes the cached values and applies clicks on the +/- buttons.
// It reports whether a click landed on the panel.
func (h *HUD) Update(panel image.Rectangle) bool {
	if h == nil {
		return false
	}
	h.rect = panel
	h.controls.Refresh(h.src.Parameters())
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	p := image.Pt(ebiten.CursorPosition())
	if !p.In(panel) {
		return false
	}
	h.controls.Click(p.Sub(panel.Min))
	h.controls.Refresh(h.src.Parameters())
	return true
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.rect.Empty() {
		return
	}
	panel := screen.SubImage(h.rect).(*ebiten.Image)
	panel.Fill(panelColor)
	ox, oy := h.rect.Min.X, h.rect.Min.Y
	face := basicfont.Face7x13

	text.Draw(screen, "Controls", face, ox+panelPadding, oy+panelPadding+headerBaseline, titleColor)
	for i := range h.controls.states {
		st := &h.controls.states[i]
		y := oy + st.top + labelBaseline
		text.Draw(screen, st.control.Label, face, ox+panelPadding, y, labelColor)

		valueColor := labelColor
		if !st.hasValue {
			valueColor = dimColor
		}
		w := text.BoundString(face, st.value).Dx()
		text.Draw(screen, st.value, face, ox+st.minusRect.Min.X-buttonGap-w, y, valueColor)

		h.drawButton(screen, st.minusRect.Add(h.rect.Min), "-", h.controls.CanAdjust(i, -1))
		h.drawButton(screen, st.plusRect.Add(h.rect.Min), "+", h.controls.CanAdjust(i, 1))
	}

	y := oy + h.controls.Bottom() + infoSpacing
	for _, group := range h.controls.Snapshot().Groups {
		text.Draw(screen, group.Name, face, ox+panelPadding, y, titleColor)
		y += infoSpacing
		for _, p := range group.Params {
			text.Draw(screen, p.Label+": "+p.Value, face, ox+panelPadding, y, dimColor)
			y += infoSpacing
		}
		y += infoSpacing / 2
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, buttonTextOn
	if !enabled {
		bg, fg = buttonOff, buttonTextNo
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(screen, label, face, x, y, fg)
}
