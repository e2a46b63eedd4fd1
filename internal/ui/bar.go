package ui

import (
	"fmt"
	"image"
	"image/color"
)

// DefaultBarHeight is the height of the pause bar in pixels.
const DefaultBarHeight = 50

var (
	runningColor = color.RGBA{R: 40, G: 160, B: 60, A: 255}
	pausedColor  = color.RGBA{R: 190, G: 40, B: 40, A: 255}
)

// Layout splits the window into the simulation field, the HUD panel on the
// right and the pause bar along the bottom of the field. Sizes that do not
// fit are shrunk to zero.
func Layout(window image.Rectangle, hudWidth, barHeight int) (field, panel, bar image.Rectangle) {
	window = window.Canon()
	hudWidth = min(max(hudWidth, 0), window.Dx())
	barHeight = min(max(barHeight, 0), window.Dy())

	split := window.Max.X - hudWidth
	panel = image.Rect(split, window.Min.Y, window.Max.X, window.Max.Y)
	field = image.Rect(window.Min.X, window.Min.Y, split, window.Max.Y-barHeight)
	bar = image.Rect(window.Min.X, window.Max.Y-barHeight, split, window.Max.Y)
	return field, panel, bar
}

// Bar is the strip that pauses and resumes the simulation.
type Bar struct {
	Rect image.Rectangle
}

// Hit reports whether p is on the bar.
func (b Bar) Hit(p image.Point) bool { return p.In(b.Rect) }

// Label is the action a click performs.
func (b Bar) Label(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}

// Color is green while running and red while paused.
func (b Bar) Color(paused bool) color.RGBA {
	if paused {
		return pausedColor
	}
	return runningColor
}

// Status formats the counters shown next to the button label.
func Status(generation, population int, rule string) string {
	return fmt.Sprintf("gen %d  pop %d  %s", generation, population, rule)
}
