//go:build !ebiten

package ui

import "image"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(ParameterSource, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(image.Rectangle) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
