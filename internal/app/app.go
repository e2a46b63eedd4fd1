//go:build ebiten

package app

import (
	"image"

	"sparse-life/internal/core"
	"sparse-life/internal/render"
	"sparse-life/internal/ui"
	grid "sparse-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in pixels.
const HUDWidth = 220

var keyActions = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionTogglePause},
	{ebiten.KeyN, ActionStep},
	{ebiten.KeyC, ActionClear},
	{ebiten.KeyX, ActionSoup},
	{ebiten.KeyB, ActionNextBrush},
	{ebiten.KeyF5, ActionSave},
	{ebiten.KeyF9, ActionLoad},
	{ebiten.KeyW, ActionPanUp},
	{ebiten.KeyArrowUp, ActionPanUp},
	{ebiten.KeyS, ActionPanDown},
	{ebiten.KeyArrowDown, ActionPanDown},
	{ebiten.KeyA, ActionPanLeft},
	{ebiten.KeyArrowLeft, ActionPanLeft},
	{ebiten.KeyD, ActionPanRight},
	{ebiten.KeyArrowRight, ActionPanRight},
	{ebiten.KeyEqual, ActionZoomIn},
	{ebiten.KeyMinus, ActionZoomOut},
	{ebiten.KeyQ, ActionQuit},
	{ebiten.KeyEscape, ActionQuit},
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *core.Session
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	hudWidth  int
	barHeight int
	panel     image.Rectangle
}

// New constructs a Game driving session.
func New(session *core.Session, hudWidth, barHeight int) *Game {
	return &Game{
		session:   session,
		painter:   render.NewPainter(),
		hud:       ui.NewHUD(session, hudWidth),
		overlay:   ui.NewOverlay(),
		hudWidth:  hudWidth,
		barHeight: barHeight,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		if !inpututil.IsKeyJustPressed(ka.key) {
			continue
		}
		a := ka.action
		if a == ActionNextBrush && ebiten.IsKeyPressed(ebiten.KeyShift) {
			a = ActionPrevBrush
		}
		if !Apply(g.session, a) {
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			Apply(g.session, ActionPrevRule)
		} else {
			Apply(g.session, ActionNextRule)
		}
	}

	if _, dy := ebiten.Wheel(); dy > 0 {
		Apply(g.session, ActionZoomIn)
	} else if dy < 0 {
		Apply(g.session, ActionZoomOut)
	}

	g.hud.Update(g.panel)
	if g.overlay.Update() {
		Apply(g.session, ActionTogglePause)
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.ClickAt(image.Pt(ebiten.CursorPosition()))
	}

	g.session.Tick()
	return nil
}

// Draw renders the field, the overlay, the HUD and the pause bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Target(screen)
	g.session.Render(g.painter)
	g.overlay.DrawField(screen, g.session.Viewport(), g.session.Brush())
	g.hud.Draw(screen)

	e := g.session.Engine()
	status := ui.Status(e.Generation(), e.Population(), grid.RuleName(g.session.Rule()))
	g.overlay.DrawBar(screen, g.session.Paused(), status)
	g.session.MarkClean()
}

// Layout keeps the logical screen equal to the window and moves the field,
// panel and bar to fit it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	field, panel, bar := ui.Layout(image.Rect(0, 0, outsideWidth, outsideHeight), g.hudWidth, g.barHeight)
	g.session.Resize(field)
	g.panel = panel
	g.overlay.Bar.Rect = bar
	return outsideWidth, outsideHeight
}
