package viewport

import (
	"image"
	"testing"

	"sparse-life/pkg/core"
)

func TestVisibilityBoundary(t *testing.T) {
	const w, h, s = 800, 600, 10
	v := New(image.Rect(0, 0, w, h), s, 0, 0)

	if _, ok := v.WorldToScreen(core.Cell{X: w / (2 * s), Y: 0}); ok {
		t.Fatal("cell on the right boundary must not be visible")
	}
	tile, ok := v.WorldToScreen(core.Cell{X: w/(2*s) - 1, Y: 0})
	if !ok {
		t.Fatal("last column must be visible")
	}
	if tile.Clip != ClipRight {
		t.Fatalf("expected right clip, got %v", tile.Clip)
	}
	if tile.Rect.Max.X != w {
		t.Fatalf("right-clipped tile must end on the viewport edge, got %v", tile.Rect)
	}
}

func TestUnclippedTile(t *testing.T) {
	v := New(image.Rect(0, 0, 800, 600), 10, 0, 0)
	tile, ok := v.WorldToScreen(core.Cell{X: 3, Y: -2})
	if !ok {
		t.Fatal("expected visible tile")
	}
	if want := image.Rect(430, 280, 440, 290); tile.Rect != want || tile.Clip != 0 {
		t.Fatalf("tile = %v clip %v, expected %v", tile.Rect, tile.Clip, want)
	}
}

func TestLeftAndUpClipping(t *testing.T) {
	v := New(image.Rect(0, 0, 100, 80), 10, 0.5, 0.25)

	// (-5 - 0.5) * 10 = -55, five pixels hang past the left edge.
	tile, ok := v.WorldToScreen(core.Cell{X: -5, Y: 0})
	if !ok {
		t.Fatal("expected partially visible tile")
	}
	if tile.Clip != ClipLeft {
		t.Fatalf("expected left clip, got %v", tile.Clip)
	}
	if tile.Rect.Min.X != 0 || tile.Rect.Dx() != 5 {
		t.Fatalf("left-clipped tile = %v, expected x=0 width 5", tile.Rect)
	}

	// Corner cell clipped on both axes.
	tile, ok = v.WorldToScreen(core.Cell{X: -5, Y: -4})
	if !ok {
		t.Fatal("expected corner tile to be visible")
	}
	if tile.Clip != ClipLeft|ClipUp {
		t.Fatalf("expected left|up clip, got %v", tile.Clip)
	}
	if tile.Rect.Min != (image.Point{}) {
		t.Fatalf("corner tile should be pinned to the origin, got %v", tile.Rect)
	}

	if _, ok := v.WorldToScreen(core.Cell{X: -6, Y: 0}); ok {
		t.Fatal("cell entirely past the left edge must be hidden")
	}
}

func TestTilesStayInsideBounds(t *testing.T) {
	bounds := image.Rect(30, 40, 30+257, 40+131)
	for _, cam := range [][2]float64{{0, 0}, {0.3, -0.7}, {-12.5, 4.25}} {
		for s := 1; s <= 17; s += 4 {
			v := New(bounds, s, cam[0], cam[1])
			vis := v.Visible()
			for y := vis.Min.Y - 2; y < vis.Max.Y+2; y++ {
				for x := vis.Min.X - 2; x < vis.Max.X+2; x++ {
					c := core.Cell{X: x, Y: y}
					tile, ok := v.WorldToScreen(c)
					inVisible := image.Pt(x, y).In(vis)
					if ok != inVisible {
						t.Fatalf("cam %v scale %d cell %v: visible=%v but Visible() says %v", cam, s, c, ok, inVisible)
					}
					if ok && !tile.Rect.Empty() && !tile.Rect.In(bounds) {
						t.Fatalf("cam %v scale %d cell %v: tile %v escapes %v", cam, s, c, tile.Rect, bounds)
					}
				}
			}
		}
	}
}

func TestScreenToWorldCenter(t *testing.T) {
	v := New(image.Rect(0, 50, 800, 650), 10, 2, -3)
	for _, c := range []core.Cell{{X: 2, Y: -3}, {X: 0, Y: 0}, {X: -30, Y: 20}, {X: 38, Y: -31}} {
		tile, ok := v.WorldToScreen(c)
		if !ok {
			t.Fatalf("cell %v should be visible", c)
		}
		center := image.Pt(tile.Rect.Min.X+v.Scale/2, tile.Rect.Min.Y+v.Scale/2)
		if got := v.ScreenToWorld(center); got != c {
			t.Fatalf("ScreenToWorld(%v) = %v, expected %v", center, got, c)
		}
	}
}

func TestScreenToWorldEdgeOffByOne(t *testing.T) {
	v := New(image.Rect(0, 0, 800, 600), 10, 0, 0)
	// Cell 0 is drawn on pixels [400, 410); the last pixel maps one cell on.
	if got := v.ScreenToWorld(image.Pt(409, 300)); got.X != 1 {
		t.Fatalf("expected the documented edge shift to cell 1, got %v", got)
	}
	if got := v.ScreenToWorld(image.Pt(400, 300)); got.X != 0 {
		t.Fatalf("expected cell 0 at its first pixel, got %v", got)
	}
}

func TestZoomClamps(t *testing.T) {
	v := New(image.Rect(0, 0, 10, 10), 0, 0, 0)
	if v.Scale != 1 {
		t.Fatalf("New must clamp scale, got %d", v.Scale)
	}
	v.Zoom(3)
	if v.Scale != 4 {
		t.Fatalf("expected scale 4, got %d", v.Scale)
	}
	v.Zoom(-10)
	if v.Scale != 1 {
		t.Fatalf("zoom below 1 must clamp, got %d", v.Scale)
	}
}

func TestPanAndContains(t *testing.T) {
	v := New(image.Rect(0, 0, 1600, 850), 10, 0, 0)
	step := v.PanStep(1600)
	if step != 8 {
		t.Fatalf("pan step = %v, expected 8", step)
	}
	v.Pan(step, -step)
	if v.CamX != 8 || v.CamY != -8 {
		t.Fatalf("camera = (%v, %v)", v.CamX, v.CamY)
	}
	if !v.Contains(image.Pt(0, 0)) || v.Contains(image.Pt(0, 850)) {
		t.Fatal("Contains must treat the bounds as half-open")
	}
	v.Resize(image.Rect(0, 0, 640, 480))
	if v.CamX != 8 || v.Bounds.Dx() != 640 {
		t.Fatal("resize must keep the camera and update the rectangle")
	}
}

func TestProjectSkipsHidden(t *testing.T) {
	v := New(image.Rect(0, 0, 100, 100), 10, 0, 0)
	tiles := v.Project([]core.Cell{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: -2, Y: 3}})
	if len(tiles) != 2 {
		t.Fatalf("expected 2 tiles, got %d", len(tiles))
	}
	if tiles[0].Cell != (core.Cell{}) || tiles[1].Cell != (core.Cell{X: -2, Y: 3}) {
		t.Fatalf("unexpected tiles %v", tiles)
	}
}

func TestClipString(t *testing.T) {
	if got := (ClipLeft | ClipDown).String(); got != "left|down" {
		t.Fatalf("unexpected %q", got)
	}
	if Clip(0).String() != "none" {
		t.Fatal("zero clip should print none")
	}
	c := ClipLeft | ClipDown
	if !c.Has(ClipLeft) || c.Has(ClipUp) || c.Has(ClipLeft|ClipUp) {
		t.Fatal("Has must require every requested edge")
	}
}
