package term

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"strings"
	"testing"
	"time"

	"sparse-life/internal/core"
	grid "sparse-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

var _ core.Surface = (*Surface)(nil)

type recordingSetter struct {
	cells map[image.Point]tcell.Style
}

func (r *recordingSetter) SetContent(x, y int, _ rune, _ []rune, style tcell.Style) {
	r.cells[image.Pt(x, y)] = style
}

func TestSurfaceClipsToBounds(t *testing.T) {
	rec := &recordingSetter{cells: map[image.Point]tcell.Style{}}
	s := NewSurface(rec, image.Rect(0, 0, 5, 4))
	s.FillRect(image.Rect(3, 2, 9, 9), color.White)
	if len(rec.cells) != 2*2 {
		t.Fatalf("expected 4 cells written, got %d", len(rec.cells))
	}
	for p := range rec.cells {
		if !p.In(image.Rect(3, 2, 5, 4)) {
			t.Fatalf("wrote outside the surface at %v", p)
		}
	}
	s.FillRect(image.Rect(10, 10, 12, 12), color.White)
	if len(rec.cells) != 4 {
		t.Fatal("rectangle outside the surface must draw nothing")
	}
}

type countingSound struct{ clicks int }

func (c *countingSound) Click() { c.clicks++ }

func newHost(t *testing.T) (*Host, *countingSound) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 21)

	var logs bytes.Buffer
	s := core.NewSession(core.SessionConfig{Scale: 1, Paused: true, Logger: log.New(&logs, "", 0)})
	snd := &countingSound{}
	return NewHost(screen, s, snd, log.New(&logs, "", 0)), snd
}

func TestRunReturnsOnQuitKey(t *testing.T) {
	h, _ := newHost(t)
	h.screen.(tcell.SimulationScreen).InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	result := make(chan error, 1)
	go func() { result <- h.Run() }()
	select {
	case err := <-result:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after escape")
	}
}

func TestHostFieldLeavesStatusRow(t *testing.T) {
	h, _ := newHost(t)
	if h.Field() != image.Rect(0, 0, 40, 20) {
		t.Fatalf("field = %v", h.Field())
	}
	if h.session.Viewport().Bounds != h.Field() {
		t.Fatal("session viewport does not follow the field")
	}
}

func TestMouseReleaseTogglesCell(t *testing.T) {
	h, snd := newHost(t)
	h.HandleEvent(tcell.NewEventMouse(20, 10, tcell.Button1, tcell.ModNone))
	if h.session.Engine().Population() != 0 {
		t.Fatal("press alone must not edit")
	}
	h.HandleEvent(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone))
	// Scale 1, 40x20 field: pixel (20,10) maps to cell (1,1).
	if !h.session.Engine().Alive(grid.Cell{X: 1, Y: 1}) {
		t.Fatalf("expected (1,1) alive, got %v", h.session.Engine().Cells())
	}
	if snd.clicks != 1 {
		t.Fatalf("expected one click, got %d", snd.clicks)
	}

	h.HandleEvent(tcell.NewEventMouse(20, 20, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(20, 20, tcell.ButtonNone, tcell.ModNone))
	if h.session.Engine().Population() != 1 || snd.clicks != 1 {
		t.Fatal("clicks on the status row must be ignored")
	}
}

func TestWheelZooms(t *testing.T) {
	h, _ := newHost(t)
	h.HandleEvent(tcell.NewEventMouse(1, 1, tcell.WheelUp, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(1, 1, tcell.WheelUp, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(1, 1, tcell.WheelDown, tcell.ModNone))
	if h.session.Viewport().Scale != 2 {
		t.Fatalf("scale = %d", h.session.Viewport().Scale)
	}
}

func TestKeysMapToActions(t *testing.T) {
	h, _ := newHost(t)
	if !h.handleKey(tcell.KeyRune, ' ') || h.session.Paused() {
		t.Fatal("space should resume")
	}
	h.handleKey(tcell.KeyRight, 0)
	if h.session.Viewport().CamX != 2 {
		t.Fatalf("pan right moved camera to %v", h.session.Viewport().CamX)
	}
	h.handleKey(tcell.KeyRune, 'x')
	if h.session.Engine().Population() == 0 {
		t.Fatal("soup left an empty world")
	}
	h.handleKey(tcell.KeyRune, 'c')
	if h.session.Engine().Population() != 0 {
		t.Fatal("clear left cells behind")
	}
	if h.handleKey(tcell.KeyRune, 'q') || h.handleKey(tcell.KeyEscape, 0) {
		t.Fatal("q and escape must quit")
	}
}

func TestResizeFollowsScreen(t *testing.T) {
	h, _ := newHost(t)
	h.screen.(tcell.SimulationScreen).SetSize(60, 30)
	h.HandleEvent(tcell.NewEventResize(60, 30))
	if h.session.Viewport().Bounds != image.Rect(0, 0, 60, 29) {
		t.Fatalf("viewport = %v", h.session.Viewport().Bounds)
	}
}

func TestDrawMarksClean(t *testing.T) {
	h, _ := newHost(t)
	h.session.ToggleCell(grid.Cell{})
	h.Draw()
	if h.session.Dirty() {
		t.Fatal("draw should mark the session clean")
	}
	if !strings.Contains(h.Status(), "pop 1") {
		t.Fatalf("status = %q", h.Status())
	}
}

func TestClickStreamerLength(t *testing.T) {
	s, err := clickStreamer(sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(clickLength); total != want {
		t.Fatalf("click has %d samples, expected %d", total, want)
	}
}
