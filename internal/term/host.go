// Package term runs a session inside a terminal using tcell. Every terminal
// cell is one pixel of the field; the bottom row carries the status line.
package term

import (
	"fmt"
	"image"
	"log"
	"time"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	grid "sparse-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

var (
	statusStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	runStyle    = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	pauseStyle  = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
)

// Host drives a session from terminal events.
type Host struct {
	screen  tcell.Screen
	session *core.Session
	surface *Surface
	sound   Sound
	logger  *log.Logger

	width, height int
	pressed       bool
}

// NewHost wires session to an initialised screen. sound may be nil.
func NewHost(screen tcell.Screen, session *core.Session, sound Sound, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	h := &Host{
		screen:  screen,
		session: session,
		sound:   sound,
		logger:  logger,
		surface: NewSurface(screen, image.Rectangle{}),
	}
	screen.EnableMouse()
	h.resize()
	return h
}

// Field is the part of the screen showing the grid.
func (h *Host) Field() image.Rectangle { return image.Rect(0, 0, h.width, max(h.height-1, 0)) }

// Run processes events and ticks until the user quits.
func (h *Host) Run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.session.Tick()
			if h.session.Dirty() {
				h.Draw()
			}
		}
	}
}

// HandleEvent applies one terminal event. It reports false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.handleMouse(image.Pt(x, y), ev.Buttons())
	}
	return true
}

func (h *Host) handleKey(key tcell.Key, r rune) bool {
	var a app.Action
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a = app.ActionQuit
	case tcell.KeyUp:
		a = app.ActionPanUp
	case tcell.KeyDown:
		a = app.ActionPanDown
	case tcell.KeyLeft:
		a = app.ActionPanLeft
	case tcell.KeyRight:
		a = app.ActionPanRight
	case tcell.KeyF5:
		a = app.ActionSave
	case tcell.KeyF9:
		a = app.ActionLoad
	case tcell.KeyRune:
		a = app.RuneAction(r)
	}
	return app.Apply(h.session, a)
}

func (h *Host) handleMouse(p image.Point, buttons tcell.ButtonMask) {
	switch {
	case buttons&tcell.WheelUp != 0:
		h.session.Zoom(1)
	case buttons&tcell.WheelDown != 0:
		h.session.Zoom(-1)
	case buttons&tcell.Button1 != 0:
		h.pressed = true
	case h.pressed:
		// Release: the edit happens on button up.
		h.pressed = false
		if h.session.ClickAt(p) && h.sound != nil {
			h.sound.Click()
		}
	}
}

func (h *Host) resize() {
	h.width, h.height = h.screen.Size()
	h.session.Resize(h.Field())
	h.surface.SetBounds(h.Field())
}

// Draw renders the field and the status line, then flushes the screen.
func (h *Host) Draw() {
	h.session.Render(h.surface)
	h.drawStatus()
	h.screen.Show()
	h.session.MarkClean()
}

func (h *Host) drawStatus() {
	if h.height < 1 {
		return
	}
	y := h.height - 1
	for x := 0; x < h.width; x++ {
		h.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
	label, style := " RUN ", runStyle
	if h.session.Paused() {
		label, style = " PAUSED ", pauseStyle
	}
	x := drawText(h.screen, 0, y, label, style)
	drawText(h.screen, x+1, y, h.Status(), statusStyle)
}

// Status is the text shown after the run/pause marker.
func (h *Host) Status() string {
	e := h.session.Engine()
	return fmt.Sprintf("gen %d  pop %d  %s  brush %s  scale %d  [spc]run [n]step [x]soup [r]ule [b]rush [F5/F9]save/load [q]uit",
		e.Generation(), e.Population(), grid.RuleName(h.session.Rule()), h.session.Brush().Name, h.session.Viewport().Scale)
}
