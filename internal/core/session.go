package core

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strconv"

	grid "sparse-life/pkg/core"
	"sparse-life/pkg/savefile"
	"sparse-life/pkg/sims/life"
	"sparse-life/pkg/viewport"
)

// SessionConfig holds the initial state of a Session.
type SessionConfig struct {
	Bounds image.Rectangle
	Scale  int
	CamX   float64
	CamY   float64
	FPS    int

	Rule  grid.Rule
	Brush grid.Brush

	Store Store
	Slot  string

	Paused  bool
	Seed    int64
	Density float64

	Live   color.Color
	Dead   color.Color
	Logger *log.Logger
}

// Session is the call surface hosts drive: it owns the engine and the
// viewport, tracks the active rule and brush, and gates generations to the
// frame rate. All methods must be called from the host's loop goroutine.
type Session struct {
	engine *life.Engine
	view   *viewport.Viewport
	step   *FixedStep
	rng    *grid.RNG

	rule  grid.Rule
	brush grid.Brush

	store Store
	slot  string

	paused  bool
	dirty   bool
	density float64

	live   color.Color
	dead   color.Color
	logger *log.Logger
}

// NewSession builds a session from cfg. Zero values fall back to the
// standard rule, the single-cell brush, an in-memory store and white cells on
// black.
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		engine:  life.New(),
		view:    viewport.New(cfg.Bounds, cfg.Scale, cfg.CamX, cfg.CamY),
		step:    NewFixedStep(cfg.FPS),
		rng:     grid.NewRNG(cfg.Seed),
		rule:    cfg.Rule,
		brush:   cfg.Brush,
		store:   cfg.Store,
		slot:    cfg.Slot,
		paused:  cfg.Paused,
		density: cfg.Density,
		live:    cfg.Live,
		dead:    cfg.Dead,
		logger:  cfg.Logger,
		dirty:   true,
	}
	if s.rule == (grid.Rule{}) {
		s.rule = grid.Standard
	}
	if len(s.brush.Offsets) == 0 {
		s.brush = grid.SingleCell
	}
	if s.store == nil {
		s.store = MemStore{}
	}
	if s.slot == "" {
		s.slot = "default"
	}
	if s.density <= 0 || s.density > 1 {
		s.density = 0.3
	}
	if s.live == nil {
		s.live = color.White
	}
	if s.dead == nil {
		s.dead = color.Black
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// Engine exposes the simulation for read access.
func (s *Session) Engine() *life.Engine { return s.engine }

// Viewport exposes the camera.
func (s *Session) Viewport() *viewport.Viewport { return s.view }

// Rule returns the active rule.
func (s *Session) Rule() grid.Rule { return s.rule }

// Brush returns the active brush.
func (s *Session) Brush() grid.Brush { return s.brush }

// Paused reports whether ticks are suspended.
func (s *Session) Paused() bool { return s.paused }

// FPS returns the generation rate limit.
func (s *Session) FPS() int { return s.step.FPS() }

// Dirty reports whether the frame needs redrawing.
func (s *Session) Dirty() bool { return s.dirty }

// MarkClean records that the current state has been drawn.
func (s *Session) MarkClean() { s.dirty = false }

// ToggleCell flips a single cell.
func (s *Session) ToggleCell(c grid.Cell) {
	s.engine.Toggle(c)
	s.dirty = true
}

// StampBrush applies the active brush at origin.
func (s *Session) StampBrush(origin grid.Cell) {
	s.engine.Stamp(origin, s.brush)
	s.dirty = true
}

// ClickAt stamps the active brush on the cell under pixel p. Clicks outside
// the viewport are ignored and report false.
func (s *Session) ClickAt(p image.Point) bool {
	if !s.view.Contains(p) {
		return false
	}
	s.StampBrush(s.view.ScreenToWorld(p))
	return true
}

// Advance computes one generation under the active rule.
func (s *Session) Advance() {
	s.engine.Step(s.rule)
	s.dirty = true
}

// Tick advances one generation when the session is running and the frame
// interval has elapsed. It reports whether a generation was computed.
func (s *Session) Tick() bool {
	if s.paused || !s.step.ShouldStep() {
		return false
	}
	s.Advance()
	return true
}

// Clear kills every cell.
func (s *Session) Clear() {
	s.engine.Clear()
	s.dirty = true
}

// Scatter fills the visible area with random cells at the configured density.
func (s *Session) Scatter() {
	s.rng.Scatter(s.view.Visible(), s.density, func(c grid.Cell) {
		s.engine.Set(c, true)
	})
	s.dirty = true
}

// Pan moves the camera by a delta in world units.
func (s *Session) Pan(dx, dy float64) {
	s.view.Pan(dx, dy)
	s.dirty = true
}

// PanKey moves the camera one keyboard step in the direction (dirX, dirY).
func (s *Session) PanKey(dirX, dirY int) {
	d := s.view.PanStep(s.view.Bounds.Dx())
	s.Pan(float64(dirX)*d, float64(dirY)*d)
}

// Zoom changes the scale by delta, never below 1.
func (s *Session) Zoom(delta int) {
	s.view.Zoom(delta)
	s.dirty = true
}

// Resize moves the viewport to a new screen rectangle.
func (s *Session) Resize(bounds image.Rectangle) {
	if bounds.Canon() == s.view.Bounds {
		return
	}
	s.view.Resize(bounds)
	s.dirty = true
}

// SetRule swaps the rule used from the next generation on.
func (s *Session) SetRule(r grid.Rule) {
	s.rule = r
	s.dirty = true
}

// SetRuleByName selects a registered rule or parses B/S notation.
func (s *Session) SetRuleByName(name string) error {
	r, err := grid.ParseRule(name)
	if err != nil {
		return err
	}
	s.SetRule(r)
	return nil
}

// CycleRule moves through the registered rules by delta positions.
func (s *Session) CycleRule(delta int) {
	names := grid.RuleNames()
	next := cycle(names, grid.RuleName(s.rule), delta)
	r, _ := grid.LookupRule(next)
	s.SetRule(r)
}

// SetBrush selects the brush used by StampBrush and ClickAt.
func (s *Session) SetBrush(b grid.Brush) {
	if len(b.Offsets) == 0 {
		return
	}
	s.brush = b
	s.dirty = true
}

// SetBrushByName selects a registered brush.
func (s *Session) SetBrushByName(name string) error {
	b, ok := grid.LookupBrush(name)
	if !ok {
		return fmt.Errorf("%w %q", grid.ErrUnknownBrush, name)
	}
	s.SetBrush(b)
	return nil
}

// CycleBrush moves through the registered brushes by delta positions.
func (s *Session) CycleBrush(delta int) {
	next := cycle(grid.BrushNames(), s.brush.Name, delta)
	b, _ := grid.LookupBrush(next)
	s.SetBrush(b)
}

func cycle(names []string, current string, delta int) string {
	if len(names) == 0 {
		return current
	}
	idx := -1
	for i, n := range names {
		if n == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta > 0 {
			delta--
		}
		idx = 0
	}
	idx = ((idx+delta)%len(names) + len(names)) % len(names)
	return names[idx]
}

// SetFPS changes the generation rate limit, clamped to at least 1.
func (s *Session) SetFPS(fps int) {
	s.step.SetFPS(fps)
	s.dirty = true
}

// SetPaused suspends or resumes ticks.
func (s *Session) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	if !paused {
		s.step.Reset()
	}
	s.dirty = true
}

// TogglePause flips between running and paused.
func (s *Session) TogglePause() { s.SetPaused(!s.paused) }

// Save writes the live-cell set to the session's slot.
func (s *Session) Save() error {
	if err := s.store.Write(s.slot, savefile.Encode(s.engine.Cells())); err != nil {
		s.logger.Printf("save %q: %v", s.slot, err)
		return err
	}
	s.logger.Printf("saved %d cells to %q", s.engine.Population(), s.slot)
	return nil
}

// Load replaces the live-cell set with the contents of the session's slot.
// Malformed data leaves an empty world and is returned after being logged.
func (s *Session) Load() error {
	data, err := s.store.Read(s.slot)
	if err != nil {
		s.logger.Printf("load %q: %v", s.slot, err)
		return err
	}
	s.engine.Clear()
	s.dirty = true
	cells, err := savefile.Decode(data)
	if err != nil {
		s.logger.Printf("load %q: %v; starting from an empty world", s.slot, err)
		return fmt.Errorf("load %q: %w", s.slot, err)
	}
	s.engine.SetCells(cells)
	return nil
}

// Render draws the viewport background and every visible live cell.
func (s *Session) Render(dst Surface) {
	dst.FillRect(s.view.Bounds, s.dead)
	s.engine.Each(func(c grid.Cell) {
		if t, ok := s.view.WorldToScreen(c); ok {
			dst.FillRect(t.Rect, s.live)
		}
	})
}

// Parameters reports the session state for the HUD.
func (s *Session) Parameters() ParameterSnapshot {
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Simulation",
			Params: []Parameter{
				textParam("rule", "Rule", grid.RuleName(s.rule)+" "+s.rule.String()),
				textParam("brush", "Brush", s.brush.Name),
				intParam("fps", "FPS limit", s.FPS()),
				floatParam("density", "Soup density", s.density),
				intParam("generation", "Generation", s.engine.Generation()),
				intParam("population", "Population", s.engine.Population()),
				boolParam("paused", "Paused", s.paused),
			},
		},
		{
			Name: "View",
			Params: []Parameter{
				intParam("scale", "Scale", s.view.Scale),
				floatParam("cam_x", "Camera X", s.view.CamX),
				floatParam("cam_y", "Camera Y", s.view.CamY),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Session) ParameterControls() []ParameterControl {
	return []ParameterControl{
		{Key: "fps", Label: "FPS limit", Type: ParamTypeInt, Step: 1, Min: 1, Max: 240, HasMin: true, HasMax: true},
		{Key: "scale", Label: "Scale", Type: ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "density", Label: "Soup density", Type: ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer control. Values below 1 are clamped.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "fps":
		s.SetFPS(value)
	case "scale":
		s.view.SetScale(value)
		s.dirty = true
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point control.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != "density" {
		return false
	}
	s.density = min(max(value, 0.05), 1)
	s.dirty = true
	return true
}

func intParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

func textParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeText, Value: value}
}
