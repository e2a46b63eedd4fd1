package app

import (
	"flag"
	"fmt"
	"image"
	"log"
	"strconv"
	"strings"

	"sparse-life/internal/core"
	grid "sparse-life/pkg/core"
)

// Config represents the command-line parameters shared by every host.
type Config struct {
	FPS     int
	Scale   int
	CamX    float64
	CamY    float64
	Rule    string
	Brush   string
	Width   int
	Height  int
	Saves   string
	Slot    string
	Seed    int64
	Density float64
	Paused  bool
	Sound   bool

	// Overrides holds repeated -set key=value flags, applied by Normalize.
	Overrides KVList
}

// KVList is a repeatable key=value flag.
type KVList []string

func (l *KVList) String() string { return strings.Join(*l, ",") }

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs with later keys winning.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		FPS:     30,
		Scale:   10,
		Rule:    "life",
		Brush:   "cell",
		Width:   1600,
		Height:  900,
		Saves:   "saves",
		Slot:    "default",
		Seed:    42,
		Density: 0.3,
		Paused:  true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.FPS, "fps", c.FPS, "generations per second while running")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell edge length in pixels")
	fs.Float64Var(&c.CamX, "camx", c.CamX, "camera x in cells")
	fs.Float64Var(&c.CamY, "camy", c.CamY, "camera y in cells")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name or B/S notation, e.g. B36/S23")
	fs.StringVar(&c.Brush, "brush", c.Brush, "brush stamped by clicks ("+strings.Join(grid.BrushNames(), ", ")+")")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Saves, "saves", c.Saves, "directory holding save slots")
	fs.StringVar(&c.Slot, "slot", c.Slot, "save slot used by save and load")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells set by a random soup")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "click sound on toggles (terminal only)")
	fs.Var(&c.Overrides, "set", "override in key=value form using the flag names (repeatable)")
}

// FromMap overrides fields from string-keyed values, using the flag names as
// keys. Unknown keys are ignored.
func (c *Config) FromMap(m map[string]string) error {
	for key, raw := range m {
		var err error
		switch key {
		case "fps":
			c.FPS, err = strconv.Atoi(raw)
		case "scale":
			c.Scale, err = strconv.Atoi(raw)
		case "camx":
			c.CamX, err = strconv.ParseFloat(raw, 64)
		case "camy":
			c.CamY, err = strconv.ParseFloat(raw, 64)
		case "rule":
			c.Rule = raw
		case "brush":
			c.Brush = raw
		case "width":
			c.Width, err = strconv.Atoi(raw)
		case "height":
			c.Height, err = strconv.Atoi(raw)
		case "saves":
			c.Saves = raw
		case "slot":
			c.Slot = raw
		case "seed":
			c.Seed, err = strconv.ParseInt(raw, 10, 64)
		case "density":
			c.Density, err = strconv.ParseFloat(raw, 64)
		case "paused":
			c.Paused, err = strconv.ParseBool(raw)
		case "sound":
			c.Sound, err = strconv.ParseBool(raw)
		}
		if err != nil {
			return fmt.Errorf("config %s=%q: %w", key, raw, err)
		}
	}
	return nil
}

// Normalize applies -set overrides, clamps numeric fields into range and
// checks that the rule and brush resolve.
func (c *Config) Normalize() error {
	if err := c.FromMap(c.Overrides.Map()); err != nil {
		return err
	}
	c.FPS = min(max(c.FPS, 1), core.MaxFPS)
	c.Scale = max(c.Scale, 1)
	c.Width = max(c.Width, 1)
	c.Height = max(c.Height, 1)
	if c.Density <= 0 || c.Density > 1 {
		c.Density = 0.3
	}
	if _, err := grid.ParseRule(c.Rule); err != nil {
		return err
	}
	if _, ok := grid.LookupBrush(c.Brush); !ok {
		return fmt.Errorf("%w %q", grid.ErrUnknownBrush, c.Brush)
	}
	return nil
}

// Bounds is the window rectangle.
func (c *Config) Bounds() image.Rectangle { return image.Rect(0, 0, c.Width, c.Height) }

// Session builds the session configuration for a field covering bounds.
func (c *Config) Session(bounds image.Rectangle, store core.Store, logger *log.Logger) (core.SessionConfig, error) {
	if err := c.Normalize(); err != nil {
		return core.SessionConfig{}, err
	}
	rule, _ := grid.ParseRule(c.Rule)
	brush, _ := grid.LookupBrush(c.Brush)
	return core.SessionConfig{
		Bounds:  bounds,
		Scale:   c.Scale,
		CamX:    c.CamX,
		CamY:    c.CamY,
		FPS:     c.FPS,
		Rule:    rule,
		Brush:   brush,
		Store:   store,
		Slot:    c.Slot,
		Paused:  c.Paused,
		Seed:    c.Seed,
		Density: c.Density,
		Logger:  logger,
	}, nil
}
