package ui

import (
	"image"
	"math"
	"strconv"

	"sparse-life/internal/core"
)

// ParameterSource is what the HUD reads. Sources that also implement the
// core setter interfaces get working +/- buttons.
type ParameterSource interface {
	Parameters() core.ParameterSnapshot
}

// Controls holds the layout and cached values of the HUD's adjustable
// parameters. It has no drawing code so hosts without a GUI can share it.
type Controls struct {
	width    int
	states   []controlState
	snapshot core.ParameterSnapshot

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewControls lays out the controls src exposes inside a panel of the given
// width.
func NewControls(src ParameterSource, width int) *Controls {
	c := &Controls{width: max(width, 0)}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, controlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		c.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		c.floatSetter = setter
	}
	c.layout()
	return c
}

// Len returns the number of controls.
func (c *Controls) Len() int { return len(c.states) }

// Bottom is the first panel row below the controls.
func (c *Controls) Bottom() int { return controlsTop + len(c.states)*lineHeight }

// Snapshot returns the values captured by the last Refresh.
func (c *Controls) Snapshot() core.ParameterSnapshot { return c.snapshot }

// Value returns the formatted value of control i.
func (c *Controls) Value(i int) string { return c.states[i].value }

// Refresh copies current values from the snapshot into the controls.
func (c *Controls) Refresh(snap core.ParameterSnapshot) {
	c.snapshot = snap
	for i := range c.states {
		st := &c.states[i]
		st.hasValue = false
		st.value = "--"
		p, ok := snap.Lookup(st.control.Key)
		if !ok {
			continue
		}
		switch st.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(p.Value)
			if err != nil {
				continue
			}
			st.intValue, st.floatValue = v, float64(v)
			st.value = strconv.Itoa(v)
			st.hasValue = true
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				continue
			}
			st.floatValue = v
			st.value = formatFloat(st.control, v)
			st.hasValue = true
		}
	}
}

// Click applies the button under p, given in panel coordinates. It reports
// whether a parameter changed.
func (c *Controls) Click(p image.Point) bool {
	for i := range c.states {
		st := &c.states[i]
		if !st.hasValue {
			continue
		}
		if p.In(st.minusRect) {
			return c.Adjust(i, -1)
		}
		if p.In(st.plusRect) {
			return c.Adjust(i, 1)
		}
	}
	return false
}

// Adjust moves control i one step in direction, clamped to its bounds.
func (c *Controls) Adjust(i, direction int) bool {
	st := &c.states[i]
	if direction == 0 || !st.hasValue {
		return false
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		if c.intSetter == nil {
			return false
		}
		target := st.intValue + direction*intStep(st.control)
		if st.control.HasMin {
			target = max(target, int(math.Round(st.control.Min)))
		}
		if st.control.HasMax {
			target = min(target, int(math.Round(st.control.Max)))
		}
		if target == st.intValue || !c.intSetter.SetIntParameter(st.control.Key, target) {
			return false
		}
		st.intValue, st.floatValue = target, float64(target)
		st.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		if c.floatSetter == nil {
			return false
		}
		target := st.floatValue + float64(direction)*floatStep(st.control)
		if st.control.HasMin {
			target = max(target, st.control.Min)
		}
		if st.control.HasMax {
			target = min(target, st.control.Max)
		}
		if math.Abs(target-st.floatValue) < 1e-9 || !c.floatSetter.SetFloatParameter(st.control.Key, target) {
			return false
		}
		st.floatValue = target
		st.value = formatFloat(st.control, target)
		return true
	}
	return false
}

// CanAdjust reports whether control i has room to move in direction.
func (c *Controls) CanAdjust(i, direction int) bool {
	st := &c.states[i]
	if direction == 0 || !st.hasValue {
		return false
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		if c.intSetter == nil {
			return false
		}
		target := st.intValue + direction*intStep(st.control)
		if st.control.HasMin && direction < 0 && target < int(math.Round(st.control.Min)) {
			return false
		}
		if st.control.HasMax && direction > 0 && target > int(math.Round(st.control.Max)) {
			return false
		}
		return true
	case core.ParamTypeFloat:
		if c.floatSetter == nil {
			return false
		}
		target := st.floatValue + float64(direction)*floatStep(st.control)
		if st.control.HasMin && direction < 0 && target < st.control.Min-1e-9 {
			return false
		}
		if st.control.HasMax && direction > 0 && target > st.control.Max+1e-9 {
			return false
		}
		return true
	}
	return false
}

func (c *Controls) layout() {
	for i := range c.states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(c.width-panelPadding-buttonSize, buttonY, c.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		c.states[i].top = top
		c.states[i].minusRect = minus
		c.states[i].plusRect = plus
	}
}

func intStep(ctrl core.ParameterControl) int {
	if step := int(math.Round(ctrl.Step)); step > 0 {
		return step
	}
	return 1
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step > 0 {
		return ctrl.Step
	}
	return 0.05
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := floatStep(ctrl); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
