package core

// ParamType tells the HUD how to parse and adjust a parameter value.
type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
	ParamTypeBool  ParamType = "bool"
	// ParamTypeText values are display-only, e.g. rule notation.
	ParamTypeText ParamType = "text"
)

// Parameter is one labelled value in a snapshot. Value is preformatted so
// hosts can print it without knowing the type.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup is a titled block of the HUD.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot is the state of a session at one frame, as shown on the
// HUD.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes a HUD +/- control. Bounds apply only when the
// matching Has flag is set.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType
	Step  float64

	Min, Max       float64
	HasMin, HasMax bool
}

// ParameterControlsProvider lists the controls a HUD should show.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter applies integer control changes.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter applies floating point control changes.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
