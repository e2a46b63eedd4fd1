package app

import "sparse-life/internal/core"

// Action is a host-independent command bound to a key or button.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionStep
	ActionClear
	ActionSoup
	ActionNextRule
	ActionPrevRule
	ActionNextBrush
	ActionPrevBrush
	ActionSave
	ActionLoad
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionZoomIn
	ActionZoomOut
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:        "none",
	ActionTogglePause: "pause",
	ActionStep:        "step",
	ActionClear:       "clear",
	ActionSoup:        "soup",
	ActionNextRule:    "next-rule",
	ActionPrevRule:    "prev-rule",
	ActionNextBrush:   "next-brush",
	ActionPrevBrush:   "prev-brush",
	ActionSave:        "save",
	ActionLoad:        "load",
	ActionPanUp:       "pan-up",
	ActionPanDown:     "pan-down",
	ActionPanLeft:     "pan-left",
	ActionPanRight:    "pan-right",
	ActionZoomIn:      "zoom-in",
	ActionZoomOut:     "zoom-out",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// RuneAction maps the letter keys shared by every host. Upper case letters
// run the reverse of the cycling commands.
func RuneAction(r rune) Action {
	switch r {
	case ' ':
		return ActionTogglePause
	case 'n', 'N':
		return ActionStep
	case 'c', 'C':
		return ActionClear
	case 'x', 'X':
		return ActionSoup
	case 'r':
		return ActionNextRule
	case 'R':
		return ActionPrevRule
	case 'b':
		return ActionNextBrush
	case 'B':
		return ActionPrevBrush
	case 'w', 'W':
		return ActionPanUp
	case 's', 'S':
		return ActionPanDown
	case 'a', 'A':
		return ActionPanLeft
	case 'd', 'D':
		return ActionPanRight
	case '+', '=':
		return ActionZoomIn
	case '-', '_':
		return ActionZoomOut
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Apply runs a on the session. It reports false for ActionQuit so the host
// can leave its loop. Save and load errors are logged by the session.
func Apply(s *core.Session, a Action) bool {
	switch a {
	case ActionTogglePause:
		s.TogglePause()
	case ActionStep:
		s.Advance()
	case ActionClear:
		s.Clear()
	case ActionSoup:
		s.Scatter()
	case ActionNextRule:
		s.CycleRule(1)
	case ActionPrevRule:
		s.CycleRule(-1)
	case ActionNextBrush:
		s.CycleBrush(1)
	case ActionPrevBrush:
		s.CycleBrush(-1)
	case ActionSave:
		_ = s.Save()
	case ActionLoad:
		_ = s.Load()
	case ActionPanUp:
		s.PanKey(0, -1)
	case ActionPanDown:
		s.PanKey(0, 1)
	case ActionPanLeft:
		s.PanKey(-1, 0)
	case ActionPanRight:
		s.PanKey(1, 0)
	case ActionZoomIn:
		s.Zoom(1)
	case ActionZoomOut:
		s.Zoom(-1)
	case ActionQuit:
		return false
	}
	return true
}
