package graph

// Action is the outcome a box reports after interpreting one event.
type Action int

const (
	ActionNone Action = iota
	ActionDrag
	ActionInput
	ActionDelete
	ActionHover
	ActionHoverDrop

	// Top strip = parent side, bottom strip = child side.
	ActionStartTop
	ActionStartBottom
	ActionEndTop
	ActionEndBottom

	// A boxes only.
	ActionToggleComplete
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionDrag:
		return "drag"
	case ActionInput:
		return "input"
	case ActionDelete:
		return "delete"
	case ActionHover:
		return "hover"
	case ActionHoverDrop:
		return "hover-drop"
	case ActionStartTop:
		return "start-top"
	case ActionStartBottom:
		return "start-bottom"
	case ActionEndTop:
		return "end-top"
	case ActionEndBottom:
		return "end-bottom"
	case ActionToggleComplete:
		return "toggle-complete"
	default:
		return "unknown"
	}
}
