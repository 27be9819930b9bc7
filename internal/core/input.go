package core

// Action represents a semantic input, abstracted from physical key presses,
// pointer clicks and touches.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Any key, click or tap - the game's single input
	ActionScreenshot        // Ctrl+S - save the current frame
	ActionQuit              // Q, Ctrl+C - leave the host
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
