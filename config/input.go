package config

// ActionID represents a logical game action. Physical key and gamepad
// bindings live in the input package so this package stays headless.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionFire
	ActionTogglePause
	ActionRestart
	ActionChat
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "moveLeft",
	ActionMoveRight:   "moveRight",
	ActionJump:        "jump",
	ActionFire:        "fire",
	ActionTogglePause: "togglePause",
	ActionRestart:     "restart",
	ActionChat:        "chat",
	ActionMenuUp:      "menuUp",
	ActionMenuDown:    "menuDown",
	ActionMenuSelect:  "menuSelect",
	ActionMenuBack:    "menuBack",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds tunables for input polling
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input = InputConfig{AnalogDeadzone: 0.25}
