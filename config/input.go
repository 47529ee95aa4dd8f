package config

import "time"

// ActionID represents a logical host action that becomes a session command.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPause
	ActionSpecial
	ActionConfirm
	ActionBack
	ActionTutorial
	ActionNext
	ActionPrev
	ActionContinue
	ActionCount // Must be last - used for array sizing
)

// MoveBinding maps held key names onto one movement axis contribution.
type MoveBinding struct {
	Keys   []string
	DX, DY float64
}

// InputConfig holds key names the simulation understands.
type InputConfig struct {
	Move []MoveBinding

	AnalogDeadzone      float64
	TouchJoystickRadius float64

	// Terminals report key presses but no releases, so a key counts as held
	// for this long after its last repeat.
	TerminalHold time.Duration
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Move: []MoveBinding{
			{Keys: []string{"w", "arrowup"}, DY: -1},
			{Keys: []string{"s", "arrowdown"}, DY: 1},
			{Keys: []string{"a", "arrowleft"}, DX: -1},
			{Keys: []string{"d", "arrowright"}, DX: 1},
		},
		AnalogDeadzone:      0.25,
		TouchJoystickRadius: 60,
		TerminalHold:        150 * time.Millisecond,
	}
}
