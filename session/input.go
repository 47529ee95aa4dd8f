package session

import (
	"github.com/automoto/squadfall/components"
	"github.com/yohamta/donburi/features/math"
)

// Input is what the host saw this tick.
type Input struct {
	Keys     map[string]bool // held key names, lower case ("w", "arrowup")
	Pointer  *math.Vec2      // viewport coordinates; nil when there is no pointer
	Joystick math.Vec2       // unit-bounded deflection
	Touch    bool
}

func (in Input) copyTo(dst *components.InputData) {
	clear(dst.Keys)
	if dst.Keys == nil {
		dst.Keys = make(map[string]bool, len(in.Keys))
	}
	for k, held := range in.Keys {
		if held {
			dst.Keys[k] = true
		}
	}
	dst.Pointer = nil
	if in.Pointer != nil {
		p := *in.Pointer
		dst.Pointer = &p
	}
	dst.Joystick = in.Joystick
	dst.Touch = in.Touch
}
