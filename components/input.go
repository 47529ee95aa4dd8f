package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData is the per-tick input snapshot.
type InputData struct {
	Keys     map[string]bool // held key names
	Pointer  *math.Vec2      // viewport coordinates, nil when unknown
	Joystick math.Vec2
	Touch    bool
}

var Input = donburi.NewComponentType[InputData]()
