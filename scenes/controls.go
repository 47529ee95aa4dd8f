package scenes

import (
	"strings"

	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/session"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/features/math"
)

// binding lists the keys and standard gamepad buttons behind one action.
type binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

var bindings = map[cfg.ActionID]binding{
	cfg.ActionPause: {
		Keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionSpecial: {
		Keys:    []ebiten.Key{ebiten.KeyQ},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionConfirm: {
		Keys:    []ebiten.Key{ebiten.KeyEnter},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionBack: {
		Keys:    []ebiten.Key{ebiten.KeyBackspace, ebiten.KeyM},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionTutorial: {
		Keys:    []ebiten.Key{ebiten.KeyT},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	cfg.ActionNext: {
		Keys:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyArrowRight, ebiten.KeyTab},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom, ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionPrev: {
		Keys:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowLeft},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop, ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionContinue: {
		Keys:    []ebiten.Key{ebiten.KeySpace},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
}

// controls polls ebiten once per frame and keeps the previous frame's
// actions for edge detection.
type controls struct {
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool

	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	touches  []ebiten.TouchID

	stick      ebiten.TouchID
	stickHeld  bool
	stickStart math.Vec2
}

func (c *controls) justPressed(a cfg.ActionID) bool {
	return c.current[a] && !c.previous[a]
}

// poll reads this frame's devices and returns the movement input for the
// session.
func (c *controls) poll() session.Input {
	c.previous = c.current
	c.current = [cfg.ActionCount]bool{}

	c.gamepads = ebiten.AppendGamepadIDs(c.gamepads[:0])
	for action, b := range bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				c.current[action] = true
			}
		}
		for _, gpID := range c.gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					c.current[action] = true
				}
			}
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		c.current[cfg.ActionSpecial] = true
	}

	in := session.Input{Keys: map[string]bool{}}
	c.keys = ebiten.AppendPressedKeys(c.keys[:0])
	for _, k := range c.keys {
		in.Keys[strings.ToLower(k.String())] = true
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Pointer = &math.Vec2{X: float64(x), Y: float64(y)}
	}

	if stick, ok := c.pollTouch(); ok {
		in.Touch = true
		in.Joystick = stick
	} else if stick, ok := c.pollStick(); ok {
		in.Touch = true
		in.Joystick = stick
	}
	return in
}

// pollTouch treats the first finger down as a floating joystick anchored
// where it landed.
func (c *controls) pollTouch() (math.Vec2, bool) {
	c.touches = inpututil.AppendJustPressedTouchIDs(c.touches[:0])
	if !c.stickHeld && len(c.touches) > 0 {
		c.stick = c.touches[0]
		c.stickHeld = true
		x, y := ebiten.TouchPosition(c.stick)
		c.stickStart = math.Vec2{X: float64(x), Y: float64(y)}
	}
	if !c.stickHeld {
		return math.Vec2{}, false
	}
	if inpututil.IsTouchJustReleased(c.stick) {
		c.stickHeld = false
		return math.Vec2{}, false
	}

	x, y := ebiten.TouchPosition(c.stick)
	v := math.Vec2{X: float64(x) - c.stickStart.X, Y: float64(y) - c.stickStart.Y}
	return clampUnit(gamemath.Scale(v, 1/cfg.Input.TouchJoystickRadius)), true
}

// pollStick reads the left analog stick of the first gamepad past the
// deadzone.
func (c *controls) pollStick() (math.Vec2, bool) {
	for _, gpID := range c.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := math.Vec2{
			X: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if gamemath.Magnitude(v) > cfg.Input.AnalogDeadzone {
			return clampUnit(v), true
		}
	}
	return math.Vec2{}, false
}

func clampUnit(v math.Vec2) math.Vec2 {
	if gamemath.Magnitude(v) > 1 {
		return gamemath.Normalize(v)
	}
	return v
}
