package systems

import (
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer moves the player from one input source, aims at the nearest
// visible enemy in range and fires the champion's weapon.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	interactive := playerInteractive(e)

	var move math.Vec2
	if interactive {
		var cameraBase math.Vec2
		if _, camera := getCamera(e); camera != nil {
			cameraBase = camera.Base
		}
		move = MoveIntent(getInput(e), obj.Box, cameraBase, player.Speed)
	}

	aim, hasAim := aimAt(e, obj.Box, player.Range, !inTutorial(e))

	// Weapon timers hold still during the between-wave countdown.
	canShoot := shootingAllowed(e)
	if !getRound(e).CountingDown() && canShoot {
		t := playerTrigger(player)
		t.tickReload()
		if player.ShootTimer > 0 {
			player.ShootTimer--
		}
		if interactive && hasAim && t.fire(e, gamemath.Center(obj.Box), aim, obj.ID) {
			player.LastDirection = aim
		}
	}

	player.Facing = facingFor(aim, hasAim, player.LastDirection)

	if !gamemath.IsZero(move) {
		margin := cfg.World.EdgeMargin
		obj.X = gamemath.Clamp(obj.X+move.X, margin, cfg.World.Width-obj.W-margin)
		obj.Y = gamemath.Clamp(obj.Y+move.Y, margin, cfg.World.Height-obj.H-margin)
	}

	player.Trail = pushTrail(player.Trail, gamemath.Center(obj.Box))
}

// MoveIntent resolves the movement vector from exactly one input source: the
// joystick on a touch device when deflected, else the pointer, else held keys.
// Pointer coordinates are viewport-relative and offset by the camera.
func MoveIntent(in *components.InputData, body gamemath.Box, camera math.Vec2, speed float64) math.Vec2 {
	if in.Touch && !gamemath.IsZero(in.Joystick) {
		return gamemath.Scale(in.Joystick, speed)
	}

	if !in.Touch && in.Pointer != nil {
		target := math.Vec2{X: in.Pointer.X + camera.X, Y: in.Pointer.Y + camera.Y}
		c := gamemath.Center(body)
		v := math.Vec2{X: target.X - c.X, Y: target.Y - c.Y}
		if gamemath.Magnitude(v) > cfg.Player.PointerDeadZone {
			return gamemath.Scale(gamemath.Normalize(v), speed)
		}
		return math.Vec2{}
	}

	var dir math.Vec2
	for _, b := range cfg.Input.Move {
		if anyHeld(in.Keys, b.Keys) {
			dir.X += b.DX
			dir.Y += b.DY
		}
	}
	if dir.X != 0 && dir.Y != 0 {
		dir = gamemath.Normalize(dir)
	}
	return gamemath.Scale(dir, speed)
}

func anyHeld(keys map[string]bool, names []string) bool {
	for _, k := range names {
		if keys[k] {
			return true
		}
	}
	return false
}
