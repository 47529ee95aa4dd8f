package systems

import (
	stdmath "math"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// trigger is the firing state a shooter carries between ticks.
type trigger struct {
	Weapon   cfg.WeaponConfig
	Damage   float64
	Cooldown int

	ShootTimer  *int
	Ammo        *int
	ReloadTimer *int
}

// tickReload refills a burst clip once its reload runs out.
func (t trigger) tickReload() {
	if !t.Weapon.Burst() || *t.ReloadTimer <= 0 {
		return
	}
	*t.ReloadTimer--
	if *t.ReloadTimer == 0 {
		*t.Ammo = t.Weapon.ClipSize
	}
}

// fire shoots one volley along aim if the weapon is ready and reports
// whether anything was fired. Burst weapons spend one round per shot and
// start reloading when the clip runs dry.
func (t trigger) fire(ecs *ecs.ECS, origin, aim math.Vec2, ownerID int) bool {
	if *t.ShootTimer > 0 {
		return false
	}
	if t.Weapon.Burst() {
		if *t.ReloadTimer != 0 || *t.Ammo <= 0 {
			return false
		}
		factory.FireWeapon(ecs, origin, aim, t.Weapon, t.Damage, ownerID)
		*t.Ammo--
		*t.ShootTimer = t.Cooldown
		if *t.Ammo == 0 && t.Weapon.ReloadTime > 0 {
			*t.ReloadTimer = t.Weapon.ReloadTime
		}
		return true
	}

	factory.FireWeapon(ecs, origin, aim, t.Weapon, t.Damage, ownerID)
	*t.ShootTimer = t.Cooldown
	return true
}

func playerTrigger(p *components.PlayerData) trigger {
	return trigger{
		Weapon:      p.Weapon,
		Damage:      p.Damage,
		Cooldown:    p.ShootCooldown,
		ShootTimer:  &p.ShootTimer,
		Ammo:        &p.Ammo,
		ReloadTimer: &p.ReloadTimer,
	}
}

func allyTrigger(a *components.AllyData) trigger {
	return trigger{
		Weapon:      a.Weapon,
		Damage:      a.Weapon.Damage,
		Cooldown:    a.Weapon.Cooldown,
		ShootTimer:  &a.ShootTimer,
		Ammo:        &a.Ammo,
		ReloadTimer: &a.ReloadTimer,
	}
}

// aimAt returns the unit direction from a shooter to the nearest enemy within
// reach. With visibleOnly set, enemies outside the viewport are ignored. A
// target sitting exactly on the shooter gives no direction.
func aimAt(ecs *ecs.ECS, from gamemath.Box, reach float64, visibleOnly bool) (math.Vec2, bool) {
	_, camera := getCamera(ecs)
	if camera == nil {
		visibleOnly = false
	}

	best := stdmath.Inf(1)
	var target gamemath.Box
	found := false
	for _, e := range Enemies(ecs) {
		box := components.Object.Get(e).Box
		if visibleOnly && !gamemath.OnScreen(box, camera.Base, camera.ViewW, camera.ViewH) {
			continue
		}
		if d := gamemath.CenterDistance(from, box); d < best {
			best = d
			target = box
			found = true
		}
	}
	if !found || best > reach {
		return math.Vec2{}, false
	}

	from2, to := gamemath.Center(from), gamemath.Center(target)
	dir := gamemath.Normalize(math.Vec2{X: to.X - from2.X, Y: to.Y - from2.Y})
	if gamemath.IsZero(dir) {
		return math.Vec2{}, false
	}
	return dir, true
}

// facingFor picks what a shooter shows this tick: the live aim, else the
// last shot direction, else facing right.
func facingFor(aim math.Vec2, hasAim bool, last math.Vec2) math.Vec2 {
	if hasAim {
		return aim
	}
	if !gamemath.IsZero(last) {
		return last
	}
	return math.Vec2{X: 1, Y: 0}
}

// pushTrail records p as the newest trail point, keeping at most the
// configured history.
func pushTrail(trail []math.Vec2, p math.Vec2) []math.Vec2 {
	trail = append(trail, math.Vec2{})
	copy(trail[1:], trail)
	trail[0] = p
	if n := cfg.Player.PathHistoryLength; len(trail) > n {
		trail = trail[:n]
	}
	return trail
}

// shootingAllowed reports whether shooters may fire this tick. The tutorial
// holds fire before its first target step and on the explanation steps.
func shootingAllowed(ecs *ecs.ECS) bool {
	tutorial, ok := GetTutorial(ecs)
	if !ok {
		return true
	}
	if tutorial.Step < cfg.Tutorial.DummyStep {
		return false
	}
	_, silent := cfg.Tutorial.SilentSteps[tutorial.Step]
	return !silent
}
