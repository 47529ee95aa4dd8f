package systems

import (
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateAllies moves the squad in follow order. Each member trails its
// leader, the player for index 0 and the previous member otherwise, then
// aims and fires like the player does.
func UpdateAllies(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	removeDeadAllies(e, player)

	interactive := playerInteractive(e)
	frozen := getRound(e).CountingDown()
	canShoot := shootingAllowed(e)
	visibleOnly := !inTutorial(e)
	spacing := cfg.Ally.TrailDistance * player.SquadSpacing

	leader := components.Object.Get(playerEntry).Box
	leaderTrail := player.Trail

	squad := Squad(e, player)
	for _, allyEntry := range squad {
		ally := components.Ally.Get(allyEntry)
		obj := components.Object.Get(allyEntry)

		follow(obj, TrailPoint(leaderTrail, leader, spacing))
		separate(obj, leader)
		margin := cfg.World.EdgeMargin
		obj.Box = gamemath.ClampBox(obj.Box, cfg.World.Width, cfg.World.Height, margin)

		aim, hasAim := aimAt(e, obj.Box, ally.Weapon.Range, visibleOnly && !ally.Weapon.TargetsOffScreen)
		if !frozen && canShoot {
			t := allyTrigger(ally)
			t.tickReload()
			if ally.ShootTimer > 0 {
				ally.ShootTimer--
			}
			if interactive && hasAim && t.fire(e, gamemath.Center(obj.Box), aim, obj.ID) {
				ally.LastDirection = aim
			}
		}
		ally.Facing = facingFor(aim, hasAim, ally.LastDirection)
		ally.Trail = pushTrail(ally.Trail, gamemath.Center(obj.Box))

		leader = obj.Box
		leaderTrail = ally.Trail
	}

	if interactive {
		player.MaxSquad = max(player.MaxSquad, len(squad)+1)
	}
}

// TrailPoint walks a leader's trail, newest point first, and returns the
// point dist along it. Short trails fall back to the oldest point, and a
// leader without history is followed directly.
func TrailPoint(trail []math.Vec2, leader gamemath.Box, dist float64) math.Vec2 {
	if len(trail) <= 1 {
		return gamemath.Center(leader)
	}
	walked := 0.0
	for i := 1; i < len(trail); i++ {
		a, b := trail[i-1], trail[i]
		seg := gamemath.Distance(a, b)
		if seg == 0 {
			continue
		}
		if walked+seg >= dist {
			t := (dist - walked) / seg
			return math.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		}
		walked += seg
	}
	return trail[len(trail)-1]
}

// follow eases the body's center toward target.
func follow(obj *components.ObjectData, target math.Vec2) {
	if gamemath.Distance(gamemath.Center(obj.Box), target) <= 0.5 {
		return
	}
	x := target.X - obj.W/2
	y := target.Y - obj.H/2
	obj.X += (x - obj.X) * cfg.Ally.FollowLerp
	obj.Y += (y - obj.Y) * cfg.Ally.FollowLerp
}

// separate pushes the body out of its leader's personal ring.
func separate(obj *components.ObjectData, leader gamemath.Box) {
	ring := (leader.W+obj.W)/2 + cfg.Ally.SeparationPadding
	lc, c := gamemath.Center(leader), gamemath.Center(obj.Box)
	d := gamemath.Distance(lc, c)
	if d <= 0.01 || d >= ring {
		return
	}
	nx, ny := (c.X-lc.X)/d, (c.Y-lc.Y)/d
	obj.X = lc.X + nx*ring - obj.W/2
	obj.Y = lc.Y + ny*ring - obj.H/2
}
