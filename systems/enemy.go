package systems

import (
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateEnemies picks a target for every enemy, moves it by its archetype's
// policy and resolves melee contact, ranged shots and drone pulses.
func UpdateEnemies(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	_, camera := getCamera(e)
	isTutorial := inTutorial(e)

	var squad []*donburi.Entry
	if !isTutorial {
		squad = Squad(e, player)
	}

	for _, enemyEntry := range Enemies(e) {
		enemy := components.Enemy.Get(enemyEntry)
		obj := components.Object.Get(enemyEntry)

		if enemy.AttackTimer > 0 {
			enemy.AttackTimer--
		}
		if enemy.HasPulse() && enemy.AoETimer > 0 {
			enemy.AoETimer--
		}

		target, d := nearestTarget(obj.Box, playerEntry, squad)
		targetBox := components.Object.Get(target).Box
		enemy.TargetID = components.Object.Get(target).ID

		from, to := gamemath.Center(obj.Box), gamemath.Center(targetBox)
		dir := gamemath.Normalize(math.Vec2{X: to.X - from.X, Y: to.Y - from.Y})

		var step math.Vec2
		if isTutorial {
			step = gamemath.Scale(dir, enemy.Speed)
		} else {
			step = EnemyStep(enemy, dir, d)
		}
		enemy.Velocity = step
		obj.X = gamemath.Clamp(obj.X+step.X, -obj.W, cfg.World.Width)
		obj.Y = gamemath.Clamp(obj.Y+step.Y, -obj.H, cfg.World.Height)

		if enemy.AttackTimer == 0 && enemy.AttackDamage > 0 && d <= enemy.AttackRange {
			if enemy.Config != nil && enemy.Config.Ranged {
				if camera == nil || gamemath.OnScreen(targetBox, camera.Base, camera.ViewW, camera.ViewH) {
					factory.FireEnemyShot(e, from, dir, enemy, obj.ID)
					enemy.AttackTimer = enemy.AttackCooldown
				}
			} else {
				if target == playerEntry {
					hurtPlayer(target, enemy.AttackDamage)
				} else {
					components.Health.Get(target).Kill()
				}
				enemy.AttackTimer = enemy.AttackCooldown
			}
		}

		if enemy.HasPulse() && enemy.AoETimer == 0 {
			pulse(enemy, obj.Box, playerEntry, squad)
		}
	}

	removeDeadAllies(e, player)
}

// nearestTarget returns the player or whichever squad member is closer,
// along with its center distance.
func nearestTarget(from gamemath.Box, playerEntry *donburi.Entry, squad []*donburi.Entry) (*donburi.Entry, float64) {
	target := playerEntry
	best := gamemath.CenterDistance(from, components.Object.Get(playerEntry).Box)
	for _, allyEntry := range squad {
		if !components.Health.Get(allyEntry).Alive() {
			continue
		}
		if d := gamemath.CenterDistance(from, components.Object.Get(allyEntry).Box); d < best {
			target = allyEntry
			best = d
		}
	}
	return target, best
}

// EnemyStep is this tick's displacement for an enemy d away from its target
// along dir. Shooters and snipers kite, tanks and drones hold once inside
// half their reach, grunts and stalkers always close in.
func EnemyStep(enemy *components.EnemyData, dir math.Vec2, d float64) math.Vec2 {
	c := cfg.Enemy
	r := enemy.AttackRange

	switch enemy.Type {
	case cfg.EnemyShooter:
		if d <= c.ShooterMinDistance {
			return gamemath.Scale(dir, -enemy.Speed*c.ShooterRetreatFactor)
		}
		if d < r*c.ShooterHoldFactor {
			return math.Vec2{}
		}
	case cfg.EnemySniper:
		if d < r*c.SniperMinFactor {
			return gamemath.Scale(dir, -enemy.Speed*c.SniperRetreatFactor)
		}
		if d <= r*c.SniperResumeFactor {
			return math.Vec2{}
		}
	case cfg.EnemyTank:
		if d <= r*c.HoldRangeFactor {
			return math.Vec2{}
		}
	case cfg.EnemyDrone:
		r = enemy.AoERadius
		if d <= r*c.HoldRangeFactor {
			return math.Vec2{}
		}
	}

	chaser := enemy.Type == cfg.EnemyGrunt || enemy.Type == cfg.EnemyStalker
	if chaser || d > r*c.MinimumMoveFactor {
		return gamemath.Scale(dir, enemy.Speed)
	}
	return math.Vec2{}
}

// pulse discharges a drone: the player takes AoE damage, squad members in
// range are destroyed. A pulse that hits nothing retries sooner.
func pulse(enemy *components.EnemyData, at gamemath.Box, playerEntry *donburi.Entry, squad []*donburi.Entry) {
	hit := false
	if components.Health.Get(playerEntry).Alive() &&
		gamemath.CenterDistance(at, components.Object.Get(playerEntry).Box) <= enemy.AoERadius {
		hurtPlayer(playerEntry, enemy.AoEDamage)
		hit = true
	}
	for _, allyEntry := range squad {
		h := components.Health.Get(allyEntry)
		if h.Alive() && gamemath.CenterDistance(at, components.Object.Get(allyEntry).Box) <= enemy.AoERadius {
			h.Kill()
			hit = true
		}
	}

	if hit {
		enemy.AoETimer = enemy.AoECooldown
		return
	}
	enemy.AoETimer = min(cfg.Enemy.DroneRetryCooldown, enemy.AoECooldown/cfg.Enemy.DroneRetryDivisor)
}

// hurtPlayer damages a living player and flashes the hit indicator if
// they survive it.
func hurtPlayer(playerEntry *donburi.Entry, amount float64) {
	health := components.Health.Get(playerEntry)
	if !health.Alive() {
		return
	}
	health.Damage(amount)
	if health.Alive() {
		components.Player.Get(playerEntry).HitFlash = cfg.Player.HitFlashTicks
	}
}
