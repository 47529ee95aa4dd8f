package systems

import (
	"sort"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// explosion is an area hit queued during the projectile pass and applied
// once every projectile has moved.
type explosion struct {
	At           math.Vec2
	Radius       float64
	Damage       float64
	PlayerOrigin bool
}

// squadSide matches everything enemy fire can hurt.
var squadSide = donburi.NewQuery(filter.And(
	filter.Contains(components.Health, components.Object),
	filter.Or(filter.Contains(tags.Player), filter.Contains(tags.Ally)),
))

// UpdateProjectiles advances every projectile, resolves direct hits and
// area explosions, and pays out kills.
func UpdateProjectiles(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	var blasts []explosion
	for _, pe := range Projectiles(e) {
		p := components.Projectile.Get(pe)
		obj := components.Object.Get(pe)

		obj.X += p.Velocity.X
		obj.Y += p.Velocity.Y

		if p.MaxTravel > 0 {
			p.Traveled += gamemath.Magnitude(p.Velocity)
			if p.Traveled >= p.MaxTravel {
				if p.Airstrike && p.AoERadius > 0 {
					blasts = append(blasts, blastFrom(p, gamemath.Center(obj.Box)))
					shakeFor(e, p)
				}
				factory.Destroy(e, pe)
				continue
			}
		}

		if outsideWorld(obj.Box) {
			factory.Destroy(e, pe)
			continue
		}
		factory.SyncShape(obj)

		var struck *donburi.Entry
		if p.PlayerOrigin {
			struck = firstEnemyHit(e, obj)
			if struck != nil {
				components.Health.Get(struck).Damage(p.Damage)
			}
		} else {
			struck = strikeSquad(e, obj, playerEntry, p.Damage)
		}
		if struck == nil {
			continue
		}

		shakeFor(e, p)
		if p.AoERadius > 0 {
			blasts = append(blasts, blastFrom(p, gamemath.Center(components.Object.Get(struck).Box)))
		}
		factory.Destroy(e, pe)
	}

	for _, b := range blasts {
		detonate(e, b, playerEntry)
	}

	for _, enemyEntry := range Enemies(e) {
		if !components.Health.Get(enemyEntry).Alive() {
			creditKill(e, playerEntry, enemyEntry)
			factory.Destroy(e, enemyEntry)
		}
	}
	removeDeadAllies(e, components.Player.Get(playerEntry))
}

func blastFrom(p *components.ProjectileData, at math.Vec2) explosion {
	return explosion{At: at, Radius: p.AoERadius, Damage: p.Damage, PlayerOrigin: p.PlayerOrigin}
}

func outsideWorld(b gamemath.Box) bool {
	m := cfg.World.CullMargin
	return b.X+b.W < -m || b.X > cfg.World.Width+m ||
		b.Y+b.H < -m || b.Y > cfg.World.Height+m
}

// shakeFor starts the camera shake a projectile impact causes, if any.
func shakeFor(e *ecs.ECS, p *components.ProjectileData) {
	if !p.CausesShake {
		return
	}
	s := cfg.ScreenShake
	if p.Airstrike {
		TriggerScreenShake(e, s.AirstrikeIntensity, s.AirstrikeDuration)
		return
	}
	TriggerScreenShake(e, s.RocketIntensity, s.RocketDuration)
}

// firstEnemyHit returns the earliest spawned live enemy whose box overlaps
// obj. The collision space narrows the candidates and the box test decides.
func firstEnemyHit(e *ecs.ECS, obj *components.ObjectData) *donburi.Entry {
	candidates := Enemies(e)
	if obj.Shape != nil && obj.Shape.Space != nil {
		check := obj.Shape.Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			return nil
		}
		candidates = candidates[:0]
		for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
			if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
				candidates = append(candidates, entry)
			}
		}
		sort.Slice(candidates, func(i, j int) bool {
			return components.Object.Get(candidates[i]).ID < components.Object.Get(candidates[j]).ID
		})
	}

	for _, entry := range candidates {
		if components.Health.Get(entry).Alive() && gamemath.Overlaps(obj.Box, components.Object.Get(entry).Box) {
			return entry
		}
	}
	return nil
}

// strikeSquad resolves an enemy shot: the living player first, then the
// first squad member in follow order. Squad members die on any hit.
func strikeSquad(e *ecs.ECS, obj *components.ObjectData, playerEntry *donburi.Entry, damage float64) *donburi.Entry {
	if components.Health.Get(playerEntry).Alive() &&
		gamemath.Overlaps(obj.Box, components.Object.Get(playerEntry).Box) {
		hurtPlayer(playerEntry, damage)
		return playerEntry
	}
	for _, allyEntry := range Squad(e, components.Player.Get(playerEntry)) {
		h := components.Health.Get(allyEntry)
		if h.Alive() && gamemath.Overlaps(obj.Box, components.Object.Get(allyEntry).Box) {
			h.Kill()
			return allyEntry
		}
	}
	return nil
}

// detonate applies an explosion to every eligible character whose center is
// within its radius. Player blasts hurt enemies, enemy blasts hurt the squad.
func detonate(e *ecs.ECS, b explosion, playerEntry *donburi.Entry) {
	if b.PlayerOrigin {
		for _, enemyEntry := range Enemies(e) {
			h := components.Health.Get(enemyEntry)
			if h.Alive() && gamemath.Distance(gamemath.Center(components.Object.Get(enemyEntry).Box), b.At) <= b.Radius {
				h.Damage(b.Damage)
			}
		}
		return
	}

	squadSide.Each(e.World, func(entry *donburi.Entry) {
		h := components.Health.Get(entry)
		if !h.Alive() || gamemath.Distance(gamemath.Center(components.Object.Get(entry).Box), b.At) > b.Radius {
			return
		}
		if entry == playerEntry {
			hurtPlayer(entry, b.Damage)
			return
		}
		h.Kill()
	})
}

// creditKill pays out a destroyed enemy. Rewards only count while the player
// is interactive; the tutorial pays a single coin for its coin-step targets.
func creditKill(e *ecs.ECS, playerEntry, enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	box := components.Object.Get(enemyEntry).Box

	if tutorial, ok := GetTutorial(e); ok {
		if tutorial.Step == cfg.Tutorial.CoinStep && enemy.Points == cfg.Tutorial.CoinWave.Points {
			c := gamemath.Center(box)
			half := cfg.Coin.Size / 2
			factory.CreateCoin(e, c.X-half, c.Y-half, cfg.Coin.Value)
		}
		return
	}
	if !playerInteractive(e) {
		return
	}

	player := components.Player.Get(playerEntry)
	player.Kills++
	player.RunKills++
	if enemy.Type == cfg.EnemyTank {
		player.RunTanks++
	}
	getRound(e).Kills++
	RegisterComboKill(e, player)
	factory.DropCoins(e, box, enemy.Points)
}
