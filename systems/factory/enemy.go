package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/squadfall/archetypes"
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyStats returns the round-scaled stats for t.
func EnemyStats(t cfg.EnemyType, round int) (components.EnemyData, components.HealthData) {
	row, ok := cfg.Enemy.Types[t]
	if !ok {
		t = cfg.EnemyGrunt
		row = cfg.Enemy.Types[t]
	}
	r := float64(round)

	cooldown := row.AttackCooldown + row.CooldownPerRound*round
	if row.CooldownPerRound != 0 {
		cooldown = max(row.MinCooldown, cooldown)
	}

	data := components.EnemyData{
		Type:           t,
		Config:         &row,
		Speed:          row.Speed + r*row.SpeedPerRound,
		AttackDamage:   row.Damage + r*row.DamagePerRound,
		AttackRange:    row.AttackRange,
		AttackCooldown: cooldown,
		Points:         row.Points,
		AoEDamage:      row.AoEDamage,
		AoERadius:      row.AoERadius,
		AoECooldown:    row.AoECooldown,
	}
	health := row.Health + r*row.HealthPerRound
	return data, components.HealthData{Current: health, Max: health}
}

// EnemySpawnBox picks a spawn box for t: one of the four arena edges, just
// outside the bounds, or a fixed slot right of center for the training dummy.
func EnemySpawnBox(rng *rand.Rand, t cfg.EnemyType) gamemath.Box {
	row := cfg.Enemy.Types[t]
	w, h := row.Width, row.Height
	W, H := cfg.World.Width, cfg.World.Height
	m := cfg.World.SpawnMargin

	if t == cfg.EnemyDummy {
		return gamemath.Box{X: W/2 + cfg.Enemy.TutorialDummyOffset - w/2, Y: H/2 - h/2, W: w, H: h}
	}

	box := gamemath.Box{W: w, H: h}
	switch int(math.Floor(rng.Float64() * 4)) {
	case 0: // top
		box.X = rng.Float64() * W
		box.Y = -h - m
	case 1: // right
		box.X = W + m
		box.Y = rng.Float64() * H
	case 2: // bottom
		box.X = rng.Float64() * W
		box.Y = H + m
	default: // left
		box.X = -w - m
		box.Y = rng.Float64() * H
	}
	return box
}

// CreateEnemy spawns an enemy of type t scaled for round.
func CreateEnemy(ecs *ecs.ECS, round int, t cfg.EnemyType) *donburi.Entry {
	return CreateEnemyAt(ecs, round, t, EnemySpawnBox(rng(ecs), t))
}

// CreateEnemyAt spawns an enemy of type t at box.
func CreateEnemyAt(ecs *ecs.ECS, round int, t cfg.EnemyType, box gamemath.Box) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	attachObject(ecs, enemy, box, tags.ResolvEnemy)

	data, health := EnemyStats(t, round)
	components.Enemy.SetValue(enemy, data)
	components.Health.SetValue(enemy, health)
	return enemy
}
