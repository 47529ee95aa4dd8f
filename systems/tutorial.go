package systems

import (
	stdmath "math"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTutorialWaves spawns practice targets around the player on the
// coin and airstrike steps, one per interval up to the step's ceiling.
func UpdateTutorialWaves(e *ecs.ECS) {
	tutorial, ok := GetTutorial(e)
	if !ok {
		return
	}

	var wave cfg.TutorialWaveConfig
	switch tutorial.Step {
	case cfg.Tutorial.CoinStep:
		wave = cfg.Tutorial.CoinWave
	case cfg.Tutorial.AirstrikeStep:
		wave = cfg.Tutorial.AirstrikeWave
	default:
		tutorial.SpawnTimer = 0
		return
	}

	if tutorial.SpawnTimer > 0 {
		tutorial.SpawnTimer--
	}
	if tutorial.SpawnTimer == 0 && len(Enemies(e)) < wave.MaxConcurrent {
		SpawnPracticeTarget(e, wave)
		tutorial.SpawnTimer = wave.Interval
	}
}

// SpawnPracticeTarget places a weakened grunt on a circle around the player
// sized from the shorter viewport side.
func SpawnPracticeTarget(e *ecs.ECS, wave cfg.TutorialWaveConfig) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	_, camera := getCamera(e)
	if camera == nil {
		return
	}
	rng := getSession(e).Rand

	row := cfg.Enemy.Types[cfg.EnemyGrunt]
	c := gamemath.Center(components.Object.Get(playerEntry).Box)
	angle := rng.Float64() * 2 * stdmath.Pi
	dist := min(camera.ViewW, camera.ViewH) * wave.DistanceFactor

	box := gamemath.Box{
		X: c.X + stdmath.Cos(angle)*dist - row.Width/2,
		Y: c.Y + stdmath.Sin(angle)*dist - row.Height/2,
		W: row.Width,
		H: row.Height,
	}
	box.X = gamemath.Clamp(box.X, 0, cfg.World.Width-box.W)
	box.Y = gamemath.Clamp(box.Y, 0, cfg.World.Height-box.H)

	target := factory.CreateEnemyAt(e, 0, cfg.EnemyGrunt, box)
	enemy := components.Enemy.Get(target)
	enemy.Speed = wave.Speed
	enemy.AttackDamage = wave.Damage
	enemy.AttackCooldown = wave.AttackCooldown
	enemy.Points = wave.Points
	components.Health.SetValue(target, components.HealthData{Current: wave.Health, Max: wave.Health})
}

// SpawnTrainingDummies puts the invulnerable practice dummies around the
// player.
func SpawnTrainingDummies(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry).Box
	row := cfg.Enemy.Types[cfg.EnemyDummy]
	hp := cfg.Tutorial.DummyHealth

	for _, off := range cfg.Tutorial.DummyOffsets {
		box := gamemath.Box{X: body.X + off[0], Y: body.Y + off[1], W: row.Width, H: row.Height}
		dummy := factory.CreateEnemyAt(e, 0, cfg.EnemyDummy, box)
		components.Enemy.Get(dummy).Speed = 0
		components.Health.SetValue(dummy, components.HealthData{Current: hp, Max: hp})
	}
}
