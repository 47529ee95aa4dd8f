package systems

import (
	"log"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound handles wave clears, the between-wave countdown and enemy
// spawning for the current wave.
func UpdateRound(e *ecs.ECS) {
	session := getSession(e)
	round := getRound(e)
	live := liveTypes(e)

	if session.Status != cfg.StatusPlaying {
		return
	}

	if !round.CountingDown() && round.Kills >= round.Quota && len(live) == 0 {
		round.NextRoundTimer = cfg.Round.NextRoundDelay
		log.Printf("wave %d cleared", round.Round)
	}

	if round.CountingDown() {
		round.NextRoundTimer = max(0, round.NextRoundTimer-session.Delta)
		if round.NextRoundTimer <= 0 {
			StartRound(e, round.Round+1)
		}
		return
	}

	updateSpawns(e, round, live)
}

// StartRound resets the wave state for round r, spawns the opening enemies
// and schedules the rest of the opening batch.
func StartRound(e *ecs.ECS, r int) {
	session := getSession(e)
	round := getRound(e)

	session.Status = cfg.StatusPlaying
	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		player.HitFlash = 0
		player.RoundsCleared = max(player.RoundsCleared, r-1)
	}

	ClearEnemies(e)
	ClearProjectiles(e)
	StopScreenShake(e)

	quota := cfg.Round.Quota(r)
	*round = components.RoundData{
		Round:     r,
		Quota:     quota,
		AllyTimer: round.AllyTimer,
	}

	var spawned []cfg.EnemyType
	for i := 0; i < cfg.Round.ImmediateSpawns; i++ {
		if t, ok := NextEnemyType(session.Rand, r, spawned); ok {
			factory.CreateEnemy(e, r, t)
			spawned = append(spawned, t)
		}
	}

	round.PendingSpawns = max(0, min(quota, cfg.Round.InitialBatch)-cfg.Round.ImmediateSpawns)
	if round.PendingSpawns > 0 {
		round.SpawnCounter = cfg.Round.GradualSpawnInterval
	}

	session.Airstrike.Active = false
	session.Airstrike.Pending = 0

	ShowWaveTitle(e, r)
	log.Printf("wave %d started: quota %d", r, quota)
}

// updateSpawns feeds the rest of the opening batch one enemy per interval,
// then trickles in the remainder of the quota at random.
func updateSpawns(e *ecs.ECS, round *components.RoundData, live []cfg.EnemyType) {
	rng := getSession(e).Rand

	if round.PendingSpawns > 0 {
		round.SpawnCounter--
		if round.SpawnCounter <= 0 {
			if t, ok := spawnEnemy(e, round); ok {
				live = append(live, t)
				round.PendingSpawns--
				if round.PendingSpawns > 0 {
					round.SpawnCounter = cfg.Round.GradualSpawnInterval
				}
			} else {
				round.SpawnCounter = cfg.Round.RetryInterval
			}
		}
	}

	if round.PendingSpawns == 0 &&
		len(live) < cfg.Round.ConcurrencyLimit(round.Round) &&
		round.Remaining(len(live)) > 0 &&
		rng.Float64() < cfg.Round.TrickleChance {
		spawnEnemy(e, round)
	}
}

func spawnEnemy(e *ecs.ECS, round *components.RoundData) (cfg.EnemyType, bool) {
	t, ok := NextEnemyType(getSession(e).Rand, round.Round, liveTypes(e))
	if !ok {
		return 0, false
	}
	factory.CreateEnemy(e, round.Round, t)
	return t, true
}

func liveTypes(e *ecs.ECS) []cfg.EnemyType {
	enemies := Enemies(e)
	types := make([]cfg.EnemyType, 0, len(enemies))
	for _, entry := range enemies {
		types = append(types, components.Enemy.Get(entry).Type)
	}
	return types
}
