package systems

import (
	"math/rand"

	cfg "github.com/automoto/squadfall/config"
)

// NextEnemyType draws the next enemy archetype for round given the types
// currently alive. One uniform draw walks the round's cumulative
// distribution; a candidate over its own cap or over the special cap is
// skipped in favour of the next type. When the walk yields nothing a grunt
// is offered if its cap allows, otherwise no spawn happens this time.
func NextEnemyType(rng *rand.Rand, round int, live []cfg.EnemyType) (cfg.EnemyType, bool) {
	weights := cfg.Spawn.Weights(round)
	roll := rng.Float64()

	cumulative := 0.0
	for i, t := range cfg.SpawnOrder {
		if i >= len(weights) {
			break
		}
		cumulative += weights[i]
		if roll > cumulative {
			continue
		}
		if count(live, t) >= cfg.Spawn.TypeCap(t, round) {
			continue
		}
		if t.Special() && specials(live) >= cfg.Spawn.SpecialCap(round) {
			continue
		}
		return t, true
	}

	if count(live, cfg.EnemyGrunt) < cfg.Spawn.TypeCap(cfg.EnemyGrunt, round) {
		return cfg.EnemyGrunt, true
	}
	return 0, false
}

func count(live []cfg.EnemyType, t cfg.EnemyType) int {
	n := 0
	for _, l := range live {
		if l == t {
			n++
		}
	}
	return n
}

func specials(live []cfg.EnemyType) int {
	n := 0
	for _, l := range live {
		if l.Special() {
			n++
		}
	}
	return n
}
