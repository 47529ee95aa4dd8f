package systems

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/squadfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextEnemyTypeEarlyRoundsOnlyGruntsAndShooters(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		got, ok := NextEnemyType(rng, 3, nil)
		require.True(t, ok)
		assert.Contains(t, []cfg.EnemyType{cfg.EnemyGrunt, cfg.EnemyShooter}, got)
	}
}

func TestNextEnemyTypeRespectsCaps(t *testing.T) {
	tests := []struct {
		name   string
		round  int
		live   []cfg.EnemyType
		banned []cfg.EnemyType
	}{
		{
			name:   "one tank at a time before round 11",
			round:  8,
			live:   []cfg.EnemyType{cfg.EnemyTank},
			banned: []cfg.EnemyType{cfg.EnemyTank},
		},
		{
			name:   "one special at a time in rounds 6 to 10",
			round:  9,
			live:   []cfg.EnemyType{cfg.EnemyDrone},
			banned: []cfg.EnemyType{cfg.EnemyStalker, cfg.EnemyDrone, cfg.EnemySniper},
		},
		{
			name:   "three specials from round 11",
			round:  16,
			live:   []cfg.EnemyType{cfg.EnemyDrone, cfg.EnemySniper, cfg.EnemyStalker},
			banned: []cfg.EnemyType{cfg.EnemyStalker, cfg.EnemyDrone, cfg.EnemySniper},
		},
		{
			name:   "two tanks from round 11",
			round:  24,
			live:   []cfg.EnemyType{cfg.EnemyTank, cfg.EnemyTank},
			banned: []cfg.EnemyType{cfg.EnemyTank},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(11))
			for i := 0; i < 1000; i++ {
				got, ok := NextEnemyType(rng, tt.round, tt.live)
				require.True(t, ok)
				assert.NotContains(t, tt.banned, got)
			}
		})
	}
}

func TestNextEnemyTypeLateRoundsProduceEveryType(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[cfg.EnemyType]bool{}
	for i := 0; i < 5000; i++ {
		got, ok := NextEnemyType(rng, 22, nil)
		require.True(t, ok)
		seen[got] = true
	}
	for _, typ := range cfg.SpawnOrder {
		assert.True(t, seen[typ], "never drew %s", typ)
	}
}

func TestNextEnemyTypeFallsBackToGrunt(t *testing.T) {
	// Round 7: every draw that lands on a capped type ends up a grunt.
	live := []cfg.EnemyType{cfg.EnemyTank, cfg.EnemySniper}
	rng := rand.New(rand.NewSource(5))
	grunts := 0
	for i := 0; i < 2000; i++ {
		got, ok := NextEnemyType(rng, 7, live)
		require.True(t, ok)
		if got == cfg.EnemyGrunt {
			grunts++
		}
	}
	assert.Greater(t, grunts, 0)
}
