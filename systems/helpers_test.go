package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a world with the session singletons, a collision
// space, a camera centered on a fresh player and a seeded random source.
func newTestWorld(t *testing.T, status cfg.Status) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(w, rand.New(rand.NewSource(1)), status)
	factory.CreateSpace(w)
	factory.CreateCamera(w, 960, 600)
	factory.CreatePlayer(w, cfg.AllyGunGuy)
	CenterCamera(w)

	round := getRound(w)
	round.Round = 1
	round.Quota = cfg.Round.Quota(1)
	round.AllyTimer = cfg.Ally.SpawnInterval
	return w
}

func testPlayer(w *ecs.ECS) (*donburi.Entry, *components.PlayerData) {
	e := tags.Player.MustFirst(w.World)
	return e, components.Player.Get(e)
}

func playerBox(w *ecs.ECS) gamemath.Box {
	e, _ := testPlayer(w)
	return components.Object.Get(e).Box
}

// enemyAt spawns a round-1 enemy of type t with its top-left corner at x, y.
func enemyAt(w *ecs.ECS, t cfg.EnemyType, x, y float64) *donburi.Entry {
	row := cfg.Enemy.Types[t]
	return factory.CreateEnemyAt(w, 1, t, gamemath.Box{X: x, Y: y, W: row.Width, H: row.Height})
}

func objectBox(e *donburi.Entry) gamemath.Box {
	return components.Object.Get(e).Box
}
