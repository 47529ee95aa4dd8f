package factory

import (
	"math/rand"

	"github.com/automoto/squadfall/archetypes"
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the orchestrator singleton.
func CreateSession(ecs *ecs.ECS, rng *rand.Rand, status cfg.Status) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Status:        status,
		Rand:          rng,
		UpgradeLevels: map[cfg.UpgradeID]int{},
		Logs:          map[cfg.LogID]bool{},
	})
	components.Round.SetValue(session, components.RoundData{})
	components.Input.SetValue(session, components.InputData{
		Keys: map[string]bool{},
	})
	return session
}

func rng(ecs *ecs.ECS) *rand.Rand {
	return components.Session.Get(components.Session.MustFirst(ecs.World)).Rand
}
