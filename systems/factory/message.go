package factory

import (
	"github.com/automoto/squadfall/archetypes"
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTutorial spawns the tutorial singleton on its first step.
func CreateTutorial(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Tutorial.Spawn(ecs)

	components.Tutorial.SetValue(entry, components.TutorialData{
		Step:    0,
		Message: cfg.Tutorial.Messages[0],
	})

	return entry
}
