package factory

import (
	"github.com/automoto/squadfall/archetypes"
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space. It covers the arena plus
// cfg.World.SpacePadding on every side.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	pad := cfg.World.SpacePadding
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		int(cfg.World.Width+2*pad),
		int(cfg.World.Height+2*pad),
		cfg.World.SpaceCellSize,
		cfg.World.SpaceCellSize,
	)
	components.Space.Set(space, spaceData)
	return space
}
