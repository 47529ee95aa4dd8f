package systems

import (
	"github.com/automoto/squadfall/components"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors every box into the collision space so the
// projectile pass sees this tick's positions.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		factory.SyncShape(components.Object.Get(e))
	}
}
