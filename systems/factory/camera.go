package factory

import (
	"github.com/automoto/squadfall/archetypes"
	"github.com/automoto/squadfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, viewW, viewH float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		ViewW: viewW,
		ViewH: viewH,
	})
	return camera
}
