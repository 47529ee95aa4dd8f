package factory

import (
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NextID hands out the next stable entity id for the session.
func NextID(ecs *ecs.ECS) int {
	s := components.Session.Get(components.Session.MustFirst(ecs.World))
	s.NextID++
	return s.NextID
}

// attachObject gives e its box, id and collision mirror.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, box gamemath.Box, tag string) *components.ObjectData {
	pad := cfg.World.SpacePadding
	obj := resolv.NewObject(box.X+pad, box.Y+pad, box.W, box.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = e

	components.Object.SetValue(e, components.ObjectData{
		Box:   box,
		ID:    NextID(ecs),
		Shape: obj,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return components.Object.Get(e)
}

// SyncShape copies the authoritative box into the collision mirror.
func SyncShape(o *components.ObjectData) {
	if o.Shape == nil {
		return
	}
	pad := cfg.World.SpacePadding
	o.Shape.X = o.X + pad
	o.Shape.Y = o.Y + pad
	o.Shape.Update()
}

// Destroy removes e from the collision space and the world.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Shape != nil {
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(obj.Shape)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
