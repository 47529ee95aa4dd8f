package factory

import (
	"github.com/automoto/squadfall/archetypes"
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAlly recruits a picked-up squad member of type t and restores a
// little player health.
func CreateAlly(ecs *ecs.ECS, t cfg.AllyType) *donburi.Entry {
	ally := SpawnAlly(ecs, t)
	if ally != nil {
		components.Health.Get(tags.Player.MustFirst(ecs.World)).Heal(cfg.Ally.PickupHeal)
	}
	return ally
}

// SpawnAlly appends a squad member of type t behind the current tail of the
// squad.
func SpawnAlly(ecs *ecs.ECS, t cfg.AllyType) *donburi.Entry {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	player := components.Player.Get(playerEntry)

	tail := components.Object.Get(playerEntry).Box
	if n := len(player.Squad); n > 0 && ecs.World.Valid(player.Squad[n-1]) {
		tail = components.Object.Get(ecs.World.Entry(player.Squad[n-1])).Box
	}
	box := gamemath.BoxAround(gamemath.Center(tail), cfg.Ally.Width, cfg.Ally.Height)
	box = gamemath.ClampBox(box, cfg.World.Width, cfg.World.Height, cfg.World.EdgeMargin)

	w, ok := cfg.Ally.Weapons[t]
	if !ok {
		t = cfg.AllyRifleman
		w = cfg.Ally.Weapons[t]
	}

	ally := archetypes.Ally.Spawn(ecs)
	attachObject(ecs, ally, box, tags.ResolvAlly)
	components.Ally.SetValue(ally, components.AllyData{
		Type:          t,
		Weapon:        w,
		Speed:         cfg.Ally.Speed,
		Ammo:          w.ClipSize,
		LastDirection: player.LastDirection,
		Facing:        player.LastDirection,
	})
	components.Health.SetValue(ally, components.HealthData{
		Current: cfg.Ally.Health,
		Max:     cfg.Ally.Health,
	})

	player.Squad = append(player.Squad, ally.Entity())
	return ally
}
