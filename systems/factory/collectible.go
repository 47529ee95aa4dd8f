package factory

import (
	"math/rand"

	"github.com/automoto/squadfall/archetypes"
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PlaceCollectible picks a pickup box. Outside the tutorial it rejection
// samples the arena, keeping clear of the player and of existing pickups;
// false means the attempt budget ran out and nothing should spawn this cycle.
// The tutorial drops the pickup in a band around the player instead.
func PlaceCollectible(rng *rand.Rand, player gamemath.Box, existing []gamemath.Box, tutorial bool) (gamemath.Box, bool) {
	size := cfg.Collectible.Size
	margin := cfg.World.EdgeMargin
	W, H := cfg.World.Width, cfg.World.Height

	if tutorial {
		c := gamemath.Center(player)
		box := gamemath.Box{
			X: c.X + tutorialOffset(rng) - size/2,
			Y: c.Y + tutorialOffset(rng) - size/2,
			W: size,
			H: size,
		}
		return gamemath.ClampBox(box, W, H, margin), true
	}

	playerCenter := gamemath.Center(player)
	for attempt := 0; attempt < cfg.Collectible.PlacementAttempts; attempt++ {
		box := gamemath.Box{
			X: rng.Float64()*(W-size-2*margin) + margin,
			Y: rng.Float64()*(H-size-2*margin) + margin,
			W: size,
			H: size,
		}
		c := gamemath.Center(box)
		if gamemath.Distance(playerCenter, c) < cfg.Collectible.MinPlayerDistance {
			continue
		}
		if tooClose(c, existing) {
			continue
		}
		return box, true
	}
	return gamemath.Box{}, false
}

func tutorialOffset(rng *rand.Rand) float64 {
	offset := rng.Float64()*cfg.Collectible.TutorialOffsetSpan + cfg.Collectible.TutorialOffsetMin
	if rng.Float64() < 0.5 {
		return offset
	}
	return -offset
}

func tooClose(c math.Vec2, existing []gamemath.Box) bool {
	for _, b := range existing {
		if gamemath.Distance(gamemath.Center(b), c) < cfg.Collectible.MinPickupDistance {
			return true
		}
	}
	return false
}

// CreateCollectible places and spawns a squad pickup of type t. It returns
// nil when no valid position was found.
func CreateCollectible(ecs *ecs.ECS, t cfg.AllyType, tutorial bool) *donburi.Entry {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	player := components.Object.Get(playerEntry).Box

	var existing []gamemath.Box
	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		existing = append(existing, components.Object.Get(e).Box)
	})

	box, ok := PlaceCollectible(rng(ecs), player, existing, tutorial)
	if !ok {
		return nil
	}

	c := archetypes.Collectible.Spawn(ecs)
	attachObject(ecs, c, box, tags.ResolvCollectible)
	components.Collectible.SetValue(c, components.CollectibleData{Type: t})
	return c
}
