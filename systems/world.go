package systems

import (
	"sort"

	"github.com/automoto/squadfall/components"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// eachable is satisfied by every donburi component and tag type.
type eachable interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

func getSession(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(ecs.World))
}

func getRound(ecs *ecs.ECS) *components.RoundData {
	return components.Round.Get(components.Round.MustFirst(ecs.World))
}

func getInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(ecs.World))
}

func getCamera(ecs *ecs.ECS) (*donburi.Entry, *components.CameraData) {
	e, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, nil
	}
	return e, components.Camera.Get(e)
}

// GetTutorial returns the tutorial singleton, if this world runs the tutorial.
func GetTutorial(ecs *ecs.ECS) (*components.TutorialData, bool) {
	e, ok := components.Tutorial.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Tutorial.Get(e), true
}

func inTutorial(ecs *ecs.ECS) bool {
	_, ok := components.Tutorial.First(ecs.World)
	return ok
}

// playerInteractive reports whether the player accepts input and earns
// rewards this tick.
func playerInteractive(ecs *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	return getSession(ecs).Interactive(components.Health.Get(playerEntry).Alive())
}

// sortedByID collects entries of c ordered by their stable object id so that
// every tick walks entities in spawn order.
func sortedByID(ecs *ecs.ECS, c eachable) []*donburi.Entry {
	var entries []*donburi.Entry
	c.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Object.Get(entries[i]).ID < components.Object.Get(entries[j]).ID
	})
	return entries
}

// Enemies returns live enemy entries in spawn order.
func Enemies(ecs *ecs.ECS) []*donburi.Entry {
	return sortedByID(ecs, tags.Enemy)
}

// Projectiles returns projectile entries in spawn order.
func Projectiles(ecs *ecs.ECS) []*donburi.Entry {
	return sortedByID(ecs, tags.Projectile)
}

// Coins returns coin entries in spawn order.
func Coins(ecs *ecs.ECS) []*donburi.Entry {
	return sortedByID(ecs, tags.Coin)
}

// Collectibles returns squad pickup entries in spawn order.
func Collectibles(ecs *ecs.ECS) []*donburi.Entry {
	return sortedByID(ecs, tags.Collectible)
}

// Squad returns the player's squad in follow order. Index 0 follows the player.
func Squad(ecs *ecs.ECS, player *components.PlayerData) []*donburi.Entry {
	squad := make([]*donburi.Entry, 0, len(player.Squad))
	for _, ent := range player.Squad {
		if ecs.World.Valid(ent) {
			squad = append(squad, ecs.World.Entry(ent))
		}
	}
	return squad
}

// removeDeadAllies destroys squad members at zero health and closes the gaps
// so the follow order stays contiguous.
func removeDeadAllies(ecs *ecs.ECS, player *components.PlayerData) {
	alive := player.Squad[:0]
	for _, ent := range player.Squad {
		if !ecs.World.Valid(ent) {
			continue
		}
		e := ecs.World.Entry(ent)
		if !components.Health.Get(e).Alive() {
			factory.Destroy(ecs, e)
			continue
		}
		alive = append(alive, ent)
	}
	player.Squad = alive
}

// ClearProjectiles removes every projectile from the world.
func ClearProjectiles(ecs *ecs.ECS) {
	for _, e := range Projectiles(ecs) {
		factory.Destroy(ecs, e)
	}
}

// ClearEnemies removes every enemy from the world.
func ClearEnemies(ecs *ecs.ECS) {
	for _, e := range Enemies(ecs) {
		factory.Destroy(ecs, e)
	}
}
