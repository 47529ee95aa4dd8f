package systems

import (
	"log"
	"math/rand"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCoins collects coins the player touches and pulls nearby ones in.
// The tutorial only pays out on its coin step and has no magnet.
func UpdateCoins(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	body := components.Object.Get(playerEntry).Box

	tutorial, isTutorial := GetTutorial(e)
	if isTutorial && tutorial.Step != cfg.Tutorial.CoinStep {
		return
	}

	for _, coinEntry := range Coins(e) {
		obj := components.Object.Get(coinEntry)
		collected := gamemath.Overlaps(body, obj.Box)

		if !collected && !isTutorial {
			d := gamemath.CenterDistance(body, obj.Box)
			if d < player.CoinMagnetRange {
				if d > cfg.Coin.CollectDistance {
					pullCoin(obj, body, player.CoinMagnetRange, d)
					collected = gamemath.Overlaps(body, obj.Box)
				} else {
					collected = true
				}
			}
		}

		if collected {
			value := components.Coin.Get(coinEntry).Value
			player.Coins += value
			player.RunCoins += value
			factory.Destroy(e, coinEntry)
		}
	}
}

func pullCoin(obj *components.ObjectData, toward gamemath.Box, magnetRange, d float64) {
	step := min(magnetRange*cfg.Coin.MagnetPull, cfg.Coin.MagnetMaxStep, d/cfg.Coin.MagnetDivisor)
	from, to := gamemath.Center(obj.Box), gamemath.Center(toward)
	dir := gamemath.Normalize(math.Vec2{X: to.X - from.X, Y: to.Y - from.Y})
	obj.X += dir.X * step
	obj.Y += dir.Y * step
}

// UpdateCollectibles turns touched squad pickups into squad members. On the
// tutorial's pickup step each collected pickup reveals the next archetype.
func UpdateCollectibles(e *ecs.ECS) {
	if !playerInteractive(e) {
		return
	}
	playerEntry := tags.Player.MustFirst(e.World)
	body := components.Object.Get(playerEntry).Box
	tutorial, isTutorial := GetTutorial(e)

	for _, pickup := range Collectibles(e) {
		if !gamemath.Overlaps(body, components.Object.Get(pickup).Box) {
			continue
		}
		t := components.Collectible.Get(pickup).Type
		factory.Destroy(e, pickup)
		factory.CreateAlly(e, t)

		if isTutorial && tutorial.Step == cfg.Tutorial.PickupStep {
			tutorial.PickupIndex++
			if tutorial.PickupIndex < len(cfg.Tutorial.AllyOrder) {
				factory.CreateCollectible(e, cfg.Tutorial.AllyOrder[tutorial.PickupIndex], true)
			}
		}
	}
}

// UpdateAllyPickups drops a new squad pickup each time the seconds-based
// pickup clock runs out.
func UpdateAllyPickups(e *ecs.ECS) {
	session := getSession(e)
	round := getRound(e)

	round.AllyTimer -= session.Delta
	if round.AllyTimer > 0 {
		return
	}
	round.AllyTimer = cfg.Ally.SpawnInterval

	t := PickAllyType(session.Rand, session.Unlocked)
	if factory.CreateCollectible(e, t, false) == nil {
		log.Printf("no room for a %s pickup this cycle", t)
	}
}

// PickAllyType draws uniformly from the unlocked archetypes. GUN_GUY only
// drops when nothing else is unlocked.
func PickAllyType(rng *rand.Rand, unlocked []cfg.AllyType) cfg.AllyType {
	pool := make([]cfg.AllyType, 0, len(unlocked))
	for _, t := range unlocked {
		if t != cfg.AllyGunGuy {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		pool = unlocked
	}
	if len(pool) == 0 {
		return cfg.AllyGunGuy
	}
	return pool[int(rng.Float64()*float64(len(pool)))]
}
