package factory

import (
	"math"

	"github.com/automoto/squadfall/archetypes"
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, x, y float64, value int) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	size := cfg.Coin.Size
	attachObject(ecs, coin, gamemath.Box{X: x, Y: y, W: size, H: size}, tags.ResolvCoin)
	components.Coin.SetValue(coin, components.CoinData{Value: value})
	return coin
}

// CoinDropCount is ceil(points/10) plus a random bonus of one to three.
func CoinDropCount(points int, roll float64) int {
	base := int(math.Ceil(float64(points) / cfg.Coin.PointsPerCoin))
	return base + cfg.Coin.BonusMin + int(math.Floor(roll*float64(cfg.Coin.BonusSpread)))
}

// DropCoins scatters a kill's coins around the enemy it came from.
func DropCoins(ecs *ecs.ECS, enemy gamemath.Box, points int) []*donburi.Entry {
	r := rng(ecs)
	count := CoinDropCount(points, r.Float64())
	c := gamemath.Center(enemy)
	half := cfg.Coin.Size / 2

	coins := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		x := c.X - half + (r.Float64()-0.5)*enemy.W*cfg.Coin.ScatterFactor
		y := c.Y - half + (r.Float64()-0.5)*enemy.H*cfg.Coin.ScatterFactor
		coins = append(coins, CreateCoin(ecs, x, y, cfg.Coin.Value))
	}
	return coins
}
