package components

import (
	cfg "github.com/automoto/squadfall/config"
	"github.com/yohamta/donburi"
)

type CoinData struct {
	Value int
}

var Coin = donburi.NewComponentType[CoinData]()

// CollectibleData is a squad pickup.
type CollectibleData struct {
	Type cfg.AllyType
}

var Collectible = donburi.NewComponentType[CollectibleData]()
