package components

import (
	cfg "github.com/automoto/squadfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type AllyData struct {
	Type   cfg.AllyType
	Weapon cfg.WeaponConfig
	Speed  float64

	ShootTimer  int
	Ammo        int
	ReloadTimer int

	LastDirection math.Vec2
	Facing        math.Vec2
	Trail         []math.Vec2
}

var Ally = donburi.NewComponentType[AllyData]()
