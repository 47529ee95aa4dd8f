package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Velocity     math.Vec2
	Damage       float64
	OwnerID      int
	PlayerOrigin bool

	MaxTravel float64 // 0 = unlimited
	Traveled  float64

	AoERadius   float64
	CausesShake bool

	Airstrike bool
	TargetY   float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
