package components

import (
	cfg "github.com/automoto/squadfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	Type     cfg.EnemyType
	Config   *cfg.EnemyTypeConfig // cached archetype row
	Speed    float64
	Velocity math.Vec2

	AttackDamage   float64
	AttackRange    float64
	AttackCooldown int
	AttackTimer    int
	Points         int

	// Area pulse, drones only.
	AoEDamage   float64
	AoERadius   float64
	AoECooldown int
	AoETimer    int

	TargetID int
}

// HasPulse reports whether the enemy damages an area around itself.
func (e *EnemyData) HasPulse() bool {
	return e.AoERadius > 0
}

var Enemy = donburi.NewComponentType[EnemyData]()
