package factory

import (
	"github.com/automoto/squadfall/archetypes"
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a projectile with its box centered on origin.
func CreateProjectile(ecs *ecs.ECS, origin math.Vec2, w, h float64, data components.ProjectileData) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)
	attachObject(ecs, p, gamemath.BoxAround(origin, w, h), tags.ResolvProjectile)
	components.Projectile.SetValue(p, data)
	return p
}

// FireWeapon fires one volley of weapon from origin along aim. Multi-shot
// weapons fan their projectiles evenly across the spread angle.
func FireWeapon(ecs *ecs.ECS, origin, aim math.Vec2, weapon cfg.WeaponConfig, damage float64, ownerID int) []*donburi.Entry {
	count := max(1, weapon.ProjectileCount)
	step := 0.0
	if count > 1 {
		step = weapon.SpreadAngle / float64(count-1)
	}

	shots := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		offset := (float64(i) - float64(count-1)/2) * step
		dir := gamemath.Rotate(aim, offset)
		shots = append(shots, CreateProjectile(ecs, origin, weapon.ProjectileWidth, weapon.ProjectileHeight, components.ProjectileData{
			Velocity:     gamemath.Scale(dir, weapon.ProjectileSpeed),
			Damage:       damage,
			OwnerID:      ownerID,
			PlayerOrigin: true,
			MaxTravel:    weapon.MaxTravel,
			AoERadius:    weapon.AoERadius,
			CausesShake:  weapon.CausesShake,
		}))
	}
	return shots
}

// FireEnemyShot fires an enemy projectile from origin along dir.
func FireEnemyShot(ecs *ecs.ECS, origin, dir math.Vec2, enemy *components.EnemyData, ownerID int) *donburi.Entry {
	row := enemy.Config
	return CreateProjectile(ecs, origin, row.ProjectileWidth, row.ProjectileHeight, components.ProjectileData{
		Velocity:    gamemath.Scale(dir, row.ProjectileSpeed),
		Damage:      enemy.AttackDamage,
		OwnerID:     ownerID,
		AoERadius:   row.ProjectileAoE,
		CausesShake: row.CausesShake,
	})
}

// CreateAirstrikeMissile drops a missile straight down from spawnY toward
// targetY. It detonates once it has covered the distance between them.
func CreateAirstrikeMissile(ecs *ecs.ECS, x, spawnY, targetY float64) *donburi.Entry {
	a := cfg.Airstrike
	travel := targetY - spawnY
	if travel <= 0 {
		travel = a.Height
	}

	p := archetypes.Projectile.Spawn(ecs)
	attachObject(ecs, p, gamemath.Box{X: x - a.Width/2, Y: spawnY, W: a.Width, H: a.Height}, tags.ResolvProjectile)
	components.Projectile.SetValue(p, components.ProjectileData{
		Velocity:     math.Vec2{X: 0, Y: a.Speed},
		Damage:       a.Damage,
		PlayerOrigin: true,
		MaxTravel:    travel,
		AoERadius:    a.AoERadius,
		CausesShake:  true,
		Airstrike:    true,
		TargetY:      targetY,
	})
	return p
}
