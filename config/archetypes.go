package config

// EnemyType identifies an enemy archetype.
type EnemyType int

const (
	EnemyGrunt EnemyType = iota
	EnemyShooter
	EnemyTank
	EnemyStalker
	EnemyDrone
	EnemySniper
	EnemyDummy
)

// SpawnOrder is the order the spawn director walks its probability vector in.
var SpawnOrder = []EnemyType{
	EnemyGrunt,
	EnemyShooter,
	EnemyTank,
	EnemyStalker,
	EnemyDrone,
	EnemySniper,
}

func (t EnemyType) String() string {
	switch t {
	case EnemyGrunt:
		return "MELEE_GRUNT"
	case EnemyShooter:
		return "RANGED_SHOOTER"
	case EnemyTank:
		return "ROCKET_TANK"
	case EnemyStalker:
		return "AGILE_STALKER"
	case EnemyDrone:
		return "ELECTRIC_DRONE"
	case EnemySniper:
		return "ENEMY_SNIPER"
	case EnemyDummy:
		return "TUTORIAL_DUMMY"
	}
	return "UNKNOWN"
}

// Special reports whether t counts against the special concurrency cap.
func (t EnemyType) Special() bool {
	return t == EnemyStalker || t == EnemyDrone || t == EnemySniper
}

// AllyType identifies a squad weapon archetype. AllyGunGuy doubles as the
// default player weapon.
type AllyType int

const (
	AllyGunGuy AllyType = iota
	AllyRifleman
	AllyShotgun
	AllySniper
	AllyMinigunner
	AllyRPG
	AllyFlamer
)

// AllAllyTypes lists every ally archetype, champions included.
var AllAllyTypes = []AllyType{
	AllyGunGuy,
	AllyRifleman,
	AllyShotgun,
	AllySniper,
	AllyMinigunner,
	AllyRPG,
	AllyFlamer,
}

func (t AllyType) String() string {
	switch t {
	case AllyGunGuy:
		return "GUN_GUY"
	case AllyRifleman:
		return "RIFLEMAN"
	case AllyShotgun:
		return "SHOTGUN"
	case AllySniper:
		return "SNIPER"
	case AllyMinigunner:
		return "MINIGUNNER"
	case AllyRPG:
		return "RPG_SOLDIER"
	case AllyFlamer:
		return "FLAMER"
	}
	return "UNKNOWN"
}

// ParseAllyType maps a champion id back to its archetype.
func ParseAllyType(s string) (AllyType, bool) {
	for _, t := range AllAllyTypes {
		if t.String() == s {
			return t, true
		}
	}
	return AllyGunGuy, false
}
