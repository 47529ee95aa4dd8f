package config

import (
	"math"

	"github.com/yohamta/donburi/ecs"
)

const (
	// Default is the only ecs layer; every entity spawns on it.
	Default ecs.LayerID = iota
)

// WorldConfig describes the arena rectangle.
type WorldConfig struct {
	Width  float64
	Height float64

	EdgeMargin  float64 // characters stay this far inside the arena
	CullMargin  float64 // projectiles die this far outside it
	SpawnMargin float64 // enemies enter from this far outside it

	// Collision space covers the arena plus SpacePadding on every side so
	// off-arena enemies and projectiles still register.
	SpacePadding  float64
	SpaceCellSize int
}

// PlayerConfig contains the starting player values.
type PlayerConfig struct {
	Health        float64
	Speed         float64
	Width         float64
	Height        float64
	Coins         int
	ShootCooldown int
	Damage        float64
	Range         float64

	CoinMagnetRange     float64
	SquadSpacing        float64
	MinSquadSpacing     float64
	PathHistoryLength   int
	HitFlashTicks       int
	PointerDeadZone     float64
	InitialAllyBonusCap int
}

// WeaponConfig is one weapon archetype. Champions and squad members of the
// same archetype share it.
type WeaponConfig struct {
	Damage   float64
	Range    float64
	Cooldown int

	ProjectileCount  int
	SpreadAngle      float64 // degrees across the whole fan
	ProjectileSpeed  float64
	ProjectileWidth  float64
	ProjectileHeight float64
	MaxTravel        float64 // 0 = unlimited
	AoERadius        float64 // 0 = direct hit only
	CausesShake      bool

	// Burst weapons empty a clip and then reload.
	ClipSize   int
	ReloadTime int

	TargetsOffScreen bool
}

// Burst reports whether the weapon fires from a clip.
func (w WeaponConfig) Burst() bool {
	return w.ClipSize > 0
}

// AllyConfig contains squad member configuration.
type AllyConfig struct {
	Width             float64
	Height            float64
	Health            float64
	Speed             float64
	FollowLerp        float64
	TrailDistance     float64
	SeparationPadding float64
	PickupHeal        float64
	SpawnInterval     float64 // seconds

	Weapons map[AllyType]WeaponConfig
}

// EnemyTypeConfig holds base stats and per-round increments for one archetype.
type EnemyTypeConfig struct {
	Width  float64
	Height float64

	Health         float64
	HealthPerRound float64
	Speed          float64
	SpeedPerRound  float64
	Damage         float64
	DamagePerRound float64
	AttackRange    float64

	AttackCooldown   int
	CooldownPerRound int // usually negative
	MinCooldown      int

	Points int

	// Ranged attackers fire projectiles instead of touching their target.
	Ranged           bool
	ProjectileSpeed  float64
	ProjectileWidth  float64
	ProjectileHeight float64
	ProjectileAoE    float64
	CausesShake      bool

	// Area pulse (drone).
	AoEDamage   float64
	AoERadius   float64
	AoECooldown int
}

// EnemyConfig contains enemy system configuration.
type EnemyConfig struct {
	Types map[EnemyType]EnemyTypeConfig

	ShooterMinDistance   float64
	ShooterHoldFactor    float64
	ShooterRetreatFactor float64

	SniperMinFactor     float64
	SniperMaxFactor     float64
	SniperResumeFactor  float64
	SniperRetreatFactor float64

	HoldRangeFactor     float64 // tanks and drones stop inside this share of range
	MinimumMoveFactor   float64
	DroneRetryCooldown  int
	DroneRetryDivisor   int
	TutorialDummyOffset float64
}

// ProjectileConfig contains shared projectile values.
type ProjectileConfig struct {
	Width       float64
	Height      float64
	PlayerSpeed float64
	EnemySpeed  float64
}

// ComboConfig contains combo counter values.
type ComboConfig struct {
	WindowTicks int
	Threshold   int
}

// AirstrikeConfig contains the combo special values.
type AirstrikeConfig struct {
	MissileCount    int
	IntervalTicks   int
	Damage          float64
	AoERadius       float64
	Speed           float64
	Width           float64
	Height          float64
	TargetMinFactor float64 // share of viewport height where impacts start
	TargetJitter    float64
}

// RoundConfig contains wave pacing values.
type RoundConfig struct {
	BaseEnemyCount       int
	EnemyIncrement       int
	ShopInterval         int
	NextRoundDelay       float64 // seconds
	ImmediateSpawns      int
	InitialBatch         int
	GradualSpawnInterval int
	RetryInterval        int
	TrickleChance        float64
	ConcurrencyBase      int
	ConcurrencyPerRound  int
	ConcurrencyCap       int
	GameOverDelay        int
	WaveTitleStay        int
	WaveTitleFade        int
}

// Quota returns the number of kills needed to clear round.
func (r RoundConfig) Quota(round int) int {
	return r.BaseEnemyCount + (round-1)*r.EnemyIncrement
}

// ConcurrencyLimit returns the live-enemy ceiling for mid-round trickle spawns.
func (r RoundConfig) ConcurrencyLimit(round int) int {
	return min(r.ConcurrencyCap, r.ConcurrencyBase+r.ConcurrencyPerRound*round)
}

// SpawnBracket maps rounds up to MaxRound onto a probability vector over
// SpawnOrder. MaxRound 0 matches every round.
type SpawnBracket struct {
	MaxRound int
	Weights  []float64
}

// SpawnConfig contains spawn director tables.
type SpawnConfig struct {
	Brackets []SpawnBracket
}

// Weights returns the probability vector for round.
func (s SpawnConfig) Weights(round int) []float64 {
	for _, b := range s.Brackets {
		if b.MaxRound == 0 || round <= b.MaxRound {
			return b.Weights
		}
	}
	return s.Brackets[len(s.Brackets)-1].Weights
}

// TypeCap returns how many enemies of t may be alive at once in round.
func (s SpawnConfig) TypeCap(t EnemyType, round int) int {
	switch t {
	case EnemyTank:
		if round <= 10 {
			return 1
		}
		return 2
	case EnemyStalker, EnemyDrone, EnemySniper:
		if round <= 10 {
			return 1
		}
		if round <= 15 {
			return 2
		}
		return 3
	}
	return math.MaxInt
}

// SpecialCap returns how many special enemies may be alive at once in round.
func (s SpawnConfig) SpecialCap(round int) int {
	if round >= 11 {
		return 3
	}
	if round >= 6 {
		return 1
	}
	return math.MaxInt
}

// CoinConfig contains coin drop values.
type CoinConfig struct {
	Size            float64
	Value           int
	PointsPerCoin   float64
	BonusMin        int
	BonusSpread     int
	ScatterFactor   float64
	MagnetPull      float64
	MagnetMaxStep   float64
	MagnetDivisor   float64
	CollectDistance float64
}

// CollectibleConfig contains ally pickup placement values.
type CollectibleConfig struct {
	Size               float64
	MinPlayerDistance  float64
	MinPickupDistance  float64
	PlacementAttempts  int
	TutorialOffsetMin  float64
	TutorialOffsetSpan float64
}

// ScreenShakeConfig contains screen shake intensity and duration values.
type ScreenShakeConfig struct {
	RocketIntensity    float64
	RocketDuration     int
	AirstrikeIntensity float64
	AirstrikeDuration  int
}

// CameraConfig contains camera follow values.
type CameraConfig struct {
	FollowSmoothing float64
}

// ScoreConfig weights the game-over score.
type ScoreConfig struct {
	KillWeight  int
	ComboWeight int
	SquadWeight int
}

// Config holds host window settings.
type Config struct {
	Width  int
	Height int
	TPS    int
}

var C *Config
var World WorldConfig
var Player PlayerConfig
var Ally AllyConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Combo ComboConfig
var Airstrike AirstrikeConfig
var Round RoundConfig
var Spawn SpawnConfig
var Coin CoinConfig
var Collectible CollectibleConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var Score ScoreConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 600,
		TPS:    60,
	}

	World = WorldConfig{
		Width:         2000,
		Height:        1500,
		EdgeMargin:    10,
		CullMargin:    50,
		SpawnMargin:   50,
		SpacePadding:  256,
		SpaceCellSize: 32,
	}

	Player = PlayerConfig{
		Health:              30,
		Speed:               3,
		Width:               28,
		Height:              28,
		Coins:               0,
		ShootCooldown:       160,
		Damage:              10,
		Range:               480,
		CoinMagnetRange:     40,
		SquadSpacing:        1.0,
		MinSquadSpacing:     0.5,
		PathHistoryLength:   30,
		HitFlashTicks:       10,
		PointerDeadZone:     1,
		InitialAllyBonusCap: 3,
	}

	Projectile = ProjectileConfig{
		Width:       6,
		Height:      6,
		PlayerSpeed: 4,
		EnemySpeed:  2.8,
	}

	base := WeaponConfig{
		ProjectileCount:  1,
		ProjectileSpeed:  Projectile.PlayerSpeed,
		ProjectileWidth:  Projectile.Width,
		ProjectileHeight: Projectile.Height,
	}
	weapon := func(damage, rng float64, cooldown int, edit func(w *WeaponConfig)) WeaponConfig {
		w := base
		w.Damage = damage
		w.Range = rng
		w.Cooldown = cooldown
		if edit != nil {
			edit(&w)
		}
		return w
	}

	Ally = AllyConfig{
		Width:             24,
		Height:            24,
		Health:            75,
		Speed:             Player.Speed * 0.9,
		FollowLerp:        0.15,
		TrailDistance:     35,
		SeparationPadding: 5,
		PickupHeal:        5,
		SpawnInterval:     30,
		Weapons: map[AllyType]WeaponConfig{
			AllyGunGuy: weapon(10, 480, 15, func(w *WeaponConfig) {
				w.ClipSize = 6
				w.ReloadTime = 150
			}),
			AllyShotgun: weapon(7, 420, 45, func(w *WeaponConfig) {
				w.ProjectileCount = 3
				w.SpreadAngle = 35
			}),
			AllySniper: weapon(35, 1200, 100, func(w *WeaponConfig) {
				w.ProjectileSpeed = Projectile.PlayerSpeed * 2.0
				w.TargetsOffScreen = true
			}),
			AllyMinigunner: weapon(6, 480, 12, nil),
			AllyRPG: weapon(40, 500, 200, func(w *WeaponConfig) {
				w.ProjectileSpeed = Projectile.PlayerSpeed * 1.8
				w.ProjectileWidth = 8
				w.ProjectileHeight = 14
				w.CausesShake = true
				w.AoERadius = 60
			}),
			AllyFlamer: weapon(4, 480, 45, func(w *WeaponConfig) {
				w.ProjectileCount = 4
				w.ProjectileSpeed = Projectile.PlayerSpeed * 0.5
				w.ProjectileWidth = 16
				w.ProjectileHeight = 16
				w.MaxTravel = 120
			}),
			AllyRifleman: weapon(9, 520, 28, func(w *WeaponConfig) {
				w.ProjectileSpeed = Projectile.PlayerSpeed * 1.3
			}),
		},
	}

	Enemy = EnemyConfig{
		Types: map[EnemyType]EnemyTypeConfig{
			EnemyGrunt: {
				Width: 28, Height: 28,
				Health: 30, HealthPerRound: 2,
				Speed: 1.5, SpeedPerRound: 0.1,
				Damage: 10, DamagePerRound: 1,
				AttackRange:    28 * 0.7,
				AttackCooldown: 30,
				Points:         10,
			},
			EnemyShooter: {
				Width: 28, Height: 28,
				Health: 20, HealthPerRound: 1.5,
				Speed: 1.2, SpeedPerRound: 0.05,
				Damage: 5, DamagePerRound: 0.5,
				AttackRange:      480,
				AttackCooldown:   90,
				CooldownPerRound: -2,
				MinCooldown:      30,
				Points:           15,
				Ranged:           true,
				ProjectileSpeed:  Projectile.EnemySpeed,
				ProjectileWidth:  Projectile.Width,
				ProjectileHeight: Projectile.Height,
			},
			EnemyTank: {
				Width: 36, Height: 36,
				Health: 500, HealthPerRound: 15,
				Speed: 0.7, SpeedPerRound: 0.03,
				Damage: 50, DamagePerRound: 2,
				AttackRange:      600,
				AttackCooldown:   180,
				Points:           50,
				Ranged:           true,
				ProjectileSpeed:  2.2,
				ProjectileWidth:  8,
				ProjectileHeight: 14,
				ProjectileAoE:    75,
				CausesShake:      true,
			},
			EnemyStalker: {
				Width: 26, Height: 26,
				Health: 25, HealthPerRound: 1.5,
				Speed: 3.8, SpeedPerRound: 0.2,
				Damage: 8, DamagePerRound: 1,
				AttackRange:    26 * 0.7,
				AttackCooldown: 45,
				Points:         20,
			},
			EnemyDrone: {
				Width: 30, Height: 30,
				Health: 15, HealthPerRound: 1.2,
				Speed:       2.5,
				Points:      25,
				AoEDamage:   10,
				AoERadius:   100,
				AoECooldown: 60,
			},
			EnemySniper: {
				Width: 28, Height: 28,
				Health: 30, HealthPerRound: 1.5,
				Speed: 1.0, SpeedPerRound: 0.02,
				Damage: 40, DamagePerRound: 1.5,
				AttackRange:      750,
				AttackCooldown:   200,
				CooldownPerRound: -3,
				MinCooldown:      60,
				Points:           35,
				Ranged:           true,
				ProjectileSpeed:  Projectile.EnemySpeed,
				ProjectileWidth:  Projectile.Width,
				ProjectileHeight: Projectile.Height,
			},
			EnemyDummy: {
				Width: 28, Height: 28,
				Health:         20,
				AttackCooldown: 9999,
				Points:         1,
			},
		},
		ShooterMinDistance:   300,
		ShooterHoldFactor:    0.8,
		ShooterRetreatFactor: 0.7,
		SniperMinFactor:      0.9,
		SniperMaxFactor:      1.0,
		SniperResumeFactor:   1.2,
		SniperRetreatFactor:  0.8,
		HoldRangeFactor:      0.5,
		MinimumMoveFactor:    0.1,
		DroneRetryCooldown:   15,
		DroneRetryDivisor:    4,
		TutorialDummyOffset:  100,
	}

	Combo = ComboConfig{
		WindowTicks: 180,
		Threshold:   10,
	}

	Airstrike = AirstrikeConfig{
		MissileCount:    10,
		IntervalTicks:   8,
		Damage:          50,
		AoERadius:       80,
		Speed:           7,
		Width:           10,
		Height:          22,
		TargetMinFactor: 0.8,
		TargetJitter:    0.3,
	}

	Round = RoundConfig{
		BaseEnemyCount:       6,
		EnemyIncrement:       2,
		ShopInterval:         3,
		NextRoundDelay:       5,
		ImmediateSpawns:      3,
		InitialBatch:         6,
		GradualSpawnInterval: 20,
		RetryInterval:        5,
		TrickleChance:        0.045,
		ConcurrencyBase:      8,
		ConcurrencyPerRound:  2,
		ConcurrencyCap:       25,
		GameOverDelay:        180,
		WaveTitleStay:        90,
		WaveTitleFade:        30,
	}

	Spawn = SpawnConfig{
		Brackets: []SpawnBracket{
			{MaxRound: 5, Weights: []float64{0.7, 0.3, 0.0, 0.0, 0.0, 0.0}},
			{MaxRound: 10, Weights: []float64{0.40, 0.40, 0.05, 0.05, 0.05, 0.05}},
			{MaxRound: 15, Weights: []float64{0.25, 0.35, 0.15, 0.083, 0.083, 0.084}},
			{MaxRound: 20, Weights: []float64{0.15, 0.30, 0.20, 0.116, 0.116, 0.118}},
			{MaxRound: 0, Weights: []float64{0.10, 0.25, 0.25, 0.133, 0.133, 0.134}},
		},
	}

	Coin = CoinConfig{
		Size:            10,
		Value:           10,
		PointsPerCoin:   10,
		BonusMin:        1,
		BonusSpread:     3,
		ScatterFactor:   1.5,
		MagnetPull:      0.05,
		MagnetMaxStep:   8,
		MagnetDivisor:   1.5,
		CollectDistance: 2,
	}

	Collectible = CollectibleConfig{
		Size:               24,
		MinPlayerDistance:  150,
		MinPickupDistance:  100,
		PlacementAttempts:  50,
		TutorialOffsetMin:  80,
		TutorialOffsetSpan: 120,
	}

	ScreenShake = ScreenShakeConfig{
		RocketIntensity:    5,
		RocketDuration:     15,
		AirstrikeIntensity: 3,
		AirstrikeDuration:  10,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,
	}

	Score = ScoreConfig{
		KillWeight:  10,
		ComboWeight: 100,
		SquadWeight: 100,
	}
}
