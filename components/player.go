package components

import (
	cfg "github.com/automoto/squadfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AirstrikeData is the combo special state machine. The session owns one
// copy; the tutorial keeps its own on the player.
type AirstrikeData struct {
	Available  bool
	Active     bool
	Pending    int
	SpawnTimer int
}

type PlayerData struct {
	Speed    float64
	Champion cfg.AllyType
	Weapon   cfg.WeaponConfig

	Damage        float64
	Range         float64
	ShootCooldown int
	ShootTimer    int
	Ammo          int
	ReloadTimer   int

	LastDirection math.Vec2
	Facing        math.Vec2
	Trail         []math.Vec2 // most recent center first

	// Squad is ordered; member i follows member i-1, member 0 follows the player.
	Squad []donburi.Entity

	Coins            int
	CoinMagnetRange  float64
	SquadSpacing     float64
	InitialAllyBonus int

	Combo        int
	HighestCombo int

	Kills         int
	RunKills      int
	RunCoins      int
	RunTanks      int
	MaxSquad      int
	RoundsCleared int

	HitFlash  int
	Airstrike AirstrikeData
}

var Player = donburi.NewComponentType[PlayerData]()
