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

// PlayerSpawnBox is the player box centered in the arena.
func PlayerSpawnBox() gamemath.Box {
	return gamemath.BoxAround(
		math.Vec2{X: cfg.World.Width / 2, Y: cfg.World.Height / 2},
		cfg.Player.Width,
		cfg.Player.Height,
	)
}

// NewPlayerData returns a fresh player carrying champion's weapon.
func NewPlayerData(champion cfg.AllyType) components.PlayerData {
	p := components.PlayerData{
		Speed:           cfg.Player.Speed,
		Coins:           cfg.Player.Coins,
		Damage:          cfg.Player.Damage,
		Range:           cfg.Player.Range,
		ShootCooldown:   cfg.Player.ShootCooldown,
		CoinMagnetRange: cfg.Player.CoinMagnetRange,
		SquadSpacing:    cfg.Player.SquadSpacing,
		LastDirection:   math.Vec2{X: 1, Y: 0},
		Facing:          math.Vec2{X: 1, Y: 0},
	}
	ApplyLoadout(&p, champion)
	return p
}

// ApplyLoadout switches the player to champion's weapon stats.
func ApplyLoadout(p *components.PlayerData, champion cfg.AllyType) {
	w, ok := cfg.Ally.Weapons[champion]
	if !ok {
		champion = cfg.AllyGunGuy
		w = cfg.Ally.Weapons[champion]
	}
	p.Champion = champion
	p.Weapon = w
	p.Damage = w.Damage
	p.Range = w.Range
	p.ShootCooldown = w.Cooldown
	p.Ammo = w.ClipSize
	p.ReloadTimer = 0
}

func CreatePlayer(ecs *ecs.ECS, champion cfg.AllyType) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	attachObject(ecs, player, PlayerSpawnBox(), tags.ResolvPlayer)

	components.Player.SetValue(player, NewPlayerData(champion))
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	return player
}
