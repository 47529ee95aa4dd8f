package session

import (
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// baseUnlocks are the squad archetypes every run can pick up.
var baseUnlocks = []cfg.AllyType{cfg.AllyShotgun, cfg.AllyRifleman, cfg.AllyGunGuy}

// selectChampion starts a fresh campaign with champion's weapon and opens
// the shop.
func (s *Session) selectChampion(champion cfg.AllyType) {
	w := s.game
	data := sessionData(w)
	pe := playerEntry(w)
	player := components.Player.Get(pe)

	clearSquad(w, player)
	clearField(w)

	components.Player.SetValue(pe, factory.NewPlayerData(champion))
	components.Health.SetValue(pe, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	moveTo(pe, factory.PlayerSpawnBox())
	champion = components.Player.Get(pe).Champion

	data.Unlocked = append([]cfg.AllyType(nil), baseUnlocks...)
	if !data.IsUnlocked(champion) {
		data.Unlocked = append(data.Unlocked, champion)
	}
	data.Offered = data.Offered[:0]
	for _, u := range cfg.Upgrades {
		if u.Unlocks != nil && *u.Unlocks == champion {
			continue
		}
		data.Offered = append(data.Offered, u.ID)
	}
	data.UpgradeLevels = map[cfg.UpgradeID]int{}
	data.Logs = map[cfg.LogID]bool{}
	data.ComboTimer = 0
	data.Airstrike = components.AirstrikeData{}

	resetRound(w)
	systems.StopScreenShake(w)
	systems.ClearWaveTitle(w)

	data.Status = cfg.StatusShop
	systems.CenterCamera(w)
}

// beginRun puts the current player back at full strength in the middle of
// an empty arena and queues wave 1 for the next tick.
func (s *Session) beginRun() {
	w := s.game
	data := sessionData(w)
	pe := playerEntry(w)
	player := components.Player.Get(pe)

	health := components.Health.Get(pe)
	health.Current = health.Max
	moveTo(pe, factory.PlayerSpawnBox())

	clearSquad(w, player)
	player.Trail = nil
	player.ShootTimer = 0
	player.Ammo = player.Weapon.ClipSize
	player.ReloadTimer = 0
	player.LastDirection = math.Vec2{X: 1, Y: 0}
	player.Facing = player.LastDirection

	player.RunKills = 0
	player.RunCoins = 0
	player.RunTanks = 0
	player.RoundsCleared = 0
	player.Combo = 0
	player.HighestCombo = 0
	player.HitFlash = 0
	player.Airstrike = components.AirstrikeData{}

	clearField(w)
	for i := 0; i < min(player.InitialAllyBonus, cfg.Player.InitialAllyBonusCap); i++ {
		factory.SpawnAlly(w, cfg.AllyRifleman)
	}
	player.MaxSquad = len(player.Squad) + 1
	factory.CreateCollectible(w, systems.PickAllyType(data.Rand, data.Unlocked), false)

	data.Logs = map[cfg.LogID]bool{}
	systems.EvaluateLogs(data, player)
	data.ComboTimer = 0
	data.Airstrike = components.AirstrikeData{}

	resetRound(w)
	systems.StopScreenShake(w)
	systems.ClearWaveTitle(w)

	data.Status = cfg.StatusInitNewRun
	systems.CenterCamera(w)
}

// returnToShop heals the player after a lost run and reopens the shop.
// Coins and upgrades carry over.
func (s *Session) returnToShop() {
	w := s.game
	data := sessionData(w)
	pe := playerEntry(w)
	player := components.Player.Get(pe)

	health := components.Health.Get(pe)
	health.Current = health.Max
	moveTo(pe, factory.PlayerSpawnBox())

	clearSquad(w, player)
	player.Trail = nil
	player.Combo = 0
	player.HitFlash = 0
	player.Ammo = player.Weapon.ClipSize
	player.ReloadTimer = 0
	player.LastDirection = math.Vec2{X: 1, Y: 0}
	player.Facing = player.LastDirection

	systems.ClearEnemies(w)
	systems.ClearProjectiles(w)

	round := roundData(w)
	round.Kills = 0
	round.PendingSpawns = 0
	round.GameOverTimer = 0

	data.ComboTimer = 0
	data.Airstrike = components.AirstrikeData{}
	systems.StopScreenShake(w)
	systems.ClearWaveTitle(w)

	data.Status = cfg.StatusShop
	systems.CenterCamera(w)
}

func resetRound(w *ecs.ECS) {
	*roundData(w) = components.RoundData{
		Round:     1,
		Quota:     cfg.Round.Quota(1),
		AllyTimer: cfg.Ally.SpawnInterval,
	}
}

// clearSquad removes every squad member.
func clearSquad(w *ecs.ECS, player *components.PlayerData) {
	for _, e := range systems.Squad(w, player) {
		factory.Destroy(w, e)
	}
	player.Squad = nil
}

// clearField removes enemies, projectiles and pickups.
func clearField(w *ecs.ECS) {
	systems.ClearEnemies(w)
	systems.ClearProjectiles(w)
	for _, e := range systems.Coins(w) {
		factory.Destroy(w, e)
	}
	for _, e := range systems.Collectibles(w) {
		factory.Destroy(w, e)
	}
}

func moveTo(e *donburi.Entry, box gamemath.Box) {
	obj := components.Object.Get(e)
	obj.Box = box
	factory.SyncShape(obj)
}
