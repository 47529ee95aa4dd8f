package session

import (
	"log"
	"math"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
)

// UpgradeCost is the price of buying u when it currently sits at level.
func UpgradeCost(u cfg.UpgradeConfig, level int) int {
	return int(math.Floor(float64(u.BaseCost) * math.Pow(u.CostScaling, float64(level))))
}

// purchase buys one level of id. It reports false when the upgrade is not
// offered, already maxed or unaffordable.
func (s *Session) purchase(id cfg.UpgradeID) bool {
	w := s.game
	data := sessionData(w)
	if !offered(data, id) {
		return false
	}
	u, ok := cfg.UpgradeByID(id)
	if !ok {
		return false
	}
	level := data.UpgradeLevels[id]
	if level >= u.MaxLevel {
		return false
	}
	cost := UpgradeCost(u, level)

	pe := playerEntry(w)
	player := components.Player.Get(pe)
	if player.Coins < cost {
		return false
	}

	switch id {
	case cfg.UpgradeMaxHealth:
		health := components.Health.Get(pe)
		health.Max += u.Amount
		health.Current += u.Amount
	case cfg.UpgradeSpeed:
		player.Speed *= u.Amount
	case cfg.UpgradeCoinMagnet:
		player.CoinMagnetRange += u.Amount
	case cfg.UpgradeSquadSpacing:
		player.SquadSpacing = max(cfg.Player.MinSquadSpacing, player.SquadSpacing*u.Amount)
	case cfg.UpgradeInitialAlly:
		player.InitialAllyBonus++
	default:
		if u.Unlocks != nil && !data.IsUnlocked(*u.Unlocks) {
			data.Unlocked = append(data.Unlocked, *u.Unlocks)
		}
	}

	player.Coins -= cost
	data.UpgradeLevels[id] = level + 1
	log.Printf("bought %s level %d for %d coins", u.Name, level+1, cost)
	return true
}

func offered(data *components.SessionData, id cfg.UpgradeID) bool {
	for _, o := range data.Offered {
		if o == id {
			return true
		}
	}
	return false
}

// shopEntries lists the offered upgrades with their next price.
func shopEntries(data *components.SessionData, coins int) []ShopEntry {
	entries := make([]ShopEntry, 0, len(data.Offered))
	for _, id := range data.Offered {
		u, ok := cfg.UpgradeByID(id)
		if !ok {
			continue
		}
		level := data.UpgradeLevels[id]
		e := ShopEntry{
			ID:          id,
			Name:        u.Name,
			Description: u.Description,
			Level:       level,
			MaxLevel:    u.MaxLevel,
			Maxed:       level >= u.MaxLevel,
		}
		if !e.Maxed {
			e.Cost = UpgradeCost(u, level)
			e.Affordable = coins >= e.Cost
		}
		entries = append(entries, e)
	}
	return entries
}

// NextShopRound is the next round boundary at which the shop cadence falls.
func NextShopRound(round int) int {
	return (round/cfg.Round.ShopInterval + 1) * cfg.Round.ShopInterval
}
