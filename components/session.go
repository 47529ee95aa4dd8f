package components

import (
	"math/rand"

	cfg "github.com/automoto/squadfall/config"
	"github.com/yohamta/donburi"
)

// SessionData is the orchestrator singleton: status, clocks, and the meta
// progression that outlives a single run.
type SessionData struct {
	Status cfg.Status
	Rand   *rand.Rand

	Delta float64 // seconds since the previous tick
	Tick  int

	ComboTimer int
	Airstrike  AirstrikeData

	Unlocked      []cfg.AllyType
	Offered       []cfg.UpgradeID
	UpgradeLevels map[cfg.UpgradeID]int
	Logs          map[cfg.LogID]bool

	NextID int
}

// Interactive reports whether the player currently accepts input and
// earns rewards.
func (s *SessionData) Interactive(playerAlive bool) bool {
	switch s.Status {
	case cfg.StatusPlaying:
		return playerAlive
	case cfg.StatusTutorialActive:
		return true
	}
	return false
}

// IsUnlocked reports whether t can drop as a squad pickup.
func (s *SessionData) IsUnlocked(t cfg.AllyType) bool {
	for _, u := range s.Unlocked {
		if u == t {
			return true
		}
	}
	return false
}

var Session = donburi.NewComponentType[SessionData]()
