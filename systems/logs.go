package systems

import (
	"log"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLogs unlocks every achievement log the run has reached.
func UpdateLogs(e *ecs.ECS) {
	if !playerInteractive(e) {
		return
	}
	player := components.Player.Get(tags.Player.MustFirst(e.World))
	for _, id := range EvaluateLogs(getSession(e), player) {
		log.Printf("log unlocked: %s", id)
	}
}

// EvaluateLogs marks the logs whose predicate holds and returns the ones
// that were newly unlocked. Unlocked logs stay unlocked.
func EvaluateLogs(session *components.SessionData, player *components.PlayerData) []cfg.LogID {
	if session.Logs == nil {
		session.Logs = map[cfg.LogID]bool{}
	}
	var unlocked []cfg.LogID
	for _, def := range cfg.Logs {
		if session.Logs[def.ID] {
			continue
		}
		if logStat(player, def.Stat) >= def.Threshold {
			session.Logs[def.ID] = true
			unlocked = append(unlocked, def.ID)
		}
	}
	return unlocked
}

func logStat(p *components.PlayerData, stat cfg.LogStat) int {
	switch stat {
	case cfg.StatRunKills:
		return p.RunKills
	case cfg.StatRunTanks:
		return p.RunTanks
	case cfg.StatRunCoins:
		return p.RunCoins
	case cfg.StatAllyCount:
		return len(p.Squad)
	case cfg.StatRoundsCleared:
		return p.RoundsCleared
	}
	return 0
}
