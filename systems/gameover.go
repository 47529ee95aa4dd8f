package systems

import (
	"log"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameOver moves a dead player from PLAYING into the pending window and
// ends the run once the window elapses. The world keeps simulating while
// the window runs.
func UpdateGameOver(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	session := getSession(e)
	round := getRound(e)

	switch session.Status {
	case cfg.StatusPlaying:
		if components.Health.Get(playerEntry).Alive() {
			return
		}
		session.Status = cfg.StatusGameOverPending
		round.GameOverTimer = cfg.Round.GameOverDelay
		log.Printf("player down on wave %d, game over in %d ticks", round.Round, round.GameOverTimer)

	case cfg.StatusGameOverPending:
		if round.GameOverTimer > 0 {
			round.GameOverTimer--
		}
		if round.GameOverTimer == 0 {
			session.Status = cfg.StatusGameOver
			log.Printf("game over: wave %d, score %d", round.Round, Score(components.Player.Get(playerEntry)))
		}
	}
}

// Score is the game-over total for the current run. Wallet coins and
// lifetime kills carry across runs and are not counted.
func Score(p *components.PlayerData) int {
	return p.RunCoins +
		p.RunKills*cfg.Score.KillWeight +
		p.HighestCombo*cfg.Score.ComboWeight +
		p.MaxSquad*cfg.Score.SquadWeight
}
