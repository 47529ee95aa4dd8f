package session

import (
	"log"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/systems"
	"github.com/automoto/squadfall/systems/factory"
)

// startTutorial builds the isolated tutorial world on step 0. The main world
// waits in TUTORIAL_ACTIVE until the tutorial ends.
func (s *Session) startTutorial() {
	sessionData(s.game).Status = cfg.StatusTutorialActive

	w := s.newWorld(cfg.StatusTutorialActive)
	factory.CreateTutorial(w)
	round := roundData(w)
	round.Round = 0
	round.Quota = 0
	round.AllyTimer = cfg.Tutorial.AllyTimer
	s.tutorial = w
}

// advanceTutorial moves to the next scripted step and populates it. Past the
// last step the tutorial ends.
func (s *Session) advanceTutorial() {
	w := s.tutorial
	tutorial, _ := systems.GetTutorial(w)
	next := tutorial.Step + 1
	if next >= len(cfg.Tutorial.Messages) {
		log.Println("tutorial complete")
		s.reset()
		return
	}

	clearField(w)

	tutorial.Step = next
	tutorial.Message = cfg.Tutorial.Messages[next]
	tutorial.Highlight = cfg.Tutorial.SilentSteps[next]
	tutorial.SpawnTimer = 0

	player := components.Player.Get(playerEntry(w))
	switch next {
	case cfg.Tutorial.DummyStep:
		systems.SpawnTrainingDummies(w)
	case cfg.Tutorial.PickupStep:
		tutorial.PickupIndex = 0
		factory.CreateCollectible(w, cfg.Tutorial.AllyOrder[0], true)
	case cfg.Tutorial.CoinStep:
		tutorial.SpawnTimer = cfg.Tutorial.CoinWave.Interval
	case cfg.Tutorial.AirstrikeStep:
		clearSquad(w, player)
		player.Combo = 0
		player.Airstrike = components.AirstrikeData{Available: true}
		tutorial.SpawnTimer = cfg.Tutorial.AirstrikeWave.Interval
	default:
		player.Airstrike = components.AirstrikeData{}
	}
}
