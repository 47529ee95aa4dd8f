package systems

import (
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombo lapses the kill combo once its window runs out. A lapsed
// combo also withdraws an unused airstrike.
func UpdateCombo(e *ecs.ECS) {
	if !playerInteractive(e) {
		return
	}
	session := getSession(e)
	player := components.Player.Get(tags.Player.MustFirst(e.World))

	if session.ComboTimer == 0 {
		player.Combo = 0
		return
	}
	session.ComboTimer--
	if session.ComboTimer == 0 {
		player.Combo = 0
		if !session.Airstrike.Active {
			session.Airstrike.Available = false
		}
	}
}

// airstrikeState returns the airstrike this world dispatches: the session's
// during a run, the player's own copy during the tutorial.
func airstrikeState(e *ecs.ECS) *components.AirstrikeData {
	if inTutorial(e) {
		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return nil
		}
		return &components.Player.Get(playerEntry).Airstrike
	}
	return &getSession(e).Airstrike
}

// ActivateAirstrike launches a ready airstrike and reports whether it did.
// During a run it needs PLAYING; the tutorial only allows it on its
// airstrike step.
func ActivateAirstrike(e *ecs.ECS) bool {
	if tutorial, ok := GetTutorial(e); ok {
		if tutorial.Step != cfg.Tutorial.AirstrikeStep {
			return false
		}
	} else if getSession(e).Status != cfg.StatusPlaying {
		return false
	}

	strike := airstrikeState(e)
	if strike == nil || !strike.Available || strike.Active {
		return false
	}
	if playerEntry, ok := tags.Player.First(e.World); ok {
		components.Player.Get(playerEntry).Combo = 0
	}
	strike.Available = false
	strike.Active = true
	strike.Pending = cfg.Airstrike.MissileCount
	strike.SpawnTimer = 0
	return true
}

// UpdateAirstrike drops one missile per interval into the lower part of the
// viewport until the strike is spent.
func UpdateAirstrike(e *ecs.ECS) {
	tutorial, isTutorial := GetTutorial(e)
	if isTutorial {
		if tutorial.Step != cfg.Tutorial.AirstrikeStep {
			return
		}
	} else if !playerInteractive(e) {
		return
	}

	strike := airstrikeState(e)
	if strike == nil || !strike.Active {
		return
	}

	if strike.SpawnTimer > 0 {
		strike.SpawnTimer--
	}
	switch {
	case strike.SpawnTimer == 0 && strike.Pending > 0:
		dropMissile(e)
		strike.Pending--
		strike.SpawnTimer = cfg.Airstrike.IntervalTicks
	case strike.Pending == 0:
		strike.Active = false
		// The tutorial hands the strike straight back for another try.
		if isTutorial {
			strike.Available = true
		}
	}
}

func dropMissile(e *ecs.ECS) {
	_, camera := getCamera(e)
	if camera == nil {
		return
	}
	rng := getSession(e).Rand
	a := cfg.Airstrike

	x := camera.Base.X + rng.Float64()*camera.ViewW
	targetY := camera.Base.Y + camera.ViewH*(a.TargetMinFactor+rng.Float64()*a.TargetJitter)
	factory.CreateAirstrikeMissile(e, x, camera.Base.Y-a.Height, targetY)
}

// RegisterComboKill credits a kill to the combo and offers the airstrike
// once the threshold is reached.
func RegisterComboKill(e *ecs.ECS, player *components.PlayerData) {
	session := getSession(e)
	player.Combo++
	player.HighestCombo = max(player.HighestCombo, player.Combo)
	session.ComboTimer = cfg.Combo.WindowTicks
	if player.Combo >= cfg.Combo.Threshold && !session.Airstrike.Active {
		session.Airstrike.Available = true
	}
}
