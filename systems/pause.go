package systems

import (
	cfg "github.com/automoto/squadfall/config"
	"github.com/yohamta/donburi/ecs"
)

// TogglePause flips between PLAYING and PAUSED. It reports false and leaves
// the status alone in every other state.
func TogglePause(ecs *ecs.ECS) bool {
	session := getSession(ecs)
	switch session.Status {
	case cfg.StatusPlaying:
		session.Status = cfg.StatusPaused
	case cfg.StatusPaused:
		session.Status = cfg.StatusPlaying
	default:
		return false
	}
	return true
}

// IsSimulating reports whether world systems should advance this tick.
func IsSimulating(ecs *ecs.ECS) bool {
	status := getSession(ecs).Status
	return status.Simulating() || status == cfg.StatusTutorialActive
}

// WithGameplayChecks wraps a system to skip execution while paused or
// outside a run.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsSimulating(e) {
			return
		}
		system(e)
	}
}

// MainOnly wraps a system that only belongs to the wave loop, never the tutorial.
func MainOnly(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if inTutorial(e) {
			return
		}
		system(e)
	}
}
