// Package session drives one game: it owns the simulation worlds, applies
// queued commands once per tick and publishes plain snapshots for hosts.
package session

import (
	"math/rand"
	"time"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/systems"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Session is one player's game. It is not safe for concurrent use; call
// Enqueue and Tick from the same loop.
type Session struct {
	rng   *rand.Rand
	viewW float64
	viewH float64

	game     *ecs.ECS
	tutorial *ecs.ECS // non-nil while the tutorial runs

	bus donburi.World
}

type Option func(*Session)

// WithSeed makes every random draw in the session reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithViewport sets the initial visible area in world units.
func WithViewport(width, height float64) Option {
	return func(s *Session) {
		s.viewW = width
		s.viewH = height
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		viewW: float64(cfg.C.Width),
		viewH: float64(cfg.C.Height),
		bus:   donburi.NewWorld(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.game = s.newWorld(cfg.StatusIdle)
	commands.Subscribe(s.bus, s.handle)
	return s
}

// newWorld builds a simulation world with the full system pipeline and the
// singletons every tick needs.
func (s *Session) newWorld(status cfg.Status) *ecs.ECS {
	w := ecs.NewECS(donburi.NewWorld())

	gameplay := func(sys ecs.System) {
		w.AddSystem(systems.WithGameplayChecks(sys))
	}
	gameplay(systems.UpdateEffects)
	gameplay(systems.MainOnly(systems.UpdateGameOver))
	gameplay(systems.MainOnly(systems.UpdateCombo))
	gameplay(systems.UpdateAirstrike)
	gameplay(systems.UpdatePlayer)
	gameplay(systems.UpdateCamera)
	gameplay(systems.UpdateCoins)
	gameplay(systems.UpdateAllies)
	gameplay(systems.UpdateCollectibles)
	gameplay(systems.UpdateTutorialWaves)
	gameplay(systems.UpdateEnemies)
	gameplay(systems.UpdateObjects)
	gameplay(systems.UpdateProjectiles)
	gameplay(systems.MainOnly(systems.UpdateLogs))
	gameplay(systems.MainOnly(systems.UpdateRound))
	gameplay(systems.MainOnly(systems.UpdateAllyPickups))
	gameplay(systems.UpdateCameraShake)

	factory.CreateSession(w, s.rng, status)
	factory.CreateSpace(w)
	factory.CreateCamera(w, s.viewW, s.viewH)
	factory.CreatePlayer(w, cfg.AllyGunGuy)
	systems.CenterCamera(w)

	round := roundData(w)
	round.Round = 1
	round.Quota = cfg.Round.Quota(1)
	round.AllyTimer = cfg.Ally.SpawnInterval
	return w
}

// Tick applies queued commands, then advances the active world by one step.
// dt is the wall-clock time since the previous tick in seconds; only the
// between-wave countdown and the pickup clock read it.
func (s *Session) Tick(in Input, dt float64) {
	starting := s.Status() == cfg.StatusInitNewRun
	commands.ProcessEvents(s.bus)

	w := s.active()
	data := sessionData(w)
	data.Delta = dt
	data.Tick++
	in.copyTo(components.Input.Get(components.Input.MustFirst(w.World)))

	// A run queued last tick starts now, so INIT_NEW_RUN is visible for
	// exactly one snapshot.
	if starting && data.Status == cfg.StatusInitNewRun {
		systems.StartRound(w, 1)
		return
	}

	w.Update()

	// A run that just ended drops its shots; a paused one keeps them.
	if !systems.IsSimulating(w) && data.Status != cfg.StatusPaused {
		systems.ClearProjectiles(w)
	}
}

// Status is the current top-level state.
func (s *Session) Status() cfg.Status {
	return sessionData(s.game).Status
}

func (s *Session) active() *ecs.ECS {
	if s.tutorial != nil {
		return s.tutorial
	}
	return s.game
}

func sessionData(w *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(w.World))
}

func roundData(w *ecs.ECS) *components.RoundData {
	return components.Round.Get(components.Round.MustFirst(w.World))
}

func playerEntry(w *ecs.ECS) *donburi.Entry {
	return tags.Player.MustFirst(w.World)
}
