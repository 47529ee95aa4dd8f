package session

import (
	"testing"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTutorial(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t)
	step(s, StartTutorial())
	require.Equal(t, cfg.StatusTutorialActive, s.Status())
	return s
}

// advanceTo steps the tutorial forward until it shows step n.
func advanceTo(t *testing.T, s *Session, n int) {
	t.Helper()
	for s.Snapshot().Tutorial.Step < n {
		step(s, AdvanceTutorialStep())
	}
	require.Equal(t, n, s.Snapshot().Tutorial.Step)
}

func TestTutorialStartsOnTheFirstMessage(t *testing.T) {
	s := startTutorial(t)
	snap := s.Snapshot()

	require.NotNil(t, snap.Tutorial)
	assert.Equal(t, 0, snap.Tutorial.Step)
	assert.Equal(t, cfg.Tutorial.Messages[0], snap.Tutorial.Message)
	assert.Equal(t, len(cfg.Tutorial.Messages), snap.Tutorial.Steps)
	assert.Empty(t, snap.Enemies)
	assert.Zero(t, snap.Round)
}

func TestTutorialOnlyStartsFromIdle(t *testing.T) {
	s := newTestSession(t)
	step(s, StartGame(), StartTutorial())
	assert.Equal(t, cfg.StatusChampionSelect, s.Status())
	assert.Nil(t, s.Snapshot().Tutorial)
}

func TestTutorialDummies(t *testing.T) {
	s := startTutorial(t)
	advanceTo(t, s, cfg.Tutorial.DummyStep)

	snap := s.Snapshot()
	require.Len(t, snap.Enemies, len(cfg.Tutorial.DummyOffsets))
	for i, e := range snap.Enemies {
		assert.Equal(t, cfg.EnemyDummy, e.Type)
		assert.Equal(t, cfg.Tutorial.DummyHealth, e.Health)
		assert.InDelta(t, snap.Player.Box.X+cfg.Tutorial.DummyOffsets[i][0], e.Box.X, 1e-6)
	}

	// Dummies never move toward the player.
	for i := 0; i < 20; i++ {
		step(s)
	}
	for i, e := range s.Snapshot().Enemies {
		assert.Equal(t, snap.Enemies[i].Box, e.Box)
	}
}

func TestTutorialPickupsComeInOrder(t *testing.T) {
	s := startTutorial(t)
	advanceTo(t, s, cfg.Tutorial.PickupStep)
	w := s.tutorial

	for i, want := range cfg.Tutorial.AllyOrder[:3] {
		pickups := systems.Collectibles(w)
		require.Len(t, pickups, 1)
		assert.Equal(t, want, components.Collectible.Get(pickups[0]).Type)

		body := components.Object.Get(playerEntry(w)).Box
		components.Object.Get(pickups[0]).Box.X = body.X
		components.Object.Get(pickups[0]).Box.Y = body.Y
		step(s)
		assert.Len(t, s.Snapshot().Allies, i+1)
	}
}

func TestTutorialHighlightsHoldFire(t *testing.T) {
	s := startTutorial(t)
	advanceTo(t, s, 4)

	snap := s.Snapshot()
	assert.Equal(t, cfg.HighlightHealth, snap.Tutorial.Highlight)
	assert.Empty(t, snap.Enemies)
	assert.Empty(t, snap.Coins)

	step(s, AdvanceTutorialStep())
	assert.Equal(t, cfg.HighlightWave, s.Snapshot().Tutorial.Highlight)
}

func TestTutorialAirstrike(t *testing.T) {
	s := startTutorial(t)
	advanceTo(t, s, cfg.Tutorial.AirstrikeStep)

	snap := s.Snapshot()
	assert.Empty(t, snap.Allies)
	assert.True(t, snap.Airstrike.Available)

	step(s, ActivateSpecial())
	snap = s.Snapshot()
	assert.True(t, snap.Airstrike.Active)
	assert.False(t, snap.Airstrike.Available)
	// The main run's airstrike is untouched.
	assert.False(t, sessionData(s.game).Airstrike.Active)
}

func TestTutorialPracticeTargets(t *testing.T) {
	s := startTutorial(t)
	advanceTo(t, s, cfg.Tutorial.CoinStep)

	for i := 0; i < cfg.Tutorial.CoinWave.Interval; i++ {
		step(s)
	}
	enemies := s.Snapshot().Enemies
	require.NotEmpty(t, enemies)
	assert.LessOrEqual(t, len(enemies), cfg.Tutorial.CoinWave.MaxConcurrent)
	assert.Equal(t, cfg.Tutorial.CoinWave.Health, enemies[0].MaxHealth)
}

func TestTutorialEndsAfterTheLastStep(t *testing.T) {
	s := startTutorial(t)
	advanceTo(t, s, len(cfg.Tutorial.Messages)-1)

	step(s, AdvanceTutorialStep())
	assert.Equal(t, cfg.StatusIdle, s.Status())
	assert.Nil(t, s.Snapshot().Tutorial)
	assert.Nil(t, s.tutorial)
}

func TestEndTutorialReturnsToIdle(t *testing.T) {
	s := startTutorial(t)
	advanceTo(t, s, 2)

	step(s, EndTutorial())
	assert.Equal(t, cfg.StatusIdle, s.Status())
	assert.Nil(t, s.Snapshot().Tutorial)

	step(s, EndTutorial(), AdvanceTutorialStep())
	assert.Equal(t, cfg.StatusIdle, s.Status())
}
