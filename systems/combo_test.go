package systems

import (
	"testing"

	cfg "github.com/automoto/squadfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComboUnlocksAirstrike(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, player := testPlayer(w)
	session := getSession(w)

	for i := 0; i < cfg.Combo.Threshold-1; i++ {
		RegisterComboKill(w, player)
	}
	assert.False(t, session.Airstrike.Available)
	assert.False(t, ActivateAirstrike(w))

	RegisterComboKill(w, player)
	assert.True(t, session.Airstrike.Available)
	assert.Equal(t, cfg.Combo.Threshold, player.HighestCombo)

	require.True(t, ActivateAirstrike(w))
	assert.Zero(t, player.Combo)
	assert.True(t, session.Airstrike.Active)
	assert.Equal(t, cfg.Airstrike.MissileCount, session.Airstrike.Pending)
	assert.False(t, ActivateAirstrike(w), "one strike at a time")
}

func TestAirstrikeDropsOneMissilePerInterval(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	session := getSession(w)
	session.Airstrike.Available = true
	require.True(t, ActivateAirstrike(w))

	UpdateAirstrike(w)
	assert.Len(t, Projectiles(w), 1)
	assert.Equal(t, cfg.Airstrike.MissileCount-1, session.Airstrike.Pending)

	for i := 0; i < cfg.Airstrike.IntervalTicks-1; i++ {
		UpdateAirstrike(w)
	}
	assert.Len(t, Projectiles(w), 1)
	UpdateAirstrike(w)
	assert.Len(t, Projectiles(w), 2)

	_, camera := getCamera(w)
	for _, e := range Projectiles(w) {
		box := objectBox(e)
		assert.GreaterOrEqual(t, box.X+box.W/2, camera.Base.X)
		assert.LessOrEqual(t, box.X+box.W/2, camera.Base.X+camera.ViewW)
	}
}

func TestAirstrikeFinishes(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	session := getSession(w)
	session.Airstrike.Available = true
	require.True(t, ActivateAirstrike(w))

	for i := 0; i < cfg.Airstrike.MissileCount*cfg.Airstrike.IntervalTicks+1; i++ {
		UpdateAirstrike(w)
	}
	assert.False(t, session.Airstrike.Active)
	assert.False(t, session.Airstrike.Available)
	assert.Zero(t, session.Airstrike.Pending)
	assert.Len(t, Projectiles(w), cfg.Airstrike.MissileCount)
}

func TestComboLapses(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, player := testPlayer(w)
	session := getSession(w)

	for i := 0; i < cfg.Combo.Threshold; i++ {
		RegisterComboKill(w, player)
	}
	require.True(t, session.Airstrike.Available)

	for i := 0; i < cfg.Combo.WindowTicks; i++ {
		UpdateCombo(w)
	}
	assert.Zero(t, player.Combo)
	assert.False(t, session.Airstrike.Available)
	assert.Equal(t, cfg.Combo.Threshold, player.HighestCombo)
}
