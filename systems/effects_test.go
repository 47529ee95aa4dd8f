package systems

import (
	"testing"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrongerShakeReplacesWeaker(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	cameraEntry, _ := getCamera(w)

	TriggerScreenShake(w, 3, 10)
	TriggerScreenShake(w, 5, 15)
	shake := components.ScreenShake.Get(cameraEntry)
	assert.Equal(t, 5.0, shake.Intensity)
	assert.Equal(t, 15, shake.Timer)

	TriggerScreenShake(w, 3, 10)
	assert.Equal(t, 5.0, shake.Intensity)
	assert.Equal(t, 15, shake.Timer)
}

func TestShakeExpires(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	cameraEntry, camera := getCamera(w)

	TriggerScreenShake(w, 3, 2)
	UpdateEffects(w)
	require.True(t, cameraEntry.HasComponent(components.ScreenShake))
	UpdateEffects(w)
	assert.False(t, cameraEntry.HasComponent(components.ScreenShake))

	UpdateCameraShake(w)
	assert.Equal(t, camera.Base, camera.Position)
}

func TestShakeOffsetStaysInsideIntensity(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, camera := getCamera(w)

	TriggerScreenShake(w, 5, 15)
	for i := 0; i < 10; i++ {
		UpdateCameraShake(w)
		assert.LessOrEqual(t, camera.Position.X-camera.Base.X, 5.0)
		assert.GreaterOrEqual(t, camera.Position.X-camera.Base.X, -5.0)
	}
}

func TestWaveTitleHoldsThenFades(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	ShowWaveTitle(w, 4)
	title := components.WaveTitle.Get(components.WaveTitle.MustFirst(w.World))
	assert.Equal(t, "Wave 4", title.Text)

	for i := 0; i < cfg.Round.WaveTitleStay-1; i++ {
		UpdateEffects(w)
	}
	assert.InDelta(t, 1, title.Alpha, 1e-6)

	for i := 0; i < cfg.Round.WaveTitleFade/2; i++ {
		UpdateEffects(w)
	}
	assert.Less(t, title.Alpha, float32(1))
	assert.Greater(t, title.Alpha, float32(0))

	for i := 0; i < cfg.Round.WaveTitleFade; i++ {
		UpdateEffects(w)
	}
	assert.Zero(t, title.Ticks)
	assert.Zero(t, title.Alpha)
}

func TestCameraStaysInsideArena(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	pe, _ := testPlayer(w)
	obj := components.Object.Get(pe)
	obj.X, obj.Y = 0, 0

	CenterCamera(w)
	_, camera := getCamera(w)
	assert.Zero(t, camera.Base.X)
	assert.Zero(t, camera.Base.Y)

	ResizeViewport(w, 2400, 1800)
	assert.Zero(t, camera.Base.X)
	assert.Equal(t, 2400.0, camera.ViewW)
}

func TestTogglePauseIsIdempotentInPairs(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	require.True(t, TogglePause(w))
	assert.Equal(t, cfg.StatusPaused, getSession(w).Status)
	require.True(t, TogglePause(w))
	assert.Equal(t, cfg.StatusPlaying, getSession(w).Status)

	getSession(w).Status = cfg.StatusShop
	assert.False(t, TogglePause(w))
	assert.Equal(t, cfg.StatusShop, getSession(w).Status)
}
