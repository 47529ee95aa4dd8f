package systems

import (
	"testing"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestMoveIntent(t *testing.T) {
	body := gamemath.Box{X: 90, Y: 90, W: 20, H: 20} // center (100, 100)
	camera := math.Vec2{}
	pointer := func(x, y float64) *math.Vec2 { return &math.Vec2{X: x, Y: y} }

	tests := []struct {
		name string
		in   components.InputData
		want math.Vec2
	}{
		{"idle", components.InputData{}, math.Vec2{}},
		{"single key", components.InputData{Keys: map[string]bool{"d": true}}, math.Vec2{X: 3}},
		{"arrow alias", components.InputData{Keys: map[string]bool{"arrowup": true}}, math.Vec2{Y: -3}},
		{"opposite keys cancel", components.InputData{Keys: map[string]bool{"a": true, "d": true}}, math.Vec2{}},
		{"joystick wins on touch", components.InputData{
			Touch: true, Joystick: math.Vec2{X: 0, Y: 1}, Keys: map[string]bool{"d": true},
		}, math.Vec2{Y: 3}},
		{"pointer steers", components.InputData{Pointer: pointer(200, 100), Keys: map[string]bool{"w": true}}, math.Vec2{X: 3}},
		{"pointer dead zone", components.InputData{Pointer: pointer(100.5, 100)}, math.Vec2{}},
		{"touch ignores pointer", components.InputData{Touch: true, Pointer: pointer(200, 100), Keys: map[string]bool{"s": true}}, math.Vec2{Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveIntent(&tt.in, body, camera, 3)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestMoveIntentNormalizesDiagonals(t *testing.T) {
	in := components.InputData{Keys: map[string]bool{"w": true, "d": true}}
	got := MoveIntent(&in, gamemath.Box{}, math.Vec2{}, 3)
	assert.InDelta(t, 3, gamemath.Magnitude(got), 1e-9)
}

func TestPlayerStaysInsideEdgeMargin(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	pe, _ := testPlayer(w)
	obj := components.Object.Get(pe)
	obj.X = cfg.World.EdgeMargin + 1

	getInput(w).Keys["a"] = true
	for i := 0; i < 5; i++ {
		UpdatePlayer(w)
	}
	assert.Equal(t, cfg.World.EdgeMargin, obj.X)
}

func TestPlayerBurstFire(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, player := testPlayer(w)
	body := playerBox(w)
	enemyAt(w, cfg.EnemyGrunt, body.X+200, body.Y)

	weapon := player.Weapon
	require.True(t, weapon.Burst())

	shots := 0
	for i := 0; i < weapon.ClipSize*weapon.Cooldown; i++ {
		before := len(Projectiles(w))
		UpdatePlayer(w)
		if len(Projectiles(w)) > before {
			shots++
		}
	}
	assert.Equal(t, weapon.ClipSize, shots)
	assert.Zero(t, player.Ammo)
	assert.Positive(t, player.ReloadTimer)
	assert.Equal(t, math.Vec2{X: 1, Y: 0}, player.LastDirection)
}

func TestWeaponTimersFreezeDuringCountdown(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, player := testPlayer(w)
	player.ShootTimer = 10
	getRound(w).NextRoundTimer = 3

	UpdatePlayer(w)
	assert.Equal(t, 10, player.ShootTimer)
}
