package systems

import (
	"testing"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestProjectileTravelIsMonotonicAndCapped(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	shot := factory.CreateProjectile(w, math.Vec2{X: 300, Y: 300}, 6, 6, components.ProjectileData{
		Velocity:     math.Vec2{X: 2, Y: 0},
		Damage:       1,
		PlayerOrigin: true,
		MaxTravel:    10,
	})

	last := 0.0
	for i := 0; i < 4; i++ {
		UpdateProjectiles(w)
		require.True(t, shot.Valid())
		traveled := components.Projectile.Get(shot).Traveled
		assert.Greater(t, traveled, last)
		last = traveled
	}
	assert.InDelta(t, 8, last, 1e-9)

	UpdateProjectiles(w)
	assert.False(t, shot.Valid())
}

func TestProjectileCulledOutsideWorld(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	shot := factory.CreateProjectile(w, math.Vec2{X: -40, Y: 300}, 6, 6, components.ProjectileData{
		Velocity:     math.Vec2{X: -20, Y: 0},
		PlayerOrigin: true,
	})

	UpdateProjectiles(w)
	assert.False(t, shot.Valid())
}

func TestKillPaysOutWhileInteractive(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, player := testPlayer(w)

	enemy := enemyAt(w, cfg.EnemyGrunt, 200, 200)
	components.Health.Get(enemy).Current = 5
	center := gamemath.Center(components.Object.Get(enemy).Box)
	factory.CreateProjectile(w, center, 6, 6, components.ProjectileData{Damage: 10, PlayerOrigin: true})

	UpdateProjectiles(w)

	assert.False(t, enemy.Valid())
	assert.Equal(t, 1, player.Kills)
	assert.Equal(t, 1, player.RunKills)
	assert.Equal(t, 1, player.Combo)
	assert.Equal(t, 1, getRound(w).Kills)
	assert.Equal(t, cfg.Combo.WindowTicks, getSession(w).ComboTimer)
	assert.Empty(t, Projectiles(w))

	// Grunts are worth 10 points: one coin plus a bonus of one to three.
	coins := len(Coins(w))
	assert.GreaterOrEqual(t, coins, 2)
	assert.LessOrEqual(t, coins, 4)
}

func TestKillWithoutRewardsOnceThePlayerIsDown(t *testing.T) {
	w := newTestWorld(t, cfg.StatusGameOverPending)
	_, player := testPlayer(w)

	enemy := enemyAt(w, cfg.EnemyTank, 200, 200)
	components.Health.Get(enemy).Current = 5
	center := gamemath.Center(components.Object.Get(enemy).Box)
	factory.CreateProjectile(w, center, 6, 6, components.ProjectileData{Damage: 10, PlayerOrigin: true})

	UpdateProjectiles(w)

	assert.False(t, enemy.Valid())
	assert.Zero(t, player.Kills)
	assert.Zero(t, player.RunTanks)
	assert.Zero(t, getRound(w).Kills)
	assert.Empty(t, Coins(w))
}

func TestDirectHitStopsAtFirstEnemy(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	first := enemyAt(w, cfg.EnemyGrunt, 200, 200)
	second := enemyAt(w, cfg.EnemyGrunt, 204, 204)

	factory.CreateProjectile(w, math.Vec2{X: 216, Y: 216}, 6, 6, components.ProjectileData{Damage: 4, PlayerOrigin: true})
	UpdateProjectiles(w)

	assert.InDelta(t, 28, components.Health.Get(first).Current, 1e-9)
	assert.InDelta(t, 32, components.Health.Get(second).Current, 1e-9)
}

func TestAreaHitDamagesNeighbours(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	struck := enemyAt(w, cfg.EnemyGrunt, 200, 200)
	near := enemyAt(w, cfg.EnemyGrunt, 240, 200)
	far := enemyAt(w, cfg.EnemyGrunt, 400, 200)
	for _, e := range Enemies(w) {
		components.Health.SetValue(e, components.HealthData{Current: 100, Max: 100})
	}

	center := gamemath.Center(components.Object.Get(struck).Box)
	factory.CreateProjectile(w, center, 8, 14, components.ProjectileData{
		Damage:       10,
		PlayerOrigin: true,
		AoERadius:    60,
		CausesShake:  true,
	})
	UpdateProjectiles(w)

	assert.InDelta(t, 80, components.Health.Get(struck).Current, 1e-9, "direct hit plus blast")
	assert.InDelta(t, 90, components.Health.Get(near).Current, 1e-9)
	assert.InDelta(t, 100, components.Health.Get(far).Current, 1e-9)

	cameraEntry, _ := getCamera(w)
	require.True(t, cameraEntry.HasComponent(components.ScreenShake))
	assert.Equal(t, cfg.ScreenShake.RocketIntensity, components.ScreenShake.Get(cameraEntry).Intensity)
}

func TestEnemyFireNeverHurtsEnemies(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	enemy := enemyAt(w, cfg.EnemyGrunt, 200, 200)
	before := components.Health.Get(enemy).Current

	center := gamemath.Center(components.Object.Get(enemy).Box)
	shell := factory.CreateProjectile(w, center, 8, 14, components.ProjectileData{
		Damage:    50,
		AoERadius: 75,
	})
	UpdateProjectiles(w)

	assert.Equal(t, before, components.Health.Get(enemy).Current)
	assert.True(t, shell.Valid(), "enemy shells pass through enemies")
}

func TestEnemyBlastHitsPlayerAndSquad(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	pe, player := testPlayer(w)
	ally := factory.SpawnAlly(w, cfg.AllyRifleman)
	require.NotNil(t, ally)

	center := gamemath.Center(playerBox(w))
	factory.CreateProjectile(w, center, 8, 14, components.ProjectileData{
		Damage:    5,
		AoERadius: 75,
	})
	UpdateProjectiles(w)

	assert.InDelta(t, cfg.Player.Health-10, components.Health.Get(pe).Current, 1e-9, "direct hit plus blast")
	assert.Equal(t, cfg.Player.HitFlashTicks, player.HitFlash)
	assert.False(t, ally.Valid())
	assert.Empty(t, player.Squad)
}

func TestAirstrikeExplodesAtTravelCap(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	target := enemyAt(w, cfg.EnemyTank, 200, 300)
	components.Health.Get(target).Current = 1000
	tc := gamemath.Center(components.Object.Get(target).Box)

	// Drop the missile beside the tank so it never touches it directly.
	missile := factory.CreateAirstrikeMissile(w, tc.X+40, tc.Y-cfg.Airstrike.Height-7, tc.Y-cfg.Airstrike.Height)
	UpdateProjectiles(w)

	assert.False(t, missile.Valid())
	assert.InDelta(t, 1000-cfg.Airstrike.Damage, components.Health.Get(target).Current, 1e-9)
}
