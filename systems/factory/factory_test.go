package factory

import (
	"math/rand"
	"testing"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	CreateSession(w, rand.New(rand.NewSource(42)), cfg.StatusPlaying)
	CreateSpace(w)
	CreateCamera(w, 960, 600)
	CreatePlayer(w, cfg.AllyGunGuy)
	return w
}

func TestEnemyStatsScaleWithRound(t *testing.T) {
	row := cfg.Enemy.Types[cfg.EnemyShooter]
	data, health := EnemyStats(cfg.EnemyShooter, 4)

	assert.InDelta(t, row.Health+4*row.HealthPerRound, health.Max, 1e-9)
	assert.Equal(t, health.Max, health.Current)
	assert.InDelta(t, row.Speed+4*row.SpeedPerRound, data.Speed, 1e-9)
	assert.InDelta(t, row.Damage+4*row.DamagePerRound, data.AttackDamage, 1e-9)
	assert.Equal(t, row.AttackCooldown+4*row.CooldownPerRound, data.AttackCooldown)

	late, _ := EnemyStats(cfg.EnemyShooter, 60)
	assert.Equal(t, row.MinCooldown, late.AttackCooldown)
}

func TestEnemyStatsFallBackToGrunt(t *testing.T) {
	data, _ := EnemyStats(cfg.EnemyType(99), 1)
	assert.Equal(t, cfg.EnemyGrunt, data.Type)
}

func TestEnemySpawnBoxIsOutsideTheArena(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		b := EnemySpawnBox(rng, cfg.EnemyGrunt)
		inside := b.X >= 0 && b.X+b.W <= cfg.World.Width && b.Y >= 0 && b.Y+b.H <= cfg.World.Height
		assert.False(t, inside, "spawned inside at %+v", b)
	}
}

func TestEnemySpawnBoxPlacesTheDummy(t *testing.T) {
	b := EnemySpawnBox(rand.New(rand.NewSource(1)), cfg.EnemyDummy)
	c := gamemath.Center(b)
	assert.InDelta(t, cfg.World.Width/2+cfg.Enemy.TutorialDummyOffset, c.X, 1e-9)
	assert.InDelta(t, cfg.World.Height/2, c.Y, 1e-9)
}

func TestCoinDropCount(t *testing.T) {
	assert.Equal(t, 2, CoinDropCount(10, 0))
	assert.Equal(t, 4, CoinDropCount(10, 0.999))
	assert.Equal(t, 6, CoinDropCount(50, 0))
	assert.Equal(t, 3, CoinDropCount(15, 0.1))
}

func TestDropCoinsScatterAroundTheKill(t *testing.T) {
	w := newWorld(t)
	enemy := gamemath.Box{X: 300, Y: 300, W: 28, H: 28}
	coins := DropCoins(w, enemy, 35)

	require.GreaterOrEqual(t, len(coins), 5)
	require.LessOrEqual(t, len(coins), 7)
	c := gamemath.Center(enemy)
	for _, coin := range coins {
		cc := gamemath.Center(components.Object.Get(coin).Box)
		assert.LessOrEqual(t, cc.X-c.X, 0.75*enemy.W)
		assert.GreaterOrEqual(t, cc.X-c.X, -0.75*enemy.W)
		assert.Equal(t, cfg.Coin.Value, components.Coin.Get(coin).Value)
	}
}

func TestPlaceCollectibleKeepsItsDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	player := PlayerSpawnBox()
	existing := []gamemath.Box{{X: 100, Y: 100, W: 24, H: 24}}

	for i := 0; i < 100; i++ {
		b, ok := PlaceCollectible(rng, player, existing, false)
		require.True(t, ok)
		assert.GreaterOrEqual(t, gamemath.CenterDistance(player, b), cfg.Collectible.MinPlayerDistance)
		assert.GreaterOrEqual(t, gamemath.CenterDistance(existing[0], b), cfg.Collectible.MinPickupDistance)
	}
}

func TestPlaceCollectibleCanFail(t *testing.T) {
	// Pickups everywhere: no spot is far enough from all of them.
	var existing []gamemath.Box
	for x := 0.0; x < cfg.World.Width; x += 50 {
		for y := 0.0; y < cfg.World.Height; y += 50 {
			existing = append(existing, gamemath.Box{X: x, Y: y, W: 24, H: 24})
		}
	}
	_, ok := PlaceCollectible(rand.New(rand.NewSource(4)), PlayerSpawnBox(), existing, false)
	assert.False(t, ok)
}

func TestPlaceCollectibleTutorialBand(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	player := PlayerSpawnBox()
	pc := gamemath.Center(player)
	for i := 0; i < 100; i++ {
		b, ok := PlaceCollectible(rng, player, nil, true)
		require.True(t, ok)
		c := gamemath.Center(b)
		for _, off := range []float64{c.X - pc.X, c.Y - pc.Y} {
			if off < 0 {
				off = -off
			}
			assert.GreaterOrEqual(t, off, cfg.Collectible.TutorialOffsetMin)
			assert.LessOrEqual(t, off, cfg.Collectible.TutorialOffsetMin+cfg.Collectible.TutorialOffsetSpan)
		}
	}
}

func TestCreateAllyJoinsTheTailAndHeals(t *testing.T) {
	w := newWorld(t)
	pe := tags.Player.MustFirst(w.World)
	player := components.Player.Get(pe)
	components.Health.Get(pe).Current = 20

	first := CreateAlly(w, cfg.AllyRifleman)
	second := CreateAlly(w, cfg.AllyRPG)

	assert.Equal(t, []donburi.Entity{first.Entity(), second.Entity()}, player.Squad)
	assert.InDelta(t, 20+2*cfg.Ally.PickupHeal, components.Health.Get(pe).Current, 1e-9)
	assert.Equal(t, cfg.Ally.Weapons[cfg.AllyRPG], components.Ally.Get(second).Weapon)
	assert.Equal(t,
		gamemath.Center(components.Object.Get(first).Box),
		gamemath.Center(components.Object.Get(second).Box),
	)
}

func TestSpawnAllyDoesNotHeal(t *testing.T) {
	w := newWorld(t)
	pe := tags.Player.MustFirst(w.World)
	components.Health.Get(pe).Current = 20

	SpawnAlly(w, cfg.AllyRifleman)
	assert.Equal(t, 20.0, components.Health.Get(pe).Current)
}

func TestFireWeaponFansTheSpread(t *testing.T) {
	w := newWorld(t)
	weapon := cfg.Ally.Weapons[cfg.AllyShotgun]
	shots := FireWeapon(w, math.Vec2{X: 500, Y: 500}, math.Vec2{X: 1, Y: 0}, weapon, weapon.Damage, 1)

	require.Len(t, shots, weapon.ProjectileCount)
	mid := components.Projectile.Get(shots[1]).Velocity
	assert.InDelta(t, weapon.ProjectileSpeed, mid.X, 1e-9)
	assert.InDelta(t, 0, mid.Y, 1e-9)

	top := components.Projectile.Get(shots[0]).Velocity
	bottom := components.Projectile.Get(shots[2]).Velocity
	assert.InDelta(t, -top.Y, bottom.Y, 1e-9)
	for _, s := range shots {
		p := components.Projectile.Get(s)
		assert.True(t, p.PlayerOrigin)
		assert.InDelta(t, weapon.ProjectileSpeed, gamemath.Magnitude(p.Velocity), 1e-9)
	}
}

func TestAirstrikeMissileTravelsToItsTarget(t *testing.T) {
	w := newWorld(t)
	m := CreateAirstrikeMissile(w, 400, 100, 520)
	p := components.Projectile.Get(m)

	assert.True(t, p.Airstrike)
	assert.Equal(t, 420.0, p.MaxTravel)
	assert.Equal(t, cfg.Airstrike.AoERadius, p.AoERadius)
	assert.InDelta(t, 400, gamemath.Center(components.Object.Get(m).Box).X, 1e-9)
}

func TestDestroyRemovesTheCollisionShape(t *testing.T) {
	w := newWorld(t)
	coin := CreateCoin(w, 10, 10, 5)
	shape := components.Object.Get(coin).Shape
	require.NotNil(t, shape.Space)

	Destroy(w, coin)
	assert.False(t, coin.Valid())
	assert.Nil(t, shape.Space)
}

func TestIDsAreStable(t *testing.T) {
	w := newWorld(t)
	a := CreateCoin(w, 0, 0, 1)
	b := CreateCoin(w, 0, 0, 1)
	assert.Less(t, components.Object.Get(a).ID, components.Object.Get(b).ID)
}
