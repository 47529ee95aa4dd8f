package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickAllyTypeAvoidsGunGuy(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	unlocked := []cfg.AllyType{cfg.AllyShotgun, cfg.AllyRifleman, cfg.AllyGunGuy}
	for i := 0; i < 300; i++ {
		assert.NotEqual(t, cfg.AllyGunGuy, PickAllyType(rng, unlocked))
	}
	assert.Equal(t, cfg.AllyGunGuy, PickAllyType(rng, []cfg.AllyType{cfg.AllyGunGuy}))
}

func TestTouchingCoinsAreCollected(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, player := testPlayer(w)
	body := playerBox(w)

	factory.CreateCoin(w, body.X+2, body.Y+2, 10)
	far := factory.CreateCoin(w, body.X+300, body.Y, 10)

	UpdateCoins(w)
	assert.Equal(t, 10, player.Coins)
	assert.Equal(t, 10, player.RunCoins)
	assert.True(t, far.Valid())
}

func TestMagnetPullsNearbyCoins(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, player := testPlayer(w)
	body := playerBox(w)

	coin := factory.CreateCoin(w, body.X+body.W+15, body.Y+9, 10)
	start := gamemath.CenterDistance(body, objectBox(coin))
	require.Less(t, start, player.CoinMagnetRange)

	UpdateCoins(w)
	require.True(t, coin.Valid())
	assert.Less(t, gamemath.CenterDistance(body, objectBox(coin)), start)

	for i := 0; i < 20 && coin.Valid(); i++ {
		UpdateCoins(w)
	}
	assert.False(t, coin.Valid())
	assert.Equal(t, 10, player.Coins)
}

func TestCollectingAPickupRecruitsAndHeals(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	pe, player := testPlayer(w)
	components.Health.Get(pe).Current = 10
	body := playerBox(w)

	pickup := factory.CreateCollectible(w, cfg.AllySniper, false)
	require.NotNil(t, pickup)
	components.Object.Get(pickup).Box.X = body.X
	components.Object.Get(pickup).Box.Y = body.Y

	ent := pickup.Entity()
	UpdateCollectibles(w)

	assert.False(t, w.World.Valid(ent))
	assert.Empty(t, Collectibles(w))
	require.Len(t, player.Squad, 1)
	ally := w.World.Entry(player.Squad[0])
	assert.Equal(t, cfg.AllySniper, components.Ally.Get(ally).Type)
	assert.InDelta(t, 10+cfg.Ally.PickupHeal, components.Health.Get(pe).Current, 1e-9)
}

func TestAllyPickupClockUsesSeconds(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	session := getSession(w)
	session.Unlocked = []cfg.AllyType{cfg.AllyRifleman}
	session.Delta = 10

	UpdateAllyPickups(w)
	UpdateAllyPickups(w)
	assert.Empty(t, Collectibles(w))

	UpdateAllyPickups(w)
	require.Len(t, Collectibles(w), 1)
	assert.Equal(t, cfg.AllyRifleman, components.Collectible.Get(Collectibles(w)[0]).Type)
	assert.Equal(t, cfg.Ally.SpawnInterval, getRound(w).AllyTimer)
}
