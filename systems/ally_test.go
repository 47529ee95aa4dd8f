package systems

import (
	"testing"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestTrailPoint(t *testing.T) {
	leader := gamemath.Box{X: 0, Y: 0, W: 10, H: 10}
	trail := []math.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 20}}

	tests := []struct {
		name  string
		trail []math.Vec2
		dist  float64
		want  math.Vec2
	}{
		{"no history follows the leader", nil, 35, math.Vec2{X: 5, Y: 5}},
		{"single point follows the leader", trail[:1], 35, math.Vec2{X: 5, Y: 5}},
		{"inside the first segment", trail, 4, math.Vec2{X: 4, Y: 0}},
		{"skips zero-length segments", trail, 15, math.Vec2{X: 10, Y: 5}},
		{"short trail ends at the oldest point", trail, 100, math.Vec2{X: 10, Y: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrailPoint(tt.trail, leader, tt.dist)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestSquadLeaderIsPositional(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, player := testPlayer(w)

	a := factory.SpawnAlly(w, cfg.AllyRifleman)
	b := factory.SpawnAlly(w, cfg.AllyShotgun)
	c := factory.SpawnAlly(w, cfg.AllySniper)
	require.Len(t, player.Squad, 3)

	components.Health.Get(b).Kill()
	removeDeadAllies(w, player)

	assert.Equal(t, []donburi.Entity{a.Entity(), c.Entity()}, player.Squad)
	assert.False(t, b.Valid())

	components.Health.Get(a).Kill()
	removeDeadAllies(w, player)
	assert.Equal(t, []donburi.Entity{c.Entity()}, player.Squad)
}

func TestAlliesFollowAndRecordMaxSquad(t *testing.T) {
	w := newTestWorld(t, cfg.StatusPlaying)
	_, player := testPlayer(w)
	ally := factory.SpawnAlly(w, cfg.AllyRifleman)
	require.NotNil(t, ally)
	components.Object.Get(ally).X -= 100

	for i := 0; i < 30; i++ {
		UpdatePlayer(w)
		UpdateAllies(w)
	}

	assert.Equal(t, 2, player.MaxSquad)
	leader := playerBox(w)
	body := components.Object.Get(ally).Box
	ring := (leader.W+body.W)/2 + cfg.Ally.SeparationPadding
	assert.InDelta(t, ring, gamemath.CenterDistance(leader, body), 1e-6)
	assert.NotEmpty(t, components.Ally.Get(ally).Trail)
}
