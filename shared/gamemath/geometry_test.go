package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestOverlapsIsStrict(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"inside", Box{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Box{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Box{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Box{X: 0, Y: 10, W: 5, H: 5}, false},
		{"touching left edge", Box{X: -5, Y: 0, W: 5, H: 5}, false},
		{"apart", Box{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, a))
		})
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, dmath.Vec2{}, Normalize(dmath.Vec2{}))

	n := Normalize(dmath.Vec2{X: 3, Y: 4})
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 1.0, Magnitude(n), 1e-9)
}

func TestCenterAndDistance(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}
	b := Box{X: 30, Y: 40, W: 10, H: 10}

	assert.Equal(t, dmath.Vec2{X: 5, Y: 5}, Center(a))
	assert.InDelta(t, 50, CenterDistance(a, b), 1e-9)
	assert.InDelta(t, 5, Distance(dmath.Vec2{}, dmath.Vec2{X: 3, Y: 4}), 1e-9)
}

func TestRotate(t *testing.T) {
	v := Rotate(dmath.Vec2{X: 1, Y: 0}, 90)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 1, v.Y, 1e-9)

	v = Rotate(dmath.Vec2{X: 1, Y: 0}, -35)
	assert.InDelta(t, math.Cos(35*math.Pi/180), v.X, 1e-9)
	assert.InDelta(t, -math.Sin(35*math.Pi/180), v.Y, 1e-9)
}

func TestClampBox(t *testing.T) {
	b := ClampBox(Box{X: -40, Y: 5000, W: 28, H: 28}, 2000, 1500, 10)
	assert.Equal(t, 10.0, b.X)
	assert.Equal(t, 1500.0-28-10, b.Y)
}

func TestOnScreen(t *testing.T) {
	cam := dmath.Vec2{X: 100, Y: 100}
	assert.True(t, OnScreen(Box{X: 150, Y: 150, W: 10, H: 10}, cam, 800, 600))
	assert.False(t, OnScreen(Box{X: 0, Y: 0, W: 10, H: 10}, cam, 800, 600))
}
