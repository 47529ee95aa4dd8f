package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAround returns a w*h box centered on c.
func BoxAround(c dmath.Vec2, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Center returns the centroid of b.
func Center(b Box) dmath.Vec2 {
	return dmath.Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Translate returns b moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Distance is the Euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// CenterDistance is the distance between the centers of two boxes.
func CenterDistance(a, b Box) float64 {
	return Distance(Center(a), Center(b))
}

// Overlaps reports whether a and b intersect. Boxes that only share an edge
// do not overlap.
func Overlaps(a, b Box) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Magnitude returns the length of v.
func Magnitude(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector when v has
// no length. Callers treat the zero vector as "no direction".
func Normalize(v dmath.Vec2) dmath.Vec2 {
	m := Magnitude(v)
	if m == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / m, Y: v.Y / m}
}

// IsZero reports whether v has no direction.
func IsZero(v dmath.Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// Scale multiplies v by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Rotate turns v counter-clockwise by the given angle in degrees.
func Rotate(v dmath.Vec2, degrees float64) dmath.Vec2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return dmath.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampBox keeps b inside [margin, width-margin] x [margin, height-margin].
func ClampBox(b Box, width, height, margin float64) Box {
	b.X = Clamp(b.X, margin, width-b.W-margin)
	b.Y = Clamp(b.Y, margin, height-b.H-margin)
	return b
}

// OnScreen reports whether b intersects the viewport whose top-left corner
// sits at camera.
func OnScreen(b Box, camera dmath.Vec2, viewW, viewH float64) bool {
	return Overlaps(b, Box{X: camera.X, Y: camera.Y, W: viewW, H: viewH})
}
