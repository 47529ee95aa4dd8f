package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Base     math.Vec2 // smoothed follow position
	Position math.Vec2 // Base plus shake, what the viewport shows
	ViewW    float64
	ViewH    float64
}

var Camera = donburi.NewComponentType[CameraData]()
