package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // total frames
	Timer     int     // frames remaining
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
