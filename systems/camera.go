package systems

import (
	"github.com/automoto/squadfall/components"
	"github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the base camera toward the player and keeps the
// viewport inside the arena.
func UpdateCamera(e *ecs.ECS) {
	_, camera := getCamera(e)
	if camera == nil {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	center := gamemath.Center(components.Object.Get(playerEntry).Box)

	targetX := center.X - camera.ViewW/2
	targetY := center.Y - camera.ViewH/2

	camera.Base.X += (targetX - camera.Base.X) * config.Camera.FollowSmoothing
	camera.Base.Y += (targetY - camera.Base.Y) * config.Camera.FollowSmoothing
	clampCamera(camera)
	camera.Position = camera.Base
}

// CenterCamera snaps the camera onto the player without smoothing.
func CenterCamera(e *ecs.ECS) {
	_, camera := getCamera(e)
	if camera == nil {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	center := gamemath.Center(components.Object.Get(playerEntry).Box)
	camera.Base.X = center.X - camera.ViewW/2
	camera.Base.Y = center.Y - camera.ViewH/2
	clampCamera(camera)
	camera.Position = camera.Base
}

// ResizeViewport changes the visible area and re-clamps the camera.
func ResizeViewport(e *ecs.ECS, width, height float64) {
	_, camera := getCamera(e)
	if camera == nil {
		return
	}
	camera.ViewW = width
	camera.ViewH = height
	clampCamera(camera)
	camera.Position = camera.Base
}

func clampCamera(camera *components.CameraData) {
	camera.Base.X = gamemath.Clamp(camera.Base.X, 0, max(0, config.World.Width-camera.ViewW))
	camera.Base.Y = gamemath.Clamp(camera.Base.Y, 0, max(0, config.World.Height-camera.ViewH))
}

// UpdateCameraShake offsets the visible camera by a random jitter while a
// shake is running. It runs last so the offset never feeds back into follow.
func UpdateCameraShake(e *ecs.ECS) {
	cameraEntry, camera := getCamera(e)
	if camera == nil {
		return
	}
	camera.Position = camera.Base
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	rng := getSession(e).Rand
	camera.Position.X += (rng.Float64() - 0.5) * 2 * shake.Intensity
	camera.Position.Y += (rng.Float64() - 0.5) * 2 * shake.Intensity
	camera.Position.X = gamemath.Clamp(camera.Position.X, 0, max(0, config.World.Width-camera.ViewW))
	camera.Position.Y = gamemath.Clamp(camera.Position.Y, 0, max(0, config.World.Height-camera.ViewH))
}

// updateScreenShake counts the shake down and removes it once it expires.
func updateScreenShake(cameraEntry *donburi.Entry) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Timer--
	if shake.Timer <= 0 {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is at least as strong
		if intensity >= shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Timer = duration
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Timer:     duration,
		})
	}
}

// StopScreenShake cancels any running shake.
func StopScreenShake(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position = camera.Base
}
