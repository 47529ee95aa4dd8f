package systems

import (
	"fmt"

	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down the transient timers: the wave banner, the
// screen shake and the player hit flash.
func UpdateEffects(ecs *ecs.ECS) {
	updateWaveTitle(ecs)

	if cameraEntry, _ := getCamera(ecs); cameraEntry != nil {
		updateScreenShake(cameraEntry)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		if player.HitFlash > 0 {
			player.HitFlash--
		}
	}
}

func updateWaveTitle(ecs *ecs.ECS) {
	e, ok := components.WaveTitle.First(ecs.World)
	if !ok {
		return
	}
	title := components.WaveTitle.Get(e)
	if title.Ticks <= 0 || title.Fade == nil {
		title.Ticks = 0
		title.Alpha = 0
		return
	}

	title.Ticks--
	alpha, _, done := title.Fade.Update(1)
	title.Alpha = alpha
	if done || title.Ticks == 0 {
		title.Ticks = 0
		title.Alpha = 0
	}
}

// ShowWaveTitle puts up the banner for round: fully visible for the stay
// duration, then faded out.
func ShowWaveTitle(ecs *ecs.ECS, round int) {
	e, ok := components.WaveTitle.First(ecs.World)
	if !ok {
		return
	}

	stay := float32(cfg.Round.WaveTitleStay)
	fade := float32(cfg.Round.WaveTitleFade)

	tw := gween.NewSequence()
	tw.Add(
		gween.New(1, 1, stay, ease.Linear),
		gween.New(1, 0, fade, ease.OutQuad),
	)

	components.WaveTitle.SetValue(e, components.WaveTitleData{
		Text:  fmt.Sprintf("Wave %d", round),
		Fade:  tw,
		Alpha: 1,
		Ticks: cfg.Round.WaveTitleStay + cfg.Round.WaveTitleFade,
	})
}

// ClearWaveTitle hides the banner immediately.
func ClearWaveTitle(ecs *ecs.ECS) {
	e, ok := components.WaveTitle.First(ecs.World)
	if !ok {
		return
	}
	components.WaveTitle.SetValue(e, components.WaveTitleData{})
}
