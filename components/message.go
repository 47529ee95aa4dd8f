package components

import (
	cfg "github.com/automoto/squadfall/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TutorialData is a singleton tracking the scripted tutorial step.
type TutorialData struct {
	Step        int
	Message     string
	Highlight   cfg.HighlightTarget
	PickupIndex int
	SpawnTimer  int
}

var Tutorial = donburi.NewComponentType[TutorialData]()

// WaveTitleData is the transient wave banner. Fade runs a hold tween and a
// fade tween back to back.
type WaveTitleData struct {
	Text  string
	Fade  *gween.Sequence
	Alpha float32
	Ticks int
}

var WaveTitle = donburi.NewComponentType[WaveTitleData]()
