package config

// Status is the top-level session state.
type Status int

const (
	StatusIdle Status = iota
	StatusChampionSelect
	StatusShop
	StatusInitNewRun
	StatusPlaying
	StatusPaused
	StatusGameOverPending
	StatusGameOver
	StatusTutorialActive
)

var statusNames = map[Status]string{
	StatusIdle:            "IDLE",
	StatusChampionSelect:  "CHAMPION_SELECT",
	StatusShop:            "SHOP",
	StatusInitNewRun:      "INIT_NEW_RUN",
	StatusPlaying:         "PLAYING",
	StatusPaused:          "PAUSED",
	StatusGameOverPending: "GAME_OVER_PENDING",
	StatusGameOver:        "GAME_OVER",
	StatusTutorialActive:  "TUTORIAL_ACTIVE",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Simulating reports whether the world advances in this status.
func (s Status) Simulating() bool {
	return s == StatusPlaying || s == StatusGameOverPending
}

// HighlightTarget names the HUD element a tutorial step points at.
type HighlightTarget int

const (
	HighlightNone HighlightTarget = iota
	HighlightHealth
	HighlightWave
	HighlightCoins
	HighlightAllyTimer
)

func (h HighlightTarget) String() string {
	switch h {
	case HighlightHealth:
		return "health"
	case HighlightWave:
		return "wave"
	case HighlightCoins:
		return "coins"
	case HighlightAllyTimer:
		return "allyTimer"
	}
	return ""
}
