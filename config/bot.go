package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for the autopilot at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Ticks between state re-evaluations
	ThreatRange      float64 // Enemy distance that triggers kiting
	CollectRange     float64 // Coins further than this are ignored
	RetreatThreshold float64 // Health % to start retreating
	EdgeMargin       float64 // Distance from the arena edge that steers back inward
	BuyUpgrades      bool
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

// ParseBotDifficulty maps a flag value onto a difficulty.
func ParseBotDifficulty(s string) (BotDifficulty, bool) {
	switch s {
	case "easy":
		return BotDifficultyEasy, true
	case "normal":
		return BotDifficultyNormal, true
	case "hard":
		return BotDifficultyHard, true
	}
	return BotDifficultyNormal, false
}

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				ThreatRange:      60,
				CollectRange:     150,
				RetreatThreshold: 0.2,
				EdgeMargin:       60,
				BuyUpgrades:      false,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				ThreatRange:      110,
				CollectRange:     250,
				RetreatThreshold: 0.3,
				EdgeMargin:       100,
				BuyUpgrades:      true,
			},
			BotDifficultyHard: {
				ReactionDelay:    1,
				ThreatRange:      160,
				CollectRange:     400,
				RetreatThreshold: 0.5,
				EdgeMargin:       140,
				BuyUpgrades:      true,
			},
		},
	}
}
