package config

// TutorialWaveConfig describes a timed trickle of practice enemies.
type TutorialWaveConfig struct {
	Interval       int
	MaxConcurrent  int
	Health         float64
	Speed          float64
	Damage         float64
	AttackCooldown int
	Points         int
	DistanceFactor float64 // share of the shorter viewport side
}

// TutorialConfig contains the scripted tutorial.
type TutorialConfig struct {
	Messages      []string
	AllyOrder     []AllyType
	DummyHealth   float64
	DummyOffsets  [][2]float64
	CoinWave      TutorialWaveConfig
	AirstrikeWave TutorialWaveConfig

	CoinStep      int
	PickupStep    int
	DummyStep     int
	AirstrikeStep int
	SilentSteps   map[int]HighlightTarget // explanation steps, firing disabled
	AllyTimer     float64
}

var Tutorial TutorialConfig

func init() {
	Tutorial = TutorialConfig{
		Messages: []string{
			"Welcome! Move with WASD, the arrow keys or the mouse. On touch devices, use the joystick. Try moving around.",
			"Your squad leader auto-targets and shoots the closest hostile. Watch how it picks targets.",
			"Collect units like this to add them to your squad. They fight with you!",
			"Destroyed hostiles drop coins. Pick them up to spend on upgrades later. Engage these targets!",
			"This is your health. If it reaches zero, the run ends. Keep an eye on it!",
			"This shows the current wave. Hostiles get tougher over time.",
			"These are your coins. Spend them on upgrades between runs.",
			"This timer shows when the next support unit can be collected.",
			"Defeat enemies quickly to build a combo. High combos earn airstrikes! Press Q or click to call one in. Try it now!",
			"Tutorial complete! You're ready to survive.",
		},
		AllyOrder: []AllyType{
			AllyRifleman,
			AllyShotgun,
			AllySniper,
			AllyMinigunner,
			AllyRPG,
			AllyFlamer,
		},
		DummyHealth:  999999,
		DummyOffsets: [][2]float64{{120, -30}, {-180, 60}},
		CoinWave: TutorialWaveConfig{
			Interval:       120,
			MaxConcurrent:  2,
			Health:         15,
			Speed:          1.05,
			Damage:         5,
			AttackCooldown: 60,
			Points:         10,
			DistanceFactor: 0.55,
		},
		AirstrikeWave: TutorialWaveConfig{
			Interval:       60,
			MaxConcurrent:  5,
			Health:         15,
			Speed:          1.2,
			Damage:         5,
			AttackCooldown: 45,
			Points:         0,
			DistanceFactor: 0.6,
		},
		DummyStep:     1,
		PickupStep:    2,
		CoinStep:      3,
		AirstrikeStep: 8,
		SilentSteps: map[int]HighlightTarget{
			4: HighlightHealth,
			5: HighlightWave,
			6: HighlightCoins,
			7: HighlightAllyTimer,
		},
		AllyTimer: 99999,
	}
}
