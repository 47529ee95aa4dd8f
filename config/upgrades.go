package config

// UpgradeID identifies a shop upgrade.
type UpgradeID int

const (
	UpgradeMaxHealth UpgradeID = iota
	UpgradeSpeed
	UpgradeCoinMagnet
	UpgradeSquadSpacing
	UpgradeInitialAlly
	UpgradeUnlockSniper
	UpgradeUnlockRPG
	UpgradeUnlockFlamer
	UpgradeUnlockMinigunner
)

// UpgradeConfig describes one shop entry. Unlock upgrades name the ally
// archetype they add to the pickup pool.
type UpgradeConfig struct {
	ID          UpgradeID
	Name        string
	Description string
	BaseCost    int
	MaxLevel    int
	CostScaling float64
	Amount      float64 // per-level effect; unused by unlocks
	Unlocks     *AllyType
}

// LogStat is the per-run statistic a log predicate reads.
type LogStat int

const (
	StatRunKills LogStat = iota
	StatRunTanks
	StatRunCoins
	StatAllyCount
	StatRoundsCleared
)

// LogID identifies an achievement log.
type LogID string

// LogDefinition unlocks once Stat reaches Threshold.
type LogDefinition struct {
	ID          LogID
	Name        string
	Description string
	Stat        LogStat
	Threshold   int
}

var Upgrades []UpgradeConfig
var Logs []LogDefinition

// UpgradeByID looks up a shop entry.
func UpgradeByID(id UpgradeID) (UpgradeConfig, bool) {
	for _, u := range Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return UpgradeConfig{}, false
}

func unlocks(t AllyType) *AllyType {
	return &t
}

func init() {
	Upgrades = []UpgradeConfig{
		{ID: UpgradeMaxHealth, Name: "Integrity Field", Description: "Max integrity +25.", BaseCost: 600, MaxLevel: 5, CostScaling: 1.6, Amount: 25},
		{ID: UpgradeSpeed, Name: "Propulsion Boost", Description: "Velocity +10%.", BaseCost: 1300, MaxLevel: 3, CostScaling: 1.7, Amount: 1.1},
		{ID: UpgradeCoinMagnet, Name: "Data Attractor", Description: "Collection radius +20.", BaseCost: 500, MaxLevel: 5, CostScaling: 1.5, Amount: 20},
		{ID: UpgradeSquadSpacing, Name: "Formation Cohesion", Description: "Unit spacing -10%.", BaseCost: 500, MaxLevel: 5, CostScaling: 1.8, Amount: 0.9},
		{ID: UpgradeInitialAlly, Name: "Tactical Reinforcement", Description: "Start runs with +1 rifleman.", BaseCost: 900, MaxLevel: 3, CostScaling: 2.0, Amount: 1},
		{ID: UpgradeUnlockSniper, Name: "Acquire Focus Lance Unit", Description: "Unlocks the sniper.", BaseCost: 3100, MaxLevel: 1, CostScaling: 1, Unlocks: unlocks(AllySniper)},
		{ID: UpgradeUnlockRPG, Name: "Acquire Impact Driver Unit", Description: "Unlocks the RPG soldier.", BaseCost: 4500, MaxLevel: 1, CostScaling: 1, Unlocks: unlocks(AllyRPG)},
		{ID: UpgradeUnlockFlamer, Name: "Acquire Arc Field Unit", Description: "Unlocks the flamer.", BaseCost: 5400, MaxLevel: 1, CostScaling: 1, Unlocks: unlocks(AllyFlamer)},
		{ID: UpgradeUnlockMinigunner, Name: "Acquire Pulse Array Unit", Description: "Unlocks the minigunner.", BaseCost: 6500, MaxLevel: 1, CostScaling: 1, Unlocks: unlocks(AllyMinigunner)},
	}

	Logs = []LogDefinition{
		{ID: "FIRST_BLOOD", Name: "First Blood", Description: "Neutralize your first hostile.", Stat: StatRunKills, Threshold: 1},
		{ID: "NATURAL_BORN_KILLER", Name: "Natural Born Killer", Description: "Neutralize 50 hostiles in one run.", Stat: StatRunKills, Threshold: 50},
		{ID: "BLOOD_THIRSTY", Name: "Blood Thirsty", Description: "Neutralize 150 hostiles in one run.", Stat: StatRunKills, Threshold: 150},
		{ID: "RAMPAGE", Name: "Rampage", Description: "Neutralize 300 hostiles in one run.", Stat: StatRunKills, Threshold: 300},
		{ID: "MASS_MURDERER", Name: "Mass Murderer", Description: "Neutralize 450 hostiles in one run.", Stat: StatRunKills, Threshold: 450},
		{ID: "TANK_DESTROYER", Name: "Tank Destroyer", Description: "Destroy 5 rocket tanks in one run.", Stat: StatRunTanks, Threshold: 5},
		{ID: "MANIAC", Name: "Maniac", Description: "Destroy 10 rocket tanks in one run.", Stat: StatRunTanks, Threshold: 10},
		{ID: "COMMANDO", Name: "Commando", Description: "Destroy 30 rocket tanks in one run.", Stat: StatRunTanks, Threshold: 30},
		{ID: "GET_SOME_MONEY", Name: "Data Acquisition", Description: "Earn 7,000 coins in one run.", Stat: StatRunCoins, Threshold: 7000},
		{ID: "GREEDY", Name: "Data Hoarder", Description: "Earn 15,000 coins in one run.", Stat: StatRunCoins, Threshold: 15000},
		{ID: "COIN_LORD", Name: "Data Baron", Description: "Earn 27,000 coins in one run.", Stat: StatRunCoins, Threshold: 27000},
		{ID: "CAPTAIN_SQUAD", Name: "Squad Captain", Description: "Command a squad of 8.", Stat: StatAllyCount, Threshold: 7},
		{ID: "LIEUTENANT_COLONEL_SQUAD", Name: "Lt. Colonel", Description: "Command a squad of 11.", Stat: StatAllyCount, Threshold: 10},
		{ID: "COLONEL_SQUAD", Name: "Colonel", Description: "Command a squad of 15.", Stat: StatAllyCount, Threshold: 14},
		{ID: "SURVIVED_WAVE_1", Name: "Lucky", Description: "Clear wave 1.", Stat: StatRoundsCleared, Threshold: 1},
		{ID: "SURVIVED_WAVE_10", Name: "Warrior", Description: "Clear wave 10.", Stat: StatRoundsCleared, Threshold: 10},
		{ID: "SURVIVED_WAVE_20", Name: "Veteran", Description: "Clear wave 20.", Stat: StatRoundsCleared, Threshold: 20},
	}
}
