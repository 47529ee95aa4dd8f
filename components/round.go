package components

import "github.com/yohamta/donburi"

// RoundData stores the current wave state.
// This is a singleton component - only one round exists at a time.
type RoundData struct {
	Round int
	Kills int // kills this round, never decreases within a round
	Quota int

	NextRoundTimer float64 // seconds, > 0 while the between-wave countdown runs
	AllyTimer      float64 // seconds until the next squad pickup

	PendingSpawns int
	SpawnCounter  int // ticks until the next gradual spawn

	GameOverTimer int
}

// CountingDown reports whether the between-wave countdown is running.
func (r *RoundData) CountingDown() bool {
	return r.NextRoundTimer > 0
}

// Remaining returns how many more enemies the round may introduce.
func (r *RoundData) Remaining(live int) int {
	return r.Quota - (r.Kills + live + r.PendingSpawns)
}

var Round = donburi.NewComponentType[RoundData]()
