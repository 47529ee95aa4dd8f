// Package bot plays a session without a human: it walks the menus, buys
// upgrades and steers the squad leader from snapshots alone.
package bot

import (
	stdmath "math"

	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/session"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// State is what the pilot is currently trying to do during a wave.
type State int

const (
	StateIdle State = iota
	StateCollect
	StateKite
	StateRetreat
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollect:
		return "collect"
	case StateKite:
		return "kite"
	case StateRetreat:
		return "retreat"
	}
	return "unknown"
}

// keyDeadZone is how far a steering component must lean before its key is held.
const keyDeadZone = 0.3

type Pilot struct {
	Champion cfg.AllyType
	State    State

	conf  cfg.BotDifficultyConfig
	timer int
}

func New(difficulty cfg.BotDifficulty, champion cfg.AllyType) *Pilot {
	conf, ok := cfg.Bot.Difficulties[difficulty]
	if !ok {
		conf = cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	return &Pilot{Champion: champion, conf: conf}
}

// Decide reads the latest snapshot and returns the commands to queue and the
// input to hold for the next tick.
func (p *Pilot) Decide(snap *session.Snapshot) ([]session.Command, session.Input) {
	in := session.Input{Keys: map[string]bool{}}

	switch snap.Status {
	case cfg.StatusIdle:
		return []session.Command{session.StartGame()}, in
	case cfg.StatusChampionSelect:
		return []session.Command{session.SelectChampion(p.Champion)}, in
	case cfg.StatusShop:
		return []session.Command{p.shop(snap)}, in
	case cfg.StatusGameOver:
		return []session.Command{session.RestartFromGameOver()}, in
	case cfg.StatusPaused:
		return []session.Command{session.TogglePause()}, in
	case cfg.StatusTutorialActive:
		return []session.Command{session.EndTutorial()}, in
	case cfg.StatusPlaying:
		var cmds []session.Command
		if snap.Airstrike.Available && !snap.Airstrike.Active {
			cmds = append(cmds, session.ActivateSpecial())
		}
		p.steer(snap, in.Keys)
		return cmds, in
	}
	return nil, in
}

// shop buys the first affordable upgrade, else starts the run.
func (p *Pilot) shop(snap *session.Snapshot) session.Command {
	if p.conf.BuyUpgrades {
		for _, e := range snap.Shop {
			if e.Affordable && !e.Maxed {
				return session.PurchaseUpgrade(e.ID)
			}
		}
	}
	return session.ContinueFromShop()
}

func (p *Pilot) steer(snap *session.Snapshot, keys map[string]bool) {
	me := gamemath.Center(snap.Player.Box)

	if p.timer > 0 {
		p.timer--
	} else {
		p.State = p.evaluate(snap, me)
		p.timer = p.conf.ReactionDelay
	}

	dir := p.avoidEdges(me, p.direction(snap, me))
	if dir.X > keyDeadZone {
		keys["d"] = true
	}
	if dir.X < -keyDeadZone {
		keys["a"] = true
	}
	if dir.Y > keyDeadZone {
		keys["s"] = true
	}
	if dir.Y < -keyDeadZone {
		keys["w"] = true
	}
}

func (p *Pilot) evaluate(snap *session.Snapshot, me math.Vec2) State {
	health := snap.Player.Health / max(1, snap.Player.MaxHealth)
	_, d, threat := nearest(me, enemyBoxes(snap))
	_, coinDist, coin := nearest(me, coinBoxes(snap))

	switch {
	case threat && health < p.conf.RetreatThreshold:
		return StateRetreat
	case threat && d < p.conf.ThreatRange:
		return StateKite
	case len(snap.Collectibles) > 0:
		return StateCollect
	case coin && coinDist < p.conf.CollectRange:
		return StateCollect
	}
	return StateIdle
}

// direction is the unnormalized heading for the current state.
func (p *Pilot) direction(snap *session.Snapshot, me math.Vec2) math.Vec2 {
	switch p.State {
	case StateKite:
		return away(me, enemyBoxes(snap), 2*p.conf.ThreatRange)
	case StateRetreat:
		return away(me, enemyBoxes(snap), stdmath.Inf(1))
	case StateCollect:
		pickups := make([]gamemath.Box, len(snap.Collectibles))
		for i, c := range snap.Collectibles {
			pickups[i] = c.Box
		}
		target, _, ok := nearest(me, pickups)
		if !ok {
			target, _, ok = nearest(me, coinBoxes(snap))
		}
		if ok {
			return gamemath.Normalize(math.Vec2{X: target.X - me.X, Y: target.Y - me.Y})
		}
	}
	return math.Vec2{}
}

// avoidEdges leans the heading back toward the arena when the pilot drifts
// within the edge margin.
func (p *Pilot) avoidEdges(me, dir math.Vec2) math.Vec2 {
	m := p.conf.EdgeMargin
	if me.X < m {
		dir.X++
	}
	if me.X > cfg.World.Width-m {
		dir.X--
	}
	if me.Y < m {
		dir.Y++
	}
	if me.Y > cfg.World.Height-m {
		dir.Y--
	}
	return dir
}

func enemyBoxes(snap *session.Snapshot) []gamemath.Box {
	boxes := make([]gamemath.Box, len(snap.Enemies))
	for i, e := range snap.Enemies {
		boxes[i] = e.Box
	}
	return boxes
}

func coinBoxes(snap *session.Snapshot) []gamemath.Box {
	boxes := make([]gamemath.Box, len(snap.Coins))
	for i, c := range snap.Coins {
		boxes[i] = c.Box
	}
	return boxes
}

// nearest returns the center of the closest box and its distance.
func nearest(from math.Vec2, boxes []gamemath.Box) (math.Vec2, float64, bool) {
	best := stdmath.Inf(1)
	var at math.Vec2
	for _, b := range boxes {
		c := gamemath.Center(b)
		if d := gamemath.Distance(from, c); d < best {
			best = d
			at = c
		}
	}
	return at, best, len(boxes) > 0
}

// away points from the inverse-distance weighted threats within reach.
func away(from math.Vec2, boxes []gamemath.Box, reach float64) math.Vec2 {
	var push math.Vec2
	for _, b := range boxes {
		c := gamemath.Center(b)
		d := gamemath.Distance(from, c)
		if d > reach || d == 0 {
			continue
		}
		push.X += (from.X - c.X) / (d * d)
		push.Y += (from.Y - c.Y) / (d * d)
	}
	return gamemath.Normalize(push)
}
