// Package headless runs a session at a fixed tick rate with the autopilot
// at the controls.
package headless

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/squadfall/bot"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/session"
)

type GameLoop struct {
	session  *session.Session
	pilot    *bot.Pilot
	tickRate int
	logEvery int

	ticks    int
	status   cfg.Status
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(s *session.Session, pilot *bot.Pilot, tickRate int) *GameLoop {
	return &GameLoop{
		session:  s,
		pilot:    pilot,
		tickRate: tickRate,
		logEvery: tickRate * 10,
		status:   s.Status(),
		stopChan: make(chan struct{}),
	}
}

// SetLogEvery changes how many ticks pass between summary lines. Zero turns
// summaries off.
func (g *GameLoop) SetLogEvery(ticks int) {
	g.logEvery = ticks
}

// Run ticks in real time until Stop is called.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			g.logSummary()
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// RunTicks advances n ticks as fast as possible, stopping early if Stop is
// called.
func (g *GameLoop) RunTicks(n int) {
	for i := 0; i < n; i++ {
		select {
		case <-g.stopChan:
			return
		default:
		}
		g.tick()
	}
	g.logSummary()
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

// Ticks is the number of ticks advanced so far.
func (g *GameLoop) Ticks() int {
	return g.ticks
}

func (g *GameLoop) tick() {
	snap := g.session.Snapshot()
	cmds, in := g.pilot.Decide(&snap)
	for _, cmd := range cmds {
		g.session.Enqueue(cmd)
	}
	g.session.Tick(in, 1/float64(g.tickRate))
	g.ticks++

	if now := g.session.Status(); now != g.status {
		log.Printf("tick %d: %s -> %s", g.ticks, g.status, now)
		g.status = now
	}
	if g.logEvery > 0 && g.ticks%g.logEvery == 0 {
		g.logSummary()
	}
}

func (g *GameLoop) logSummary() {
	snap := g.session.Snapshot()
	log.Printf("tick %d [%s] wave %d kills %d/%d squad %d coins %d hp %.0f/%.0f pilot %s",
		g.ticks, snap.Status, snap.Round, snap.Kills, snap.Quota,
		len(snap.Allies), snap.Player.Coins,
		snap.Player.Health, snap.Player.MaxHealth, g.pilot.State)
}
