// Package terminal plays a session in a text console.
package terminal

import (
	"fmt"
	"log"
	"time"
	"unicode"

	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/menu"
	"github.com/automoto/squadfall/session"
	"github.com/gdamore/tcell/v2"
)

type Host struct {
	screen   tcell.Screen
	session  *session.Session
	nav      menu.Navigator
	snap     session.Snapshot
	tickRate int

	held    map[string]time.Time
	pressed map[cfg.ActionID]bool
	now     func() time.Time
}

func NewHost(screen tcell.Screen, s *session.Session, tickRate int) *Host {
	return &Host{
		screen:   screen,
		session:  s,
		snap:     s.Snapshot(),
		tickRate: tickRate,
		held:     make(map[string]time.Time),
		pressed:  make(map[cfg.ActionID]bool),
		now:      time.Now,
	}
}

// Run takes over the terminal until ctrl-c.
func (h *Host) Run() error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer h.screen.Fini()

	ticker := time.NewTicker(time.Second / time.Duration(h.tickRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	log.Printf("Terminal host started at %d ticks/second", h.tickRate)
	for {
		select {
		case ev := <-eventChan:
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.step()
			Render(h.screen, &h.snap, h.nav.Cursor)
		}
	}
}

// handle records one terminal event and reports whether to keep running.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.hold("arrowup")
		h.pressed[cfg.ActionPrev] = true
	case tcell.KeyDown:
		h.hold("arrowdown")
		h.pressed[cfg.ActionNext] = true
	case tcell.KeyLeft:
		h.hold("arrowleft")
		h.pressed[cfg.ActionPrev] = true
	case tcell.KeyRight:
		h.hold("arrowright")
		h.pressed[cfg.ActionNext] = true
	case tcell.KeyTab:
		h.pressed[cfg.ActionNext] = true
	case tcell.KeyEnter:
		h.pressed[cfg.ActionConfirm] = true
	case tcell.KeyEscape:
		h.pressed[cfg.ActionPause] = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.pressed[cfg.ActionBack] = true
	case tcell.KeyRune:
		switch r := unicode.ToLower(ev.Rune()); r {
		case 'w', 'a', 's', 'd':
			h.hold(string(r))
		case ' ':
			h.pressed[cfg.ActionContinue] = true
		case 'p':
			h.pressed[cfg.ActionPause] = true
		case 'q':
			h.pressed[cfg.ActionSpecial] = true
		case 'm':
			h.pressed[cfg.ActionBack] = true
		case 't':
			h.pressed[cfg.ActionTutorial] = true
		}
	}
	return true
}

func (h *Host) hold(key string) {
	h.held[key] = h.now()
}

// step turns the keys seen since the last tick into input and commands and
// advances the session once.
func (h *Host) step() {
	now := h.now()
	in := session.Input{Keys: make(map[string]bool, len(h.held))}
	for key, at := range h.held {
		if now.Sub(at) > cfg.Input.TerminalHold {
			delete(h.held, key)
			continue
		}
		in.Keys[key] = true
	}

	pressed := func(a cfg.ActionID) bool { return h.pressed[a] }
	for _, cmd := range h.nav.Commands(&h.snap, pressed) {
		h.session.Enqueue(cmd)
	}
	clear(h.pressed)

	h.session.Tick(in, 1/float64(h.tickRate))
	h.snap = h.session.Snapshot()
}
