// Package menu turns host actions into session commands. Hosts report which
// actions were pressed this frame; the navigator knows what each one means
// in the status the player is looking at.
package menu

import (
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/session"
)

// Navigator tracks the highlighted row on list screens.
type Navigator struct {
	Cursor int
	status cfg.Status
}

// Commands returns what the pressed actions ask for given the latest
// snapshot.
func (n *Navigator) Commands(snap *session.Snapshot, pressed func(cfg.ActionID) bool) []session.Command {
	if snap.Status != n.status {
		n.status = snap.Status
		n.Cursor = 0
	}

	var cmds []session.Command
	send := func(c session.Command) { cmds = append(cmds, c) }

	switch snap.Status {
	case cfg.StatusIdle:
		if pressed(cfg.ActionConfirm) || pressed(cfg.ActionContinue) {
			send(session.StartGame())
		}
		if pressed(cfg.ActionTutorial) {
			send(session.StartTutorial())
		}

	case cfg.StatusChampionSelect:
		n.move(len(cfg.AllAllyTypes), pressed)
		if pressed(cfg.ActionConfirm) || pressed(cfg.ActionContinue) {
			send(session.SelectChampion(cfg.AllAllyTypes[n.Cursor]))
		}
		if pressed(cfg.ActionBack) {
			send(session.GoToMenu())
		}

	case cfg.StatusShop:
		n.move(len(snap.Shop), pressed)
		if pressed(cfg.ActionConfirm) && n.Cursor < len(snap.Shop) {
			send(session.PurchaseUpgrade(snap.Shop[n.Cursor].ID))
		}
		if pressed(cfg.ActionContinue) {
			send(session.ContinueFromShop())
		}
		if pressed(cfg.ActionBack) {
			send(session.GoToMenu())
		}

	case cfg.StatusPlaying, cfg.StatusPaused, cfg.StatusGameOverPending:
		if pressed(cfg.ActionPause) {
			send(session.TogglePause())
		}
		if pressed(cfg.ActionSpecial) {
			send(session.ActivateSpecial())
		}
		if snap.Status == cfg.StatusPaused && pressed(cfg.ActionBack) {
			send(session.GoToMenu())
		}

	case cfg.StatusGameOver:
		if pressed(cfg.ActionConfirm) {
			send(session.Retry())
		}
		if pressed(cfg.ActionContinue) {
			send(session.RestartFromGameOver())
		}
		if pressed(cfg.ActionBack) {
			send(session.GoToMenu())
		}

	case cfg.StatusTutorialActive:
		if pressed(cfg.ActionConfirm) || pressed(cfg.ActionContinue) {
			send(session.AdvanceTutorialStep())
		}
		if pressed(cfg.ActionSpecial) {
			send(session.ActivateSpecial())
		}
		if pressed(cfg.ActionBack) {
			send(session.EndTutorial())
		}
	}
	return cmds
}

func (n *Navigator) move(rows int, pressed func(cfg.ActionID) bool) {
	if rows == 0 {
		n.Cursor = 0
		return
	}
	if pressed(cfg.ActionNext) {
		n.Cursor = (n.Cursor + 1) % rows
	}
	if pressed(cfg.ActionPrev) {
		n.Cursor = (n.Cursor + rows - 1) % rows
	}
	n.Cursor = min(n.Cursor, rows-1)
}
