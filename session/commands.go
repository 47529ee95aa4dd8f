package session

import (
	"fmt"
	"log"
	"math"

	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CommandKind names a player or host request.
type CommandKind int

const (
	CmdStartGame CommandKind = iota
	CmdSelectChampion
	CmdPurchaseUpgrade
	CmdContinueFromShop
	CmdTogglePause
	CmdActivateSpecial
	CmdRestartFromGameOver
	CmdRetry
	CmdGoToMenu
	CmdStartTutorial
	CmdAdvanceTutorialStep
	CmdEndTutorial
	CmdResizeViewport
)

var commandNames = map[CommandKind]string{
	CmdStartGame:           "StartGame",
	CmdSelectChampion:      "SelectChampion",
	CmdPurchaseUpgrade:     "PurchaseUpgrade",
	CmdContinueFromShop:    "ContinueFromShop",
	CmdTogglePause:         "TogglePause",
	CmdActivateSpecial:     "ActivateSpecial",
	CmdRestartFromGameOver: "RestartFromGameOver",
	CmdRetry:               "Retry",
	CmdGoToMenu:            "GoToMenu",
	CmdStartTutorial:       "StartTutorial",
	CmdAdvanceTutorialStep: "AdvanceTutorialStep",
	CmdEndTutorial:         "EndTutorial",
	CmdResizeViewport:      "ResizeViewport",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is one queued request. Only the fields its Kind reads are set.
type Command struct {
	Kind     CommandKind
	Champion cfg.AllyType
	Upgrade  cfg.UpgradeID
	Width    float64
	Height   float64
}

func StartGame() Command           { return Command{Kind: CmdStartGame} }
func ContinueFromShop() Command    { return Command{Kind: CmdContinueFromShop} }
func TogglePause() Command         { return Command{Kind: CmdTogglePause} }
func ActivateSpecial() Command     { return Command{Kind: CmdActivateSpecial} }
func RestartFromGameOver() Command { return Command{Kind: CmdRestartFromGameOver} }
func Retry() Command               { return Command{Kind: CmdRetry} }
func GoToMenu() Command            { return Command{Kind: CmdGoToMenu} }
func StartTutorial() Command       { return Command{Kind: CmdStartTutorial} }
func AdvanceTutorialStep() Command { return Command{Kind: CmdAdvanceTutorialStep} }
func EndTutorial() Command         { return Command{Kind: CmdEndTutorial} }

func SelectChampion(t cfg.AllyType) Command {
	return Command{Kind: CmdSelectChampion, Champion: t}
}

func PurchaseUpgrade(id cfg.UpgradeID) Command {
	return Command{Kind: CmdPurchaseUpgrade, Upgrade: id}
}

func ResizeViewport(width, height float64) Command {
	return Command{Kind: CmdResizeViewport, Width: width, Height: height}
}

// commands is the per-session queue. Published commands wait on the bus
// world until the next Tick drains them.
var commands = events.NewEventType[Command]()

// Enqueue schedules cmd for the start of the next Tick.
func (s *Session) Enqueue(cmd Command) {
	commands.Publish(s.bus, cmd)
}

func (s *Session) handle(_ donburi.World, cmd Command) {
	before := s.Status()
	if !s.apply(cmd) {
		log.Printf("ignoring %s in %s", cmd.Kind, before)
		return
	}
	if after := s.Status(); after != before {
		log.Printf("%s: %s -> %s", cmd.Kind, before, after)
	}
}

// apply runs cmd and reports whether the current state accepted it.
func (s *Session) apply(cmd Command) bool {
	status := s.Status()

	switch cmd.Kind {
	case CmdStartGame:
		if status != cfg.StatusIdle {
			return false
		}
		sessionData(s.game).Status = cfg.StatusChampionSelect
		return true

	case CmdSelectChampion:
		if status != cfg.StatusChampionSelect {
			return false
		}
		s.selectChampion(cmd.Champion)
		return true

	case CmdPurchaseUpgrade:
		if status != cfg.StatusShop {
			return false
		}
		return s.purchase(cmd.Upgrade)

	case CmdContinueFromShop:
		if status != cfg.StatusShop {
			return false
		}
		s.beginRun()
		return true

	case CmdRetry:
		if status != cfg.StatusGameOver {
			return false
		}
		s.beginRun()
		return true

	case CmdRestartFromGameOver:
		if status != cfg.StatusGameOver {
			return false
		}
		s.returnToShop()
		return true

	case CmdTogglePause:
		return systems.TogglePause(s.game)

	case CmdActivateSpecial:
		return systems.ActivateAirstrike(s.active())

	case CmdGoToMenu:
		s.reset()
		return true

	case CmdStartTutorial:
		if status != cfg.StatusIdle {
			return false
		}
		s.startTutorial()
		return true

	case CmdAdvanceTutorialStep:
		if s.tutorial == nil {
			return false
		}
		s.advanceTutorial()
		return true

	case CmdEndTutorial:
		if s.tutorial == nil {
			return false
		}
		s.reset()
		return true

	case CmdResizeViewport:
		if cmd.Width <= 0 || cmd.Height <= 0 {
			return false
		}
		s.viewW = math.Floor(cmd.Width)
		s.viewH = math.Floor(cmd.Height)
		systems.ResizeViewport(s.game, s.viewW, s.viewH)
		if s.tutorial != nil {
			systems.ResizeViewport(s.tutorial, s.viewW, s.viewH)
		}
		return true
	}
	return false
}

// reset drops every world and starts over at the title screen.
func (s *Session) reset() {
	s.tutorial = nil
	s.game = s.newWorld(cfg.StatusIdle)
}
