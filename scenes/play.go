package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/menu"
	"github.com/automoto/squadfall/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayScene hosts one session: it turns device input into commands, ticks
// the simulation once per frame and draws the latest snapshot.
type PlayScene struct {
	session  *session.Session
	controls *controls
	snap     session.Snapshot

	nav    menu.Navigator
	opts   []session.Option
	width  int
	height int
	once   sync.Once
}

func NewPlayScene(opts ...session.Option) *PlayScene {
	return &PlayScene{opts: opts}
}

func (ps *PlayScene) configure() {
	opts := append([]session.Option{
		session.WithViewport(float64(cfg.C.Width), float64(cfg.C.Height)),
	}, ps.opts...)
	ps.session = session.New(opts...)
	ps.controls = &controls{}
	ps.snap = ps.session.Snapshot()
	log.Printf("session ready (%s)", ps.snap.Status)
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)

	in := ps.controls.poll()
	for _, cmd := range ps.nav.Commands(&ps.snap, ps.controls.justPressed) {
		ps.session.Enqueue(cmd)
	}
	ps.session.Tick(in, 1/float64(ebiten.TPS()))
	ps.snap = ps.session.Snapshot()
}

// Resize forwards a window size change to the simulation.
func (ps *PlayScene) Resize(width, height int) {
	ps.once.Do(ps.configure)
	if width == ps.width && height == ps.height {
		return
	}
	ps.width, ps.height = width, height
	ps.session.Enqueue(session.ResizeViewport(float64(width), float64(height)))
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Background)
	if ps.session == nil {
		return
	}

	switch ps.snap.Status {
	case cfg.StatusIdle:
		drawTitle(screen)
	case cfg.StatusChampionSelect:
		drawChampionSelect(screen, ps.nav.Cursor)
	case cfg.StatusShop:
		drawShop(screen, &ps.snap, ps.nav.Cursor)
	default:
		drawWorld(screen, &ps.snap)
		drawHUD(screen, &ps.snap)
		drawOverlay(screen, &ps.snap)
	}
}
