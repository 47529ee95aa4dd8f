package main

import (
	"flag"
	"log"

	"github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/fonts"
	"github.com/automoto/squadfall/scenes"
	"github.com/automoto/squadfall/session"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// resizer is implemented by scenes that follow the window size.
type resizer interface {
	Resize(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame(opts ...session.Option) *Game {
	fonts.LoadDefaults()

	return &Game{
		scene: scenes.NewPlayScene(opts...),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	if r, ok := g.scene.(resizer); ok {
		r.Resize(width, height)
	}
	return width, height
}

func main() {
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	flag.Parse()

	var opts []session.Option
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Squadfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(opts...)); err != nil {
		log.Fatal(err)
	}
}
