package terminal

import (
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/session"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/gdamore/tcell/v2"
)

var enemyGlyphs = map[cfg.EnemyType]rune{
	cfg.EnemyGrunt:   'g',
	cfg.EnemyShooter: 's',
	cfg.EnemyTank:    'T',
	cfg.EnemyStalker: 'k',
	cfg.EnemyDrone:   'd',
	cfg.EnemySniper:  'n',
	cfg.EnemyDummy:   'o',
}

var allyGlyphs = map[cfg.AllyType]rune{
	cfg.AllyGunGuy:     'G',
	cfg.AllyRifleman:   'R',
	cfg.AllyShotgun:    'S',
	cfg.AllySniper:     'N',
	cfg.AllyMinigunner: 'M',
	cfg.AllyRPG:        'P',
	cfg.AllyFlamer:     'F',
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Render draws snap over the whole screen. cursor is the highlighted row on
// list screens.
func Render(screen tcell.Screen, snap *session.Snapshot, cursor int) {
	screen.Clear()
	switch snap.Status {
	case cfg.StatusIdle:
		renderTitle(screen)
	case cfg.StatusChampionSelect:
		renderChampions(screen, cursor)
	case cfg.StatusShop:
		renderShop(screen, snap, cursor)
	default:
		renderWorld(screen, snap)
		renderHUD(screen, snap)
	}
	screen.Show()
}

// grid maps world coordinates onto the cells between the HUD row and the
// footer row.
type grid struct {
	camX, camY   float64
	cols, rows   int
	cellW, cellH float64
}

func newGrid(screen tcell.Screen, snap *session.Snapshot) grid {
	cols, rows := screen.Size()
	rows -= 2
	g := grid{
		camX: snap.Camera.X,
		camY: snap.Camera.Y,
		cols: cols,
		rows: rows,
	}
	if cols > 0 && rows > 0 {
		g.cellW = snap.ViewW / float64(cols)
		g.cellH = snap.ViewH / float64(rows)
	}
	return g
}

func (g grid) put(screen tcell.Screen, b gamemath.Box, r rune, style tcell.Style) {
	if g.cellW == 0 || g.cellH == 0 {
		return
	}
	c := gamemath.Center(b)
	x := int((c.X - g.camX) / g.cellW)
	y := int((c.Y - g.camY) / g.cellH)
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return
	}
	screen.SetContent(x, y+1, r, nil, style)
}

func renderWorld(screen tcell.Screen, snap *session.Snapshot) {
	g := newGrid(screen, snap)

	for _, c := range snap.Coins {
		g.put(screen, c.Box, '$', styleOf(cfg.Palette.Coin))
	}
	for _, c := range snap.Collectibles {
		g.put(screen, c.Box, '+', styleOf(cfg.Palette.Pickup))
	}
	for _, e := range snap.Enemies {
		g.put(screen, e.Box, enemyGlyphs[e.Type], styleOf(cfg.Palette.Enemy[e.Type]))
	}
	for _, a := range snap.Allies {
		g.put(screen, a.Box, allyGlyphs[a.Type], styleOf(cfg.Palette.Ally[a.Type]))
	}
	for _, p := range snap.Projectiles {
		switch {
		case p.Airstrike:
			g.put(screen, p.Box, '*', styleOf(cfg.Palette.Missile))
		case p.PlayerOrigin:
			g.put(screen, p.Box, '.', styleOf(cfg.Palette.Shot))
		default:
			g.put(screen, p.Box, '.', styleOf(cfg.Palette.EnemyShot))
		}
	}

	player := styleOf(cfg.Palette.Player)
	if snap.Player.HitFlash {
		player = styleOf(cfg.Palette.PlayerHit)
	}
	g.put(screen, snap.Player.Box, '@', player)
}

func renderHUD(screen tcell.Screen, snap *session.Snapshot) {
	_, rows := screen.Size()
	p := snap.Player
	text := styleOf(cfg.Palette.Text)
	dim := styleOf(cfg.Palette.TextDim)

	wave := fmt.Sprintf("Wave %d %d/%d", snap.Round, snap.Kills, snap.Quota)
	if snap.NextRoundIn > 0 {
		wave = fmt.Sprintf("Wave %d in %.1fs", snap.Round+1, snap.NextRoundIn)
	}
	hud := fmt.Sprintf("HP %.0f/%.0f  %s  $%d  Squad %d/%d  Unit in %.0fs",
		p.Health, p.MaxHealth, wave, p.Coins, len(snap.Allies), p.MaxSquad, snap.NextAllyIn)
	if p.Combo > 0 {
		hud += fmt.Sprintf("  Combo x%d", p.Combo)
	}
	if snap.Airstrike.Available {
		hud += "  AIRSTRIKE [q]"
	}
	puts(screen, 0, 0, hud, text)

	footer := ""
	switch snap.Status {
	case cfg.StatusPaused:
		footer = "PAUSED  esc: resume  m: menu"
	case cfg.StatusGameOver:
		footer = fmt.Sprintf("SQUAD LOST at wave %d  enter: retry  space: shop  m: menu", snap.Round)
	case cfg.StatusTutorialActive:
		if t := snap.Tutorial; t != nil {
			footer = fmt.Sprintf("[%d/%d] %s", t.Step+1, t.Steps, t.Message)
		}
	default:
		if snap.WaveTitle != "" && snap.WaveTitleAlpha > 0 {
			footer = snap.WaveTitle
		}
	}
	puts(screen, 0, rows-1, footer, dim)
}

func renderTitle(screen tcell.Screen) {
	puts(screen, 2, 1, "SQUADFALL", styleOf(cfg.Palette.Text))
	puts(screen, 2, 3, "enter: start   t: tutorial   ctrl-c: quit", styleOf(cfg.Palette.TextDim))
}

func renderChampions(screen tcell.Screen, cursor int) {
	puts(screen, 2, 1, "Choose your champion", styleOf(cfg.Palette.Text))
	for i, t := range cfg.AllAllyTypes {
		style := styleOf(cfg.Palette.TextDim)
		marker := "  "
		if i == cursor {
			style = styleOf(cfg.Palette.Selected)
			marker = "> "
		}
		puts(screen, 2, 3+i, marker+string(allyGlyphs[t])+" "+t.String(), style)
	}
}

func renderShop(screen tcell.Screen, snap *session.Snapshot, cursor int) {
	puts(screen, 2, 1, fmt.Sprintf("Shop  $%d", snap.Player.Coins), styleOf(cfg.Palette.Coin))
	for i, e := range snap.Shop {
		style := styleOf(cfg.Palette.Text)
		switch {
		case i == cursor:
			style = styleOf(cfg.Palette.Selected)
		case e.Maxed || !e.Affordable:
			style = styleOf(cfg.Palette.TextDim)
		}
		price := fmt.Sprintf("$%d", e.Cost)
		if e.Maxed {
			price = "MAX"
		}
		puts(screen, 2, 3+i, fmt.Sprintf("%-28s %d/%d %8s  %s", e.Name, e.Level, e.MaxLevel, price, e.Description), style)
	}

	unlocked := make([]string, len(snap.Unlocked))
	for i, t := range snap.Unlocked {
		unlocked[i] = t.String()
	}
	y := 4 + len(snap.Shop)
	puts(screen, 2, y, "Pool: "+strings.Join(unlocked, ", "), styleOf(cfg.Palette.TextDim))
	puts(screen, 2, y+1, "enter: buy   space: start run   m: menu", styleOf(cfg.Palette.TextDim))
}

func puts(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
