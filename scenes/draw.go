package scenes

import (
	"fmt"
	"image/color"
	stdmath "math"

	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/fonts"
	"github.com/automoto/squadfall/session"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

func drawWorld(screen *ebiten.Image, snap *session.Snapshot) {
	cam := snap.Camera
	vector.FillRect(screen,
		float32(-cam.X), float32(-cam.Y),
		float32(cfg.World.Width), float32(cfg.World.Height),
		cfg.Palette.Ground, false)
	drawGrid(screen, cam, snap.ViewW, snap.ViewH)

	for _, c := range snap.Coins {
		fillBody(screen, c.Body, cam, cfg.Palette.Coin)
	}
	for _, c := range snap.Collectibles {
		strokeBody(screen, c.Body, cam, cfg.Palette.Pickup)
		fillBody(screen, shrink(c.Body, 4), cam, cfg.Palette.Ally[c.Type])
	}
	for _, e := range snap.Enemies {
		fillBody(screen, e.Body, cam, cfg.Palette.Enemy[e.Type])
		if e.Health < e.MaxHealth {
			drawBar(screen, e.Box.X-cam.X, e.Box.Y-cam.Y-6, e.Box.W, 3, e.Health/e.MaxHealth)
		}
	}
	for _, a := range snap.Allies {
		fillBody(screen, a.Body, cam, cfg.Palette.Ally[a.Type])
		drawBarrel(screen, a.Box, a.Facing, cam)
	}

	p := snap.Player
	body := cfg.Palette.Player
	if p.HitFlash {
		body = cfg.Palette.PlayerHit
	}
	fillBody(screen, p.Body, cam, body)
	drawBarrel(screen, p.Box, p.Facing, cam)

	for _, pr := range snap.Projectiles {
		clr := cfg.Palette.EnemyShot
		switch {
		case pr.Airstrike:
			clr = cfg.Palette.Missile
		case pr.PlayerOrigin:
			clr = cfg.Palette.Shot
		}
		fillBody(screen, pr.Body, cam, clr)
	}
}

func drawGrid(screen *ebiten.Image, cam math.Vec2, viewW, viewH float64) {
	step := cfg.HUD.GridSize
	for x := stdmath.Ceil(cam.X/step) * step; x <= cam.X+viewW; x += step {
		vector.StrokeLine(screen, float32(x-cam.X), 0, float32(x-cam.X), float32(viewH), 1, cfg.Palette.Grid, false)
	}
	for y := stdmath.Ceil(cam.Y/step) * step; y <= cam.Y+viewH; y += step {
		vector.StrokeLine(screen, 0, float32(y-cam.Y), float32(viewW), float32(y-cam.Y), 1, cfg.Palette.Grid, false)
	}
}

func fillBody(screen *ebiten.Image, b session.Body, cam math.Vec2, clr color.Color) {
	vector.FillRect(screen,
		float32(b.Box.X-cam.X), float32(b.Box.Y-cam.Y),
		float32(b.Box.W), float32(b.Box.H),
		clr, false)
}

func strokeBody(screen *ebiten.Image, b session.Body, cam math.Vec2, clr color.Color) {
	vector.StrokeRect(screen,
		float32(b.Box.X-cam.X), float32(b.Box.Y-cam.Y),
		float32(b.Box.W), float32(b.Box.H),
		2, clr, false)
}

func shrink(b session.Body, by float64) session.Body {
	b.Box = gamemath.Box{X: b.Box.X + by, Y: b.Box.Y + by, W: max(0, b.Box.W-2*by), H: max(0, b.Box.H-2*by)}
	return b
}

// drawBarrel marks the way a shooter faces.
func drawBarrel(screen *ebiten.Image, box gamemath.Box, facing math.Vec2, cam math.Vec2) {
	c := gamemath.Center(box)
	tip := gamemath.Scale(facing, max(box.W, box.H)*0.8)
	vector.StrokeLine(screen,
		float32(c.X-cam.X), float32(c.Y-cam.Y),
		float32(c.X+tip.X-cam.X), float32(c.Y+tip.Y-cam.Y),
		3, cfg.Palette.Text, false)
}

func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64) {
	ratio = gamemath.Clamp(ratio, 0, 1)
	fill := cfg.Palette.BarFill
	if ratio < 0.3 {
		fill = cfg.Palette.BarLow
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Palette.BarBack, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fill, false)
}

// drawHUD lays the run stats down the left edge. Each line is a tutorial
// highlight target.
func drawHUD(screen *ebiten.Image, snap *session.Snapshot) {
	m := cfg.HUD.Margin
	gap := cfg.HUD.LineGap
	face := fonts.Regular.Get()
	p := snap.Player

	lines := map[cfg.HighlightTarget]float64{
		cfg.HighlightHealth:    m,
		cfg.HighlightWave:      m + gap,
		cfg.HighlightCoins:     m + 2*gap,
		cfg.HighlightAllyTimer: m + 3*gap,
	}

	drawBar(screen, m, m, cfg.HUD.BarWidth, cfg.HUD.BarHeight, p.Health/max(1, p.MaxHealth))
	drawText(screen, fmt.Sprintf("%.0f/%.0f", p.Health, p.MaxHealth), face, m+cfg.HUD.BarWidth+8, m+12, cfg.Palette.Text)

	wave := fmt.Sprintf("Wave %d  %d/%d", snap.Round, snap.Kills, snap.Quota)
	if snap.NextRoundIn > 0 {
		wave = fmt.Sprintf("Wave %d in %.1fs", snap.Round+1, snap.NextRoundIn)
	}
	drawText(screen, wave, face, m, lines[cfg.HighlightWave]+14, cfg.Palette.Text)
	drawText(screen, fmt.Sprintf("Coins %d", p.Coins), face, m, lines[cfg.HighlightCoins]+14, cfg.Palette.Coin)
	drawText(screen, fmt.Sprintf("Next unit %.0fs  Squad %d/%d", snap.NextAllyIn, len(snap.Allies), p.MaxSquad),
		face, m, lines[cfg.HighlightAllyTimer]+14, cfg.Palette.Text)

	y := m + 4*gap + 14
	if p.ClipSize > 0 {
		ammo := fmt.Sprintf("Ammo %d/%d", p.Ammo, p.ClipSize)
		if p.Reloading {
			ammo = "Reloading"
		}
		drawText(screen, ammo, face, m, y, cfg.Palette.TextDim)
		y += gap
	}
	if p.Combo > 0 {
		drawText(screen, fmt.Sprintf("Combo x%d", p.Combo), face, m, y, cfg.Palette.Selected)
		y += gap
	}
	switch {
	case snap.Airstrike.Active:
		drawText(screen, fmt.Sprintf("Airstrike inbound (%d)", snap.Airstrike.Pending), face, m, y, cfg.Palette.Missile)
	case snap.Airstrike.Available:
		drawText(screen, "Airstrike ready [Q]", face, m, y, cfg.Palette.Missile)
	}

	if snap.Tutorial == nil {
		drawTextRight(screen, fmt.Sprintf("Score %d", p.Score), face, snap.ViewW-m, m+14, cfg.Palette.Text)
		drawTextRight(screen, fmt.Sprintf("Shop after wave %d", snap.NextShopRound), fonts.Small.Get(), snap.ViewW-m, m+14+gap, cfg.Palette.TextDim)
	}

	if snap.Tutorial != nil {
		if top, ok := lines[snap.Tutorial.Highlight]; ok {
			vector.StrokeRect(screen, float32(m-4), float32(top-3), float32(cfg.HUD.BarWidth+70), float32(gap), 2, cfg.Palette.Highlight, false)
		}
	}
}

func drawText(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	text.Draw(screen, s, face, int(x), int(y), clr)
}

func drawTextRight(screen *ebiten.Image, s string, face font.Face, right, y float64, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, int(right)-b.Dx(), int(y), clr)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y float64, clr color.Color) {
	b := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - b.Dx()) / 2
	text.Draw(screen, s, face, x, int(y), clr)
}

// fade scales a color by alpha in premultiplied space.
func fade(c color.RGBA, alpha float32) color.RGBA {
	a := gamemath.Clamp(float64(alpha), 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
