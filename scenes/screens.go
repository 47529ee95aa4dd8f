package scenes

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/fonts"
	"github.com/automoto/squadfall/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const menuTop = 140

func drawTitle(screen *ebiten.Image) {
	drawCentered(screen, "SQUADFALL", fonts.Title.Get(), menuTop, cfg.Palette.Text)
	drawCentered(screen, "Enter: start    T: tutorial", fonts.Regular.Get(), menuTop+80, cfg.Palette.TextDim)
}

func drawChampionSelect(screen *ebiten.Image, cursor int) {
	drawCentered(screen, "Choose your champion", fonts.Bold.Get(), menuTop, cfg.Palette.Text)

	face := fonts.Regular.Get()
	for i, t := range cfg.AllAllyTypes {
		clr := cfg.Palette.TextDim
		if i == cursor {
			clr = cfg.Palette.Selected
		}
		y := float64(menuTop + 50 + i*28)
		vector.FillRect(screen, float32(screen.Bounds().Dx()/2-140), float32(y-12), 12, 12, cfg.Palette.Ally[t], false)
		drawCentered(screen, t.String(), face, y, clr)
	}
	drawCentered(screen, "Up/Down: choose   Enter: confirm   M: menu", fonts.Small.Get(), float64(screen.Bounds().Dy()-20), cfg.Palette.TextDim)
}

func drawShop(screen *ebiten.Image, snap *session.Snapshot, cursor int) {
	drawCentered(screen, fmt.Sprintf("Shop  -  %d coins", snap.Player.Coins), fonts.Bold.Get(), 60, cfg.Palette.Coin)

	face := fonts.Regular.Get()
	small := fonts.Small.Get()
	left := float64(screen.Bounds().Dx())/2 - 260
	for i, e := range snap.Shop {
		y := float64(110 + i*40)
		clr := cfg.Palette.Text
		switch {
		case i == cursor:
			clr = cfg.Palette.Selected
		case e.Maxed || !e.Affordable:
			clr = cfg.Palette.TextDim
		}
		price := fmt.Sprintf("%d", e.Cost)
		if e.Maxed {
			price = "MAX"
		}
		drawText(screen, fmt.Sprintf("%s  [%d/%d]", e.Name, e.Level, e.MaxLevel), face, left, y, clr)
		drawTextRight(screen, price, face, left+520, y, clr)
		drawText(screen, e.Description, small, left, y+14, cfg.Palette.TextDim)
	}

	unlocked := make([]string, len(snap.Unlocked))
	for i, t := range snap.Unlocked {
		unlocked[i] = t.String()
	}
	bottom := float64(screen.Bounds().Dy())
	drawCentered(screen, "Squad pool: "+strings.Join(unlocked, ", "), small, bottom-60, cfg.Palette.TextDim)
	drawCentered(screen, fmt.Sprintf("Logs %d/%d   Kills %d", len(snap.Logs), len(cfg.Logs), snap.Player.Kills), small, bottom-42, cfg.Palette.TextDim)
	drawCentered(screen, "Enter: buy   Space: start run   M: menu", small, bottom-20, cfg.Palette.TextDim)
}

// drawOverlay draws whatever sits on top of the running world.
func drawOverlay(screen *ebiten.Image, snap *session.Snapshot) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	mid := float64(h) / 2

	if snap.WaveTitle != "" && snap.WaveTitleAlpha > 0 {
		drawCentered(screen, snap.WaveTitle, fonts.Title.Get(), mid-80, fade(cfg.Palette.Text, snap.WaveTitleAlpha))
	}

	switch snap.Status {
	case cfg.StatusPaused:
		vector.FillRect(screen, 0, 0, w, h, cfg.Palette.Overlay, false)
		drawCentered(screen, "PAUSED", fonts.Title.Get(), mid, cfg.Palette.Text)
		drawCentered(screen, "Esc: resume   M: menu", fonts.Regular.Get(), mid+40, cfg.Palette.TextDim)

	case cfg.StatusGameOver:
		vector.FillRect(screen, 0, 0, w, h, cfg.Palette.Overlay, false)
		drawCentered(screen, "SQUAD LOST", fonts.Title.Get(), mid-40, cfg.Palette.PlayerHit)
		drawCentered(screen, fmt.Sprintf("Reached wave %d   Kills %d   Best combo %d",
			snap.Round, snap.Player.RunKills, snap.Player.HighestCombo), fonts.Regular.Get(), mid, cfg.Palette.Text)
		drawCentered(screen, "Enter: retry   Space: shop   M: menu", fonts.Regular.Get(), mid+40, cfg.Palette.TextDim)

	case cfg.StatusTutorialActive:
		if t := snap.Tutorial; t != nil {
			drawTutorial(screen, t)
		}
	}
}

func drawTutorial(screen *ebiten.Image, t *session.TutorialView) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	const panel = 110
	vector.FillRect(screen, 0, h-panel, w, panel, cfg.Palette.Overlay, false)

	face := fonts.Regular.Get()
	y := float64(h-panel) + 26
	for _, line := range wrap(t.Message, 90) {
		drawCentered(screen, line, face, y, cfg.Palette.Text)
		y += 20
	}
	drawCentered(screen, fmt.Sprintf("%d/%d   Enter: next   M: leave", t.Step+1, t.Steps),
		fonts.Small.Get(), float64(h)-10, cfg.Palette.TextDim)
}

// wrap breaks s into lines of at most width runes on word boundaries.
func wrap(s string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
