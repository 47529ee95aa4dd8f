package config

import "image/color"

// PaletteConfig holds the flat colors the desktop host draws with.
type PaletteConfig struct {
	Background color.RGBA
	Ground     color.RGBA
	Grid       color.RGBA

	Player    color.RGBA
	PlayerHit color.RGBA
	Ally      map[AllyType]color.RGBA
	Enemy     map[EnemyType]color.RGBA
	Shot      color.RGBA
	EnemyShot color.RGBA
	Missile   color.RGBA
	Coin      color.RGBA
	Pickup    color.RGBA
	BarBack   color.RGBA
	BarFill   color.RGBA
	BarLow    color.RGBA
	Text      color.RGBA
	TextDim   color.RGBA
	Selected  color.RGBA
	Highlight color.RGBA
	Overlay   color.RGBA
}

// HUDConfig positions the heads-up display.
type HUDConfig struct {
	Margin    float64
	BarWidth  float64
	BarHeight float64
	LineGap   float64
	GridSize  float64
}

var Palette PaletteConfig
var HUD HUDConfig

func init() {
	Palette = PaletteConfig{
		Background: color.RGBA{12, 14, 18, 255},
		Ground:     color.RGBA{28, 34, 30, 255},
		Grid:       color.RGBA{38, 46, 40, 255},
		Player:     color.RGBA{80, 200, 255, 255},
		PlayerHit:  color.RGBA{255, 90, 90, 255},
		Ally: map[AllyType]color.RGBA{
			AllyGunGuy:     color.RGBA{120, 180, 255, 255},
			AllyRifleman:   color.RGBA{90, 220, 140, 255},
			AllyShotgun:    color.RGBA{230, 190, 80, 255},
			AllySniper:     color.RGBA{180, 140, 255, 255},
			AllyMinigunner: color.RGBA{255, 150, 60, 255},
			AllyRPG:        color.RGBA{240, 100, 100, 255},
			AllyFlamer:     color.RGBA{255, 120, 30, 255},
		},
		Enemy: map[EnemyType]color.RGBA{
			EnemyGrunt:   color.RGBA{200, 60, 60, 255},
			EnemyShooter: color.RGBA{220, 110, 60, 255},
			EnemyTank:    color.RGBA{150, 40, 40, 255},
			EnemyStalker: color.RGBA{230, 60, 160, 255},
			EnemyDrone:   color.RGBA{90, 200, 230, 255},
			EnemySniper:  color.RGBA{170, 170, 60, 255},
			EnemyDummy:   color.RGBA{130, 130, 130, 255},
		},
		Shot:      color.RGBA{255, 240, 150, 255},
		EnemyShot: color.RGBA{255, 80, 80, 255},
		Missile:   color.RGBA{255, 200, 60, 255},
		Coin:      color.RGBA{255, 215, 0, 255},
		Pickup:    color.RGBA{120, 255, 160, 255},
		BarBack:   color.RGBA{40, 40, 40, 255},
		BarFill:   color.RGBA{40, 220, 40, 255},
		BarLow:    color.RGBA{230, 60, 40, 255},
		Text:      color.RGBA{235, 235, 235, 255},
		TextDim:   color.RGBA{140, 140, 140, 255},
		Selected:  color.RGBA{255, 200, 60, 255},
		Highlight: color.RGBA{255, 230, 0, 255},
		Overlay:   color.RGBA{0, 0, 0, 170},
	}

	HUD = HUDConfig{
		Margin:    10,
		BarWidth:  160,
		BarHeight: 14,
		LineGap:   20,
		GridSize:  100,
	}
}
