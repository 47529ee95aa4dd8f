package session

import (
	"github.com/automoto/squadfall/components"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/automoto/squadfall/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Body is an entity's id and world-space box.
type Body struct {
	ID  int
	Box gamemath.Box
}

type PlayerView struct {
	Body
	Health    float64
	MaxHealth float64
	Champion  cfg.AllyType
	Facing    math.Vec2
	HitFlash  bool

	Coins        int
	Combo        int
	HighestCombo int
	Kills        int
	RunKills     int
	RunCoins     int
	MaxSquad     int
	Score        int

	Ammo      int
	ClipSize  int
	Reloading bool
}

type AllyView struct {
	Body
	Type   cfg.AllyType
	Facing math.Vec2
}

type EnemyView struct {
	Body
	Type      cfg.EnemyType
	Health    float64
	MaxHealth float64
}

type ProjectileView struct {
	Body
	PlayerOrigin bool
	Airstrike    bool
}

type CoinView struct {
	Body
	Value int
}

type CollectibleView struct {
	Body
	Type cfg.AllyType
}

// ShakeView is the running camera shake. Ticks is zero when none runs.
type ShakeView struct {
	Intensity float64
	Ticks     int
}

type AirstrikeView struct {
	Available bool
	Active    bool
	Pending   int
}

// ShopEntry is one offered upgrade. Cost is zero once the upgrade is maxed.
type ShopEntry struct {
	ID          cfg.UpgradeID
	Name        string
	Description string
	Level       int
	MaxLevel    int
	Cost        int
	Maxed       bool
	Affordable  bool
}

type TutorialView struct {
	Step      int
	Steps     int
	Message   string
	Highlight cfg.HighlightTarget
}

// Snapshot is a copy of everything a host needs to draw one frame. It shares
// no memory with the simulation.
type Snapshot struct {
	Status cfg.Status
	Tick   int

	Round         int
	Kills         int
	Quota         int
	NextRoundIn   float64 // seconds; zero outside the between-wave countdown
	NextAllyIn    float64 // seconds
	NextShopRound int
	GameOverIn    int // ticks

	Camera math.Vec2
	Shake  ShakeView
	ViewW  float64
	ViewH  float64

	WaveTitle      string
	WaveTitleAlpha float32

	ComboTimer int
	Airstrike  AirstrikeView

	Player       PlayerView
	Allies       []AllyView
	Enemies      []EnemyView
	Projectiles  []ProjectileView
	Coins        []CoinView
	Collectibles []CollectibleView

	Shop     []ShopEntry
	Unlocked []cfg.AllyType
	Logs     []cfg.LogID

	Tutorial *TutorialView
}

// Snapshot captures the world the player currently sees.
func (s *Session) Snapshot() Snapshot {
	w := s.active()
	data := sessionData(w)
	round := roundData(w)

	snap := Snapshot{
		Status:        s.Status(),
		Tick:          data.Tick,
		Round:         round.Round,
		Kills:         round.Kills,
		Quota:         round.Quota,
		NextRoundIn:   round.NextRoundTimer,
		NextAllyIn:    max(0, round.AllyTimer),
		NextShopRound: NextShopRound(round.Round),
		GameOverIn:    round.GameOverTimer,
		ComboTimer:    data.ComboTimer,
		Unlocked:      append([]cfg.AllyType(nil), data.Unlocked...),
	}

	if e, ok := components.Camera.First(w.World); ok {
		camera := components.Camera.Get(e)
		snap.Camera = camera.Position
		snap.ViewW = camera.ViewW
		snap.ViewH = camera.ViewH
		if e.HasComponent(components.ScreenShake) {
			shake := components.ScreenShake.Get(e)
			snap.Shake = ShakeView{Intensity: shake.Intensity, Ticks: shake.Timer}
		}
	}
	if e, ok := components.WaveTitle.First(w.World); ok {
		title := components.WaveTitle.Get(e)
		if title.Ticks > 0 {
			snap.WaveTitle = title.Text
			snap.WaveTitleAlpha = title.Alpha
		}
	}

	pe := playerEntry(w)
	player := components.Player.Get(pe)
	health := components.Health.Get(pe)
	snap.Player = PlayerView{
		Body:         bodyOf(pe),
		Health:       health.Current,
		MaxHealth:    health.Max,
		Champion:     player.Champion,
		Facing:       player.Facing,
		HitFlash:     player.HitFlash > 0,
		Coins:        player.Coins,
		Combo:        player.Combo,
		HighestCombo: player.HighestCombo,
		Kills:        player.Kills,
		RunKills:     player.RunKills,
		RunCoins:     player.RunCoins,
		MaxSquad:     player.MaxSquad,
		Score:        systems.Score(player),
		Ammo:         player.Ammo,
		ClipSize:     player.Weapon.ClipSize,
		Reloading:    player.ReloadTimer > 0,
	}

	strike := data.Airstrike
	if s.tutorial != nil {
		strike = player.Airstrike
	}
	snap.Airstrike = AirstrikeView{
		Available: strike.Available,
		Active:    strike.Active,
		Pending:   strike.Pending,
	}

	for _, e := range systems.Squad(w, player) {
		ally := components.Ally.Get(e)
		snap.Allies = append(snap.Allies, AllyView{Body: bodyOf(e), Type: ally.Type, Facing: ally.Facing})
	}
	snapEntities(w, &snap)

	if snap.Status == cfg.StatusShop {
		snap.Shop = shopEntries(data, player.Coins)
	}
	for _, def := range cfg.Logs {
		if data.Logs[def.ID] {
			snap.Logs = append(snap.Logs, def.ID)
		}
	}

	if tutorial, ok := systems.GetTutorial(w); ok {
		snap.Tutorial = &TutorialView{
			Step:      tutorial.Step,
			Steps:     len(cfg.Tutorial.Messages),
			Message:   tutorial.Message,
			Highlight: tutorial.Highlight,
		}
	}
	return snap
}

func snapEntities(w *ecs.ECS, snap *Snapshot) {
	for _, e := range systems.Enemies(w) {
		health := components.Health.Get(e)
		snap.Enemies = append(snap.Enemies, EnemyView{
			Body:      bodyOf(e),
			Type:      components.Enemy.Get(e).Type,
			Health:    health.Current,
			MaxHealth: health.Max,
		})
	}
	for _, e := range systems.Projectiles(w) {
		p := components.Projectile.Get(e)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Body:         bodyOf(e),
			PlayerOrigin: p.PlayerOrigin,
			Airstrike:    p.Airstrike,
		})
	}
	for _, e := range systems.Coins(w) {
		snap.Coins = append(snap.Coins, CoinView{Body: bodyOf(e), Value: components.Coin.Get(e).Value})
	}
	for _, e := range systems.Collectibles(w) {
		snap.Collectibles = append(snap.Collectibles, CollectibleView{Body: bodyOf(e), Type: components.Collectible.Get(e).Type})
	}
}

func bodyOf(e *donburi.Entry) Body {
	obj := components.Object.Get(e)
	return Body{ID: obj.ID, Box: obj.Box}
}
