package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Ally        = donburi.NewTag().SetName("Ally")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Projectile  = donburi.NewTag().SetName("Projectile")
	Coin        = donburi.NewTag().SetName("Coin")
	Collectible = donburi.NewTag().SetName("Collectible")
)

// Resolv tags for collision queries
const (
	ResolvPlayer      = "Player"
	ResolvAlly        = "Ally"
	ResolvEnemy       = "Enemy"
	ResolvProjectile  = "Projectile"
	ResolvCoin        = "Coin"
	ResolvCollectible = "Collectible"
)
