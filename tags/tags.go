package tags

import "github.com/yohamta/donburi"

var (
	Actor      = donburi.NewTag().SetName("Actor")
	Wall       = donburi.NewTag().SetName("Wall")
	Projectile = donburi.NewTag().SetName("Projectile")
	Explosion  = donburi.NewTag().SetName("Explosion")
	PowerUp    = donburi.NewTag().SetName("PowerUp")
	Defeated   = donburi.NewTag().SetName("Defeated")
	Timer      = donburi.NewTag().SetName("Timer")
)

// Resolv tags for collision queries
const (
	ResolvSolid      = "solid"
	ResolvActor      = "Actor"
	ResolvProjectile = "Projectile"
	ResolvPowerUp    = "PowerUp"
	ResolvExplosion  = "Explosion"
	ResolvProbe      = "probe"
)
