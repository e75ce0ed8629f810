package factory

import (
	"math/rand"

	"github.com/automoto/blastarena/archetypes"
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePowerUp places a pickup holding kind centered on (cx, cy).
func CreatePowerUp(ecs *ecs.ECS, kind cfg.BulletKind, cx, cy float64) *donburi.Entry {
	p := archetypes.PowerUp.Spawn(ecs)
	newCollider(ecs, p, cx, cy, cfg.PowerUp.Size, cfg.PowerUp.Size, tags.ResolvPowerUp)
	components.PowerUp.SetValue(p, components.PowerUpData{Kind: kind})
	return p
}

// CreatePowerUpSpawner creates the respawn driver. The first power-up is
// placed on the first update.
func CreatePowerUpSpawner(ecs *ecs.ECS, seed int64) *donburi.Entry {
	s := archetypes.PowerUpSpawner.Spawn(ecs)
	components.PowerUpSpawner.SetValue(s, components.PowerUpSpawnerData{
		RNG: rand.New(rand.NewSource(seed)),
	})
	return s
}
