package factory

import (
	"github.com/automoto/blastarena/archetypes"
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExplosion spawns an area effect centered on (cx, cy). Its collider
// is the bounding square of the damage circle and only serves as a
// broadphase for actor lookups.
func CreateExplosion(ecs *ecs.ECS, owner donburi.Entity, cx, cy float64) *donburi.Entry {
	e := archetypes.Explosion.Spawn(ecs)

	size := cfg.Explosion.Radius * 2
	newCollider(ecs, e, cx, cy, size, size, tags.ResolvExplosion)

	lifetime := float32(cfg.Explosion.FrameDuration.Seconds()) * float32(cfg.Explosion.Frames)
	components.Explosion.SetValue(e, components.ExplosionData{
		Radius:  cfg.Explosion.Radius,
		Frame:   gween.New(0, float32(cfg.Explosion.Frames), lifetime, ease.Linear),
		Owner:   owner,
		Born:    currentStep(ecs),
		Damaged: make(map[donburi.Entity]struct{}),
	})

	return e
}

func currentStep(ecs *ecs.ECS) uint64 {
	if c, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(c).Step
	}
	return 0
}
