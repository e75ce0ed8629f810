package archetypes

import (
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
		components.Intent,
		components.Object,
		components.Blink,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
	)
	Defeated = newArchetype(
		tags.Defeated,
		components.Defeated,
	)
	Timer = newArchetype(
		tags.Timer,
		components.CooldownTimer,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Match = newArchetype(
		components.Match,
	)
	Bounds = newArchetype(
		components.Bounds,
	)
	PowerUpSpawner = newArchetype(
		components.PowerUpSpawner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
