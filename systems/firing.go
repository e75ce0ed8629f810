package systems

import (
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFiring turns fire edges into projectiles. The normal shot is gated by
// the fire-rate timer; the special shot only needs a held power-up. Stunned
// actors cannot fire at all. Edges are consumed either way.
func UpdateFiring(e *ecs.ECS) {
	var shooters []*donburi.Entry
	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		intent := components.Intent.Get(entry)
		if intent.Fire || intent.SpecialFire {
			shooters = append(shooters, entry)
		}
	})

	for _, entry := range shooters {
		intent := components.Intent.Get(entry)
		actor := components.Actor.Get(entry)

		if actor.Health > 0 && !actor.Stunned {
			if intent.Fire && actor.CanFire {
				fire(e, entry, cfg.BulletNormal)
				BeginFireCooldown(e, entry)
				PlaySFX(e, cfg.SoundShot)
			}
			if intent.SpecialFire {
				if kind, ok := ConsumePowerUp(e, entry); ok {
					fire(e, entry, kind)
					PlaySFX(e, cfg.SoundSpecialShot)
				}
			}
		}

		intent.Fire = false
		intent.SpecialFire = false
	}
}

func fire(e *ecs.ECS, owner *donburi.Entry, kind cfg.BulletKind) {
	p := factory.CreateProjectile(e, owner, kind)
	x, y := components.Object.Get(p).Center()
	components.Spawn.Publish(e.World, components.SpawnEvent{
		Kind:       components.SpawnProjectile,
		Entity:     p.Entity(),
		BulletKind: kind,
		X:          x,
		Y:          y,
	})
}
