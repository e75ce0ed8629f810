package systems

import (
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateExplosions damages actors inside each explosion's radius and despawns
// explosions whose frame tween has finished. An explosion hurts a given
// actor at most once; invulnerable actors are skipped without being
// recorded, so they can still be caught if their window ends in time.
// Explosions start acting on the step after they were spawned.
func UpdateExplosions(e *ecs.ECS) {
	var finished []*donburi.Entry

	step := currentStep(e)
	dt := float32(stepDelta(e).Seconds())

	components.Explosion.Each(e.World, func(entry *donburi.Entry) {
		ex := components.Explosion.Get(entry)
		if ex.Born == step {
			return
		}

		applyExplosion(e, entry, ex)

		frame, done := ex.Frame.Update(dt)
		ex.Current = frame
		if done {
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		factory.Destroy(e, entry)
	}
}

func applyExplosion(e *ecs.ECS, entry *donburi.Entry, ex *components.ExplosionData) {
	obj := components.Object.Get(entry)
	cx, cy := obj.Center()
	shooter := actorIndexOf(e, ex.Owner)

	for _, c := range findContacts(obj.Object, obj.Rect(), tags.ResolvActor) {
		if !c.isActor() {
			continue
		}
		victim := c.entry.Entity()
		if _, hit := ex.Damaged[victim]; hit {
			continue
		}
		if !gamemath.CircleIntersectsRect(cx, cy, ex.Radius, gamemath.NewRect(c.obj.X, c.obj.Y, c.obj.W, c.obj.H)) {
			continue
		}
		actor := components.Actor.Get(c.entry)
		if actor.Health <= 0 || actor.Invulnerable {
			continue
		}
		ApplyDamage(e, c.entry, cfg.Explosion.Damage, shooter)
		ex.Damaged[victim] = struct{}{}
	}
}
