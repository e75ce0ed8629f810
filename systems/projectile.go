package systems

import (
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances every projectile by its speed along each set
// axis of its direction. Diagonal shots therefore travel faster than
// straight ones.
func UpdateProjectiles(e *ecs.ECS) {
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		obj := components.Object.Get(entry)

		obj.X += gamemath.StepAxis(p.Direction.X, p.Speed)
		obj.Y += gamemath.StepAxis(p.Direction.Y, p.Speed)
		obj.Update()
	})
}

// UpdateProjectileBounds removes projectiles that left the arena.
func UpdateProjectileBounds(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	buffer := cfg.Bullet.CullBuffer
	bounds := ArenaBounds(e)
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		cx, cy := components.Object.Get(entry).Center()
		if cx < bounds.Left-buffer || cx > bounds.Right+buffer ||
			cy < bounds.Top-buffer || cy > bounds.Bottom+buffer {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		factory.Destroy(e, entry)
	}
}
