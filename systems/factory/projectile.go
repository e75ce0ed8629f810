package factory

import (
	"github.com/automoto/blastarena/archetypes"
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile fires a bullet of the given kind from owner, spawned
// SpawnOffset ahead of the owner's center along its facing.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, kind cfg.BulletKind) *donburi.Entry {
	actor := components.Actor.Get(owner)
	cx, cy := components.Object.Get(owner).Center()
	x, y := actor.Facing.Offset(cx, cy, cfg.Bullet.SpawnOffset)

	return CreateProjectileAt(ecs, owner.Entity(), kind, x, y, actor.Facing)
}

// CreateProjectileAt spawns a bullet centered on (x, y) travelling along dir.
func CreateProjectileAt(ecs *ecs.ECS, owner donburi.Entity, kind cfg.BulletKind, x, y float64, dir gamemath.Direction2) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	newCollider(ecs, p, x, y, cfg.Bullet.Size, cfg.Bullet.Size, tags.ResolvProjectile)

	behavior := components.NewBehavior(kind)
	components.Projectile.SetValue(p, components.ProjectileData{
		Speed:     cfg.Bullet.Types[behavior.Kind()].Speed,
		Direction: dir,
		Owner:     owner,
		Behavior:  behavior,
	})

	return p
}
