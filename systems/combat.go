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

// UpdateProjectileHits resolves every projectile against the actors, walls
// and power-ups it overlaps. A projectile destroyed by one contact is not
// tested against the rest.
func UpdateProjectileHits(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		contacts := findContacts(obj.Object, obj.Rect(),
			tags.ResolvActor, tags.ResolvSolid, tags.ResolvPowerUp)

		for _, c := range contacts {
			if ResolveProjectileHit(e, entry, c) {
				toRemove = append(toRemove, entry)
				return
			}
		}
	})

	for _, entry := range toRemove {
		factory.Destroy(e, entry)
	}
}

// ResolveProjectileHit applies one projectile contact and reports whether
// the projectile is used up. Walls and power-ups count as contacts with no
// actor present.
func ResolveProjectileHit(e *ecs.ECS, projectile *donburi.Entry, c contact) bool {
	p := components.Projectile.Get(projectile)
	shooter := actorIndexOf(e, p.Owner)

	var victim *donburi.Entry
	if c.isActor() && components.Actor.Get(c.entry).Health > 0 {
		victim = c.entry
	}

	switch b := p.Behavior.(type) {
	case components.NormalShot:
		if victim != nil {
			ApplyDamage(e, victim, 1, shooter)
		} else {
			PlaySFX(e, cfg.SoundWallImpact)
		}
		return true

	case components.IceShot:
		if victim != nil {
			ApplyStun(e, victim)
		} else {
			PlaySFX(e, cfg.SoundWallImpact)
		}
		return true

	case components.ExplosiveShot:
		x, y := components.Object.Get(projectile).Center()
		explosion := factory.CreateExplosion(e, p.Owner, x, y)
		components.Spawn.Publish(e.World, components.SpawnEvent{
			Kind:       components.SpawnExplosion,
			Entity:     explosion.Entity(),
			BulletKind: cfg.BulletExplosive,
			X:          x,
			Y:          y,
		})
		PlaySFX(e, cfg.SoundExplosion)
		return true

	case *components.BouncyShot:
		if victim != nil && !components.Actor.Get(victim).Invulnerable {
			ApplyDamage(e, victim, 1, shooter)
			return true
		}
		shot := components.Object.Get(projectile).Rect()
		collider := gamemath.NewRect(c.obj.X, c.obj.Y, c.obj.W, c.obj.H)
		side := bounceSide(p.Direction, c.side, shot, collider)
		if !approaching(p.Direction, side) {
			return false
		}
		p.Direction = p.Direction.Reflect(side)
		b.BouncesLeft--
		PlaySFX(e, cfg.SoundBounce)
		return b.BouncesLeft <= 0
	}

	return true
}

// bounceSide picks the side a bouncy shot reflects on. A contact on an axis
// the shot does not move along is read on its other axis, otherwise the
// mirror would be a no-op and the shot would slide through the collider.
// An Inside contact flips the vertical axis, so it is placed by comparing
// centers on Y; only a purely horizontal shot is placed on X.
func bounceSide(dir gamemath.Direction2, side gamemath.Side, shot, collider gamemath.Rect) gamemath.Side {
	switch side {
	case gamemath.SideLeft, gamemath.SideRight:
		if dir.X == gamemath.AxisNone {
			if dir.Y == gamemath.AxisPos {
				return gamemath.SideTop
			}
			return gamemath.SideBottom
		}
	case gamemath.SideTop, gamemath.SideBottom:
		if dir.Y == gamemath.AxisNone {
			if dir.X == gamemath.AxisPos {
				return gamemath.SideLeft
			}
			return gamemath.SideRight
		}
	case gamemath.SideInside:
		if dir.Y == gamemath.AxisNone {
			if shot.CX < collider.CX || (shot.CX == collider.CX && dir.X == gamemath.AxisPos) {
				return gamemath.SideLeft
			}
			return gamemath.SideRight
		}
		if shot.CY < collider.CY || (shot.CY == collider.CY && dir.Y == gamemath.AxisPos) {
			return gamemath.SideTop
		}
		return gamemath.SideBottom
	}
	return side
}

// approaching reports whether a projectile moving along dir is still heading
// into the collider it touches on side. A shot that already reflected off a
// collider but has not cleared it yet must not bounce back into it.
func approaching(dir gamemath.Direction2, side gamemath.Side) bool {
	switch side {
	case gamemath.SideLeft:
		return dir.X == gamemath.AxisPos
	case gamemath.SideRight:
		return dir.X == gamemath.AxisNeg
	case gamemath.SideTop:
		return dir.Y == gamemath.AxisPos
	case gamemath.SideBottom:
		return dir.Y == gamemath.AxisNeg
	default:
		return true
	}
}
