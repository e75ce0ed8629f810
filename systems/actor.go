package systems

import (
	"time"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The functions in this file are the only writers of an actor's health,
// invulnerable, stunned, power-up and fire-gate state.

// HitResult reports what a combat effect did to an actor.
type HitResult int

const (
	HitIgnored HitResult = iota
	HitDamaged
	HitStunned
	HitEliminated
)

// ApplyDamage removes amount health from a damageable actor. Non-lethal damage
// clears stun and starts an invulnerability window; lethal damage eliminates
// the actor instead. byIndex is the shooter's actor index or -1.
func ApplyDamage(e *ecs.ECS, entry *donburi.Entry, amount, byIndex int) HitResult {
	actor := components.Actor.Get(entry)
	if actor.Health <= 0 || actor.Invulnerable {
		return HitIgnored
	}

	actor.Stunned = false
	cancelTimer(e, actor, cfg.TimerStun)

	if match := matchData(e); match != nil && byIndex != actor.Index {
		match.AddHit(byIndex)
	}

	if actor.Health-amount <= 0 {
		actor.Health = 0
		eliminate(e, entry, actor, byIndex)
		return HitEliminated
	}

	actor.Health -= amount
	actor.Invulnerable = true
	armTimer(e, entry, cfg.TimerInvulnerable, cfg.Cooldown.Invulnerable)
	armTimer(e, entry, cfg.TimerBlink, cfg.Cooldown.BlinkInterval)

	components.UIRefresh.Publish(e.World, components.UIRefreshEvent{ActorIndex: actor.Index})
	PlaySFX(e, cfg.SoundHit)
	return HitDamaged
}

// ApplyStun freezes an actor that is neither invulnerable nor already
// stunned. A stunned actor is not re-stunned and its timer is left alone.
func ApplyStun(e *ecs.ECS, entry *donburi.Entry) HitResult {
	actor := components.Actor.Get(entry)
	if actor.Health <= 0 || actor.Invulnerable || actor.Stunned {
		return HitIgnored
	}

	actor.Stunned = true
	armTimer(e, entry, cfg.TimerStun, cfg.Cooldown.Stun)

	components.UIRefresh.Publish(e.World, components.UIRefreshEvent{ActorIndex: actor.Index})
	PlaySFX(e, cfg.SoundFreeze)
	return HitStunned
}

// GrantPowerUp gives the actor a special shot of the given kind.
func GrantPowerUp(e *ecs.ECS, entry *donburi.Entry, kind cfg.BulletKind) {
	actor := components.Actor.Get(entry)
	actor.PowerUp = kind
	components.UIRefresh.Publish(e.World, components.UIRefreshEvent{ActorIndex: actor.Index})
	PlaySFX(e, cfg.SoundPickup)
}

// ConsumePowerUp takes the held special shot, if any.
func ConsumePowerUp(e *ecs.ECS, entry *donburi.Entry) (cfg.BulletKind, bool) {
	actor := components.Actor.Get(entry)
	if !actor.HasPowerUp() {
		return cfg.BulletNone, false
	}
	kind := actor.PowerUp
	actor.PowerUp = cfg.BulletNone
	components.UIRefresh.Publish(e.World, components.UIRefreshEvent{ActorIndex: actor.Index})
	return kind, true
}

// BeginFireCooldown closes the normal-shot gate until the fire-rate timer expires.
func BeginFireCooldown(e *ecs.ECS, entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	actor.CanFire = false
	armTimer(e, entry, cfg.TimerFireRate, cfg.Cooldown.FireRate)
}

// ClearInvulnerable ends the invulnerability window.
func ClearInvulnerable(e *ecs.ECS, entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	actor.Invulnerable = false
	cancelTimer(e, actor, cfg.TimerBlink)
	if entry.HasComponent(components.Blink) {
		components.Blink.Get(entry).Alpha = 1
	}
	components.UIRefresh.Publish(e.World, components.UIRefreshEvent{ActorIndex: actor.Index})
}

// ClearStunned ends a stun.
func ClearStunned(e *ecs.ECS, entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	actor.Stunned = false
	components.UIRefresh.Publish(e.World, components.UIRefreshEvent{ActorIndex: actor.Index})
}

// RestoreFire reopens the normal-shot gate.
func RestoreFire(e *ecs.ECS, entry *donburi.Entry) {
	components.Actor.Get(entry).CanFire = true
}

// ToggleBlink flips the render alpha while the actor stays invulnerable and
// re-arms itself; once invulnerability is gone the actor is drawn solid.
func ToggleBlink(e *ecs.ECS, entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	if !entry.HasComponent(components.Blink) {
		return
	}
	blink := components.Blink.Get(entry)
	if !actor.Invulnerable {
		blink.Alpha = 1
		return
	}
	if blink.Alpha < 1 {
		blink.Alpha = 1
	} else {
		blink.Alpha = cfg.Cooldown.BlinkAlpha
	}
	armTimer(e, entry, cfg.TimerBlink, cfg.Cooldown.BlinkInterval)
}

// expireTimer applies the single effect of an expired timer.
func expireTimer(e *ecs.ECS, entry *donburi.Entry, kind cfg.TimerKind) {
	switch kind {
	case cfg.TimerInvulnerable:
		ClearInvulnerable(e, entry)
	case cfg.TimerStun:
		ClearStunned(e, entry)
	case cfg.TimerFireRate:
		RestoreFire(e, entry)
	case cfg.TimerBlink:
		ToggleBlink(e, entry)
	}
}

// armTimer starts a timer of kind for the actor, cancelling the pending one
// of the same kind so only the newest window governs the flag.
func armTimer(e *ecs.ECS, entry *donburi.Entry, kind cfg.TimerKind, d time.Duration) {
	actor := components.Actor.Get(entry)
	cancelTimer(e, actor, kind)
	t := factory.CreateTimer(e, kind, entry.Entity(), d)
	actor.Timers[kind] = t.Entity()
}

func cancelTimer(e *ecs.ECS, actor *components.ActorData, kind cfg.TimerKind) {
	if old := actor.Timers[kind]; e.World.Valid(old) {
		e.World.Remove(old)
	}
	actor.Timers[kind] = donburi.Null
}

// eliminate takes the actor out of combat immediately: its collider leaves
// the space and its timers are dropped. UpdateEliminations replaces the
// entity with a defeated marker later in the step.
func eliminate(e *ecs.ECS, entry *donburi.Entry, actor *components.ActorData, byIndex int) {
	for kind := cfg.TimerKind(0); kind < cfg.TimerKindCount; kind++ {
		cancelTimer(e, actor, kind)
	}
	actor.Invulnerable = false
	actor.Stunned = false

	x, y := 0.0, 0.0
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		x, y = obj.Center()
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}

	if match := matchData(e); match != nil && byIndex != actor.Index {
		match.AddElimination(byIndex)
	}

	components.Elimination.Publish(e.World, components.EliminationEvent{
		Actor:      entry.Entity(),
		ActorIndex: actor.Index,
		ByIndex:    byIndex,
		X:          x,
		Y:          y,
	})
	components.UIRefresh.Publish(e.World, components.UIRefreshEvent{ActorIndex: actor.Index})
	PlaySFX(e, cfg.SoundElimination)
}

// actorIndexOf returns the actor index behind an entity, or -1 when the
// entity is gone or is not an actor.
func actorIndexOf(e *ecs.ECS, entity donburi.Entity) int {
	if !e.World.Valid(entity) {
		return -1
	}
	entry := e.World.Entry(entity)
	if !entry.HasComponent(components.Actor) {
		return -1
	}
	return components.Actor.Get(entry).Index
}
