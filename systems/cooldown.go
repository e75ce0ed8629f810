package systems

import (
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type expiredTimer struct {
	timer  donburi.Entity
	kind   cfg.TimerKind
	target donburi.Entity
}

// UpdateCooldowns ticks every timer by the step delta. An expired timer
// applies its one effect to its actor and is removed; a timer whose actor
// no longer exists is dropped silently.
func UpdateCooldowns(e *ecs.ECS) {
	dt := stepDelta(e)

	var expired []expiredTimer
	components.CooldownTimer.Each(e.World, func(entry *donburi.Entry) {
		t := components.CooldownTimer.Get(entry)
		t.Remaining -= dt
		if t.Remaining <= 0 {
			expired = append(expired, expiredTimer{timer: entry.Entity(), kind: t.Kind, target: t.Target})
		}
	})

	for _, x := range expired {
		// An earlier expiry in this batch may have cancelled this timer.
		if !e.World.Valid(x.timer) {
			continue
		}
		e.World.Remove(x.timer)

		if !e.World.Valid(x.target) {
			continue
		}
		target := e.World.Entry(x.target)
		if !target.HasComponent(components.Actor) {
			continue
		}
		actor := components.Actor.Get(target)
		if actor.Timers[x.kind] == x.timer {
			actor.Timers[x.kind] = donburi.Null
		}
		expireTimer(e, target, x.kind)
	}
}

// ActiveTimers counts pending timers of kind for an actor.
func ActiveTimers(e *ecs.ECS, actor donburi.Entity, kind cfg.TimerKind) int {
	n := 0
	components.CooldownTimer.Each(e.World, func(entry *donburi.Entry) {
		t := components.CooldownTimer.Get(entry)
		if t.Target == actor && t.Kind == kind {
			n++
		}
	})
	return n
}
