package factory

import (
	"time"

	"github.com/automoto/blastarena/archetypes"
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTimer adds a cooldown timer entry for target.
func CreateTimer(ecs *ecs.ECS, kind cfg.TimerKind, target donburi.Entity, d time.Duration) *donburi.Entry {
	t := archetypes.Timer.Spawn(ecs)
	components.CooldownTimer.SetValue(t, components.CooldownTimerData{
		Kind:      kind,
		Target:    target,
		Remaining: d,
		Duration:  d,
	})
	return t
}
