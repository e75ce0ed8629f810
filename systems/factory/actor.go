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

// CreateActor spawns a player centered on (cx, cy) with full health.
func CreateActor(ecs *ecs.ECS, index int, cx, cy float64) *donburi.Entry {
	actor := archetypes.Actor.Spawn(ecs)

	newCollider(ecs, actor, cx, cy, cfg.Player.Size, cfg.Player.Size, tags.ResolvActor)

	components.Actor.SetValue(actor, components.ActorData{
		Index:   index,
		Health:  cfg.Player.Health,
		CanFire: true,
		PowerUp: cfg.BulletNone,
		Facing:  gamemath.DirUpRight,
		Speed:   cfg.Player.Speed,
	})
	components.Blink.SetValue(actor, components.BlinkData{Alpha: 1})

	if m, ok := components.Match.First(ecs.World); ok {
		components.Match.Get(m).GetScore(index).Joined = true
	}

	return actor
}

// CreateBotActor spawns an actor driven by the bot system.
func CreateBotActor(ecs *ecs.ECS, index int, cx, cy float64, difficulty cfg.BotDifficulty) *donburi.Entry {
	actor := CreateActor(ecs, index, cx, cy)
	actor.AddComponent(components.Bot)
	components.Bot.SetValue(actor, components.BotData{
		Difficulty:  difficulty,
		TargetIndex: -1,
	})
	return actor
}

// CreateDefeated leaves a marker where an actor was eliminated.
func CreateDefeated(ecs *ecs.ECS, index int, x, y float64, step uint64) *donburi.Entry {
	marker := archetypes.Defeated.Spawn(ecs)
	components.Defeated.SetValue(marker, components.DefeatedData{
		Index: index,
		X:     x,
		Y:     y,
		Step:  step,
	})
	return marker
}
