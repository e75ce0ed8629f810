package factory

import (
	"log"
	"math"

	"github.com/automoto/blastarena/archetypes"
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds the collision space, static walls and the world
// singletons (bounds, clock, match) for an arena. Actors are spawned
// separately.
func CreateArena(ecs *ecs.ECS, arena *leveldata.ArenaData) *donburi.Entry {
	cell := cfg.Arena.CellSize
	w := int(math.Ceil(arena.Width))
	h := int(math.Ceil(arena.Height))
	space := CreateSpace(ecs, w+cell, h+cell, cell, cell)

	for _, wall := range arena.Walls {
		CreateWall(ecs, wall.X, wall.Y, wall.W, wall.H)
	}

	CreateBounds(ecs, arena)
	CreateClock(ecs)
	CreateMatch(ecs)

	return space
}

// CreateBounds records the arena size for this world. A configured power-up
// fallback outside the arena is replaced by the arena center.
func CreateBounds(ecs *ecs.ECS, arena *leveldata.ArenaData) *donburi.Entry {
	bounds := components.BoundsData{
		Right:     arena.Width,
		Bottom:    arena.Height,
		FallbackX: cfg.PowerUp.FallbackX,
		FallbackY: cfg.PowerUp.FallbackY,
	}
	if bounds.FallbackX < 0 || bounds.FallbackY < 0 ||
		bounds.FallbackX > arena.Width || bounds.FallbackY > arena.Height {
		log.Printf("Warning: power-up fallback (%.0f, %.0f) is outside arena %q, using its center",
			bounds.FallbackX, bounds.FallbackY, arena.Name)
		bounds.FallbackX, bounds.FallbackY = arena.Width/2, arena.Height/2
	}

	b := archetypes.Bounds.Spawn(ecs)
	components.Bounds.SetValue(b, bounds)
	return b
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	c := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(c, components.ClockData{})
	return c
}

func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	m := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(m, components.MatchData{WinnerIndex: -1})
	return m
}
