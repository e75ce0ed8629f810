package systems

import (
	"log"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEliminations replaces eliminated actors with defeated markers and
// decides the match once at most one actor is left standing.
func UpdateEliminations(e *ecs.ECS) {
	var eliminated []*donburi.Entry
	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		if components.Actor.Get(entry).Health <= 0 {
			eliminated = append(eliminated, entry)
		}
	})

	step := currentStep(e)
	match := matchData(e)

	for _, entry := range eliminated {
		actor := components.Actor.Get(entry)
		x, y := components.Object.Get(entry).Center()

		marker := factory.CreateDefeated(e, actor.Index, x, y, step)
		components.Spawn.Publish(e.World, components.SpawnEvent{
			Kind:   components.SpawnDefeated,
			Entity: marker.Entity(),
			X:      x,
			Y:      y,
		})

		if match != nil {
			score := match.GetScore(actor.Index)
			score.Eliminated = true
			score.EliminatedAt = step
		}
		log.Printf("Actor %d eliminated at step %d", actor.Index, step)

		factory.Destroy(e, entry)
	}

	if match == nil || match.Finished || len(eliminated) == 0 || match.Participants() < 2 {
		return
	}

	survivors := match.Survivors()
	if len(survivors) > 1 {
		return
	}

	match.Finished = true
	match.EndStep = step
	if len(survivors) == 1 {
		match.WinnerIndex = survivors[0]
		log.Printf("Match finished at step %d, actor %d wins", step, match.WinnerIndex)
	} else {
		match.WinnerIndex = -2
		log.Printf("Match finished at step %d with no survivors", step)
	}
}

// IsMatchFinished returns true once the match has a result
func IsMatchFinished(e *ecs.ECS) bool {
	match := matchData(e)
	return match != nil && match.Finished
}

// GetWinner returns the winning actor index, -1 while undecided and -2 when
// nobody survived.
func GetWinner(e *ecs.ECS) int {
	match := matchData(e)
	if match == nil {
		return -1
	}
	return match.WinnerIndex
}

func matchData(e *ecs.ECS) *components.MatchData {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(matchEntry)
}

// ArenaBounds returns the world's arena bounds, or the configured defaults
// for a world built without an arena.
func ArenaBounds(e *ecs.ECS) components.BoundsData {
	if entry, ok := components.Bounds.First(e.World); ok {
		return *components.Bounds.Get(entry)
	}
	return components.BoundsData{
		Left:      cfg.Arena.Left,
		Top:       cfg.Arena.Top,
		Right:     cfg.Arena.Right,
		Bottom:    cfg.Arena.Bottom,
		FallbackX: cfg.PowerUp.FallbackX,
		FallbackY: cfg.PowerUp.FallbackY,
	}
}

func clockData(e *ecs.ECS) *components.ClockData {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(clockEntry)
}

func currentStep(e *ecs.ECS) uint64 {
	if clock := clockData(e); clock != nil {
		return clock.Step
	}
	return 0
}
