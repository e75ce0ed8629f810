package systems

import (
	"testing"
	"time"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/leveldata"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// newTestECS returns an empty arena with a clock and match but no walls.
func newTestECS(t interface{ Helper() }) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, &leveldata.ArenaData{
		Name:   "test",
		Width:  cfg.Arena.Width(),
		Height: cfg.Arena.Height(),
	})
	SetDelta(e, cfg.Sim.StepDuration())
	return e
}

// signals records everything published on a world.
type signals struct {
	refresh      []int
	eliminations []components.EliminationEvent
	sounds       []cfg.SoundID
	spawns       []components.SpawnEvent
}

func recordSignals(e *ecs.ECS) *signals {
	s := &signals{}
	components.UIRefresh.Subscribe(e.World, func(_ donburi.World, ev components.UIRefreshEvent) {
		s.refresh = append(s.refresh, ev.ActorIndex)
	})
	components.Elimination.Subscribe(e.World, func(_ donburi.World, ev components.EliminationEvent) {
		s.eliminations = append(s.eliminations, ev)
	})
	components.AudioCue.Subscribe(e.World, func(_ donburi.World, ev components.AudioCueEvent) {
		s.sounds = append(s.sounds, ev.Sound)
	})
	components.Spawn.Subscribe(e.World, func(_ donburi.World, ev components.SpawnEvent) {
		s.spawns = append(s.spawns, ev)
	})
	return s
}

func (s *signals) flush(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

func (s *signals) played(sound cfg.SoundID) int {
	n := 0
	for _, got := range s.sounds {
		if got == sound {
			n++
		}
	}
	return n
}

// advance runs the timer registry as if d had elapsed in one step.
func advance(e *ecs.ECS, d time.Duration) {
	SetDelta(e, d)
	UpdateCooldowns(e)
	SetDelta(e, cfg.Sim.StepDuration())
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func valid(e *ecs.ECS, entry *donburi.Entry) bool {
	return e.World.Valid(entry.Entity())
}

func spaceOf(t *testing.T, e *ecs.ECS) *resolv.Space {
	t.Helper()
	entry, ok := components.Space.First(e.World)
	require.True(t, ok)
	return components.Space.Get(entry)
}
