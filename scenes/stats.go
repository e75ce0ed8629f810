package scenes

import (
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/yohamta/donburi"
)

// Stats counts the outbound signals of a match. It stands in for the UI,
// audio and spawn plumbing that would normally consume them.
type Stats struct {
	UIRefreshes  map[int]int
	Eliminations []components.EliminationEvent
	AudioCues    map[cfg.SoundID]int
	Spawns       map[components.SpawnKind]int
}

func NewStats() *Stats {
	return &Stats{
		UIRefreshes: map[int]int{},
		AudioCues:   map[cfg.SoundID]int{},
		Spawns:      map[components.SpawnKind]int{},
	}
}

// Subscribe registers the counters on a world.
func (s *Stats) Subscribe(w donburi.World) {
	components.UIRefresh.Subscribe(w, func(w donburi.World, ev components.UIRefreshEvent) {
		s.UIRefreshes[ev.ActorIndex]++
	})
	components.Elimination.Subscribe(w, func(w donburi.World, ev components.EliminationEvent) {
		s.Eliminations = append(s.Eliminations, ev)
	})
	components.AudioCue.Subscribe(w, func(w donburi.World, ev components.AudioCueEvent) {
		s.AudioCues[ev.Sound]++
	})
	components.Spawn.Subscribe(w, func(w donburi.World, ev components.SpawnEvent) {
		s.Spawns[ev.Kind]++
	})
}
