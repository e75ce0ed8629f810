package core

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/blastarena/components"
	"github.com/automoto/blastarena/scenes"
	"github.com/automoto/blastarena/systems"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// Server runs one arena match without a window.
type Server struct {
	id    uuid.UUID
	scene *scenes.ArenaScene
	loop  *GameLoop
	steps uint64
	mu    sync.RWMutex

	started atomic.Bool
}

// NewServer creates a headless server for the given match.
func NewServer(tickRate int, match *scenes.MatchConfig) *Server {
	s := &Server{
		id:    uuid.New(),
		scene: scenes.NewArenaSceneWithConfig(match),
	}
	s.loop = NewGameLoop(s, tickRate)
	return s
}

// ID identifies this match in logs.
func (s *Server) ID() uuid.UUID {
	return s.id
}

// Subscribe lets fn register event subscribers on the match world before
// the first step.
func (s *Server) Subscribe(fn func(w donburi.World)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.scene.ECS().World)
}

// Start runs the real-time loop in the background. Only the first call
// starts it.
func (s *Server) Start(maxSteps uint64) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	log.Printf("Match %s starting", s.id)
	go s.loop.Run(maxSteps)
}

// Stop shuts the loop down and waits for it to return. It returns at once
// when the loop was never started.
func (s *Server) Stop() {
	if !s.started.Load() {
		return
	}
	s.loop.Stop()
	<-s.loop.Done()
}

// Done is closed once the real-time loop has returned.
func (s *Server) Done() <-chan struct{} {
	return s.loop.Done()
}

// Step advances the match by dt and reports whether it is finished.
func (s *Server) Step(dt time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scene.Finished() {
		return true
	}
	s.scene.Step(dt)
	s.steps++
	return s.scene.Finished()
}

// RunSteps advances the match as fast as possible, without the ticker, until
// it finishes or n steps have run. It returns the number of steps taken.
func (s *Server) RunSteps(n uint64, dt time.Duration) uint64 {
	var taken uint64
	for taken < n {
		taken++
		if s.Step(dt) {
			break
		}
	}
	return taken
}

// SetIntent forwards input for a human-controlled actor.
func (s *Server) SetIntent(index int, intent components.IntentData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scene.SetIntent(index, intent)
}

// Steps returns the number of steps run so far.
func (s *Server) Steps() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.steps
}

// Result summarises the match so far.
type Result struct {
	MatchID  uuid.UUID
	Steps    uint64
	Finished bool
	EndStep  uint64
	Winner   int
	Scores   []components.ActorScore
	PowerUps int // power-ups spawned, including fallback placements
	Fallback int
	Stats    *scenes.Stats
}

// Result returns a snapshot of the match outcome.
func (s *Server) Result() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e := s.scene.ECS()
	r := Result{
		MatchID:  s.id,
		Steps:    s.steps,
		Finished: s.scene.Finished(),
		Winner:   systems.GetWinner(e),
		Stats:    s.scene.Stats(),
	}
	if entry, ok := components.Match.First(e.World); ok {
		match := components.Match.Get(entry)
		r.Scores = append(r.Scores, match.Scores...)
		r.EndStep = match.EndStep
	}
	if entry, ok := components.PowerUpSpawner.First(e.World); ok {
		spawner := components.PowerUpSpawner.Get(entry)
		r.PowerUps, r.Fallback = spawner.Spawned, spawner.Fallback
	}
	return r
}

// ActorCount returns the number of actors still in the arena.
func (s *Server) ActorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	components.Actor.Each(s.scene.ECS().World, func(*donburi.Entry) {
		count++
	})
	return count
}

// Log writes the outcome in the server log.
func (r Result) Log() {
	switch {
	case !r.Finished:
		log.Printf("Match %s unfinished after %d steps", r.MatchID, r.Steps)
	case r.Winner >= 0:
		log.Printf("Match %s won by actor %d at step %d", r.MatchID, r.Winner, r.EndStep)
	default:
		log.Printf("Match %s ended with no survivors at step %d", r.MatchID, r.EndStep)
	}
	for _, sc := range r.Scores {
		if !sc.Joined {
			continue
		}
		if sc.Eliminated {
			log.Printf("  actor %d: hits=%d eliminations=%d eliminated at step %d",
				sc.ActorIndex, sc.Hits, sc.Eliminations, sc.EliminatedAt)
		} else {
			log.Printf("  actor %d: hits=%d eliminations=%d", sc.ActorIndex, sc.Hits, sc.Eliminations)
		}
	}
	log.Printf("  power-ups spawned: %d (%d at the fallback spot)", r.PowerUps, r.Fallback)
}
