package components

import (
	cfg "github.com/automoto/blastarena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UIRefreshEvent asks the UI to redraw one actor's stats.
type UIRefreshEvent struct {
	ActorIndex int
}

// EliminationEvent is published once when an actor is eliminated.
type EliminationEvent struct {
	Actor      donburi.Entity
	ActorIndex int
	ByIndex    int // shooter index, -1 when unknown
	X, Y       float64
}

// AudioCueEvent requests a sound effect.
type AudioCueEvent struct {
	Sound  cfg.SoundID
	Path   string
	Volume float64
}

// SpawnKind identifies what a SpawnEvent announces.
type SpawnKind int

const (
	SpawnProjectile SpawnKind = iota
	SpawnExplosion
	SpawnPowerUp
	SpawnDefeated
)

// SpawnEvent announces a new entity to render/spawn plumbing.
type SpawnEvent struct {
	Kind       SpawnKind
	Entity     donburi.Entity
	BulletKind cfg.BulletKind
	X, Y       float64
}

var (
	UIRefresh   = events.NewEventType[UIRefreshEvent]()
	Elimination = events.NewEventType[EliminationEvent]()
	AudioCue    = events.NewEventType[AudioCueEvent]()
	Spawn       = events.NewEventType[SpawnEvent]()
)
