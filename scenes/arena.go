package scenes

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/leveldata"
	"github.com/automoto/blastarena/systems"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SlotType says who controls an actor slot
type SlotType int

const (
	SlotEmpty SlotType = iota
	SlotHuman
	SlotBot
)

// ActorSlot configures one of the four actor slots
type ActorSlot struct {
	Type          SlotType
	BotDifficulty cfg.BotDifficulty
}

// MatchConfig selects the arena and who plays in it
type MatchConfig struct {
	Arena *leveldata.ArenaData // nil uses the built-in arena
	Slots [4]ActorSlot
	Seed  int64
}

// DefaultMatchConfig is a four-bot match on the built-in arena.
func DefaultMatchConfig() *MatchConfig {
	mc := &MatchConfig{Seed: cfg.Sim.Seed}
	for i := range mc.Slots {
		mc.Slots[i] = ActorSlot{Type: SlotBot, BotDifficulty: cfg.BotDifficultyNormal}
	}
	return mc
}

// ArenaScene owns the ECS world of one match.
type ArenaScene struct {
	ecs         *ecs.ECS
	matchConfig *MatchConfig
	stats       *Stats
	once        sync.Once
}

// NewArenaScene creates a scene with default configuration
func NewArenaScene() *ArenaScene {
	return &ArenaScene{matchConfig: DefaultMatchConfig()}
}

// NewArenaSceneWithConfig creates a scene for the given match configuration
func NewArenaSceneWithConfig(config *MatchConfig) *ArenaScene {
	return &ArenaScene{matchConfig: config}
}

// Update advances the match by one fixed step.
func (as *ArenaScene) Update() {
	as.Step(cfg.Sim.StepDuration())
}

// Step advances the match by one step of duration dt.
func (as *ArenaScene) Step(dt time.Duration) {
	as.once.Do(as.configure)
	systems.SetDelta(as.ecs, dt)
	as.ecs.Update()
}

// ECS returns the scene's ECS, configuring it on first use.
func (as *ArenaScene) ECS() *ecs.ECS {
	as.once.Do(as.configure)
	return as.ecs
}

// Stats returns the signal counters collected so far.
func (as *ArenaScene) Stats() *Stats {
	as.once.Do(as.configure)
	return as.stats
}

// Finished reports whether the match has a winner.
func (as *ArenaScene) Finished() bool {
	return as.ecs != nil && systems.IsMatchFinished(as.ecs)
}

// RegisterSystems adds the per-step systems in their required order:
// movement and firing consume input, projectiles move, wall contacts are
// recomputed, combat resolves, and timers tick last before signals go out.
func RegisterSystems(e *ecs.ECS) {
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateBots) // Must run before movement and firing
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateFiring)
	e.AddSystem(systems.UpdateProjectiles)
	e.AddSystem(systems.UpdateProjectileBounds)
	e.AddSystem(systems.UpdateWallBlocks)
	e.AddSystem(systems.UpdateProjectileHits)
	e.AddSystem(systems.UpdateExplosions)
	e.AddSystem(systems.UpdatePowerUps)
	e.AddSystem(systems.UpdateEliminations)
	e.AddSystem(systems.UpdateCooldowns)
	e.AddSystem(systems.ProcessEvents)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	RegisterSystems(ecs)
	as.ecs = ecs

	arena := as.matchConfig.Arena
	if arena == nil {
		arena = leveldata.DefaultArena()
	}
	factory.CreateArena(ecs, arena)
	factory.CreatePowerUpSpawner(ecs, as.matchConfig.Seed)
	systems.SeedBots(as.matchConfig.Seed)

	as.stats = NewStats()
	as.stats.Subscribe(ecs.World)

	spawned := 0
	for i, slot := range as.matchConfig.Slots {
		if slot.Type == SlotEmpty || i >= cfg.Player.MaxActors {
			continue
		}
		sp, ok := arena.Spawn(i)
		if !ok {
			log.Printf("Warning: arena %q has no spawn points, actor %d not spawned", arena.Name, i)
			continue
		}
		if slot.Type == SlotBot {
			factory.CreateBotActor(ecs, i, sp.X, sp.Y, slot.BotDifficulty)
		} else {
			factory.CreateActor(ecs, i, sp.X, sp.Y)
		}
		spawned++
	}

	log.Printf("Arena %q ready: %d walls, %d actors", arena.Name, len(arena.Walls), spawned)
}

// SetIntent replaces the movement part of a human actor's intent and raises
// fire edges. Edges stay raised until the next step consumes them.
func (as *ArenaScene) SetIntent(index int, intent components.IntentData) {
	e := as.ECS()
	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		if components.Actor.Get(entry).Index != index || entry.HasComponent(components.Bot) {
			return
		}
		cur := components.Intent.Get(entry)
		cur.MoveX, cur.MoveY = intent.MoveX, intent.MoveY
		cur.Fire = cur.Fire || intent.Fire
		cur.SpecialFire = cur.SpecialFire || intent.SpecialFire
	})
}
