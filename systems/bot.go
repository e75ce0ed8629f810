package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Random number generator for bot decision making.
// Uses fixed seed for deterministic replay support.
var rng = rand.New(rand.NewSource(42))

// SeedBots reseeds the bot decision RNG.
func SeedBots(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

type actorInfo struct {
	index int
	x, y  float64
}

// UpdateBots writes intents for computer-controlled actors.
// Must run before UpdateMovement and UpdateFiring.
func UpdateBots(e *ecs.ECS) {
	if IsMatchFinished(e) {
		return
	}

	var actors []actorInfo
	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		if actor.Health <= 0 {
			return
		}
		x, y := components.Object.Get(entry).Center()
		actors = append(actors, actorInfo{index: actor.Index, x: x, y: y})
	})

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		updateBotAI(entry, actors)
	})
}

func updateBotAI(entry *donburi.Entry, actors []actorInfo) {
	bot := components.Bot.Get(entry)
	actor := components.Actor.Get(entry)
	intent := components.Intent.Get(entry)
	diff := cfg.Bot.Difficulties[bot.Difficulty]

	if actor.Health <= 0 {
		return
	}

	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
		return
	}
	bot.DecisionTimer = diff.ReactionDelay

	x, y := components.Object.Get(entry).Center()
	target, ok := nearestTarget(actor.Index, x, y, actors)
	if !ok {
		bot.TargetIndex = -1
		intent.MoveX, intent.MoveY = gamemath.AxisNone, gamemath.AxisNone
		return
	}
	bot.TargetIndex = target.index

	if aim, lined := lineUp(x, y, target.x, target.y, diff.AimTolerance); lined {
		// Face the target this step; movement updates facing before firing.
		intent.MoveX, intent.MoveY = aim.X, aim.Y
		if actor.HasPowerUp() && rng.Float64() < diff.SpecialChance {
			intent.SpecialFire = true
		} else if rng.Float64() < diff.FireChance {
			intent.Fire = true
		}
		return
	}

	// Wander toward the target with some randomness so bots get unstuck
	// from walls.
	if bot.WanderTimer > 0 {
		bot.WanderTimer -= diff.ReactionDelay + 1
	} else if rng.Float64() < 0.25 || actor.Block != (components.DirectionBlock{}) {
		bot.Heading = gamemath.Direction2{
			X: gamemath.Axis(rng.Intn(3) - 1),
			Y: gamemath.Axis(rng.Intn(3) - 1),
		}
		bot.WanderTimer = diff.WanderDuration
	} else {
		bot.Heading = gamemath.Direction2{
			X: gamemath.AxisFrom(target.x - x),
			Y: gamemath.AxisFrom(target.y - y),
		}
	}
	intent.MoveX, intent.MoveY = bot.Heading.X, bot.Heading.Y
}

func nearestTarget(myIndex int, x, y float64, actors []actorInfo) (actorInfo, bool) {
	best := actorInfo{}
	bestDist := math.MaxFloat64
	found := false
	for _, a := range actors {
		if a.index == myIndex {
			continue
		}
		if d := math.Hypot(a.x-x, a.y-y); d < bestDist {
			best, bestDist, found = a, d, true
		}
	}
	return best, found
}

// lineUp returns the facing that points a shot from (x, y) at (tx, ty) when
// the target sits on a straight or diagonal line within tolerance.
func lineUp(x, y, tx, ty, tolerance float64) (gamemath.Direction2, bool) {
	dx, dy := tx-x, ty-y
	switch {
	case math.Abs(dy) <= tolerance:
		return gamemath.Direction2{X: gamemath.AxisFrom(dx)}, dx != 0
	case math.Abs(dx) <= tolerance:
		return gamemath.Direction2{Y: gamemath.AxisFrom(dy)}, true
	case math.Abs(math.Abs(dx)-math.Abs(dy)) <= tolerance:
		return gamemath.Direction2{X: gamemath.AxisFrom(dx), Y: gamemath.AxisFrom(dy)}, true
	}
	return gamemath.Direction2{}, false
}
