package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"
)

// SetDelta records the elapsed real time for the coming step. The loop calls
// it right before ecs.Update.
func SetDelta(e *ecs.ECS, d time.Duration) {
	if clock := clockData(e); clock != nil {
		clock.Delta = d
	}
}

// UpdateClock advances the engine clock by the recorded delta.
func UpdateClock(e *ecs.ECS) {
	clock := clockData(e)
	if clock == nil {
		return
	}
	clock.Step++
	clock.Elapsed += clock.Delta
}

func stepDelta(e *ecs.ECS) time.Duration {
	if clock := clockData(e); clock != nil {
		return clock.Delta
	}
	return 0
}
