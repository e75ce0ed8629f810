package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ExplosionData is a stationary damage zone. Frame tweens from 0 to the
// animation frame count; the explosion despawns when it finishes.
type ExplosionData struct {
	Radius  float64
	Frame   *gween.Tween
	Current float32 // last tweened frame value, for renderers
	Owner   donburi.Entity
	Born    uint64 // clock step the explosion was spawned on

	// Damaged records actors already hurt by this explosion.
	Damaged map[donburi.Entity]struct{}
}

var Explosion = donburi.NewComponentType[ExplosionData]()
