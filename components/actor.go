package components

import (
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DirectionBlock holds one flag per cardinal direction. A flag is only set
// while the actor currently touches static geometry on that side.
type DirectionBlock struct {
	Up, Down, Left, Right bool
}

// ActorData is the combat state of one player. Flags are written only by the
// actor transition functions in the systems package.
type ActorData struct {
	Index        int // 0-3, identity carried by UI refresh signals
	Health       int
	Invulnerable bool
	Stunned      bool
	CanFire      bool
	PowerUp      cfg.BulletKind // BulletNone when nothing is held
	Facing       gamemath.Direction2
	Block        DirectionBlock
	Speed        float64

	// Timers holds the currently armed timer entity per kind so re-arming
	// can cancel the superseded one.
	Timers [cfg.TimerKindCount]donburi.Entity
}

// HasPowerUp reports whether a special shot is available.
func (a *ActorData) HasPowerUp() bool {
	return a.PowerUp != cfg.BulletNone
}

var Actor = donburi.NewComponentType[ActorData]()

// IntentData carries the input edges for the current step. Fire and
// SpecialFire are "just pressed" edges and are cleared once consumed.
type IntentData struct {
	Fire        bool
	SpecialFire bool
	MoveX       gamemath.Axis
	MoveY       gamemath.Axis
}

var Intent = donburi.NewComponentType[IntentData]()

// BlinkData is the render alpha toggled while an actor is invulnerable.
type BlinkData struct {
	Alpha float64
}

var Blink = donburi.NewComponentType[BlinkData]()

// DefeatedData marks the spot where an actor was eliminated.
type DefeatedData struct {
	Index int
	X, Y  float64
	Step  uint64
}

var Defeated = donburi.NewComponentType[DefeatedData]()
