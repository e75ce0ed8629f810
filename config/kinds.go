package config

// BulletKind identifies a projectile behavior
type BulletKind int

const (
	BulletNone BulletKind = iota
	BulletNormal
	BulletIce
	BulletExplosive
	BulletBouncy
)

// SpecialBulletKinds are the kinds a power-up can hold, in draw order
var SpecialBulletKinds = []BulletKind{BulletIce, BulletExplosive, BulletBouncy}

// BulletKindFromDraw maps a uniform draw in [0, len(SpecialBulletKinds)) to a
// special bullet kind. Out-of-range draws fall back to the weakest special kind.
func BulletKindFromDraw(n int) BulletKind {
	if n < 0 || n >= len(SpecialBulletKinds) {
		return BulletIce
	}
	return SpecialBulletKinds[n]
}

func (k BulletKind) String() string {
	switch k {
	case BulletNormal:
		return "normal"
	case BulletIce:
		return "ice"
	case BulletExplosive:
		return "explosive"
	case BulletBouncy:
		return "bouncy"
	default:
		return "none"
	}
}

// TimerKind identifies which actor flag a cooldown timer clears on expiry
type TimerKind int

const (
	TimerInvulnerable TimerKind = iota
	TimerStun
	TimerFireRate
	TimerBlink
	TimerKindCount // Must be last - used for array sizing
)

func (k TimerKind) String() string {
	switch k {
	case TimerInvulnerable:
		return "invulnerable"
	case TimerStun:
		return "stun"
	case TimerFireRate:
		return "fire_rate"
	case TimerBlink:
		return "blink"
	default:
		return "unknown"
	}
}
