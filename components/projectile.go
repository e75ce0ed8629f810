package components

import (
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Behavior is the per-kind part of a projectile. Each case carries only the
// fields its kind needs.
type Behavior interface {
	Kind() cfg.BulletKind
	isBehavior()
}

type NormalShot struct{}

type IceShot struct{}

type ExplosiveShot struct{}

// BouncyShot reflects off walls and non-damageable targets until its budget
// runs out.
type BouncyShot struct {
	BouncesLeft int
}

func (NormalShot) Kind() cfg.BulletKind    { return cfg.BulletNormal }
func (IceShot) Kind() cfg.BulletKind       { return cfg.BulletIce }
func (ExplosiveShot) Kind() cfg.BulletKind { return cfg.BulletExplosive }
func (*BouncyShot) Kind() cfg.BulletKind   { return cfg.BulletBouncy }

func (NormalShot) isBehavior()    {}
func (IceShot) isBehavior()       {}
func (ExplosiveShot) isBehavior() {}
func (*BouncyShot) isBehavior()   {}

// NewBehavior returns the behavior for a bullet kind. Unknown kinds fire a
// normal shot.
func NewBehavior(kind cfg.BulletKind) Behavior {
	switch kind {
	case cfg.BulletIce:
		return IceShot{}
	case cfg.BulletExplosive:
		return ExplosiveShot{}
	case cfg.BulletBouncy:
		return &BouncyShot{BouncesLeft: cfg.Bullet.BounceBudget}
	default:
		return NormalShot{}
	}
}

type ProjectileData struct {
	Speed     float64
	Direction gamemath.Direction2
	Owner     donburi.Entity
	Behavior  Behavior
}

// Kind is shorthand for the behavior's bullet kind.
func (p *ProjectileData) Kind() cfg.BulletKind {
	return p.Behavior.Kind()
}

var Projectile = donburi.NewComponentType[ProjectileData]()
