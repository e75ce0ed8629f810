package systems

import (
	"testing"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireRateGate(t *testing.T) {
	e := newTestECS(t)
	sig := recordSignals(e)
	a := factory.CreateActor(e, 0, 500, 500)
	intent := components.Intent.Get(a)

	intent.Fire = true
	UpdateFiring(e)
	require.Equal(t, 1, count(e, components.Projectile))
	assert.False(t, intent.Fire)
	assert.False(t, components.Actor.Get(a).CanFire)

	p, ok := components.Projectile.First(e.World)
	require.True(t, ok)
	proj := components.Projectile.Get(p)
	x, y := components.Object.Get(p).Center()
	assert.Equal(t, cfg.BulletNormal, proj.Kind())
	assert.Equal(t, gamemath.DirUpRight, proj.Direction)
	assert.Equal(t, a.Entity(), proj.Owner)
	assert.Equal(t, 500+cfg.Bullet.SpawnOffset, x)
	assert.Equal(t, 500-cfg.Bullet.SpawnOffset, y)

	intent.Fire = true
	UpdateFiring(e)
	assert.Equal(t, 1, count(e, components.Projectile))

	advance(e, cfg.Cooldown.FireRate)
	intent.Fire = true
	UpdateFiring(e)
	assert.Equal(t, 2, count(e, components.Projectile))

	sig.flush(e)
	assert.Equal(t, 2, sig.played(cfg.SoundShot))
}

func TestSpecialShotConsumesPowerUp(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, 500, 500)
	intent := components.Intent.Get(a)

	intent.SpecialFire = true
	UpdateFiring(e)
	assert.Zero(t, count(e, components.Projectile))

	BeginFireCooldown(e, a)
	GrantPowerUp(e, a, cfg.BulletBouncy)
	intent.SpecialFire = true
	UpdateFiring(e)

	require.Equal(t, 1, count(e, components.Projectile))
	p, _ := components.Projectile.First(e.World)
	assert.Equal(t, cfg.BulletBouncy, components.Projectile.Get(p).Kind())
	assert.False(t, components.Actor.Get(a).HasPowerUp())
	assert.False(t, intent.SpecialFire)
}

func TestStunnedActorCannotFire(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, 500, 500)
	GrantPowerUp(e, a, cfg.BulletIce)
	ApplyStun(e, a)

	intent := components.Intent.Get(a)
	intent.Fire, intent.SpecialFire = true, true
	UpdateFiring(e)

	assert.Zero(t, count(e, components.Projectile))
	assert.True(t, components.Actor.Get(a).HasPowerUp())
	assert.False(t, intent.Fire)
	assert.False(t, intent.SpecialFire)
}

func TestOwnShotDoesNotHitShooter(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, 500, 500)
	components.Actor.Get(a).Facing = gamemath.DirRight
	components.Intent.Get(a).Fire = true

	UpdateFiring(e)
	UpdateProjectileHits(e)

	assert.Equal(t, 1, count(e, components.Projectile))
	assert.Equal(t, 3, components.Actor.Get(a).Health)
}
