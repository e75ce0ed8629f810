package systems

import (
	"testing"
	"time"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownExpiresOnce(t *testing.T) {
	e := newTestECS(t)
	sig := recordSignals(e)
	a := factory.CreateActor(e, 0, 500, 500)
	require.Equal(t, HitStunned, ApplyStun(e, a))
	sig.flush(e)
	refreshes := len(sig.refresh)

	advance(e, cfg.Cooldown.Stun-time.Millisecond)
	assert.True(t, components.Actor.Get(a).Stunned)

	advance(e, time.Millisecond)
	assert.False(t, components.Actor.Get(a).Stunned)
	assert.Zero(t, count(e, components.CooldownTimer))

	advance(e, time.Hour)
	sig.flush(e)
	assert.Len(t, sig.refresh, refreshes+1)
}

func TestCooldownStaleTargetIsDropped(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, 500, 500)
	require.Equal(t, HitDamaged, ApplyDamage(e, a, 1, -1))
	require.NotZero(t, count(e, components.CooldownTimer))

	factory.Destroy(e, a)
	replacement := factory.CreateActor(e, 0, 500, 500)

	assert.NotPanics(t, func() { advance(e, cfg.Cooldown.Invulnerable) })
	assert.Zero(t, count(e, components.CooldownTimer))
	assert.False(t, components.Actor.Get(replacement).Invulnerable)
	assert.Equal(t, 3, components.Actor.Get(replacement).Health)
}

func TestCooldownTargetWithoutActor(t *testing.T) {
	e := newTestECS(t)
	wall := factory.CreateWall(e, 0, 0, 10, 10)
	factory.CreateTimer(e, cfg.TimerStun, wall.Entity(), time.Millisecond)

	assert.NotPanics(t, func() { advance(e, time.Second) })
	assert.Zero(t, count(e, components.CooldownTimer))
}

func TestRearmCancelsPendingTimer(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, 500, 500)

	BeginFireCooldown(e, a)
	advance(e, cfg.Cooldown.FireRate/2)
	BeginFireCooldown(e, a)
	assert.Equal(t, 1, ActiveTimers(e, a.Entity(), cfg.TimerFireRate))

	advance(e, cfg.Cooldown.FireRate/2)
	assert.False(t, components.Actor.Get(a).CanFire)

	advance(e, cfg.Cooldown.FireRate/2)
	assert.True(t, components.Actor.Get(a).CanFire)
}

func TestBlinkTogglesWhileInvulnerable(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, 500, 500)
	require.Equal(t, HitDamaged, ApplyDamage(e, a, 1, -1))

	var alphas []float64
	for i := 0; i < 4; i++ {
		advance(e, cfg.Cooldown.BlinkInterval)
		alphas = append(alphas, components.Blink.Get(a).Alpha)
	}
	assert.Equal(t, []float64{cfg.Cooldown.BlinkAlpha, 1, cfg.Cooldown.BlinkAlpha, 1}, alphas)
}
