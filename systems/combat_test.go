package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"pgregory.net/rapid"
)

func TestNormalShotHitsActor(t *testing.T) {
	e := newTestECS(t)
	sig := recordSignals(e)
	a := factory.CreateActor(e, 1, 500, 500)
	p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletNormal, 500, 500, gamemath.DirRight)

	UpdateProjectileHits(e)
	sig.flush(e)

	actor := components.Actor.Get(a)
	assert.False(t, valid(e, p))
	assert.Equal(t, 2, actor.Health)
	assert.True(t, actor.Invulnerable)
	assert.Contains(t, sig.refresh, 1)
	assert.Empty(t, sig.eliminations)
}

func TestNormalShotEliminatesLastLife(t *testing.T) {
	e := newTestECS(t)
	sig := recordSignals(e)
	shooter := factory.CreateActor(e, 0, 100, 100)
	a := factory.CreateActor(e, 1, 500, 500)
	components.Actor.Get(a).Health = 1
	p := factory.CreateProjectileAt(e, shooter.Entity(), cfg.BulletNormal, 500, 500, gamemath.DirRight)

	UpdateProjectileHits(e)
	sig.flush(e)

	assert.False(t, valid(e, p))
	assert.Equal(t, 0, components.Actor.Get(a).Health)
	assert.False(t, components.Actor.Get(a).Invulnerable)
	assert.Zero(t, ActiveTimers(e, a.Entity(), cfg.TimerInvulnerable))
	require.Len(t, sig.eliminations, 1)
	assert.Equal(t, 0, sig.eliminations[0].ByIndex)
}

func TestNormalShotStopsAtWall(t *testing.T) {
	e := newTestECS(t)
	sig := recordSignals(e)
	factory.CreateWall(e, 600, 400, 10, 200)
	p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletNormal, 598, 500, gamemath.DirRight)

	UpdateProjectileHits(e)
	sig.flush(e)

	assert.False(t, valid(e, p))
	assert.Equal(t, 1, sig.played(cfg.SoundWallImpact))
}

func TestPowerUpBlocksShots(t *testing.T) {
	e := newTestECS(t)
	pu := factory.CreatePowerUp(e, cfg.BulletIce, 700, 500)
	p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletIce, 690, 500, gamemath.DirRight)

	UpdateProjectileHits(e)

	assert.False(t, valid(e, p))
	assert.True(t, valid(e, pu))
}

func TestIceShotStunsWithoutDamage(t *testing.T) {
	e := newTestECS(t)
	sig := recordSignals(e)
	a := factory.CreateActor(e, 0, 500, 500)
	p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletIce, 500, 500, gamemath.DirLeft)

	UpdateProjectileHits(e)
	sig.flush(e)

	actor := components.Actor.Get(a)
	assert.False(t, valid(e, p))
	assert.Equal(t, 3, actor.Health)
	assert.True(t, actor.Stunned)
	assert.Equal(t, 1, ActiveTimers(e, a.Entity(), cfg.TimerStun))
	assert.Contains(t, sig.refresh, 0)

	// A second ice hit on a stunned actor changes nothing.
	factory.CreateProjectileAt(e, donburi.Null, cfg.BulletIce, 500, 500, gamemath.DirLeft)
	UpdateProjectileHits(e)
	assert.Equal(t, 3, actor.Health)
	assert.Equal(t, 1, ActiveTimers(e, a.Entity(), cfg.TimerStun))
}

func TestInvulnerableActorPerBulletKind(t *testing.T) {
	tests := []struct {
		kind          cfg.BulletKind
		wantDestroyed bool
	}{
		{cfg.BulletNormal, true},
		{cfg.BulletIce, true},
		{cfg.BulletExplosive, true},
		{cfg.BulletBouncy, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := newTestECS(t)
			a := factory.CreateActor(e, 0, 500, 500)
			require.Equal(t, HitDamaged, ApplyDamage(e, a, 1, -1))

			p := factory.CreateProjectileAt(e, donburi.Null, tt.kind, 490, 500, gamemath.DirRight)
			UpdateProjectileHits(e)

			actor := components.Actor.Get(a)
			assert.Equal(t, 2, actor.Health)
			assert.False(t, actor.Stunned)
			assert.Equal(t, !tt.wantDestroyed, valid(e, p))

			if !tt.wantDestroyed {
				proj := components.Projectile.Get(p)
				assert.Equal(t, gamemath.DirLeft, proj.Direction)
				assert.Equal(t, cfg.Bullet.BounceBudget-1, proj.Behavior.(*components.BouncyShot).BouncesLeft)
			}
		})
	}
}

func TestBouncyShotDamagesVulnerableActor(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, 500, 500)
	p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletBouncy, 490, 500, gamemath.DirRight)

	UpdateProjectileHits(e)

	assert.False(t, valid(e, p))
	assert.Equal(t, 2, components.Actor.Get(a).Health)
}

func TestBouncyShotReflectsOffWall(t *testing.T) {
	vertical := gamemath.NewRect(600, 400, 10, 200)
	horizontal := gamemath.NewRect(700, 500, 400, 40)

	tests := []struct {
		name string
		wall gamemath.Rect
		x, y float64
		dir  gamemath.Direction2
		want gamemath.Direction2
	}{
		{"straight into left face", vertical, 598, 500, gamemath.DirRight, gamemath.DirLeft},
		{"diagonal into left face", vertical, 598, 500, gamemath.DirDownRight, gamemath.DirDownLeft},
		{"down into top face", vertical, 605, 398, gamemath.DirDown, gamemath.DirUp},
		{"diagonal into top face", vertical, 605, 398, gamemath.DirDownLeft, gamemath.DirUpLeft},
		{"vertical shot grazing left face", vertical, 598, 500, gamemath.DirDown, gamemath.DirUp},
		{"diagonal inside upper half", horizontal, 815, 508, gamemath.DirDownRight, gamemath.DirUpRight},
		{"diagonal inside upper half left of center", horizontal, 720, 508, gamemath.DirDownLeft, gamemath.DirUpLeft},
		{"diagonal inside lower half", horizontal, 1000, 532, gamemath.DirUpLeft, gamemath.DirDownLeft},
		{"horizontal inside thick wall", gamemath.NewRect(600, 400, 40, 200), 608, 500, gamemath.DirRight, gamemath.DirLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			factory.CreateWall(e, tt.wall.MinX(), tt.wall.MinY(), 2*tt.wall.HalfW, 2*tt.wall.HalfH)
			p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletBouncy, tt.x, tt.y, tt.dir)

			UpdateProjectileHits(e)

			require.True(t, valid(e, p))
			proj := components.Projectile.Get(p)
			assert.Equal(t, tt.want, proj.Direction)
			assert.Equal(t, cfg.Bullet.BounceBudget-1, proj.Behavior.(*components.BouncyShot).BouncesLeft)
		})
	}
}

// A diagonal shot that ends a step buried in a thin horizontal wall turns
// back on the vertical axis instead of passing through.
func TestBouncyShotDoesNotPassThroughWall(t *testing.T) {
	for _, dir := range []gamemath.Direction2{gamemath.DirDownRight, gamemath.DirDownLeft} {
		t.Run(fmt.Sprint(dir), func(t *testing.T) {
			e := newTestECS(t)
			factory.CreateWall(e, 400, 500, 800, 40)
			p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletBouncy, 800, 493, dir)

			for step := 0; step < 8 && valid(e, p); step++ {
				UpdateProjectiles(e)
				UpdateProjectileHits(e)

				_, y := components.Object.Get(p).Center()
				require.Less(t, y, 520.0, "step %d", step)
			}

			require.True(t, valid(e, p))
			proj := components.Projectile.Get(p)
			assert.Equal(t, gamemath.AxisNeg, proj.Direction.Y)
			assert.Equal(t, dir.X, proj.Direction.X)
			assert.Equal(t, cfg.Bullet.BounceBudget-1, proj.Behavior.(*components.BouncyShot).BouncesLeft)
		})
	}
}

func TestBouncyShotLeavingWallDoesNotBounceAgain(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 600, 400, 10, 200)
	p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletBouncy, 598, 500, gamemath.DirLeft)

	UpdateProjectileHits(e)

	proj := components.Projectile.Get(p)
	assert.Equal(t, gamemath.DirLeft, proj.Direction)
	assert.Equal(t, cfg.Bullet.BounceBudget, proj.Behavior.(*components.BouncyShot).BouncesLeft)
}

// A bouncy shot in a corridor is destroyed on exactly its budget-th wall
// contact and never before.
func TestBouncyBudgetRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		budget := rapid.IntRange(1, 8).Draw(t, "budget")
		speed := rapid.Float64Range(1, cfg.Bullet.Types[cfg.BulletBouncy].Speed).Draw(t, "speed")
		startX := rapid.Float64Range(130, 280).Draw(t, "startX")

		saved := cfg.Bullet.BounceBudget
		cfg.Bullet.BounceBudget = budget
		defer func() { cfg.Bullet.BounceBudget = saved }()

		e := newTestECS(t)
		factory.CreateWall(e, 100, 400, 10, 200)
		factory.CreateWall(e, 300, 400, 10, 200)
		p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletBouncy, startX, 500, gamemath.DirRight)
		components.Projectile.Get(p).Speed = speed

		bounces := 0
		for step := 0; step < 10000 && valid(e, p); step++ {
			before := components.Projectile.Get(p).Direction
			UpdateProjectiles(e)
			UpdateProjectileHits(e)
			if !valid(e, p) {
				bounces++
				break
			}
			if components.Projectile.Get(p).Direction != before {
				bounces++
				left := components.Projectile.Get(p).Behavior.(*components.BouncyShot).BouncesLeft
				if left != budget-bounces {
					t.Fatalf("bounce %d left %d, want %d", bounces, left, budget-bounces)
				}
			}
		}

		if valid(e, p) {
			t.Fatalf("projectile survived with %d bounces", bounces)
		}
		if bounces != budget {
			t.Fatalf("destroyed after %d bounces, budget %d", bounces, budget)
		}
	})
}

func TestExplosiveShotInEmptySpace(t *testing.T) {
	e := newTestECS(t)
	sig := recordSignals(e)
	factory.CreateWall(e, 600, 400, 10, 200)
	a := factory.CreateActor(e, 0, 560, 500)
	p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletExplosive, 598, 500, gamemath.DirRight)

	UpdateProjectileHits(e)
	sig.flush(e)

	assert.False(t, valid(e, p))
	require.Equal(t, 1, count(e, components.Explosion))
	assert.Equal(t, 1, sig.played(cfg.SoundExplosion))

	// The explosion acts from the next step on.
	UpdateExplosions(e)
	assert.Equal(t, 3, components.Actor.Get(a).Health)

	UpdateClock(e)
	UpdateExplosions(e)
	actor := components.Actor.Get(a)
	assert.Equal(t, 3-cfg.Explosion.Damage, actor.Health)
	assert.True(t, actor.Invulnerable)

	// Each actor is damaged once per explosion, even if vulnerable again.
	ClearInvulnerable(e, a)
	UpdateClock(e)
	UpdateExplosions(e)
	assert.Equal(t, 3-cfg.Explosion.Damage, actor.Health)

	for i := 0; i < 30 && count(e, components.Explosion) > 0; i++ {
		UpdateClock(e)
		UpdateExplosions(e)
	}
	assert.Zero(t, count(e, components.Explosion))
}

func TestExplosionEliminatesLowHealth(t *testing.T) {
	e := newTestECS(t)
	sig := recordSignals(e)
	a := factory.CreateActor(e, 0, 500, 500)
	b := factory.CreateActor(e, 1, 540, 500)
	components.Actor.Get(a).Health = cfg.Explosion.Damage

	factory.CreateExplosion(e, donburi.Null, 520, 500)
	UpdateClock(e)
	UpdateExplosions(e)
	sig.flush(e)

	assert.Equal(t, 0, components.Actor.Get(a).Health)
	assert.Equal(t, 3-cfg.Explosion.Damage, components.Actor.Get(b).Health)
	require.Len(t, sig.eliminations, 1)
	assert.Equal(t, 0, sig.eliminations[0].ActorIndex)
}

func TestExplosionOutOfRadius(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, 500, 500)

	// The bounding squares overlap but the nearest actor corner is 40 away
	// on each axis, outside the radius.
	factory.CreateExplosion(e, donburi.Null, 565, 565)
	UpdateClock(e)
	UpdateExplosions(e)

	assert.Equal(t, 3, components.Actor.Get(a).Health)
}
