package systems

import (
	"testing"

	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestComputeDirectionBlock(t *testing.T) {
	actorAt := func(cx, cy float64) gamemath.Rect {
		return gamemath.CenteredRect(cx, cy, cfg.Player.Size, cfg.Player.Size).Inflate(cfg.Player.WallMargin)
	}

	tests := []struct {
		name  string
		actor gamemath.Rect
		walls []gamemath.Rect
		want  components.DirectionBlock
	}{
		{"no walls", actorAt(500, 500), nil, components.DirectionBlock{}},
		{"wall apart", actorAt(500, 500), []gamemath.Rect{gamemath.NewRect(600, 400, 10, 200)}, components.DirectionBlock{}},
		{"wall on the right", actorAt(575, 500), []gamemath.Rect{gamemath.NewRect(600, 400, 10, 200)}, components.DirectionBlock{Right: true}},
		{"wall on the left", actorAt(475, 500), []gamemath.Rect{gamemath.NewRect(440, 400, 10, 200)}, components.DirectionBlock{Left: true}},
		{"wall above", actorAt(500, 475), []gamemath.Rect{gamemath.NewRect(400, 440, 200, 10)}, components.DirectionBlock{Up: true}},
		{"wall below", actorAt(500, 525), []gamemath.Rect{gamemath.NewRect(400, 550, 200, 10)}, components.DirectionBlock{Down: true}},
		{
			"corner",
			actorAt(575, 525),
			[]gamemath.Rect{gamemath.NewRect(600, 400, 10, 200), gamemath.NewRect(400, 550, 200, 10)},
			components.DirectionBlock{Right: true, Down: true},
		},
		{"inside a wall", actorAt(500, 500), []gamemath.Rect{gamemath.NewRect(300, 300, 400, 400)}, components.DirectionBlock{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDirectionBlock(tt.actor, tt.walls))
		})
	}
}

func TestWallBlockStopsMovementAndClears(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 600, 400, 10, 200)
	a := factory.CreateActor(e, 0, 575, 500)
	actor := components.Actor.Get(a)
	intent := components.Intent.Get(a)

	UpdateWallBlocks(e)
	assert.Equal(t, components.DirectionBlock{Right: true}, actor.Block)

	intent.MoveX, intent.MoveY = gamemath.AxisPos, gamemath.AxisPos
	UpdateMovement(e)
	x, y := components.Object.Get(a).Center()
	assert.Equal(t, 575.0, x)
	assert.Equal(t, 500+cfg.Player.Speed, y)
	assert.Equal(t, gamemath.DirDownRight, actor.Facing)

	intent.MoveX, intent.MoveY = gamemath.AxisNeg, gamemath.AxisNone
	UpdateMovement(e)
	UpdateWallBlocks(e)
	x, _ = components.Object.Get(a).Center()
	assert.Equal(t, 575-cfg.Player.Speed, x)
	assert.Equal(t, components.DirectionBlock{}, actor.Block)
}

func TestStunnedActorDoesNotMove(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, 500, 500)
	ApplyStun(e, a)

	intent := components.Intent.Get(a)
	intent.MoveX = gamemath.AxisPos
	UpdateMovement(e)

	x, _ := components.Object.Get(a).Center()
	assert.Equal(t, 500.0, x)
}

func TestMovementClampsToArena(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateActor(e, 0, cfg.Player.Size/2+1, 500)

	components.Intent.Get(a).MoveX = gamemath.AxisNeg
	UpdateMovement(e)

	x, _ := components.Object.Get(a).Center()
	assert.Equal(t, cfg.Arena.Left+cfg.Player.Size/2, x)
}

func TestProjectileKinematics(t *testing.T) {
	tests := []struct {
		dir    gamemath.Direction2
		dx, dy float64
	}{
		{gamemath.DirRight, 1, 0},
		{gamemath.DirUp, 0, -1},
		{gamemath.DirDownLeft, -1, 1},
	}

	for _, tt := range tests {
		e := newTestECS(t)
		p := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletExplosive, 800, 500, tt.dir)
		speed := components.Projectile.Get(p).Speed

		UpdateProjectiles(e)

		x, y := components.Object.Get(p).Center()
		assert.Equal(t, 800+tt.dx*speed, x)
		assert.Equal(t, 500+tt.dy*speed, y)
	}
}

func TestProjectileSpeedPerKind(t *testing.T) {
	e := newTestECS(t)
	for kind, want := range map[cfg.BulletKind]float64{
		cfg.BulletNormal:    10,
		cfg.BulletIce:       20,
		cfg.BulletExplosive: 6,
		cfg.BulletBouncy:    15,
	} {
		p := factory.CreateProjectileAt(e, donburi.Null, kind, 800, 500, gamemath.DirRight)
		assert.Equal(t, want, components.Projectile.Get(p).Speed, "kind %s", kind)
		assert.Equal(t, kind, components.Projectile.Get(p).Kind())
	}
}

func TestProjectileCulledOutsideArena(t *testing.T) {
	e := newTestECS(t)
	inside := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletNormal, cfg.Arena.Right+cfg.Bullet.CullBuffer-1, 500, gamemath.DirRight)
	outside := factory.CreateProjectileAt(e, donburi.Null, cfg.BulletNormal, cfg.Arena.Right+cfg.Bullet.CullBuffer+1, 500, gamemath.DirRight)

	UpdateProjectileBounds(e)

	assert.True(t, valid(e, inside))
	assert.False(t, valid(e, outside))
}
