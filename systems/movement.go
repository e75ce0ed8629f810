package systems

import (
	"github.com/automoto/blastarena/components"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement moves actors by their intent. Direction blocks from the
// previous step veto movement into touching walls; stunned actors stay put.
func UpdateMovement(e *ecs.ECS) {
	bounds := ArenaBounds(e)
	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		intent := components.Intent.Get(entry)
		if actor.Health <= 0 || actor.Stunned {
			return
		}
		if intent.MoveX == gamemath.AxisNone && intent.MoveY == gamemath.AxisNone {
			return
		}

		actor.Facing = gamemath.Direction2{X: intent.MoveX, Y: intent.MoveY}

		allowX, allowY := gamemath.MoveAllowed(intent.MoveX, intent.MoveY,
			actor.Block.Up, actor.Block.Down, actor.Block.Left, actor.Block.Right)

		obj := components.Object.Get(entry)
		cx, cy := obj.Center()
		if allowX {
			cx += gamemath.StepAxis(intent.MoveX, actor.Speed)
		}
		if allowY {
			cy += gamemath.StepAxis(intent.MoveY, actor.Speed)
		}

		halfW, halfH := obj.W/2, obj.H/2
		cx = gamemath.Clamp(cx, bounds.Left+halfW, bounds.Right-halfW)
		cy = gamemath.Clamp(cy, bounds.Top+halfH, bounds.Bottom-halfH)
		obj.SetCenter(cx, cy)
	})
}
