package systems

import (
	"github.com/automoto/blastarena/components"
	cfg "github.com/automoto/blastarena/config"
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWallBlocks recomputes every actor's DirectionBlock from the walls it
// currently touches. Flags that are not re-asserted this step are cleared.
func UpdateWallBlocks(e *ecs.ECS) {
	var walls []gamemath.Rect
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		walls = append(walls, components.Object.Get(entry).Rect())
	})

	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		if actor.Health <= 0 {
			return
		}
		probe := components.Object.Get(entry).Rect().Inflate(cfg.Player.WallMargin)
		actor.Block = ComputeDirectionBlock(probe, walls)
	})
}

// ComputeDirectionBlock returns the blocks for an actor rectangle against a
// set of walls. Each side is read from the wall's point of view: a wall to
// the right of the actor blocks moving right. Inside contacts carry no
// direction and block nothing.
func ComputeDirectionBlock(actor gamemath.Rect, walls []gamemath.Rect) components.DirectionBlock {
	var block components.DirectionBlock
	for _, wall := range walls {
		side, ok := gamemath.Overlap(wall, actor)
		if !ok {
			continue
		}
		switch side {
		case gamemath.SideRight:
			block.Right = true
		case gamemath.SideLeft:
			block.Left = true
		case gamemath.SideTop:
			block.Up = true
		case gamemath.SideBottom:
			block.Down = true
		}
	}
	return block
}
