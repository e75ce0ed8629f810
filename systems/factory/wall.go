package factory

import (
	"github.com/automoto/blastarena/archetypes"
	"github.com/automoto/blastarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a static collider positioned by its top-left corner.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	newCollider(ecs, wall, x+w/2, y+h/2, w, h, tags.ResolvSolid)
	return wall
}
