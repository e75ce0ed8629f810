package components

import (
	"github.com/automoto/blastarena/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its collider in the resolv space.
// The collider's Data field points back at the owning *donburi.Entry.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the collider as a center/half-extent rectangle.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

// Center returns the collider center.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the collider so its center sits at (cx, cy) and refreshes
// its cell membership.
func (o *ObjectData) SetCenter(cx, cy float64) {
	o.X = cx - o.W/2
	o.Y = cy - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broadphase shared by every collider in the arena.
var Space = donburi.NewComponentType[resolv.Space]()
