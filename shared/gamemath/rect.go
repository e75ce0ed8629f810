// Package gamemath holds the pure geometry used by the combat core. Nothing in
// here touches the ECS or the collision space.
package gamemath

import "math"

// Side classifies where the first rectangle of an overlap sits relative to
// the second one.
type Side int

const (
	SideLeft   Side = iota // a is left of b
	SideRight              // a is right of b
	SideTop                // a is above b (smaller y)
	SideBottom             // a is below b
	SideInside             // contact without directional information
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "inside"
	}
}

// Rect is an axis-aligned rectangle given by its center and half-extents.
type Rect struct {
	CX, CY       float64
	HalfW, HalfH float64
}

// NewRect builds a Rect from a top-left corner and size, the layout resolv
// objects use.
func NewRect(x, y, w, h float64) Rect {
	return Rect{CX: x + w/2, CY: y + h/2, HalfW: w / 2, HalfH: h / 2}
}

// CenteredRect builds a Rect around a center point.
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{CX: cx, CY: cy, HalfW: w / 2, HalfH: h / 2}
}

func (r Rect) MinX() float64 { return r.CX - r.HalfW }
func (r Rect) MaxX() float64 { return r.CX + r.HalfW }
func (r Rect) MinY() float64 { return r.CY - r.HalfH }
func (r Rect) MaxY() float64 { return r.CY + r.HalfH }

// Inflate grows both half-extents by margin.
func (r Rect) Inflate(margin float64) Rect {
	r.HalfW += margin
	r.HalfH += margin
	return r
}

// Intersects reports whether both axis projections overlap. Touching edges
// do not count.
func Intersects(a, b Rect) bool {
	return a.MinX() < b.MaxX() && a.MaxX() > b.MinX() &&
		a.MinY() < b.MaxY() && a.MaxY() > b.MinY()
}

// Overlap tests two rectangles and, when they intersect, classifies the side
// of contact by the axis with the smaller penetration. An axis on which one
// rectangle spans the other gives no direction and has infinite depth, so a
// rectangle contained on both axes reports SideInside.
func Overlap(a, b Rect) (Side, bool) {
	if !Intersects(a, b) {
		return SideInside, false
	}

	xSide, xDepth := axisContact(a.MinX(), a.MaxX(), b.MinX(), b.MaxX(), SideLeft, SideRight)
	ySide, yDepth := axisContact(a.MinY(), a.MaxY(), b.MinY(), b.MaxY(), SideTop, SideBottom)

	if yDepth < xDepth {
		return ySide, true
	}
	return xSide, true
}

// axisContact returns the side and absolute penetration depth on one axis.
func axisContact(aMin, aMax, bMin, bMax float64, low, high Side) (Side, float64) {
	switch {
	case aMin < bMin && aMax > bMin && aMax < bMax:
		return low, aMax - bMin
	case aMin > bMin && aMin < bMax && aMax > bMax:
		return high, bMax - aMin
	default:
		return SideInside, math.Inf(1)
	}
}

// CircleIntersectsRect reports whether a circle overlaps a rectangle. Tangent
// contact does not count.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	nx := Clamp(cx, r.MinX(), r.MaxX())
	ny := Clamp(cy, r.MinY(), r.MaxY())
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy < radius*radius
}
