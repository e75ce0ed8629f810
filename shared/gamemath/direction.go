package gamemath

// Axis is one component of a discretized direction: -1, 0 or +1.
type Axis int

const (
	AxisNeg  Axis = -1
	AxisNone Axis = 0
	AxisPos  Axis = 1
)

// Opposite mirrors the axis. AxisNone stays AxisNone.
func (a Axis) Opposite() Axis {
	return -a
}

// AxisFrom converts a signed value into an Axis.
func AxisFrom(v float64) Axis {
	switch {
	case v < 0:
		return AxisNeg
	case v > 0:
		return AxisPos
	default:
		return AxisNone
	}
}

// Direction2 is a facing or travel direction made of two independent axes.
// X: Left=-1, Right=+1. Y: Up=-1, Down=+1 (screen coordinates).
type Direction2 struct {
	X Axis
	Y Axis
}

var (
	DirUp        = Direction2{X: AxisNone, Y: AxisNeg}
	DirDown      = Direction2{X: AxisNone, Y: AxisPos}
	DirLeft      = Direction2{X: AxisNeg, Y: AxisNone}
	DirRight     = Direction2{X: AxisPos, Y: AxisNone}
	DirUpRight   = Direction2{X: AxisPos, Y: AxisNeg}
	DirDownRight = Direction2{X: AxisPos, Y: AxisPos}
	DirUpLeft    = Direction2{X: AxisNeg, Y: AxisNeg}
	DirDownLeft  = Direction2{X: AxisNeg, Y: AxisPos}
)

// IsZero reports whether neither axis is set.
func (d Direction2) IsZero() bool {
	return d.X == AxisNone && d.Y == AxisNone
}

// MirrorX flips the horizontal axis.
func (d Direction2) MirrorX() Direction2 {
	return Direction2{X: d.X.Opposite(), Y: d.Y}
}

// MirrorY flips the vertical axis.
func (d Direction2) MirrorY() Direction2 {
	return Direction2{X: d.X, Y: d.Y.Opposite()}
}

// Reflect mirrors the axis matching the contact side. Left and Right flip the
// horizontal axis; Top, Bottom and Inside flip the vertical axis.
func (d Direction2) Reflect(side Side) Direction2 {
	switch side {
	case SideLeft, SideRight:
		return d.MirrorX()
	default:
		return d.MirrorY()
	}
}

// Offset returns the point dist away from (x, y) along each set axis.
func (d Direction2) Offset(x, y, dist float64) (float64, float64) {
	return x + StepAxis(d.X, dist), y + StepAxis(d.Y, dist)
}
