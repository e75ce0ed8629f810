package gamemath

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StepAxis returns the displacement along one axis for a projectile or actor
// moving at speed. A zero axis contributes nothing, so diagonal travel is the
// sum of two full axis steps rather than a normalized vector.
func StepAxis(axis Axis, speed float64) float64 {
	return float64(axis) * speed
}

// MoveAllowed reports whether movement along (dx, dy) is permitted by the
// four directional blocks. Up is negative y.
func MoveAllowed(dx, dy Axis, up, down, left, right bool) (allowX, allowY bool) {
	allowX = !(dx == AxisNeg && left) && !(dx == AxisPos && right)
	allowY = !(dy == AxisNeg && up) && !(dy == AxisPos && down)
	return allowX, allowY
}
