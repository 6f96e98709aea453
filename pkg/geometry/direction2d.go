package geometry

// Direction2d is a unit-length vector in 2D space. See Direction3d for the
// construction contract; the same rules apply.
type Direction2d struct {
	vector Vector2d
}

// UnsafeDirection2d wraps a vector that the caller guarantees to already be
// unit length. No check or normalization is performed. For arbitrary input,
// use Vector2d.Direction instead.
func UnsafeDirection2d(v Vector2d) Direction2d {
	return Direction2d{vector: v}
}

// XDirection2d returns the direction of the positive global X axis.
func XDirection2d() Direction2d {
	return Direction2d{vector: Vector2d{X: 1}}
}

// YDirection2d returns the direction of the positive global Y axis.
func YDirection2d() Direction2d {
	return Direction2d{vector: Vector2d{Y: 1}}
}

// X returns the direction's x component.
func (d Direction2d) X() float64 { return d.vector.X }

// Y returns the direction's y component.
func (d Direction2d) Y() float64 { return d.vector.Y }

// Vector returns the direction's underlying unit vector.
func (d Direction2d) Vector() Vector2d {
	return d.vector
}

// ComponentIn returns the cosine of the angle between the two directions.
func (d Direction2d) ComponentIn(other Direction2d) float64 {
	return d.vector.Dot(other.vector)
}

// Dot returns the dot product of the two directions' unit vectors.
func (d Direction2d) Dot(other Direction2d) float64 {
	return d.vector.Dot(other.vector)
}

// Negate returns the opposite direction.
func (d Direction2d) Negate() Direction2d {
	return Direction2d{vector: d.vector.Negate()}
}

// Times returns a vector of the given length pointing in this direction.
func (d Direction2d) Times(scale float64) Vector2d {
	return d.vector.Times(scale)
}

// Perpendicular returns the direction a quarter turn counterclockwise from
// d. A quarter turn preserves length exactly.
func (d Direction2d) Perpendicular() Direction2d {
	return UnsafeDirection2d(d.vector.Perpendicular())
}

// RotateAround returns the direction rotated counterclockwise by the given
// angle in radians.
func (d Direction2d) RotateAround(center Point2d, angle float64) Direction2d {
	return RotationAroundPoint(center, angle).RotateDirection(d)
}

// MirrorAcross returns the direction reflected in the axis orientation.
func (d Direction2d) MirrorAcross(axis Axis2d) Direction2d {
	return MirrorAcrossAxis(axis).MirrorDirection(d)
}

// ToLocalIn expresses the direction in the frame's local coordinate system.
func (d Direction2d) ToLocalIn(frame Frame2d) Direction2d {
	return UnsafeDirection2d(d.vector.ToLocalIn(frame))
}

// FromLocalIn converts a direction expressed in the frame's local coordinate
// system back to a global direction.
func (d Direction2d) FromLocalIn(frame Frame2d) Direction2d {
	return UnsafeDirection2d(d.vector.FromLocalIn(frame))
}

// EqualWithin reports whether two directions agree component-wise within
// the given absolute tolerance.
func (d Direction2d) EqualWithin(other Direction2d, tolerance float64) bool {
	return d.vector.EqualWithin(other.vector, tolerance)
}
