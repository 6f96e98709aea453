package geometry

// Direction3d is a unit-length vector in 3D space, used where only an
// orientation matters and not a magnitude. Keeping it as a distinct type
// separates orientation-only values from general vectors at compile time.
//
// The unit-length invariant is a construction contract, not a runtime check:
// values obtained from Vector3d.Direction or from the canonical direction
// constructors always satisfy it, while UnsafeDirection3d trusts the caller.
// Arithmetic never re-normalizes, so the cost of every operation stays
// predictable.
type Direction3d struct {
	vector Vector3d
}

// UnsafeDirection3d wraps a vector that the caller guarantees to already be
// unit length. No check or normalization is performed. For arbitrary input,
// use Vector3d.Direction instead.
func UnsafeDirection3d(v Vector3d) Direction3d {
	return Direction3d{vector: v}
}

// XDirection3d returns the direction of the positive global X axis.
func XDirection3d() Direction3d {
	return Direction3d{vector: Vector3d{X: 1}}
}

// YDirection3d returns the direction of the positive global Y axis.
func YDirection3d() Direction3d {
	return Direction3d{vector: Vector3d{Y: 1}}
}

// ZDirection3d returns the direction of the positive global Z axis.
func ZDirection3d() Direction3d {
	return Direction3d{vector: Vector3d{Z: 1}}
}

// X returns the direction's x component.
func (d Direction3d) X() float64 { return d.vector.X }

// Y returns the direction's y component.
func (d Direction3d) Y() float64 { return d.vector.Y }

// Z returns the direction's z component.
func (d Direction3d) Z() float64 { return d.vector.Z }

// Vector returns the direction's underlying unit vector.
func (d Direction3d) Vector() Vector3d {
	return d.vector
}

// ComponentIn returns the cosine of the angle between the two directions.
func (d Direction3d) ComponentIn(other Direction3d) float64 {
	return d.vector.Dot(other.vector)
}

// Dot returns the dot product of the two directions' unit vectors.
func (d Direction3d) Dot(other Direction3d) float64 {
	return d.vector.Dot(other.vector)
}

// Cross returns the cross product of the two directions' unit vectors. The
// result is a Vector3d since it is only unit length when the directions are
// perpendicular.
func (d Direction3d) Cross(other Direction3d) Vector3d {
	return d.vector.Cross(other.vector)
}

// Negate returns the opposite direction.
func (d Direction3d) Negate() Direction3d {
	return Direction3d{vector: d.vector.Negate()}
}

// Times returns a vector of the given length pointing in this direction.
func (d Direction3d) Times(scale float64) Vector3d {
	return d.vector.Times(scale)
}

// Perpendicular returns an arbitrary direction orthogonal to d, chosen
// deterministically.
func (d Direction3d) Perpendicular() Direction3d {
	p := d.vector.Perpendicular()
	return UnsafeDirection3d(p.Times(1 / p.Length()))
}

// RotateAround returns the direction rotated by the given angle in radians
// around the axis. Rotation preserves length, so the result is constructed
// directly as a direction.
func (d Direction3d) RotateAround(axis Axis3d, angle float64) Direction3d {
	return RotationAround(axis, angle).RotateDirection(d)
}

// MirrorAcross returns the direction reflected in the plane's orientation.
func (d Direction3d) MirrorAcross(plane Plane3d) Direction3d {
	return MirrorAcrossPlane(plane).MirrorDirection(d)
}

// ToLocalIn expresses the direction in the frame's local coordinate system.
// An orthonormal basis change preserves length.
func (d Direction3d) ToLocalIn(frame Frame3d) Direction3d {
	return UnsafeDirection3d(d.vector.ToLocalIn(frame))
}

// FromLocalIn converts a direction expressed in the frame's local coordinate
// system back to a global direction.
func (d Direction3d) FromLocalIn(frame Frame3d) Direction3d {
	return UnsafeDirection3d(d.vector.FromLocalIn(frame))
}

// EqualWithin reports whether two directions agree component-wise within
// the given absolute tolerance.
func (d Direction3d) EqualWithin(other Direction3d, tolerance float64) bool {
	return d.vector.EqualWithin(other.vector, tolerance)
}
