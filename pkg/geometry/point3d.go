package geometry

// Point3d represents a position in 3D space. It is an affine quantity: two
// points cannot be added, but their difference is a Vector3d and a point can
// be offset by a vector.
type Point3d struct {
	X, Y, Z float64
}

// NewPoint3d creates a point from its coordinates.
func NewPoint3d(x, y, z float64) Point3d {
	return Point3d{X: x, Y: y, Z: z}
}

// Origin3d returns the global origin.
func Origin3d() Point3d {
	return Point3d{}
}

// Plus returns the point offset by the given vector.
func (p Point3d) Plus(v Vector3d) Point3d {
	return Point3d{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Minus returns the point offset by the negation of the given vector.
func (p Point3d) Minus(v Vector3d) Point3d {
	return Point3d{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z}
}

// VectorFrom returns the vector from the other point to p.
func (p Point3d) VectorFrom(other Point3d) Vector3d {
	return Vector3d{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// VectorTo returns the vector from p to the other point.
func (p Point3d) VectorTo(other Point3d) Vector3d {
	return other.VectorFrom(p)
}

// DistanceFrom returns the Euclidean distance between two points.
func (p Point3d) DistanceFrom(other Point3d) float64 {
	return p.VectorFrom(other).Length()
}

// SquaredDistanceFrom returns the squared distance between two points,
// avoiding the square root when only comparisons are needed.
func (p Point3d) SquaredDistanceFrom(other Point3d) float64 {
	return p.VectorFrom(other).SquaredLength()
}

// Midpoint returns the point halfway between two points.
func (p Point3d) Midpoint(other Point3d) Point3d {
	return p.Interpolate(other, 0.5)
}

// Interpolate returns the point a fraction t of the way from p to other:
// t=0 yields p, t=1 yields other.
func (p Point3d) Interpolate(other Point3d, t float64) Point3d {
	return Point3d{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
		Z: p.Z + (other.Z-p.Z)*t,
	}
}

// RotateAround returns the point rotated by the given angle in radians
// around the axis. Unlike vector rotation, the axis origin point matters:
// the point orbits the axis line, not the global origin.
func (p Point3d) RotateAround(axis Axis3d, angle float64) Point3d {
	return RotationAround(axis, angle).RotatePoint(p)
}

// MirrorAcross returns the point reflected through the plane, honoring the
// plane's actual position in space.
func (p Point3d) MirrorAcross(plane Plane3d) Point3d {
	return MirrorAcrossPlane(plane).MirrorPoint(p)
}

// ProjectOntoAxis returns the closest point to p on the axis line.
func (p Point3d) ProjectOntoAxis(axis Axis3d) Point3d {
	displacement := p.VectorFrom(axis.OriginPoint)
	return axis.OriginPoint.Plus(displacement.ProjectionIn(axis.Direction))
}

// ProjectOnto returns the closest point to p on the plane.
func (p Point3d) ProjectOnto(plane Plane3d) Point3d {
	displacement := p.VectorFrom(plane.OriginPoint)
	return p.Minus(displacement.ProjectionIn(plane.NormalDirection))
}

// ProjectInto expresses the point in the plane's own 2D coordinate system,
// discarding the out-of-plane coordinate.
func (p Point3d) ProjectInto(plane Plane3d) Point2d {
	displacement := p.VectorFrom(plane.OriginPoint)
	return Point2d{
		X: displacement.ComponentIn(plane.XDirection),
		Y: displacement.ComponentIn(plane.YDirection),
	}
}

// ToLocalIn converts the point from global coordinates to coordinates in
// the frame's local coordinate system.
func (p Point3d) ToLocalIn(frame Frame3d) Point3d {
	local := p.VectorFrom(frame.OriginPoint).ToLocalIn(frame)
	return Point3d{X: local.X, Y: local.Y, Z: local.Z}
}

// FromLocalIn converts the point from coordinates in the frame's local
// coordinate system back to global coordinates. It is the inverse of
// ToLocalIn for any orthonormal frame.
func (p Point3d) FromLocalIn(frame Frame3d) Point3d {
	global := Vector3d{X: p.X, Y: p.Y, Z: p.Z}.FromLocalIn(frame)
	return frame.OriginPoint.Plus(global)
}

// EqualWithin reports whether two points agree coordinate-wise within the
// given absolute tolerance.
func (p Point3d) EqualWithin(other Point3d, tolerance float64) bool {
	return p.VectorFrom(other).EqualWithin(Vector3d{}, tolerance)
}
