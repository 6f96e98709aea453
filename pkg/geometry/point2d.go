package geometry

// Point2d represents a position in 2D space. Like Point3d it is an affine
// quantity, related to Vector2d only through differences and offsets.
type Point2d struct {
	X, Y float64
}

// NewPoint2d creates a point from its coordinates.
func NewPoint2d(x, y float64) Point2d {
	return Point2d{X: x, Y: y}
}

// Origin2d returns the global origin.
func Origin2d() Point2d {
	return Point2d{}
}

// Plus returns the point offset by the given vector.
func (p Point2d) Plus(v Vector2d) Point2d {
	return Point2d{X: p.X + v.X, Y: p.Y + v.Y}
}

// Minus returns the point offset by the negation of the given vector.
func (p Point2d) Minus(v Vector2d) Point2d {
	return Point2d{X: p.X - v.X, Y: p.Y - v.Y}
}

// VectorFrom returns the vector from the other point to p.
func (p Point2d) VectorFrom(other Point2d) Vector2d {
	return Vector2d{X: p.X - other.X, Y: p.Y - other.Y}
}

// VectorTo returns the vector from p to the other point.
func (p Point2d) VectorTo(other Point2d) Vector2d {
	return other.VectorFrom(p)
}

// DistanceFrom returns the Euclidean distance between two points.
func (p Point2d) DistanceFrom(other Point2d) float64 {
	return p.VectorFrom(other).Length()
}

// SquaredDistanceFrom returns the squared distance between two points.
func (p Point2d) SquaredDistanceFrom(other Point2d) float64 {
	return p.VectorFrom(other).SquaredLength()
}

// Midpoint returns the point halfway between two points.
func (p Point2d) Midpoint(other Point2d) Point2d {
	return p.Interpolate(other, 0.5)
}

// Interpolate returns the point a fraction t of the way from p to other.
func (p Point2d) Interpolate(other Point2d, t float64) Point2d {
	return Point2d{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
	}
}

// RotateAround returns the point rotated counterclockwise by the given
// angle in radians about the center point.
func (p Point2d) RotateAround(center Point2d, angle float64) Point2d {
	return RotationAroundPoint(center, angle).RotatePoint(p)
}

// MirrorAcross returns the point reflected across the axis line, honoring
// the axis origin.
func (p Point2d) MirrorAcross(axis Axis2d) Point2d {
	return MirrorAcrossAxis(axis).MirrorPoint(p)
}

// ProjectOntoAxis returns the closest point to p on the axis line.
func (p Point2d) ProjectOntoAxis(axis Axis2d) Point2d {
	displacement := p.VectorFrom(axis.OriginPoint)
	return axis.OriginPoint.Plus(displacement.ProjectionIn(axis.Direction))
}

// ToLocalIn converts the point from global coordinates to coordinates in
// the frame's local coordinate system.
func (p Point2d) ToLocalIn(frame Frame2d) Point2d {
	local := p.VectorFrom(frame.OriginPoint).ToLocalIn(frame)
	return Point2d{X: local.X, Y: local.Y}
}

// FromLocalIn converts the point from coordinates in the frame's local
// coordinate system back to global coordinates.
func (p Point2d) FromLocalIn(frame Frame2d) Point2d {
	global := Vector2d{X: p.X, Y: p.Y}.FromLocalIn(frame)
	return frame.OriginPoint.Plus(global)
}

// EqualWithin reports whether two points agree coordinate-wise within the
// given absolute tolerance.
func (p Point2d) EqualWithin(other Point2d, tolerance float64) bool {
	return p.VectorFrom(other).EqualWithin(Vector2d{}, tolerance)
}
