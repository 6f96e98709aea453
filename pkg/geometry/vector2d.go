package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector2d represents a displacement or offset in 2D space.
type Vector2d struct {
	X, Y float64
}

// NewVector2d creates a vector from its components.
func NewVector2d(x, y float64) Vector2d {
	return Vector2d{X: x, Y: y}
}

// ZeroVector2d returns the zero vector.
func ZeroVector2d() Vector2d {
	return Vector2d{}
}

// ComponentIn returns the component of the vector in the given direction.
func (v Vector2d) ComponentIn(d Direction2d) float64 {
	return v.Dot(d.vector)
}

// Length returns the Euclidean norm of the vector.
func (v Vector2d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SquaredLength returns the sum of the squared components.
func (v Vector2d) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether every component is exactly zero.
func (v Vector2d) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Direction returns the unit direction the vector points in. The second
// return value is false when the vector is exactly the zero vector.
func (v Vector2d) Direction() (Direction2d, bool) {
	if v.IsZero() {
		return Direction2d{}, false
	}
	return UnsafeDirection2d(v.Times(1 / v.Length())), true
}

// Negate returns the vector pointing the opposite way.
func (v Vector2d) Negate() Vector2d {
	return Vector2d{X: -v.X, Y: -v.Y}
}

// Plus returns the component-wise sum of two vectors.
func (v Vector2d) Plus(other Vector2d) Vector2d {
	return Vector2d{X: v.X + other.X, Y: v.Y + other.Y}
}

// Minus returns the component-wise difference of two vectors.
func (v Vector2d) Minus(other Vector2d) Vector2d {
	return Vector2d{X: v.X - other.X, Y: v.Y - other.Y}
}

// Times returns the vector scaled by a scalar.
func (v Vector2d) Times(scale float64) Vector2d {
	return Vector2d{X: v.X * scale, Y: v.Y * scale}
}

// Dot returns the dot product of two vectors.
func (v Vector2d) Dot(other Vector2d) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar 2D cross product, the z component of the 3D
// cross product of the two vectors lifted into the XY plane.
func (v Vector2d) Cross(other Vector2d) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Perpendicular returns the vector rotated a quarter turn counterclockwise.
func (v Vector2d) Perpendicular() Vector2d {
	return Vector2d{X: -v.Y, Y: v.X}
}

// RotateAround returns the vector rotated counterclockwise by the given
// angle in radians. A vector ignores the rotation center; to rotate many
// vectors, build the transform once with RotationAroundPoint and reuse it.
func (v Vector2d) RotateAround(center Point2d, angle float64) Vector2d {
	return RotationAroundPoint(center, angle).RotateVector(v)
}

// MirrorAcross returns the vector reflected in the axis. Only the axis
// direction matters for a vector.
func (v Vector2d) MirrorAcross(axis Axis2d) Vector2d {
	return MirrorAcrossAxis(axis).MirrorVector(v)
}

// ProjectionIn returns the vector's orthogonal projection onto the given
// direction.
func (v Vector2d) ProjectionIn(d Direction2d) Vector2d {
	return d.Times(v.ComponentIn(d))
}

// ProjectOntoAxis returns the vector's orthogonal projection onto the axis
// direction.
func (v Vector2d) ProjectOntoAxis(axis Axis2d) Vector2d {
	return v.ProjectionIn(axis.Direction)
}

// ToLocalIn converts the vector from global components to components in the
// frame's local coordinate system.
func (v Vector2d) ToLocalIn(frame Frame2d) Vector2d {
	return Vector2d{
		X: v.ComponentIn(frame.XDirection),
		Y: v.ComponentIn(frame.YDirection),
	}
}

// FromLocalIn converts the vector from components in the frame's local
// coordinate system back to global components.
func (v Vector2d) FromLocalIn(frame Frame2d) Vector2d {
	return frame.XDirection.Times(v.X).Plus(frame.YDirection.Times(v.Y))
}

// Interpolate returns the linear interpolation between two vectors: t=0
// yields v, t=1 yields other.
func (v Vector2d) Interpolate(other Vector2d, t float64) Vector2d {
	return Vector2d{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
	}
}

// EqualWithin reports whether two vectors agree component-wise within the
// given absolute tolerance.
func (v Vector2d) EqualWithin(other Vector2d, tolerance float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, tolerance) &&
		scalar.EqualWithinAbs(v.Y, other.Y, tolerance)
}
