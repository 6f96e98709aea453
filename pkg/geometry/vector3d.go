package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector3d represents a displacement or offset in 3D space. Unlike Point3d,
// which is a position, a Vector3d carries a direction and a magnitude.
type Vector3d struct {
	X, Y, Z float64
}

// NewVector3d creates a vector from its components.
func NewVector3d(x, y, z float64) Vector3d {
	return Vector3d{X: x, Y: y, Z: z}
}

// ZeroVector3d returns the zero vector.
func ZeroVector3d() Vector3d {
	return Vector3d{}
}

// ComponentIn returns the component of the vector in the given direction,
// that is, its dot product with the direction's underlying unit vector.
func (v Vector3d) ComponentIn(d Direction3d) float64 {
	return v.Dot(d.vector)
}

// Length returns the Euclidean norm of the vector.
func (v Vector3d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// SquaredLength returns the sum of the squared components. It avoids the
// square root of Length and is the cheaper choice for comparing magnitudes.
func (v Vector3d) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// IsZero reports whether every component is exactly zero.
func (v Vector3d) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Direction returns the unit direction the vector points in. The second
// return value is false when the vector is exactly the zero vector, which
// has no direction.
func (v Vector3d) Direction() (Direction3d, bool) {
	if v.IsZero() {
		return Direction3d{}, false
	}
	return UnsafeDirection3d(v.Times(1 / v.Length())), true
}

// Negate returns the vector pointing the opposite way.
func (v Vector3d) Negate() Vector3d {
	return Vector3d{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Plus returns the component-wise sum of two vectors.
func (v Vector3d) Plus(other Vector3d) Vector3d {
	return Vector3d{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Minus returns the component-wise difference of two vectors.
func (v Vector3d) Minus(other Vector3d) Vector3d {
	return Vector3d{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Times returns the vector scaled by a scalar.
func (v Vector3d) Times(scale float64) Vector3d {
	return Vector3d{
		X: v.X * scale,
		Y: v.Y * scale,
		Z: v.Z * scale,
	}
}

// Dot returns the dot product of two vectors.
func (v Vector3d) Dot(other Vector3d) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vector3d) Cross(other Vector3d) Vector3d {
	return Vector3d{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Perpendicular returns some vector orthogonal to v. The result is chosen by
// crossing in the coordinate axis with the smallest-magnitude component, so
// it is never degenerate for a nonzero input and is deterministic for all
// inputs. The result is generally not unit length.
func (v Vector3d) Perpendicular() Vector3d {
	absX := math.Abs(v.X)
	absY := math.Abs(v.Y)
	absZ := math.Abs(v.Z)
	if absX <= absY {
		if absX <= absZ {
			return Vector3d{X: 0, Y: -v.Z, Z: v.Y}
		}
		return Vector3d{X: -v.Y, Y: v.X, Z: 0}
	}
	if absY <= absZ {
		return Vector3d{X: v.Z, Y: 0, Z: -v.X}
	}
	return Vector3d{X: -v.Y, Y: v.X, Z: 0}
}

// RotateAround returns the vector rotated by the given angle in radians
// around the axis. Only the axis direction matters for a vector; its origin
// point is irrelevant. To rotate many vectors by the same angle, build the
// transform once with RotationAround and reuse it.
func (v Vector3d) RotateAround(axis Axis3d, angle float64) Vector3d {
	return RotationAround(axis, angle).RotateVector(v)
}

// MirrorAcross returns the vector reflected in the plane. Reflecting a
// vector only flips its orientation relative to the plane's normal; the
// plane's position in space has no effect.
func (v Vector3d) MirrorAcross(plane Plane3d) Vector3d {
	return MirrorAcrossPlane(plane).MirrorVector(v)
}

// ProjectionIn returns the vector's orthogonal projection onto the given
// direction.
func (v Vector3d) ProjectionIn(d Direction3d) Vector3d {
	return d.Times(v.ComponentIn(d))
}

// ProjectOntoAxis returns the vector's orthogonal projection onto the axis
// direction.
func (v Vector3d) ProjectOntoAxis(axis Axis3d) Vector3d {
	return v.ProjectionIn(axis.Direction)
}

// ProjectOnto returns the vector flattened into the plane: the input minus
// its component along the plane normal. A vector already lying in the plane
// comes back unchanged up to rounding.
func (v Vector3d) ProjectOnto(plane Plane3d) Vector3d {
	return v.Minus(v.ProjectionIn(plane.NormalDirection))
}

// ProjectInto expresses the vector in the plane's own 2D coordinate system,
// discarding the out-of-plane component.
func (v Vector3d) ProjectInto(plane Plane3d) Vector2d {
	return Vector2d{
		X: v.ComponentIn(plane.XDirection),
		Y: v.ComponentIn(plane.YDirection),
	}
}

// ToLocalIn converts the vector from global components to components in the
// frame's local coordinate system.
func (v Vector3d) ToLocalIn(frame Frame3d) Vector3d {
	return Vector3d{
		X: v.ComponentIn(frame.XDirection),
		Y: v.ComponentIn(frame.YDirection),
		Z: v.ComponentIn(frame.ZDirection),
	}
}

// FromLocalIn converts the vector from components in the frame's local
// coordinate system back to global components. It is the inverse of
// ToLocalIn for any orthonormal frame.
func (v Vector3d) FromLocalIn(frame Frame3d) Vector3d {
	return frame.XDirection.Times(v.X).
		Plus(frame.YDirection.Times(v.Y)).
		Plus(frame.ZDirection.Times(v.Z))
}

// Interpolate returns the linear interpolation between two vectors: t=0
// yields v, t=1 yields other.
func (v Vector3d) Interpolate(other Vector3d, t float64) Vector3d {
	return Vector3d{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
		Z: v.Z + (other.Z-v.Z)*t,
	}
}

// EqualWithin reports whether two vectors agree component-wise within the
// given absolute tolerance.
func (v Vector3d) EqualWithin(other Vector3d, tolerance float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, tolerance) &&
		scalar.EqualWithinAbs(v.Y, other.Y, tolerance) &&
		scalar.EqualWithinAbs(v.Z, other.Z, tolerance)
}
