package geometry

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// matrix3 is a 3×3 matrix stored row-major.
type matrix3 [9]float64

// apply returns the matrix-vector product m·v.
func (m matrix3) apply(v Vector3d) Vector3d {
	return Vector3d{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Rotation3d is a rotation about an axis in 3D space, precomputed so it can
// be applied cheaply to many values. Build one with RotationAround.
type Rotation3d struct {
	origin Point3d
	matrix matrix3
}

// RotationAround builds the rotation by the given angle in radians around
// the axis, following the right-hand rule. Internally a unit quaternion is
// formed from the half-angle and the axis direction, then converted to a
// 3×3 rotation matrix once; the matrix is reused by every apply call.
func RotationAround(axis Axis3d, angle float64) Rotation3d {
	halfSin, halfCos := math.Sincos(0.5 * angle)
	d := axis.Direction
	q := quat.Number{
		Real: halfCos,
		Imag: halfSin * d.X(),
		Jmag: halfSin * d.Y(),
		Kmag: halfSin * d.Z(),
	}
	return Rotation3d{
		origin: axis.OriginPoint,
		matrix: matrixFromQuaternion(q),
	}
}

// matrixFromQuaternion converts a unit quaternion to its rotation matrix by
// the standard formula.
func matrixFromQuaternion(q quat.Number) matrix3 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return matrix3{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	}
}

// RotateVector applies the rotation to a vector. The rotation origin is
// irrelevant for vectors, only the orientation changes.
func (r Rotation3d) RotateVector(v Vector3d) Vector3d {
	return r.matrix.apply(v)
}

// RotatePoint applies the rotation to a point, rotating it about the axis
// the transform was built from rather than the global origin.
func (r Rotation3d) RotatePoint(p Point3d) Point3d {
	return r.origin.Plus(r.matrix.apply(p.VectorFrom(r.origin)))
}

// RotateDirection applies the rotation to a direction. Rotation preserves
// length, so the result is wrapped directly.
func (r Rotation3d) RotateDirection(d Direction3d) Direction3d {
	return UnsafeDirection3d(r.matrix.apply(d.Vector()))
}

// Rotation2d is a rotation about a point in 2D space, precomputed so it can
// be applied cheaply to many values. Build one with RotationAroundPoint.
type Rotation2d struct {
	center   Point2d
	sin, cos float64
}

// RotationAroundPoint builds the counterclockwise rotation by the given
// angle in radians about the center point.
func RotationAroundPoint(center Point2d, angle float64) Rotation2d {
	sin, cos := math.Sincos(angle)
	return Rotation2d{center: center, sin: sin, cos: cos}
}

// RotateVector applies the rotation to a vector. The rotation center is
// irrelevant for vectors.
func (r Rotation2d) RotateVector(v Vector2d) Vector2d {
	return Vector2d{
		X: v.X*r.cos - v.Y*r.sin,
		Y: v.X*r.sin + v.Y*r.cos,
	}
}

// RotatePoint applies the rotation to a point, rotating it about the center
// the transform was built from.
func (r Rotation2d) RotatePoint(p Point2d) Point2d {
	return r.center.Plus(r.RotateVector(p.VectorFrom(r.center)))
}

// RotateDirection applies the rotation to a direction.
func (r Rotation2d) RotateDirection(d Direction2d) Direction2d {
	return UnsafeDirection2d(r.RotateVector(d.Vector()))
}
