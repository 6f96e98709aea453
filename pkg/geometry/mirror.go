package geometry

// Mirror3d is a reflection across a plane in 3D space, precomputed so it
// can be applied cheaply to many values. Build one with MirrorAcrossPlane.
type Mirror3d struct {
	origin Point3d
	matrix matrix3
}

// MirrorAcrossPlane builds the reflection across the given plane using the
// Householder formula I - 2nnᵀ on the plane normal.
func MirrorAcrossPlane(plane Plane3d) Mirror3d {
	n := plane.NormalDirection
	x, y, z := n.X(), n.Y(), n.Z()
	return Mirror3d{
		origin: plane.OriginPoint,
		matrix: matrix3{
			1 - 2*x*x, -2 * x * y, -2 * x * z,
			-2 * x * y, 1 - 2*y*y, -2 * y * z,
			-2 * x * z, -2 * y * z, 1 - 2*z*z,
		},
	}
}

// MirrorVector applies the reflection to a vector. Only the orientation is
// reflected; the plane's position in space has no effect on vectors.
func (m Mirror3d) MirrorVector(v Vector3d) Vector3d {
	return m.matrix.apply(v)
}

// MirrorPoint applies the reflection to a point, reflecting it through the
// actual plane the transform was built from.
func (m Mirror3d) MirrorPoint(p Point3d) Point3d {
	return m.origin.Plus(m.matrix.apply(p.VectorFrom(m.origin)))
}

// MirrorDirection applies the reflection to a direction. Reflection
// preserves length, so the result is wrapped directly.
func (m Mirror3d) MirrorDirection(d Direction3d) Direction3d {
	return UnsafeDirection3d(m.matrix.apply(d.Vector()))
}

// Mirror2d is a reflection across an axis line in 2D space, precomputed so
// it can be applied cheaply to many values. Build one with MirrorAcrossAxis.
type Mirror2d struct {
	origin Point2d
	// Row-major 2×2 reflection matrix.
	a, b, c, d float64
}

// MirrorAcrossAxis builds the reflection across the given axis line, using
// the Householder formula on the axis normal.
func MirrorAcrossAxis(axis Axis2d) Mirror2d {
	n := axis.Direction.Perpendicular()
	x, y := n.X(), n.Y()
	return Mirror2d{
		origin: axis.OriginPoint,
		a:      1 - 2*x*x, b: -2 * x * y,
		c: -2 * x * y, d: 1 - 2*y*y,
	}
}

// MirrorVector applies the reflection to a vector. Only the orientation is
// reflected; the axis position has no effect on vectors.
func (m Mirror2d) MirrorVector(v Vector2d) Vector2d {
	return Vector2d{
		X: m.a*v.X + m.b*v.Y,
		Y: m.c*v.X + m.d*v.Y,
	}
}

// MirrorPoint applies the reflection to a point, reflecting it across the
// actual axis line the transform was built from.
func (m Mirror2d) MirrorPoint(p Point2d) Point2d {
	return m.origin.Plus(m.MirrorVector(p.VectorFrom(m.origin)))
}

// MirrorDirection applies the reflection to a direction.
func (m Mirror2d) MirrorDirection(d Direction2d) Direction2d {
	return UnsafeDirection2d(m.MirrorVector(d.Vector()))
}
