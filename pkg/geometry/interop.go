package geometry

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions for interop with other math libraries. All component
// round trips are exact: no arithmetic or normalization is performed, so
// FromComponents(v.Components()) reproduces v bit-for-bit.

// Components returns the vector's components as an array.
func (v Vector2d) Components() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// Vector2dFromComponents creates a vector from a component array.
func Vector2dFromComponents(components [2]float64) Vector2d {
	return Vector2d{X: components[0], Y: components[1]}
}

// Components returns the vector's components as an array.
func (v Vector3d) Components() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Vector3dFromComponents creates a vector from a component array.
func Vector3dFromComponents(components [3]float64) Vector3d {
	return Vector3d{X: components[0], Y: components[1], Z: components[2]}
}

// Components returns the point's coordinates as an array.
func (p Point2d) Components() [2]float64 {
	return [2]float64{p.X, p.Y}
}

// Point2dFromComponents creates a point from a coordinate array.
func Point2dFromComponents(components [2]float64) Point2d {
	return Point2d{X: components[0], Y: components[1]}
}

// Components returns the point's coordinates as an array.
func (p Point3d) Components() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// Point3dFromComponents creates a point from a coordinate array.
func Point3dFromComponents(components [3]float64) Point3d {
	return Point3d{X: components[0], Y: components[1], Z: components[2]}
}

// Components returns the direction's components as an array.
func (d Direction2d) Components() [2]float64 {
	return d.vector.Components()
}

// Components returns the direction's components as an array.
func (d Direction3d) Components() [3]float64 {
	return d.vector.Components()
}

// R3 returns the vector as a gonum spatial/r3 value.
func (v Vector3d) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Vector3dFromR3 creates a vector from a gonum spatial/r3 value.
func Vector3dFromR3(v r3.Vec) Vector3d {
	return Vector3d{X: v.X, Y: v.Y, Z: v.Z}
}

// R3 returns the point's coordinates as a gonum spatial/r3 value.
func (p Point3d) R3() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Point3dFromR3 creates a point from a gonum spatial/r3 value.
func Point3dFromR3(v r3.Vec) Point3d {
	return Point3d{X: v.X, Y: v.Y, Z: v.Z}
}

// Matrix returns the rotation's linear part as a dense 3×3 gonum matrix.
func (r Rotation3d) Matrix() *mat.Dense {
	m := r.matrix
	return mat.NewDense(3, 3, []float64{
		m[0], m[1], m[2],
		m[3], m[4], m[5],
		m[6], m[7], m[8],
	})
}

// Matrix returns the reflection's linear part as a dense 3×3 gonum matrix.
func (m Mirror3d) Matrix() *mat.Dense {
	h := m.matrix
	return mat.NewDense(3, 3, []float64{
		h[0], h[1], h[2],
		h[3], h[4], h[5],
		h[6], h[7], h[8],
	})
}
