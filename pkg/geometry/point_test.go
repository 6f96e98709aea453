package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint3dOffsets(t *testing.T) {
	p := NewPoint3d(1, 2, 3)
	v := NewVector3d(0.5, -1, 2)

	assert.Equal(t, NewPoint3d(1.5, 1, 5), p.Plus(v))
	assert.Equal(t, NewPoint3d(0.5, 3, 1), p.Minus(v))
}

func TestPoint3dVectorFrom(t *testing.T) {
	a := NewPoint3d(1, 2, 3)
	b := NewPoint3d(4, 6, 3)

	assert.Equal(t, NewVector3d(3, 4, 0), b.VectorFrom(a))
	assert.Equal(t, NewVector3d(3, 4, 0), a.VectorTo(b))
	assert.Equal(t, 5.0, a.DistanceFrom(b))
	assert.Equal(t, 25.0, a.SquaredDistanceFrom(b))
}

func TestPoint3dMidpoint(t *testing.T) {
	a := NewPoint3d(0, 0, 0)
	b := NewPoint3d(2, 4, -6)
	assert.Equal(t, NewPoint3d(1, 2, -3), a.Midpoint(b))
	assert.Equal(t, a.Midpoint(b), b.Midpoint(a))
}

func TestPoint3dInterpolate(t *testing.T) {
	a := NewPoint3d(1, 1, 1)
	b := NewPoint3d(5, 9, -3)
	assert.Equal(t, a, a.Interpolate(b, 0))
	assert.Equal(t, b, a.Interpolate(b, 1))
	assert.Equal(t, NewPoint3d(2, 3, 0), a.Interpolate(b, 0.25))
}

func TestPoint3dProjectOntoAxis(t *testing.T) {
	axis := NewAxis3d(NewPoint3d(0, 0, 1), XDirection3d())
	projected := NewPoint3d(3, 4, 5).ProjectOntoAxis(axis)
	assert.True(t, projected.EqualWithin(NewPoint3d(3, 0, 1), tolerance))
}

func TestPoint3dProjectOntoPlane(t *testing.T) {
	plane := XYPlane().Offset(1)
	projected := NewPoint3d(2, 3, 7).ProjectOnto(plane)
	assert.True(t, projected.EqualWithin(NewPoint3d(2, 3, 1), tolerance))

	// A point already on the plane is fixed.
	fixed := NewPoint3d(-4, 0, 1).ProjectOnto(plane)
	assert.True(t, fixed.EqualWithin(NewPoint3d(-4, 0, 1), tolerance))
}

func TestPoint3dProjectInto(t *testing.T) {
	plane := XYPlane().Offset(3)
	assert.Equal(t, NewPoint2d(1, 2), NewPoint3d(1, 2, 9).ProjectInto(plane))
}

func TestPoint2dOperations(t *testing.T) {
	a := NewPoint2d(1, 2)
	b := NewPoint2d(4, 6)

	assert.Equal(t, NewVector2d(3, 4), b.VectorFrom(a))
	assert.Equal(t, 5.0, a.DistanceFrom(b))
	assert.Equal(t, NewPoint2d(2.5, 4), a.Midpoint(b))
	assert.Equal(t, NewPoint2d(2, 4), a.Plus(NewVector2d(1, 2)))
}

func TestPoint2dProjectOntoAxis(t *testing.T) {
	// Axis along the line y = x through the origin.
	axis := NewAxis2d(Origin2d(), mustDirection2d(t, NewVector2d(1, 1)))
	projected := NewPoint2d(2, 0).ProjectOntoAxis(axis)
	assert.True(t, projected.EqualWithin(NewPoint2d(1, 1), tolerance))
}

func TestPoint3dComponentsRoundTrip(t *testing.T) {
	p := NewPoint3d(0.1, 0.2, 0.3)
	assert.Equal(t, p, Point3dFromComponents(p.Components()))

	p2 := NewPoint2d(-0.1, 0.7)
	assert.Equal(t, p2, Point2dFromComponents(p2.Components()))
}

func TestPoint3dR3RoundTrip(t *testing.T) {
	p := NewPoint3d(1.25, -2.5, 3.75)
	assert.Equal(t, p, Point3dFromR3(p.R3()))

	v := NewVector3d(-0.5, 0.25, 8)
	assert.Equal(t, v, Vector3dFromR3(v.R3()))
}
