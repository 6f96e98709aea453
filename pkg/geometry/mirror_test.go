package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMirrorVectorAcrossXYPlane(t *testing.T) {
	mirrored := NewVector3d(1, 2, 3).MirrorAcross(XYPlane())
	assert.Equal(t, NewVector3d(1, 2, -3), mirrored)
}

func TestMirrorVectorIgnoresPlaneOffset(t *testing.T) {
	v := NewVector3d(1, 2, 3)
	assert.Equal(t, v.MirrorAcross(XYPlane()), v.MirrorAcross(XYPlane().Offset(5)))
}

func TestMirrorInvolution(t *testing.T) {
	planes := []Plane3d{
		XYPlane(),
		YZPlane(),
		PlaneFromPointAndNormal(NewPoint3d(1, 2, 3), mustDirection3d(t, NewVector3d(1, -2, 2))),
	}
	v := NewVector3d(3.5, -1.25, 0.75)
	for _, plane := range planes {
		mirror := MirrorAcrossPlane(plane)
		twice := mirror.MirrorVector(mirror.MirrorVector(v))
		assert.True(t, twice.EqualWithin(v, 1e-12))
	}
}

func TestMirrorPointHonorsPlaneOffset(t *testing.T) {
	plane := XYPlane().Offset(1)
	mirrored := NewPoint3d(0, 0, 3).MirrorAcross(plane)
	assert.True(t, mirrored.EqualWithin(NewPoint3d(0, 0, -1), tolerance))

	// Points on the plane are fixed.
	onPlane := NewPoint3d(4, -7, 1).MirrorAcross(plane)
	assert.True(t, onPlane.EqualWithin(NewPoint3d(4, -7, 1), tolerance))
}

func TestMirrorPointInvolution(t *testing.T) {
	plane := PlaneFromPointAndNormal(NewPoint3d(-1, 0.5, 2), mustDirection3d(t, NewVector3d(3, 4, 0)))
	mirror := MirrorAcrossPlane(plane)
	p := NewPoint3d(2, -3, 4)
	twice := mirror.MirrorPoint(mirror.MirrorPoint(p))
	assert.True(t, twice.EqualWithin(p, 1e-12))
}

func TestMirrorMatrixInterop(t *testing.T) {
	m := MirrorAcrossPlane(XYPlane()).Matrix()
	assert.InDelta(t, 1, m.At(0, 0), tolerance)
	assert.InDelta(t, 1, m.At(1, 1), tolerance)
	assert.InDelta(t, -1, m.At(2, 2), tolerance)
}

func TestMirror2dAcrossXAxis(t *testing.T) {
	mirrored := NewPoint2d(1, 2).MirrorAcross(XAxis2d())
	assert.True(t, mirrored.EqualWithin(NewPoint2d(1, -2), tolerance))
}

func TestMirror2dHonorsAxisOffset(t *testing.T) {
	// Mirror line y = 1.
	axis := NewAxis2d(NewPoint2d(0, 1), XDirection2d())
	mirrored := NewPoint2d(0, 0).MirrorAcross(axis)
	assert.True(t, mirrored.EqualWithin(NewPoint2d(0, 2), tolerance))
}

func TestMirror2dVectorInvolution(t *testing.T) {
	axis := NewAxis2d(NewPoint2d(2, -1), mustDirection2d(t, NewVector2d(1, 2)))
	mirror := MirrorAcrossAxis(axis)
	v := NewVector2d(-3, 0.5)
	twice := mirror.MirrorVector(mirror.MirrorVector(v))
	assert.True(t, twice.EqualWithin(v, 1e-12))
}

// mustDirection2d normalizes a vector, failing the test on degenerate input.
func mustDirection2d(t *testing.T, v Vector2d) Direction2d {
	t.Helper()
	d, ok := v.Direction()
	if !ok {
		t.Fatalf("cannot build a direction from %+v", v)
	}
	return d
}
