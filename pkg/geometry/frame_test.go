package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3dBasisChangeInverse(t *testing.T) {
	frames := []Frame3d{
		GlobalFrame3d(),
		GlobalFrame3d().RotatedAround(ZAxis3d(), 0.8),
		GlobalFrame3d().
			RotatedAround(XAxis3d(), 1.1).
			RotatedAround(YAxis3d(), -0.4).
			Translated(NewVector3d(5, -6, 7)),
	}
	v := NewVector3d(1.5, -2.5, 3.5)
	for _, frame := range frames {
		roundTripped := v.ToLocalIn(frame).FromLocalIn(frame)
		assert.True(t, roundTripped.EqualWithin(v, tolerance))
	}
}

func TestPoint3dBasisChangeInverse(t *testing.T) {
	frame := GlobalFrame3d().
		RotatedAround(ZAxis3d(), math.Pi/5).
		Translated(NewVector3d(-1, 2, -3))
	p := NewPoint3d(4, 5, 6)
	roundTripped := p.ToLocalIn(frame).FromLocalIn(frame)
	assert.True(t, roundTripped.EqualWithin(p, tolerance))
}

func TestPointToLocalSubtractsOrigin(t *testing.T) {
	frame := FrameAt(NewPoint3d(1, 2, 3))
	local := NewPoint3d(1, 2, 3).ToLocalIn(frame)
	assert.True(t, local.EqualWithin(Origin3d(), tolerance))

	global := Origin3d().FromLocalIn(frame)
	assert.True(t, global.EqualWithin(NewPoint3d(1, 2, 3), tolerance))
}

func TestVectorIgnoresFrameOrigin(t *testing.T) {
	v := NewVector3d(1, 2, 3)
	assert.Equal(t, v.ToLocalIn(GlobalFrame3d()), v.ToLocalIn(FrameAt(NewPoint3d(10, 20, 30))))
}

func TestRotatedFrameStaysOrthonormal(t *testing.T) {
	frame := GlobalFrame3d().
		RotatedAround(NewAxis3d(NewPoint3d(1, 1, 1), mustDirection3d(t, NewVector3d(1, 2, 3))), 0.9)

	x := frame.XDirection.Vector()
	y := frame.YDirection.Vector()
	z := frame.ZDirection.Vector()

	assert.InDelta(t, 1, x.Length(), tolerance)
	assert.InDelta(t, 1, y.Length(), tolerance)
	assert.InDelta(t, 1, z.Length(), tolerance)
	assert.InDelta(t, 0, x.Dot(y), tolerance)
	assert.InDelta(t, 0, y.Dot(z), tolerance)
	assert.InDelta(t, 0, z.Dot(x), tolerance)
	// Right-handedness is preserved.
	assert.True(t, x.Cross(y).EqualWithin(z, tolerance))
}

func TestFrameAxes(t *testing.T) {
	frame := FrameAt(NewPoint3d(1, 2, 3))
	assert.Equal(t, NewPoint3d(1, 2, 3), frame.ZAxis().OriginPoint)
	assert.Equal(t, ZDirection3d(), frame.ZAxis().Direction)
	assert.Equal(t, frame.XYPlaneOf().NormalDirection, frame.ZDirection)
}

func TestPlaneFromPointAndNormal(t *testing.T) {
	normal := mustDirection3d(t, NewVector3d(1, -2, 2))
	plane := PlaneFromPointAndNormal(NewPoint3d(3, 2, 1), normal)

	x := plane.XDirection.Vector()
	y := plane.YDirection.Vector()
	n := plane.NormalDirection.Vector()

	assert.InDelta(t, 1, x.Length(), tolerance)
	assert.InDelta(t, 1, y.Length(), tolerance)
	assert.InDelta(t, 0, x.Dot(n), tolerance)
	assert.InDelta(t, 0, y.Dot(n), tolerance)
	assert.InDelta(t, 0, x.Dot(y), tolerance)
	assert.True(t, x.Cross(y).EqualWithin(n, tolerance))
}

func TestPlaneLifts(t *testing.T) {
	plane := XYPlane().Offset(2)

	lifted := plane.OnPlane(NewVector2d(3, 4))
	assert.Equal(t, NewVector3d(3, 4, 0), lifted)

	liftedPoint := plane.OnPlanePoint(NewPoint2d(3, 4))
	assert.Equal(t, NewPoint3d(3, 4, 2), liftedPoint)
}

func TestProjectIntoInvertsOnPlane(t *testing.T) {
	normal := mustDirection3d(t, NewVector3d(2, 1, -1))
	plane := PlaneFromPointAndNormal(NewPoint3d(1, 1, 1), normal)

	v2 := NewVector2d(1.5, -0.5)
	roundTripped := plane.OnPlane(v2).ProjectInto(plane)
	assert.True(t, roundTripped.EqualWithin(v2, tolerance))

	p2 := NewPoint2d(-2, 3)
	roundTrippedPoint := plane.OnPlanePoint(p2).ProjectInto(plane)
	assert.True(t, roundTrippedPoint.EqualWithin(p2, tolerance))
}

func TestAxisHelpers(t *testing.T) {
	axis := NewAxis3d(NewPoint3d(1, 0, 0), YDirection3d())
	assert.Equal(t, NewVector3d(0, 3, 0), axis.Along(3))
	assert.Equal(t, NewPoint3d(1, -2, 0), axis.PointAt(-2))

	plane := axis.NormalPlane()
	assert.Equal(t, axis.OriginPoint, plane.OriginPoint)
	assert.Equal(t, axis.Direction, plane.NormalDirection)

	require.Equal(t, axis, plane.NormalAxis())
}

func TestFrame2dRoundTrip(t *testing.T) {
	frame := NewFrame2d(
		NewPoint2d(2, -1),
		mustDirection2d(t, NewVector2d(1, 1)),
		mustDirection2d(t, NewVector2d(-1, 1)),
	)
	p := NewPoint2d(0.5, 4)
	roundTripped := p.ToLocalIn(frame).FromLocalIn(frame)
	assert.True(t, roundTripped.EqualWithin(p, tolerance))
}
