package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector2dArithmetic(t *testing.T) {
	a := NewVector2d(1, 2)
	b := NewVector2d(3, -4)

	assert.Equal(t, NewVector2d(4, -2), a.Plus(b))
	assert.Equal(t, NewVector2d(-2, 6), a.Minus(b))
	assert.Equal(t, NewVector2d(-1, -2), a.Negate())
	assert.Equal(t, NewVector2d(2.5, 5), a.Times(2.5))
}

func TestVector2dLength(t *testing.T) {
	v := NewVector2d(3, 4)
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 25.0, v.SquaredLength())
}

func TestVector2dDotAndCross(t *testing.T) {
	a := NewVector2d(1, 2)
	b := NewVector2d(3, 4)
	assert.Equal(t, 11.0, a.Dot(b))
	assert.Equal(t, -2.0, a.Cross(b))
	assert.Equal(t, 2.0, b.Cross(a))
}

func TestVector2dPerpendicular(t *testing.T) {
	v := NewVector2d(2, 1)
	p := v.Perpendicular()
	assert.Equal(t, NewVector2d(-1, 2), p)
	assert.Equal(t, 0.0, p.Dot(v))
}

func TestVector2dDirection(t *testing.T) {
	d, ok := NewVector2d(0, -3).Direction()
	require.True(t, ok)
	assert.Equal(t, NewVector2d(0, -1), d.Vector())

	_, ok = ZeroVector2d().Direction()
	assert.False(t, ok)
}

func TestVector2dRotate(t *testing.T) {
	rotated := NewVector2d(1, 0).RotateAround(Origin2d(), math.Pi/2)
	assert.True(t, rotated.EqualWithin(NewVector2d(0, 1), tolerance))
}

func TestVector2dProjection(t *testing.T) {
	v := NewVector2d(3, 4)
	assert.Equal(t, NewVector2d(3, 0), v.ProjectOntoAxis(XAxis2d()))
	assert.Equal(t, NewVector2d(0, 4), v.ProjectionIn(YDirection2d()))
}

func TestVector2dLocalGlobalRoundTrip(t *testing.T) {
	frame := GlobalFrame2d().RotatedAround(Origin2d(), 0.3)
	v := NewVector2d(-1.5, 2.25)
	roundTripped := v.ToLocalIn(frame).FromLocalIn(frame)
	assert.True(t, roundTripped.EqualWithin(v, tolerance))
}

func TestDirection2dPerpendicular(t *testing.T) {
	d := XDirection2d().Perpendicular()
	assert.Equal(t, NewVector2d(0, 1), d.Vector())
}

func TestVector2dComponentsRoundTrip(t *testing.T) {
	v := NewVector2d(math.E, -math.Pi)
	assert.Equal(t, v, Vector2dFromComponents(v.Components()))
}
