package geometry

// Frame2d is a local coordinate system in 2D space: an origin point plus
// two basis directions. The basis is expected to be orthonormal; this is a
// caller contract and is not checked at runtime.
type Frame2d struct {
	OriginPoint Point2d
	XDirection  Direction2d
	YDirection  Direction2d
}

// NewFrame2d creates a frame from an origin point and basis directions.
func NewFrame2d(originPoint Point2d, xDirection, yDirection Direction2d) Frame2d {
	return Frame2d{
		OriginPoint: originPoint,
		XDirection:  xDirection,
		YDirection:  yDirection,
	}
}

// GlobalFrame2d returns the global coordinate system.
func GlobalFrame2d() Frame2d {
	return Frame2d{
		OriginPoint: Origin2d(),
		XDirection:  XDirection2d(),
		YDirection:  YDirection2d(),
	}
}

// XAxis returns the frame's X axis.
func (f Frame2d) XAxis() Axis2d {
	return Axis2d{OriginPoint: f.OriginPoint, Direction: f.XDirection}
}

// YAxis returns the frame's Y axis.
func (f Frame2d) YAxis() Axis2d {
	return Axis2d{OriginPoint: f.OriginPoint, Direction: f.YDirection}
}

// Translated returns the frame moved by the given vector, keeping its
// orientation.
func (f Frame2d) Translated(v Vector2d) Frame2d {
	moved := f
	moved.OriginPoint = f.OriginPoint.Plus(v)
	return moved
}

// RotatedAround returns the frame rotated as a rigid body counterclockwise
// by the given angle in radians about the center point.
func (f Frame2d) RotatedAround(center Point2d, angle float64) Frame2d {
	rotation := RotationAroundPoint(center, angle)
	return Frame2d{
		OriginPoint: rotation.RotatePoint(f.OriginPoint),
		XDirection:  rotation.RotateDirection(f.XDirection),
		YDirection:  rotation.RotateDirection(f.YDirection),
	}
}
