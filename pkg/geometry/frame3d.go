package geometry

// Frame3d is a local coordinate system in 3D space: an origin point plus
// three basis directions. The basis is expected to be orthonormal and
// right-handed; this is a caller contract and is not checked at runtime.
type Frame3d struct {
	OriginPoint Point3d
	XDirection  Direction3d
	YDirection  Direction3d
	ZDirection  Direction3d
}

// NewFrame3d creates a frame from an origin point and basis directions.
func NewFrame3d(originPoint Point3d, xDirection, yDirection, zDirection Direction3d) Frame3d {
	return Frame3d{
		OriginPoint: originPoint,
		XDirection:  xDirection,
		YDirection:  yDirection,
		ZDirection:  zDirection,
	}
}

// GlobalFrame3d returns the global coordinate system: origin at the global
// origin, axes aligned with the global axes.
func GlobalFrame3d() Frame3d {
	return Frame3d{
		OriginPoint: Origin3d(),
		XDirection:  XDirection3d(),
		YDirection:  YDirection3d(),
		ZDirection:  ZDirection3d(),
	}
}

// FrameAt returns a frame with the global axis directions but the given
// origin point.
func FrameAt(originPoint Point3d) Frame3d {
	f := GlobalFrame3d()
	f.OriginPoint = originPoint
	return f
}

// XAxis returns the frame's X axis.
func (f Frame3d) XAxis() Axis3d {
	return Axis3d{OriginPoint: f.OriginPoint, Direction: f.XDirection}
}

// YAxis returns the frame's Y axis.
func (f Frame3d) YAxis() Axis3d {
	return Axis3d{OriginPoint: f.OriginPoint, Direction: f.YDirection}
}

// ZAxis returns the frame's Z axis.
func (f Frame3d) ZAxis() Axis3d {
	return Axis3d{OriginPoint: f.OriginPoint, Direction: f.ZDirection}
}

// XYPlaneOf returns the frame's XY plane, with the frame's Z direction as
// normal.
func (f Frame3d) XYPlaneOf() Plane3d {
	return Plane3d{
		OriginPoint:     f.OriginPoint,
		XDirection:      f.XDirection,
		YDirection:      f.YDirection,
		NormalDirection: f.ZDirection,
	}
}

// Translated returns the frame moved by the given vector, keeping its
// orientation.
func (f Frame3d) Translated(v Vector3d) Frame3d {
	moved := f
	moved.OriginPoint = f.OriginPoint.Plus(v)
	return moved
}

// RotatedAround returns the frame rotated as a rigid body by the given
// angle in radians around the axis: the origin orbits the axis and the
// basis directions turn with it.
func (f Frame3d) RotatedAround(axis Axis3d, angle float64) Frame3d {
	rotation := RotationAround(axis, angle)
	return Frame3d{
		OriginPoint: rotation.RotatePoint(f.OriginPoint),
		XDirection:  rotation.RotateDirection(f.XDirection),
		YDirection:  rotation.RotateDirection(f.YDirection),
		ZDirection:  rotation.RotateDirection(f.ZDirection),
	}
}
