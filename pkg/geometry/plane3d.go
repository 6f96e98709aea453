package geometry

// Plane3d is a plane in 3D space carrying its own 2D coordinate system: an
// origin point, two in-plane basis directions and a normal direction. The
// three directions are expected to form a right-handed orthonormal set
// (XDirection cross YDirection equals NormalDirection); this is a caller
// contract and is not checked at runtime.
type Plane3d struct {
	OriginPoint     Point3d
	XDirection      Direction3d
	YDirection      Direction3d
	NormalDirection Direction3d
}

// NewPlane3d creates a plane from its origin point and basis directions.
// The caller is responsible for supplying a right-handed orthonormal set.
func NewPlane3d(originPoint Point3d, xDirection, yDirection, normalDirection Direction3d) Plane3d {
	return Plane3d{
		OriginPoint:     originPoint,
		XDirection:      xDirection,
		YDirection:      yDirection,
		NormalDirection: normalDirection,
	}
}

// PlaneFromPointAndNormal creates a plane through the given point with the
// given normal. The in-plane basis is chosen deterministically via
// Direction3d.Perpendicular and completed right-handed.
func PlaneFromPointAndNormal(originPoint Point3d, normalDirection Direction3d) Plane3d {
	xDirection := normalDirection.Perpendicular()
	yDirection := UnsafeDirection3d(normalDirection.Cross(xDirection))
	return Plane3d{
		OriginPoint:     originPoint,
		XDirection:      xDirection,
		YDirection:      yDirection,
		NormalDirection: normalDirection,
	}
}

// XYPlane returns the global XY plane, with normal in the positive Z
// direction.
func XYPlane() Plane3d {
	return Plane3d{
		OriginPoint:     Origin3d(),
		XDirection:      XDirection3d(),
		YDirection:      YDirection3d(),
		NormalDirection: ZDirection3d(),
	}
}

// YZPlane returns the global YZ plane, with normal in the positive X
// direction.
func YZPlane() Plane3d {
	return Plane3d{
		OriginPoint:     Origin3d(),
		XDirection:      YDirection3d(),
		YDirection:      ZDirection3d(),
		NormalDirection: XDirection3d(),
	}
}

// ZXPlane returns the global ZX plane, with normal in the positive Y
// direction.
func ZXPlane() Plane3d {
	return Plane3d{
		OriginPoint:     Origin3d(),
		XDirection:      ZDirection3d(),
		YDirection:      XDirection3d(),
		NormalDirection: YDirection3d(),
	}
}

// NormalAxis returns the axis through the plane origin in the normal
// direction.
func (p Plane3d) NormalAxis() Axis3d {
	return Axis3d{OriginPoint: p.OriginPoint, Direction: p.NormalDirection}
}

// OnPlane lifts a 2D vector expressed in the plane's coordinate system into
// a global 3D vector.
func (p Plane3d) OnPlane(v Vector2d) Vector3d {
	return p.XDirection.Times(v.X).Plus(p.YDirection.Times(v.Y))
}

// OnPlanePoint lifts a 2D point expressed in the plane's coordinate system
// into a global 3D point.
func (p Plane3d) OnPlanePoint(pt Point2d) Point3d {
	return p.OriginPoint.Plus(p.OnPlane(Vector2d{X: pt.X, Y: pt.Y}))
}

// Offset returns the plane translated along its own normal by the given
// signed distance.
func (p Plane3d) Offset(distance float64) Plane3d {
	moved := p
	moved.OriginPoint = p.OriginPoint.Plus(p.NormalDirection.Times(distance))
	return moved
}
