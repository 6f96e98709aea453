package geometry

// Axis2d is a directed line in 2D space: an origin point plus a direction.
// It serves as a mirror line and a projection target.
type Axis2d struct {
	OriginPoint Point2d
	Direction   Direction2d
}

// NewAxis2d creates an axis from an origin point and a direction.
func NewAxis2d(originPoint Point2d, direction Direction2d) Axis2d {
	return Axis2d{OriginPoint: originPoint, Direction: direction}
}

// XAxis2d returns the global X axis.
func XAxis2d() Axis2d {
	return Axis2d{OriginPoint: Origin2d(), Direction: XDirection2d()}
}

// YAxis2d returns the global Y axis.
func YAxis2d() Axis2d {
	return Axis2d{OriginPoint: Origin2d(), Direction: YDirection2d()}
}

// Along returns a vector of the given magnitude in the axis direction.
func (a Axis2d) Along(magnitude float64) Vector2d {
	return a.Direction.Times(magnitude)
}

// PointAt returns the point the given signed distance along the axis from
// its origin.
func (a Axis2d) PointAt(distance float64) Point2d {
	return a.OriginPoint.Plus(a.Along(distance))
}

// Axis3d is a directed line in 3D space: an origin point plus a direction.
// It serves as a rotation axis and a projection target.
type Axis3d struct {
	OriginPoint Point3d
	Direction   Direction3d
}

// NewAxis3d creates an axis from an origin point and a direction.
func NewAxis3d(originPoint Point3d, direction Direction3d) Axis3d {
	return Axis3d{OriginPoint: originPoint, Direction: direction}
}

// XAxis3d returns the global X axis.
func XAxis3d() Axis3d {
	return Axis3d{OriginPoint: Origin3d(), Direction: XDirection3d()}
}

// YAxis3d returns the global Y axis.
func YAxis3d() Axis3d {
	return Axis3d{OriginPoint: Origin3d(), Direction: YDirection3d()}
}

// ZAxis3d returns the global Z axis.
func ZAxis3d() Axis3d {
	return Axis3d{OriginPoint: Origin3d(), Direction: ZDirection3d()}
}

// Along returns a vector of the given magnitude in the axis direction.
func (a Axis3d) Along(magnitude float64) Vector3d {
	return a.Direction.Times(magnitude)
}

// PointAt returns the point the given signed distance along the axis from
// its origin.
func (a Axis3d) PointAt(distance float64) Point3d {
	return a.OriginPoint.Plus(a.Along(distance))
}

// NormalPlane returns the plane through the axis origin whose normal is the
// axis direction. The in-plane basis is chosen deterministically.
func (a Axis3d) NormalPlane() Plane3d {
	return PlaneFromPointAndNormal(a.OriginPoint, a.Direction)
}
