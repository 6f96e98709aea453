package geometry

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The JSON forms are compact and positional: vectors, points and directions
// are fixed-length number arrays, composite types are objects whose fields
// hold those arrays. Decoding validates shape only; numeric contracts such
// as unit length are trusted, mirroring the construction contracts of the
// types themselves. Encoding and decoding involve no arithmetic, so a value
// round-trips bit-for-bit.

// decodeComponents parses a JSON number array of exactly n elements.
func decodeComponents(data []byte, n int, typeName string) ([]float64, error) {
	var components []float64
	if err := json.Unmarshal(data, &components); err != nil {
		return nil, fmt.Errorf("decoding %s: expected an array of %d numbers: %w", typeName, n, err)
	}
	if len(components) != n {
		return nil, fmt.Errorf("decoding %s: expected %d components, got %d", typeName, n, len(components))
	}
	return components, nil
}

// decodeObject parses a JSON object into target, rejecting unknown fields.
// The target's fields are pointers so missing fields can be detected by the
// caller.
func decodeObject(data []byte, typeName string, target interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("decoding %s: %w", typeName, err)
	}
	return nil
}

func missingField(typeName, fieldName string) error {
	return fmt.Errorf("decoding %s: missing field %q", typeName, fieldName)
}

// MarshalJSON encodes the vector as [x, y].
func (v Vector2d) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.X, v.Y})
}

// UnmarshalJSON decodes a [x, y] array.
func (v *Vector2d) UnmarshalJSON(data []byte) error {
	c, err := decodeComponents(data, 2, "Vector2d")
	if err != nil {
		return err
	}
	*v = Vector2d{X: c[0], Y: c[1]}
	return nil
}

// MarshalJSON encodes the vector as [x, y, z].
func (v Vector3d) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

// UnmarshalJSON decodes a [x, y, z] array.
func (v *Vector3d) UnmarshalJSON(data []byte) error {
	c, err := decodeComponents(data, 3, "Vector3d")
	if err != nil {
		return err
	}
	*v = Vector3d{X: c[0], Y: c[1], Z: c[2]}
	return nil
}

// MarshalJSON encodes the point as [x, y].
func (p Point2d) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes a [x, y] array.
func (p *Point2d) UnmarshalJSON(data []byte) error {
	c, err := decodeComponents(data, 2, "Point2d")
	if err != nil {
		return err
	}
	*p = Point2d{X: c[0], Y: c[1]}
	return nil
}

// MarshalJSON encodes the point as [x, y, z].
func (p Point3d) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Z})
}

// UnmarshalJSON decodes a [x, y, z] array.
func (p *Point3d) UnmarshalJSON(data []byte) error {
	c, err := decodeComponents(data, 3, "Point3d")
	if err != nil {
		return err
	}
	*p = Point3d{X: c[0], Y: c[1], Z: c[2]}
	return nil
}

// MarshalJSON encodes the direction the same way as its underlying vector,
// with no explicit unit-length marker.
func (d Direction2d) MarshalJSON() ([]byte, error) {
	return d.vector.MarshalJSON()
}

// UnmarshalJSON decodes a [x, y] array. The components are trusted to be
// unit length, like UnsafeDirection2d.
func (d *Direction2d) UnmarshalJSON(data []byte) error {
	c, err := decodeComponents(data, 2, "Direction2d")
	if err != nil {
		return err
	}
	*d = Direction2d{vector: Vector2d{X: c[0], Y: c[1]}}
	return nil
}

// MarshalJSON encodes the direction the same way as its underlying vector,
// with no explicit unit-length marker.
func (d Direction3d) MarshalJSON() ([]byte, error) {
	return d.vector.MarshalJSON()
}

// UnmarshalJSON decodes a [x, y, z] array. The components are trusted to be
// unit length, like UnsafeDirection3d.
func (d *Direction3d) UnmarshalJSON(data []byte) error {
	c, err := decodeComponents(data, 3, "Direction3d")
	if err != nil {
		return err
	}
	*d = Direction3d{vector: Vector3d{X: c[0], Y: c[1], Z: c[2]}}
	return nil
}

type axis2dJSON struct {
	OriginPoint Point2d     `json:"originPoint"`
	Direction   Direction2d `json:"direction"`
}

// MarshalJSON encodes the axis as {"originPoint": ..., "direction": ...}.
func (a Axis2d) MarshalJSON() ([]byte, error) {
	return json.Marshal(axis2dJSON{OriginPoint: a.OriginPoint, Direction: a.Direction})
}

// UnmarshalJSON decodes an {"originPoint", "direction"} object, rejecting
// missing or unknown fields.
func (a *Axis2d) UnmarshalJSON(data []byte) error {
	var raw struct {
		OriginPoint *Point2d     `json:"originPoint"`
		Direction   *Direction2d `json:"direction"`
	}
	if err := decodeObject(data, "Axis2d", &raw); err != nil {
		return err
	}
	switch {
	case raw.OriginPoint == nil:
		return missingField("Axis2d", "originPoint")
	case raw.Direction == nil:
		return missingField("Axis2d", "direction")
	}
	*a = Axis2d{OriginPoint: *raw.OriginPoint, Direction: *raw.Direction}
	return nil
}

type axis3dJSON struct {
	OriginPoint Point3d     `json:"originPoint"`
	Direction   Direction3d `json:"direction"`
}

// MarshalJSON encodes the axis as {"originPoint": ..., "direction": ...}.
func (a Axis3d) MarshalJSON() ([]byte, error) {
	return json.Marshal(axis3dJSON{OriginPoint: a.OriginPoint, Direction: a.Direction})
}

// UnmarshalJSON decodes an {"originPoint", "direction"} object, rejecting
// missing or unknown fields.
func (a *Axis3d) UnmarshalJSON(data []byte) error {
	var raw struct {
		OriginPoint *Point3d     `json:"originPoint"`
		Direction   *Direction3d `json:"direction"`
	}
	if err := decodeObject(data, "Axis3d", &raw); err != nil {
		return err
	}
	switch {
	case raw.OriginPoint == nil:
		return missingField("Axis3d", "originPoint")
	case raw.Direction == nil:
		return missingField("Axis3d", "direction")
	}
	*a = Axis3d{OriginPoint: *raw.OriginPoint, Direction: *raw.Direction}
	return nil
}

type plane3dJSON struct {
	OriginPoint     Point3d     `json:"originPoint"`
	XDirection      Direction3d `json:"xDirection"`
	YDirection      Direction3d `json:"yDirection"`
	NormalDirection Direction3d `json:"normalDirection"`
}

// MarshalJSON encodes the plane as an object holding its origin point and
// three directions.
func (p Plane3d) MarshalJSON() ([]byte, error) {
	return json.Marshal(plane3dJSON{
		OriginPoint:     p.OriginPoint,
		XDirection:      p.XDirection,
		YDirection:      p.YDirection,
		NormalDirection: p.NormalDirection,
	})
}

// UnmarshalJSON decodes a plane object, rejecting missing or unknown
// fields. The basis directions are trusted to be orthonormal.
func (p *Plane3d) UnmarshalJSON(data []byte) error {
	var raw struct {
		OriginPoint     *Point3d     `json:"originPoint"`
		XDirection      *Direction3d `json:"xDirection"`
		YDirection      *Direction3d `json:"yDirection"`
		NormalDirection *Direction3d `json:"normalDirection"`
	}
	if err := decodeObject(data, "Plane3d", &raw); err != nil {
		return err
	}
	switch {
	case raw.OriginPoint == nil:
		return missingField("Plane3d", "originPoint")
	case raw.XDirection == nil:
		return missingField("Plane3d", "xDirection")
	case raw.YDirection == nil:
		return missingField("Plane3d", "yDirection")
	case raw.NormalDirection == nil:
		return missingField("Plane3d", "normalDirection")
	}
	*p = Plane3d{
		OriginPoint:     *raw.OriginPoint,
		XDirection:      *raw.XDirection,
		YDirection:      *raw.YDirection,
		NormalDirection: *raw.NormalDirection,
	}
	return nil
}

type frame2dJSON struct {
	OriginPoint Point2d     `json:"originPoint"`
	XDirection  Direction2d `json:"xDirection"`
	YDirection  Direction2d `json:"yDirection"`
}

// MarshalJSON encodes the frame as an object holding its origin point and
// basis directions.
func (f Frame2d) MarshalJSON() ([]byte, error) {
	return json.Marshal(frame2dJSON{
		OriginPoint: f.OriginPoint,
		XDirection:  f.XDirection,
		YDirection:  f.YDirection,
	})
}

// UnmarshalJSON decodes a frame object, rejecting missing or unknown
// fields. The basis directions are trusted to be orthonormal.
func (f *Frame2d) UnmarshalJSON(data []byte) error {
	var raw struct {
		OriginPoint *Point2d     `json:"originPoint"`
		XDirection  *Direction2d `json:"xDirection"`
		YDirection  *Direction2d `json:"yDirection"`
	}
	if err := decodeObject(data, "Frame2d", &raw); err != nil {
		return err
	}
	switch {
	case raw.OriginPoint == nil:
		return missingField("Frame2d", "originPoint")
	case raw.XDirection == nil:
		return missingField("Frame2d", "xDirection")
	case raw.YDirection == nil:
		return missingField("Frame2d", "yDirection")
	}
	*f = Frame2d{
		OriginPoint: *raw.OriginPoint,
		XDirection:  *raw.XDirection,
		YDirection:  *raw.YDirection,
	}
	return nil
}

type frame3dJSON struct {
	OriginPoint Point3d     `json:"originPoint"`
	XDirection  Direction3d `json:"xDirection"`
	YDirection  Direction3d `json:"yDirection"`
	ZDirection  Direction3d `json:"zDirection"`
}

// MarshalJSON encodes the frame as an object holding its origin point and
// basis directions.
func (f Frame3d) MarshalJSON() ([]byte, error) {
	return json.Marshal(frame3dJSON{
		OriginPoint: f.OriginPoint,
		XDirection:  f.XDirection,
		YDirection:  f.YDirection,
		ZDirection:  f.ZDirection,
	})
}

// UnmarshalJSON decodes a frame object, rejecting missing or unknown
// fields. The basis directions are trusted to be orthonormal.
func (f *Frame3d) UnmarshalJSON(data []byte) error {
	var raw struct {
		OriginPoint *Point3d     `json:"originPoint"`
		XDirection  *Direction3d `json:"xDirection"`
		YDirection  *Direction3d `json:"yDirection"`
		ZDirection  *Direction3d `json:"zDirection"`
	}
	if err := decodeObject(data, "Frame3d", &raw); err != nil {
		return err
	}
	switch {
	case raw.OriginPoint == nil:
		return missingField("Frame3d", "originPoint")
	case raw.XDirection == nil:
		return missingField("Frame3d", "xDirection")
	case raw.YDirection == nil:
		return missingField("Frame3d", "yDirection")
	case raw.ZDirection == nil:
		return missingField("Frame3d", "zDirection")
	}
	*f = Frame3d{
		OriginPoint: *raw.OriginPoint,
		XDirection:  *raw.XDirection,
		YDirection:  *raw.YDirection,
		ZDirection:  *raw.ZDirection,
	}
	return nil
}
