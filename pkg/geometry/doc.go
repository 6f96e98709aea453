// Package geometry provides immutable 2D and 3D geometric primitives:
// vectors, directions, points, axes, planes and coordinate frames, together
// with the arithmetic, transformation and coordinate-conversion operations
// over them.
//
// Every type is a plain value: operations never mutate their receiver, they
// return a new value. Because nothing is shared or mutated, values can be
// used freely across goroutines without synchronization.
//
// Rotations and mirrors come in two forms: one-shot convenience methods
// (Vector3d.RotateAround and friends) and explicit two-step transform values
// (RotationAround, MirrorAcrossPlane) that precompute the transformation
// matrix once so it can be applied to many vectors or points in a batch.
//
// All types serialize to a compact JSON form: vectors, points and directions
// become fixed-length number arrays, composite types become small objects.
// Decoding is strict about shape and rejects malformed input with a
// descriptive error.
package geometry
