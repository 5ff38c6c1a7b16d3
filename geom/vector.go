// Package geom holds the geometry primitives the rest of OpenPL builds on:
// vectors, rotations, bounding boxes, and triangle meshes in world space.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Vector3 is a double-precision point or direction in world metres.
type Vector3 = mgl64.Vec3

// Quaternion is a normalised rotation used once, to build a mesh's
// world-from-local transform.
type Quaternion = mgl64.Quat

// Transform builds the world-from-local matrix T = translate(P) * rotate(Q) * scale(S).
// This exact factor order is part of the contract.
func Transform(position Vector3, rotation Quaternion, scale Vector3) mgl64.Mat4 {
	t := mgl64.Translate3D(position.X(), position.Y(), position.Z())
	r := rotation.Mat4()
	s := mgl64.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(r).Mul4(s)
}

// ApplyPoint transforms a point through m using homogeneous coordinates.
func ApplyPoint(m mgl64.Mat4, p Vector3) Vector3 {
	return m.Mul4x1(p.Vec4(1.0)).Vec3()
}
