package geom

import "math"

// AABB is an axis-aligned bounding box. Min and Max are inclusive corners.
type AABB struct {
	Min Vector3
	Max Vector3
}

// NewAABB builds an AABB from two corners, fixing up min/max component-wise.
func NewAABB(a, b Vector3) AABB {
	return AABB{
		Min: Vector3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())},
		Max: Vector3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())},
	}
}

// Contains reports whether other lies entirely within b, inclusive of faces.
func (b AABB) Contains(other AABB) bool {
	return other.Min.X() >= b.Min.X() && other.Min.Y() >= b.Min.Y() && other.Min.Z() >= b.Min.Z() &&
		other.Max.X() <= b.Max.X() && other.Max.Y() <= b.Max.Y() && other.Max.Z() <= b.Max.Z()
}

// ContainsPoint reports whether p lies within b, inclusive of faces.
func (b AABB) ContainsPoint(p Vector3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Intersects reports whether b and other overlap; boxes that merely touch
// faces are considered intersecting.
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X() <= other.Max.X() && b.Max.X() >= other.Min.X() &&
		b.Min.Y() <= other.Max.Y() && b.Max.Y() >= other.Min.Y() &&
		b.Min.Z() <= other.Max.Z() && b.Max.Z() >= other.Min.Z()
}

// Union returns the smallest AABB containing both b and other.
func (b AABB) Union(other AABB) AABB {
	return NewAABB(
		Vector3{math.Min(b.Min.X(), other.Min.X()), math.Min(b.Min.Y(), other.Min.Y()), math.Min(b.Min.Z(), other.Min.Z())},
		Vector3{math.Max(b.Max.X(), other.Max.X()), math.Max(b.Max.Y(), other.Max.Y()), math.Max(b.Max.Z(), other.Max.Z())},
	)
}

// Extents returns the per-axis side lengths of b.
func (b AABB) Extents() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of b.
func (b AABB) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// FromPoints returns the smallest AABB enclosing all of points. Panics if
// points is empty; callers are expected to check length up front.
func FromPoints(points []Vector3) AABB {
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Union(AABB{Min: p, Max: p})
	}
	return box
}
