package voxelize

import (
	"math"

	"github.com/openpl/openpl/geom"
)

// epsilon guards against ray-triangle intersections landing exactly on a
// shared edge being double-counted (or missed) by two adjacent triangles.
const epsilon = 1e-9

// axisRayParity returns the number of triangles of mesh crossed by a ray
// fired from p toward +axis (axis 0=x,1=y,2=z). An odd count means p is
// inside the mesh along that one axis.
func axisRayParity(mesh *geom.TriangleMesh, p geom.Vector3, axis int) int {
	var origin, dir geom.Vector3
	switch axis {
	case 0:
		origin, dir = p, geom.Vector3{1, 0, 0}
	case 1:
		origin, dir = p, geom.Vector3{0, 1, 0}
	default:
		origin, dir = p, geom.Vector3{0, 0, 1}
	}

	count := 0
	nt := mesh.TriangleCount()
	for j := 0; j < nt; j++ {
		a, b, c := mesh.Triangle(j)
		if t, hit := rayTriangleIntersect(origin, dir, a, b, c); hit && t > epsilon {
			count++
		}
	}
	return count
}

// rayTriangleIntersect is the Möller–Trumbore test; it returns the ray
// parameter t and whether the ray hits the triangle at t >= 0.
func rayTriangleIntersect(origin, dir, a, b, c geom.Vector3) (float64, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	h := dir.Cross(e2)
	det := e1.Dot(h)
	if math.Abs(det) < epsilon {
		return 0, false
	}
	invDet := 1.0 / det
	s := origin.Sub(a)
	u := s.Dot(h) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * invDet
	if t < 0 {
		return 0, false
	}
	return t, true
}

// PointsInsideMesh is the "mesh-inside test" consumed interface of
// spec.md §6: given query points it returns one occupancy flag per point.
//
// Robustness to non-watertight meshes up to small defects (the spec's
// requirement) comes from casting one parity ray per axis and taking the
// majority of the three votes, rather than trusting a single ray direction
// that might graze a mesh gap.
func PointsInsideMesh(mesh *geom.TriangleMesh, points []geom.Vector3) []bool {
	inside := make([]bool, len(points))
	for i, p := range points {
		votes := 0
		for axis := 0; axis < 3; axis++ {
			if axisRayParity(mesh, p, axis)%2 == 1 {
				votes++
			}
		}
		inside[i] = votes >= 2
	}
	return inside
}
