package lattice

import "github.com/openpl/openpl/geom"

// BuildIsotropicGrid is the "isotropic voxel grid" consumed interface of
// spec.md §6: given an AABB and a target per-axis cell count, it returns the
// centre position of every cell (flattened in the lattice's own x + y*X +
// z*X*Y order) and the X-axis cell edge length. Each axis's edge length is
// derived independently as that axis's span divided by its count, so cells
// are cubic only when every side is a whole multiple of the same h; when
// isotropicCounts rounds a count up for a side that is not, that axis's
// pitch differs from the others and the cells are not cubic.
func BuildIsotropicGrid(bounds geom.AABB, counts [3]int) (centres []geom.Vector3, cellSize float64) {
	ext := bounds.Extents()
	hx := ext.X() / float64(counts[0])
	hy := ext.Y() / float64(counts[1])
	hz := ext.Z() / float64(counts[2])

	centres = make([]geom.Vector3, counts[0]*counts[1]*counts[2])
	idx := func(x, y, z int) int { return x + y*counts[0] + z*counts[0]*counts[1] }

	for z := 0; z < counts[2]; z++ {
		cz := bounds.Min.Z() + (float64(z)+0.5)*hz
		for y := 0; y < counts[1]; y++ {
			cy := bounds.Min.Y() + (float64(y)+0.5)*hy
			for x := 0; x < counts[0]; x++ {
				cx := bounds.Min.X() + (float64(x)+0.5)*hx
				centres[idx(x, y, z)] = geom.Vector3{cx, cy, cz}
			}
		}
	}
	// Report the X-axis pitch as the representative cell size; hy and hz
	// equal it only when every side is a whole multiple of the same h.
	return centres, hx
}
