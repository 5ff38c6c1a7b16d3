package lattice

import (
	"github.com/openpl/openpl/geom"
	"github.com/openpl/openpl/plerr"
)

// VoxelLattice is the entire voxel grid plus its scope metadata: the AABB
// bounds, the per-axis cell counts (X,Y,Z), the scalar cell edge length,
// and the dense array of X*Y*Z cells.
type VoxelLattice struct {
	Bounds   geom.AABB
	Counts   [3]int // X, Y, Z
	CellSize float64
	Cells    []VoxelCell
}

// Index maps a cell coordinate to its flat slice position, per spec.md §3's
// fixed lexicographic mapping i = x + y*X + z*X*Y.
func (l *VoxelLattice) Index(x, y, z int) int {
	return x + y*l.Counts[0] + z*l.Counts[0]*l.Counts[1]
}

// InBounds reports whether (x,y,z) is a valid cell coordinate.
func (l *VoxelLattice) InBounds(x, y, z int) bool {
	return x >= 0 && x < l.Counts[0] &&
		y >= 0 && y < l.Counts[1] &&
		z >= 0 && z < l.Counts[2]
}

// At returns the cell at (x,y,z). Callers must check InBounds first.
func (l *VoxelLattice) At(x, y, z int) *VoxelCell {
	return &l.Cells[l.Index(x, y, z)]
}

// Count returns X*Y*Z, the total number of cells.
func (l *VoxelLattice) Count() int {
	return l.Counts[0] * l.Counts[1] * l.Counts[2]
}

// New builds an empty (air-initialised is the caller's job) lattice from a
// centre, a per-axis extent, and a target isotropic cell edge length h, per
// spec.md §4.2.
//
// Rejections: a side shorter than h is InvalidParam (fewer than one cell
// would fit along that axis); a resulting axis count of zero is Generic
// (an internal invariant violation — isotropicCounts never produces this
// once the side-length check has passed, but the contract guards against
// it explicitly).
func New(center geom.Vector3, extent geom.Vector3, cellSize float64) (*VoxelLattice, *plerr.Result) {
	if cellSize <= 0 {
		return nil, plerr.InvalidParamf("cell size must be positive, got %g", cellSize)
	}
	if extent.X() < cellSize || extent.Y() < cellSize || extent.Z() < cellSize {
		return nil, plerr.InvalidParamf("extent %v smaller than cell size %g along some axis", extent, cellSize)
	}

	half := extent.Mul(0.5)
	bounds := geom.AABB{Min: center.Sub(half), Max: center.Add(half)}

	counts := isotropicCounts(extent, cellSize)
	if counts[0] == 0 || counts[1] == 0 || counts[2] == 0 {
		return nil, plerr.Genericf("isotropic grid produced a zero axis count for extent %v, cell size %g", extent, cellSize)
	}

	centres, actualCellSize := BuildIsotropicGrid(bounds, counts)

	lat := &VoxelLattice{
		Bounds:   bounds,
		Counts:   counts,
		CellSize: actualCellSize,
		Cells:    make([]VoxelCell, counts[0]*counts[1]*counts[2]),
	}
	for z := 0; z < counts[2]; z++ {
		for y := 0; y < counts[1]; y++ {
			for x := 0; x < counts[0]; x++ {
				lat.Cells[lat.Index(x, y, z)].WorldPos = centres[lat.Index(x, y, z)]
			}
		}
	}
	return lat, nil
}

// isotropicCounts chooses per-axis cell counts so X ≈ floor(Sx/h) and
// likewise for Y,Z, rounding up by one when needed to fully cover the box
// (spec.md §4.2's "library may round counts up by one to fill the box").
func isotropicCounts(extent geom.Vector3, h float64) [3]int {
	axisCount := func(s float64) int {
		n := int(s / h)
		if float64(n)*h < s-1e-9 {
			n++
		}
		return n
	}
	return [3]int{axisCount(extent.X()), axisCount(extent.Y()), axisCount(extent.Z())}
}
