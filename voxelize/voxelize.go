// Package voxelize turns world-space triangle meshes into per-cell
// occupancy and absorptivity on an existing lattice (spec.md §4.3).
package voxelize

import (
	"math"

	"github.com/openpl/openpl/geom"
	"github.com/openpl/openpl/lattice"
)

// MaterialParams carries the per-material constants the voxeliser needs.
// spec.md §4.3 hard-codes the wall absorptivity placeholder at 0.75; this
// struct is how that placeholder becomes a parameter (spec.md §9).
type MaterialParams struct {
	WallAbsorptivity float64
}

// DefaultMaterialParams matches spec.md's hard-coded placeholder exactly.
func DefaultMaterialParams() MaterialParams {
	return MaterialParams{WallAbsorptivity: 0.75}
}

// Logger is the subset of the root Logger interface voxelize depends on,
// kept narrow so this package has no import-cycle on the root package.
type Logger interface {
	Warnf(format string, args ...any)
}

// nopLogger discards every message; used when callers pass a nil Logger.
type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}

// FillVoxels classifies every cell of lat as open air or solid wall by
// testing it against every mesh in meshes, per spec.md §4.3. Meshes are
// applied in order; a cell claimed by more than one mesh keeps the
// classification of the last mesh that claimed it (last-writer-wins).
func FillVoxels(lat *lattice.VoxelLattice, meshes []*geom.TriangleMesh, mat MaterialParams, logger Logger) {
	if logger == nil {
		logger = nopLogger{}
	}

	for i := range lat.Cells {
		lat.Cells[i].Beta = 1
		lat.Cells[i].Absorptivity = 0
	}

	for _, mesh := range meshes {
		meshAABB := geom.ComputeAABB(mesh)
		if !meshAABB.Intersects(lat.Bounds) {
			continue
		}

		candidates := candidateCells(lat, meshAABB)
		if len(candidates) == 0 {
			logger.Warnf("voxelize: mesh AABB intersects lattice bounds but no candidate cells were found")
			continue
		}

		for _, idx := range candidates {
			samples := sampleCell(lat.Cells[idx].WorldPos, lat.CellSize)
			flags := PointsInsideMesh(mesh, samples[:])
			inside := 0
			for _, f := range flags {
				if f {
					inside++
				}
			}
			if inside >= 3 {
				lat.Cells[idx].Beta = 0
				lat.Cells[idx].Absorptivity = mat.WallAbsorptivity
			}
		}
	}
}

// candidateCells returns the indices of every cell whose cube (centre ±
// h/2) intersects meshAABB, per spec.md §4.3 step 3. The search is
// restricted to the index range the lattice bounds ∩ meshAABB could
// possibly touch — an equivalent, cheaper way to enumerate the same set
// the spec describes as a brute scan over every cell.
func candidateCells(lat *lattice.VoxelLattice, meshAABB geom.AABB) []int {
	h := lat.CellSize
	half := h / 2

	axisRange := func(axis int) (lo, hi int) {
		var boundsMin, meshMin, meshMax float64
		switch axis {
		case 0:
			boundsMin, meshMin, meshMax = lat.Bounds.Min.X(), meshAABB.Min.X(), meshAABB.Max.X()
		case 1:
			boundsMin, meshMin, meshMax = lat.Bounds.Min.Y(), meshAABB.Min.Y(), meshAABB.Max.Y()
		default:
			boundsMin, meshMin, meshMax = lat.Bounds.Min.Z(), meshAABB.Min.Z(), meshAABB.Max.Z()
		}
		lo = int(math.Floor((meshMin - boundsMin) / h))
		hi = int(math.Ceil((meshMax - boundsMin) / h))
		if lo < 0 {
			lo = 0
		}
		if hi > lat.Counts[axis]-1 {
			hi = lat.Counts[axis] - 1
		}
		return lo, hi
	}

	xlo, xhi := axisRange(0)
	ylo, yhi := axisRange(1)
	zlo, zhi := axisRange(2)

	var out []int
	for z := zlo; z <= zhi; z++ {
		for y := ylo; y <= yhi; y++ {
			for x := xlo; x <= xhi; x++ {
				idx := lat.Index(x, y, z)
				center := lat.Cells[idx].WorldPos
				cell := geom.AABB{
					Min: geom.Vector3{center.X() - half, center.Y() - half, center.Z() - half},
					Max: geom.Vector3{center.X() + half, center.Y() + half, center.Z() + half},
				}
				if cell.Intersects(meshAABB) {
					out = append(out, idx)
				}
			}
		}
	}
	return out
}

// sampleCell returns the 9-point sample set of spec.md §4.3 step 4: the
// cell centre plus its eight corners.
func sampleCell(center geom.Vector3, h float64) [9]geom.Vector3 {
	half := h / 2
	return [9]geom.Vector3{
		center,
		{center.X() - half, center.Y() - half, center.Z() - half},
		{center.X() + half, center.Y() - half, center.Z() - half},
		{center.X() - half, center.Y() + half, center.Z() - half},
		{center.X() + half, center.Y() + half, center.Z() - half},
		{center.X() - half, center.Y() - half, center.Z() + half},
		{center.X() + half, center.Y() - half, center.Z() + half},
		{center.X() - half, center.Y() + half, center.Z() + half},
		{center.X() + half, center.Y() + half, center.Z() + half},
	}
}
