package fdtd

import "github.com/openpl/openpl/lattice"

// SimulationGrid is the retained (cell, time) history spec.md §3 calls for:
// a dense N*T array where entry (i,t) is the full voxel record at cell i at
// step t. It cannot be a gonum matrix because gonum matrices only hold
// float64, not struct-valued cells, so it is a flat slice with explicit
// row-major (cell,time) indexing instead.
type SimulationGrid struct {
	N, T  int
	Cells []lattice.VoxelCell
}

// NewSimulationGrid allocates a grid for n cells and t time steps.
func NewSimulationGrid(n, t int) *SimulationGrid {
	return &SimulationGrid{N: n, T: t, Cells: make([]lattice.VoxelCell, n*t)}
}

// SameShape reports whether g already has the given shape, so the scene
// facade can reuse an allocation across Simulate calls (spec.md §3's
// "lazily allocated on first Simulate and reused thereafter if shapes
// match").
func (g *SimulationGrid) SameShape(n, t int) bool {
	return g != nil && g.N == n && g.T == t
}

// At returns the recorded state of cell i at step t.
func (g *SimulationGrid) At(cell, step int) lattice.VoxelCell {
	return g.Cells[cell*g.T+step]
}

// Set records the state of cell i at step t.
func (g *SimulationGrid) Set(cell, step int, v lattice.VoxelCell) {
	g.Cells[cell*g.T+step] = v
}
