// Package fdtd implements the staggered-grid finite-difference time-domain
// acoustic solver of spec.md §4.5: a per-step pressure update, three
// velocity-component updates, and boundary-face absorption, with the full
// (cell, time) history retained for later extraction.
package fdtd

import "github.com/openpl/openpl/lattice"

// Kernel runs the FDTD time-stepping loop over a single voxel lattice.
type Kernel struct {
	Lattice     *lattice.VoxelLattice
	Constants   Constants
	SourceIndex int
}

// NewKernel builds a kernel bound to lat, injecting its pulse at sourceIndex
// (a flat lattice cell index, per spec.md §3's lexicographic mapping).
func NewKernel(lat *lattice.VoxelLattice, constants Constants, sourceIndex int) *Kernel {
	return &Kernel{Lattice: lat, Constants: constants, SourceIndex: sourceIndex}
}

// Simulate runs steps time steps and returns the retained (cell, time)
// history, per spec.md §4.5. grid is reused in place if its shape already
// matches (N cells, T steps); otherwise a fresh grid is allocated.
func (k *Kernel) Simulate(steps int, grid *SimulationGrid) *SimulationGrid {
	n := k.Lattice.Count()
	if !grid.SameShape(n, steps) {
		grid = NewSimulationGrid(n, steps)
	}

	pulse := k.Constants.GaussianPulse(steps)

	for t := 0; t < steps; t++ {
		k.stepPressure()
		k.stepVelocity()
		k.stepAbsorbingFaces()

		// Source injection happens before the snapshot so the retained
		// history satisfies spec.md §8's invariant that the source
		// cell's pressure at t=0 equals pulse[0] exactly — see
		// DESIGN.md for why this reorders the §4.5 step list.
		k.Lattice.Cells[k.SourceIndex].Pressure += pulse[t]

		for i, cell := range k.Lattice.Cells {
			grid.Set(i, t, cell)
		}
	}

	return grid
}

// velocityAt returns the velocity component of the given cell index along
// axis (0=x,1=y,2=z), used by stepPressure for ghost-boundary reads.
func velocityAt(lat *lattice.VoxelLattice, x, y, z, axis int) float64 {
	if !lat.InBounds(x, y, z) {
		return 0 // ghost: reads past the lattice edge see a zero neighbour.
	}
	c := lat.At(x, y, z)
	switch axis {
	case 0:
		return c.Vx
	case 1:
		return c.Vy
	default:
		return c.Vz
	}
}

// stepPressure is spec.md §4.5 step 1: pressure from velocity divergence.
func (k *Kernel) stepPressure() {
	lat := k.Lattice
	K := k.Constants.UpdateCoeff
	X, Y, Z := lat.Counts[0], lat.Counts[1], lat.Counts[2]

	prev := make([]float64, len(lat.Cells))
	for z := 0; z < Z; z++ {
		for y := 0; y < Y; y++ {
			for x := 0; x < X; x++ {
				i := lat.Index(x, y, z)
				c := &lat.Cells[i]
				div := (velocityAt(lat, x+1, y, z, 0) - c.Vx) +
					(velocityAt(lat, x, y+1, z, 1) - c.Vy) +
					(velocityAt(lat, x, y, z+1, 2) - c.Vz)
				prev[i] = c.Beta * (c.Pressure - K*div)
			}
		}
	}
	for i := range lat.Cells {
		lat.Cells[i].Pressure = prev[i]
	}
}

// stepVelocity is spec.md §4.5 step 2: all three axis updates, mandatory
// (no axis is ever skipped — see DESIGN.md's Open Question resolution).
func (k *Kernel) stepVelocity() {
	k.stepVelocityAxis(0)
	k.stepVelocityAxis(1)
	k.stepVelocityAxis(2)
}

// stepVelocityAxis updates every interior face along axis (0=x,1=y,2=z),
// starting at index 1 along that axis, per spec.md §4.5 step 2.
func (k *Kernel) stepVelocityAxis(axis int) {
	lat := k.Lattice
	K := k.Constants.UpdateCoeff
	X, Y, Z := lat.Counts[0], lat.Counts[1], lat.Counts[2]

	update := func(thisIdx, prevIdx int) float64 {
		this := &lat.Cells[thisIdx]
		prevC := &lat.Cells[prevIdx]

		yN := (1 - prevC.Absorptivity) / (1 + prevC.Absorptivity)
		yT := (1 - this.Absorptivity) / (1 + this.Absorptivity)

		grad := this.Pressure - prevC.Pressure
		airUpdate := velocityComponent(this, axis) - K*grad
		wallUpdate := (this.Beta*yN + prevC.Beta*yT) * (prevC.Pressure*prevC.Beta + this.Pressure*this.Beta)

		return this.Beta*prevC.Beta*airUpdate + (prevC.Beta-this.Beta)*wallUpdate
	}

	switch axis {
	case 0:
		for z := 0; z < Z; z++ {
			for y := 0; y < Y; y++ {
				for x := 1; x < X; x++ {
					i := lat.Index(x, y, z)
					p := lat.Index(x-1, y, z)
					lat.Cells[i].Vx = update(i, p)
				}
			}
		}
	case 1:
		for z := 0; z < Z; z++ {
			for y := 1; y < Y; y++ {
				for x := 0; x < X; x++ {
					i := lat.Index(x, y, z)
					p := lat.Index(x, y-1, z)
					lat.Cells[i].Vy = update(i, p)
				}
			}
		}
	default:
		for z := 1; z < Z; z++ {
			for y := 0; y < Y; y++ {
				for x := 0; x < X; x++ {
					i := lat.Index(x, y, z)
					p := lat.Index(x, y, z-1)
					lat.Cells[i].Vz = update(i, p)
				}
			}
		}
	}
}

func velocityComponent(c *lattice.VoxelCell, axis int) float64 {
	switch axis {
	case 0:
		return c.Vx
	case 1:
		return c.Vy
	default:
		return c.Vz
	}
}

// stepAbsorbingFaces is spec.md §4.5 step 3. The spec-quoted index formulas
// (XSize*(ZSize+1)+i, i*(ZSize+1)) don't match this lattice's lexicographic
// index and are treated as the defect spec.md §9 warns they might be; the
// faces are re-derived from lattice.Index directly. The chosen absorbing
// faces are z=0 and z=Z-1 (documented in DESIGN.md), overwriting the
// tangential Vz component with a first-order Mur-style absorber.
func (k *Kernel) stepAbsorbingFaces() {
	lat := k.Lattice
	X, Y, Z := lat.Counts[0], lat.Counts[1], lat.Counts[2]

	for y := 0; y < Y; y++ {
		for x := 0; x < X; x++ {
			front := lat.Index(x, y, 0)
			lat.Cells[front].Vz = -lat.Cells[front].Pressure

			back := lat.Index(x, y, Z-1)
			lat.Cells[back].Vz = lat.Cells[back].Pressure
		}
	}
}
