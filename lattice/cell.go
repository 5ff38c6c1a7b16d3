// Package lattice holds the voxel lattice: a dense, lexicographically
// indexed array of voxel cells plus the metadata describing the volume it
// discretises (spec.md §3–§4.2).
package lattice

import "github.com/openpl/openpl/geom"

// VoxelCell is one lattice cell. World position is set once at lattice
// construction and never mutated again; every other field is mutated only
// by the voxeliser (beta, absorptivity) or the FDTD kernel (pressure,
// velocity).
type VoxelCell struct {
	WorldPos     geom.Vector3
	Beta         float64 // rigidity: 1 = open air, 0 = solid wall
	Absorptivity float64 // wall absorption coefficient in [0,1], 0 for air
	Pressure     float64
	Vx, Vy, Vz   float64
}

// IsAir reports whether the cell is open air.
func (c VoxelCell) IsAir() bool { return c.Beta != 0 }

// IsWall reports whether the cell is a solid wall.
func (c VoxelCell) IsWall() bool { return c.Beta == 0 }
