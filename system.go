// Package openpl is the OpenPL embedding API: a host creates a System,
// creates one or more Scenes from it, feeds in meshes/listeners/sources,
// calls Voxelise then Simulate, then reads back per-voxel state
// (spec.md §6).
package openpl

import (
	"github.com/openpl/openpl/fdtd"
	"github.com/openpl/openpl/voxelize"
)

// System is the top-level handle a host owns. It carries the defaults
// every Scene it creates inherits: the logger collaborator, the FDTD
// physical constants, and the wall-material parameters (spec.md §9's
// "placeholder absorptivity... should become a parameter").
type System struct {
	Logger         Logger
	Constants      fdtd.Constants
	MaterialParams voxelize.MaterialParams
}

// NewSystem builds a System with spec.md's default physical constants
// (c=343.21 m/s, f_min=275 Hz) and the spec's placeholder wall
// absorptivity (0.75).
func NewSystem() *System {
	return &System{
		Logger:         NewDefaultLogger("openpl", false),
		Constants:      fdtd.DefaultConstants(),
		MaterialParams: voxelize.DefaultMaterialParams(),
	}
}

// NewScene creates a scene owned by this system (spec.md §3: "a
// back-reference to the owning system (non-owning)").
func (s *System) NewScene() *Scene {
	return newScene(s)
}
