package openpl

import (
	"math"
	"sync"

	"github.com/openpl/openpl/async"
	"github.com/openpl/openpl/fdtd"
	"github.com/openpl/openpl/geom"
	"github.com/openpl/openpl/lattice"
	"github.com/openpl/openpl/plerr"
	"github.com/openpl/openpl/voxelize"
)

// Scene owns a mesh list, listener and source location lists, one voxel
// lattice, one simulation grid, and one voxeliser worker — spec.md §3's
// ownership model exactly. A Scene is not safe to mutate (AddMesh and
// friends) concurrently with Voxelise running; mutation while Ongoing is
// rejected rather than left as undefined behaviour (spec.md §5).
type Scene struct {
	system *System // non-owning back-reference

	mu        sync.Mutex
	meshes    []*geom.TriangleMesh
	listeners []geom.Vector3
	sources   []geom.Vector3

	lat    *lattice.VoxelLattice
	grid   *fdtd.SimulationGrid
	driver *async.Driver
}

func newScene(system *System) *Scene {
	return &Scene{
		system: system,
		driver: async.NewDriver(),
	}
}

// AddAndConvertGameMesh ingests a mesh under a world-space rigid+scale
// transform and returns its stable index (spec.md §4.4, §4.6).
func (s *Scene) AddAndConvertGameMesh(position geom.Vector3, rotation geom.Quaternion, scale geom.Vector3, verts []float64, nv int, indices []int, ni int) (int, *plerr.Result) {
	mesh, res := buildMesh(position, rotation, scale, verts, nv, indices, ni)
	if res != nil {
		return 0, res
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rejectIfVoxelisingLocked(); err != nil {
		return 0, err
	}
	s.meshes = append(s.meshes, mesh)
	return len(s.meshes) - 1, nil
}

// RemoveMesh removes the mesh at index i, shifting later indices down by
// one (spec.md §4.6).
func (s *Scene) RemoveMesh(i int) *plerr.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rejectIfVoxelisingLocked(); err != nil {
		return err
	}
	if i < 0 || i >= len(s.meshes) {
		return plerr.Genericf("mesh index %d out of range [0,%d)", i, len(s.meshes))
	}
	s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
	return nil
}

// AddListenerLocation appends a listener location and returns its stable
// index.
func (s *Scene) AddListenerLocation(v geom.Vector3) (int, *plerr.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rejectIfVoxelisingLocked(); err != nil {
		return 0, err
	}
	s.listeners = append(s.listeners, v)
	return len(s.listeners) - 1, nil
}

// RemoveListenerLocation removes the listener location at index i.
func (s *Scene) RemoveListenerLocation(i int) *plerr.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rejectIfVoxelisingLocked(); err != nil {
		return err
	}
	if i < 0 || i >= len(s.listeners) {
		return plerr.Genericf("listener index %d out of range [0,%d)", i, len(s.listeners))
	}
	s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
	return nil
}

// AddSourceLocation appends a source location and returns its stable index.
func (s *Scene) AddSourceLocation(v geom.Vector3) (int, *plerr.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rejectIfVoxelisingLocked(); err != nil {
		return 0, err
	}
	s.sources = append(s.sources, v)
	return len(s.sources) - 1, nil
}

// RemoveSourceLocation removes the source location at index i.
func (s *Scene) RemoveSourceLocation(i int) *plerr.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rejectIfVoxelisingLocked(); err != nil {
		return err
	}
	if i < 0 || i >= len(s.sources) {
		return plerr.Genericf("source index %d out of range [0,%d)", i, len(s.sources))
	}
	s.sources = append(s.sources[:i], s.sources[i+1:]...)
	return nil
}

// rejectIfVoxelisingLocked returns Generic if the voxeliser is currently
// Ongoing. Callers must hold s.mu. (spec.md §5: "calling list mutators
// while voxelisation is Ongoing is undefined behaviour; implementers
// should document and reject".)
func (s *Scene) rejectIfVoxelisingLocked() *plerr.Result {
	if s.driver.Poll() == async.Ongoing {
		return plerr.Genericf("scene mutation rejected while voxelisation is in progress")
	}
	return nil
}

// Voxelise validates its parameters synchronously (so malformed requests
// fail fast per spec.md §7) and then kicks off the async voxeliser
// (spec.md §4.2, §4.3, §4.7).
func (s *Scene) Voxelise(centre geom.Vector3, size geom.Vector3, cellSize float64) *plerr.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.meshes) == 0 {
		return plerr.Genericf("voxelise requires at least one registered mesh")
	}
	if cellSize <= 0 {
		return plerr.InvalidParamf("cell size must be positive, got %g", cellSize)
	}
	if size.X() < cellSize || size.Y() < cellSize || size.Z() < cellSize {
		return plerr.InvalidParamf("cell size %g is larger than some domain side in %v", cellSize, size)
	}

	meshesSnapshot := append([]*geom.TriangleMesh(nil), s.meshes...)
	materialParams := s.system.MaterialParams
	logger := s.system.Logger

	s.driver.Start(func() error {
		lat, res := lattice.New(centre, size, cellSize)
		if res != nil {
			// Validated above; a failure here is an internal invariant
			// violation, not a caller mistake.
			logger.Errorf("voxelise worker: lattice construction failed despite validation: %v", res)
			return res
		}
		voxelize.FillVoxels(lat, meshesSnapshot, materialParams, logger)

		s.mu.Lock()
		s.lat = lat
		s.mu.Unlock()
		return nil
	})
	return nil
}

// Simulate blocks until any in-flight voxelisation completes, then runs
// the FDTD kernel for steps time steps and retains the (cell, time)
// history (spec.md §4.5, §4.6).
func (s *Scene) Simulate(steps int) *plerr.Result {
	if err := s.driver.Join(); err != nil {
		return plerr.Genericf("voxelisation failed: %v", err)
	}

	s.mu.Lock()
	lat := s.lat
	sources := append([]geom.Vector3(nil), s.sources...)
	constants := s.system.Constants
	s.mu.Unlock()

	if lat == nil {
		return plerr.Genericf("simulate requires a completed voxelisation")
	}
	if len(sources) == 0 {
		return plerr.Genericf("simulate requires at least one source location")
	}
	if steps <= 0 {
		return plerr.InvalidParamf("simulate requires a positive step count, got %d", steps)
	}

	sourceIndex := nearestCellIndex(lat, sources[0])
	kernel := fdtd.NewKernel(lat, constants, sourceIndex)

	s.mu.Lock()
	grid := kernel.Simulate(steps, s.grid)
	s.grid = grid
	s.mu.Unlock()
	return nil
}

// nearestCellIndex maps a world-space point to the lattice cell whose
// centre is closest to it, clamping to the lattice's bounds.
func nearestCellIndex(lat *lattice.VoxelLattice, p geom.Vector3) int {
	ext := lat.Bounds.Extents()
	clampAxis := func(v, lo, extent float64, count int) int {
		h := extent / float64(count)
		idx := int(math.Floor((v - lo) / h))
		if idx < 0 {
			idx = 0
		}
		if idx > count-1 {
			idx = count - 1
		}
		return idx
	}
	x := clampAxis(p.X(), lat.Bounds.Min.X(), ext.X(), lat.Counts[0])
	y := clampAxis(p.Y(), lat.Bounds.Min.Y(), ext.Y(), lat.Counts[1])
	z := clampAxis(p.Z(), lat.Bounds.Min.Z(), ext.Z(), lat.Counts[2])
	return lat.Index(x, y, z)
}

// GetVoxelsCount returns X*Y*Z. While the voxeliser is Ongoing, it
// returns 0 so the caller's render loop can no-op cleanly (spec.md §4.6).
func (s *Scene) GetVoxelsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.driver.Poll() == async.Ongoing || s.lat == nil {
		return 0
	}
	return s.lat.Count()
}

// GetVoxelLocation returns the world-space centre of cell i, or the zero
// vector while the voxeliser is Ongoing (spec.md §4.6).
func (s *Scene) GetVoxelLocation(i int) (geom.Vector3, *plerr.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.driver.Poll() == async.Ongoing || s.lat == nil {
		return geom.Vector3{}, nil
	}
	if i < 0 || i >= len(s.lat.Cells) {
		return geom.Vector3{}, plerr.Genericf("voxel index %d out of range [0,%d)", i, len(s.lat.Cells))
	}
	return s.lat.Cells[i].WorldPos, nil
}

// GetVoxelAbsorptivity returns the wall absorption coefficient of cell i,
// or 0 while the voxeliser is Ongoing (spec.md §4.6).
func (s *Scene) GetVoxelAbsorptivity(i int) (float64, *plerr.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.driver.Poll() == async.Ongoing || s.lat == nil {
		return 0, nil
	}
	if i < 0 || i >= len(s.lat.Cells) {
		return 0, plerr.Genericf("voxel index %d out of range [0,%d)", i, len(s.lat.Cells))
	}
	return s.lat.Cells[i].Absorptivity, nil
}

// VoxeliseStatus exposes the async driver's current status, so a host can
// build its own poll loop around it if GetVoxelsCount's zero-value
// convention isn't enough.
func (s *Scene) VoxeliseStatus() async.Status {
	return s.driver.Poll()
}

// SimulationGrid returns the most recently retained (cell, time) history,
// or nil if Simulate has never completed.
func (s *Scene) SimulationGrid() *fdtd.SimulationGrid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// MeshCount returns the number of registered meshes.
func (s *Scene) MeshCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.meshes)
}
