// Command openpldemo drives the OpenPL embedding API end to end: it
// ingests a single unit-cube mesh, voxelises a small domain around it,
// polls until voxelisation finishes, runs the FDTD kernel, and prints a
// handful of voxel samples. It stands in for the host-engine bindings
// spec.md §1 places out of scope.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/openpl/openpl"
	"github.com/openpl/openpl/async"
	"github.com/openpl/openpl/geom"
)

func unitCube() ([]float64, []int) {
	verts := []float64{
		-0.5, -0.5, -0.5,
		0.5, -0.5, -0.5,
		0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5,
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5,
	}
	indices := []int{
		0, 1, 2, 0, 2, 3, // back
		4, 6, 5, 4, 7, 6, // front
		0, 4, 5, 0, 5, 1, // bottom
		3, 2, 6, 3, 6, 7, // top
		1, 5, 6, 1, 6, 2, // right
		4, 0, 3, 4, 3, 7, // left
	}
	return verts, indices
}

func main() {
	steps := flag.Int("steps", 50, "number of FDTD time steps")
	flag.Parse()

	system := openpl.NewSystem()
	scene := system.NewScene()

	verts, indices := unitCube()
	if _, res := scene.AddAndConvertGameMesh(
		geom.Vector3{0, 0, 0}, geom.Quaternion{W: 1}, geom.Vector3{1, 1, 1},
		verts, len(verts)/3, indices, len(indices),
	); res != nil {
		panic(res)
	}

	if _, res := scene.AddSourceLocation(geom.Vector3{0, 0, 0}); res != nil {
		panic(res)
	}

	if res := scene.Voxelise(geom.Vector3{0, 0, 0}, geom.Vector3{10, 10, 10}, 1); res != nil {
		panic(res)
	}

	for scene.VoxeliseStatus() == async.Ongoing {
		time.Sleep(time.Millisecond)
	}

	if res := scene.Simulate(*steps); res != nil {
		panic(res)
	}

	fmt.Printf("voxels: %d\n", scene.GetVoxelsCount())
	for i := 0; i < scene.GetVoxelsCount() && i < 5; i++ {
		loc, _ := scene.GetVoxelLocation(i)
		abs, _ := scene.GetVoxelAbsorptivity(i)
		fmt.Printf("cell %d: pos=%v absorptivity=%.2f\n", i, loc, abs)
	}
}
