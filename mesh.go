package openpl

import (
	"github.com/openpl/openpl/geom"
	"github.com/openpl/openpl/plerr"
	"gonum.org/v1/gonum/mat"
)

// buildMesh runs the mesh ingestion pipeline of spec.md §4.4: validate,
// build T = translate(P)·rotate(Q)·scale(S), apply T to every raw vertex
// via homogeneous coordinates, and pack the raw index stream into a
// (3, Ni/3) index matrix.
//
// verts is the flat xyz stream (length 3*nv); indices is the flat
// triangle-index stream (length ni). Grounded on core.Transform's
// ObjectToWorld T·R·S composition and asset_vox_model.go's
// validate-then-register ingestion shape.
func buildMesh(position geom.Vector3, rotation geom.Quaternion, scale geom.Vector3, verts []float64, nv int, indices []int, ni int) (*geom.TriangleMesh, *plerr.Result) {
	if verts == nil || indices == nil {
		return nil, plerr.InvalidParamf("mesh ingestion requires non-nil vertex and index data")
	}
	if nv < 4 {
		return nil, plerr.InvalidParamf("mesh needs at least 4 vertices, got %d", nv)
	}
	if ni < 4 {
		return nil, plerr.InvalidParamf("mesh needs at least 4 indices, got %d", ni)
	}
	if ni%3 != 0 {
		return nil, plerr.InvalidParamf("index count must be a multiple of 3, got %d", ni)
	}
	if len(verts) < 3*nv {
		return nil, plerr.InvalidParamf("vertex data too short: need %d floats for %d vertices, got %d", 3*nv, nv, len(verts))
	}
	if len(indices) < ni {
		return nil, plerr.InvalidParamf("index data too short: need %d entries, got %d", ni, len(indices))
	}

	transform := geom.Transform(position, rotation, scale)

	V := mat.NewDense(3, nv, nil)
	for i := 0; i < nv; i++ {
		local := geom.Vector3{verts[3*i], verts[3*i+1], verts[3*i+2]}
		world := geom.ApplyPoint(transform, local)
		V.Set(0, i, world.X())
		V.Set(1, i, world.Y())
		V.Set(2, i, world.Z())
	}

	nt := ni / 3
	I := geom.NewIndexMatrix(3, nt)
	for j := 0; j < nt; j++ {
		I.Set(0, j, indices[3*j])
		I.Set(1, j, indices[3*j+1])
		I.Set(2, j, indices[3*j+2])
	}

	return &geom.TriangleMesh{V: V, I: I}, nil
}
