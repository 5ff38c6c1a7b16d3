package openpl

import (
	"testing"

	"github.com/openpl/openpl/geom"
	"github.com/openpl/openpl/plerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCubeStreams() ([]float64, []int) {
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
		0, 1, 2, 0, 2, 3,
		4, 6, 5, 4, 7, 6,
		0, 4, 5, 0, 5, 1,
		3, 2, 6, 3, 6, 7,
		1, 5, 6, 1, 6, 2,
		4, 0, 3, 4, 3, 7,
	}
	return verts, indices
}

func identityTransform() (geom.Vector3, geom.Quaternion, geom.Vector3) {
	return geom.Vector3{0, 0, 0}, geom.Quaternion{W: 1}, geom.Vector3{1, 1, 1}
}

func TestBuildMeshRejectsNilData(t *testing.T) {
	pos, rot, scale := identityTransform()
	_, res := buildMesh(pos, rot, scale, nil, 0, []int{0, 1, 2, 0}, 4)
	require.NotNil(t, res)
	assert.Equal(t, plerr.InvalidParam, res.Kind)

	_, res = buildMesh(pos, rot, scale, []float64{0, 0, 0}, 1, nil, 0)
	require.NotNil(t, res)
	assert.Equal(t, plerr.InvalidParam, res.Kind)
}

func TestBuildMeshRejectsTooFewVertices(t *testing.T) {
	pos, rot, scale := identityTransform()
	verts := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	_, res := buildMesh(pos, rot, scale, verts, 3, []int{0, 1, 2, 0}, 4)
	require.NotNil(t, res)
	assert.Equal(t, plerr.InvalidParam, res.Kind)
}

func TestBuildMeshRejectsTooFewIndices(t *testing.T) {
	pos, rot, scale := identityTransform()
	verts, _ := unitCubeStreams()
	_, res := buildMesh(pos, rot, scale, verts, 8, []int{0, 1, 2}, 3)
	require.NotNil(t, res)
	assert.Equal(t, plerr.InvalidParam, res.Kind)
}

func TestBuildMeshRejectsNonMultipleOfThreeIndices(t *testing.T) {
	pos, rot, scale := identityTransform()
	verts, indices := unitCubeStreams()
	_, res := buildMesh(pos, rot, scale, verts, 8, indices[:7], 7)
	require.NotNil(t, res)
	assert.Equal(t, plerr.InvalidParam, res.Kind)
}

func TestBuildMeshOrderPreservesIndicesAndAppliesTransform(t *testing.T) {
	verts, indices := unitCubeStreams()
	mesh, res := buildMesh(geom.Vector3{10, 0, 0}, geom.Quaternion{W: 1}, geom.Vector3{2, 2, 2}, verts, 8, indices, len(indices))
	require.Nil(t, res)
	require.Equal(t, 8, mesh.VertexCount())
	require.Equal(t, 12, mesh.TriangleCount())

	// vertex 0 is (-0.5,-0.5,-0.5) locally; scaled by 2 then translated by
	// (10,0,0) it lands at (9,-1,-1).
	v0 := mesh.Vertex(0)
	assert.InDelta(t, 9.0, v0.X(), 1e-9)
	assert.InDelta(t, -1.0, v0.Y(), 1e-9)
	assert.InDelta(t, -1.0, v0.Z(), 1e-9)

	a, b, c := mesh.Triangle(0)
	assert.Equal(t, mesh.Vertex(indices[0]), a)
	assert.Equal(t, mesh.Vertex(indices[1]), b)
	assert.Equal(t, mesh.Vertex(indices[2]), c)
}
