package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IndexMatrix is a dense column-major matrix of triangle vertex indices.
// It mirrors the At/Set/Dims shape of gonum's mat.Dense, which cannot be
// used here directly because gonum matrices only hold float64 and vertex
// indices must round-trip as exact integers.
type IndexMatrix struct {
	rows, cols int
	data       []int
}

// NewIndexMatrix allocates a zeroed rows x cols index matrix.
func NewIndexMatrix(rows, cols int) *IndexMatrix {
	return &IndexMatrix{rows: rows, cols: cols, data: make([]int, rows*cols)}
}

// Dims returns the matrix shape.
func (m *IndexMatrix) Dims() (int, int) { return m.rows, m.cols }

// At returns the index stored at (row, col).
func (m *IndexMatrix) At(row, col int) int { return m.data[col*m.rows+row] }

// Set stores v at (row, col).
func (m *IndexMatrix) Set(row, col, v int) { m.data[col*m.rows+row] = v }

// Column returns the three vertex indices of triangle col.
func (m *IndexMatrix) Column(col int) [3]int {
	return [3]int{m.At(0, col), m.At(1, col), m.At(2, col)}
}

// TriangleMesh is a world-space triangle mesh: a dense vertex matrix V of
// shape (3, Nv) and a dense index matrix I of shape (3, Nt), triangle
// vertices wound counter-clockwise as seen from outside.
type TriangleMesh struct {
	V *mat.Dense
	I *IndexMatrix
}

// VertexCount returns Nv.
func (m *TriangleMesh) VertexCount() int {
	_, nv := m.V.Dims()
	return nv
}

// TriangleCount returns Nt.
func (m *TriangleMesh) TriangleCount() int {
	_, nt := m.I.Dims()
	return nt
}

// Vertex returns vertex i as a Vector3.
func (m *TriangleMesh) Vertex(i int) Vector3 {
	return Vector3{m.V.At(0, i), m.V.At(1, i), m.V.At(2, i)}
}

// Triangle returns the three world-space vertices of triangle j.
func (m *TriangleMesh) Triangle(j int) (a, b, c Vector3) {
	idx := m.I.Column(j)
	return m.Vertex(idx[0]), m.Vertex(idx[1]), m.Vertex(idx[2])
}

// ComputeAABB returns the mesh's AABB from V's per-row min/max, per spec.md §4.3 step 1.
func ComputeAABB(m *TriangleMesh) AABB {
	nv := m.VertexCount()
	minV := Vector3{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxV := Vector3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i < nv; i++ {
		v := m.Vertex(i)
		minV = Vector3{math.Min(minV.X(), v.X()), math.Min(minV.Y(), v.Y()), math.Min(minV.Z(), v.Z())}
		maxV = Vector3{math.Max(maxV.X(), v.X()), math.Max(maxV.Y(), v.Y()), math.Max(maxV.Z(), v.Z())}
	}
	return AABB{Min: minV, Max: maxV}
}
