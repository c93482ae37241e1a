package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshstitch/mesh"
)

// twoTriangles builds two disjoint open triangles: 0-1-2 at z=0, 3-4-5 at z=1.
func twoTriangles(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(
		[]r3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		[][3]int{{0, 1, 2}, {3, 4, 5}},
	)
	require.NoError(t, err)
	return m
}

// walk follows NextOnBoundary from start until it comes back.
func walk(t *testing.T, m *mesh.Mesh, start int) []int {
	t.Helper()
	loop := []int{start}
	for v := start; ; {
		next, ok := m.NextOnBoundary(v)
		require.True(t, ok, "vertex %d has no boundary successor", v)
		if next == start {
			return loop
		}
		require.Less(t, len(loop), m.NumVertices(), "walk does not close")
		loop = append(loop, next)
		v = next
	}
}

func TestJoinBoundaryLoops_MergesLoops(t *testing.T) {
	m := twoTriangles(t)
	require.NoError(t, m.JoinBoundaryLoops(0, 3))

	assert.Equal(t, 4, m.NumTriangles())
	assert.Equal(t, [][3]int{{0, 1, 2}, {3, 4, 5}, {1, 0, 3}, {0, 4, 3}}, m.Faces())
	assert.Equal(t, []int{0, 4, 5, 3, 1, 2}, walk(t, m, 0))

	// seam triangles are glued to both pieces and to each other
	for _, tc := range []struct{ tri, edge, want int }{
		{2, 0, 0}, // 1→0 against triangle 0
		{2, 1, 3}, // 0→3 against the second seam triangle
		{3, 1, 1}, // 4→3 against triangle 1
	} {
		n, ok := m.Neighbor(tc.tri, tc.edge)
		assert.True(t, ok)
		assert.Equal(t, tc.want, n, "triangle %d edge %d", tc.tri, tc.edge)
	}
}

func TestJoinBoundaryLoops_Errors(t *testing.T) {
	cases := []struct {
		name string
		v, w int
		err  error
	}{
		{"SameVertex", 0, 0, mesh.ErrSameVertex},
		{"OutOfRange", 0, 6, mesh.ErrVertexIndex},
		{"Negative", -1, 3, mesh.ErrVertexIndex},
		{"SharedBoundaryEdge", 0, 1, mesh.ErrDegenerateTriangle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := twoTriangles(t)
			err := m.JoinBoundaryLoops(tc.v, tc.w)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, 2, m.NumTriangles(), "mesh must be unchanged")
		})
	}
}

func TestJoinBoundaryLoops_ErrorText(t *testing.T) {
	err := twoTriangles(t).JoinBoundaryLoops(0, 6)
	assert.EqualError(t, err, "mesh: vertex index out of range: bridge 0-6")
}

func TestJoinBoundaryLoops_ClosedEndpoint(t *testing.T) {
	m := tetra(t)
	v := m.AddVertex(r3.Vec{X: 5})
	a := m.AddVertex(r3.Vec{X: 6})
	b := m.AddVertex(r3.Vec{X: 5, Y: 1})
	_, err := m.AddTriangle(v, a, b)
	require.NoError(t, err)

	err = m.JoinBoundaryLoops(0, v)
	assert.ErrorIs(t, err, mesh.ErrNotOnBoundary)
	err = m.JoinBoundaryLoops(v, 0)
	assert.ErrorIs(t, err, mesh.ErrNotOnBoundary)
	assert.Equal(t, 5, m.NumTriangles())
}
