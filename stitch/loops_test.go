package stitch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshstitch/stitch"
)

func TestExtractLoops_TwoPieces(t *testing.T) {
	m := new(builder).unitTriangle(r3.Vec{}).patch(1, r3.Vec{X: 4}).build(t)
	l := stitch.Label(m)
	require.Equal(t, 2, l.Count())

	loops := stitch.ExtractLoops(m, l)
	require.Len(t, loops, 2)
	assert.Equal(t, stitch.Loop{Vertices: []int{0, 1, 2}, Component: 1}, loops[0])
	// patch corners: 3 (0,0) 4 (1,0) 5 (0,1) 6 (1,1)
	assert.Equal(t, stitch.Loop{Vertices: []int{3, 4, 6, 5}, Component: 2}, loops[1])
}

func TestExtractLoops_EveryBoundaryVertexOnce(t *testing.T) {
	m := new(builder).patch(3, r3.Vec{}).patch(2, r3.Vec{Y: 9}).build(t)
	loops := stitch.ExtractLoops(m, stitch.Label(m))
	require.Len(t, loops, 2)

	seen := make(map[int]int)
	for _, loop := range loops {
		for _, v := range loop.Vertices {
			seen[v]++
		}
	}
	for v := 0; v < m.NumVertices(); v++ {
		if m.OnBoundary(v) {
			assert.Equal(t, 1, seen[v], "boundary vertex %d", v)
		} else {
			assert.Zero(t, seen[v], "interior vertex %d", v)
		}
	}
	assert.Len(t, loops[0].Vertices, 12)
	assert.Len(t, loops[1].Vertices, 8)
}

func TestExtractLoops_ClosedShell(t *testing.T) {
	m := new(builder).tetra(r3.Vec{}).build(t)
	assert.Empty(t, stitch.ExtractLoops(m, nil))
	assert.Zero(t, stitch.CountBoundaries(m))
}

// Two triangles sharing only vertex 0 give it two outgoing boundary edges;
// the second walk stops at the already claimed vertex instead of spinning.
func TestExtractLoops_NonManifoldVertex(t *testing.T) {
	b := &builder{
		pts:   []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {X: -1}, {X: -1, Y: -1}},
		faces: [][3]int{{0, 1, 2}, {0, 3, 4}},
	}
	m := b.build(t)

	loops := stitch.ExtractLoops(m, nil)
	require.Len(t, loops, 2)
	assert.Equal(t, []int{0, 1, 2}, loops[0].Vertices)
	assert.Equal(t, []int{3, 4}, loops[1].Vertices)
	assert.Equal(t, stitch.Untagged, loops[0].Component)
}

// Faces 0 and 1 share edge 0-2 with the same winding: vertex 2 only has
// incoming boundary edges, so it is left out and the walk through 1 stops.
func TestExtractLoops_InconsistentWinding(t *testing.T) {
	b := &builder{
		pts: []r3.Vec{
			{}, {X: 1}, {X: 1, Y: 1}, {Y: 1},
			{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3},
		},
		faces: [][3]int{{0, 1, 2}, {0, 3, 2}, {4, 5, 6}},
	}
	m := b.build(t)
	require.True(t, m.OnBoundary(2))

	loops := stitch.ExtractLoops(m, stitch.Label(m))
	assert.Equal(t, []stitch.Loop{
		{Vertices: []int{0, 1}, Component: 1},
		{Vertices: []int{3}, Component: 1},
		{Vertices: []int{4, 5, 6}, Component: 2},
	}, loops)
	for _, loop := range loops {
		for _, v := range loop.Vertices {
			_, ok := m.NextOnBoundary(v)
			assert.True(t, ok, "vertex %d has no successor", v)
		}
	}
}

func TestCountBoundaries(t *testing.T) {
	m := new(builder).
		unitTriangle(r3.Vec{}).
		unitTriangle(r3.Vec{Z: 2}).
		tetra(r3.Vec{X: 5}).
		patch(2, r3.Vec{X: 9}).
		build(t)
	assert.Equal(t, 3, stitch.CountBoundaries(m))
}
