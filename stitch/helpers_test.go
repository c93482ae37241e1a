package stitch_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshstitch/mesh"
)

// builder accumulates disjoint pieces into one mesh.
type builder struct {
	pts   []r3.Vec
	faces [][3]int
}

// triangle adds an open triangle with the given corners.
func (b *builder) triangle(p0, p1, p2 r3.Vec) *builder {
	base := len(b.pts)
	b.pts = append(b.pts, p0, p1, p2)
	b.faces = append(b.faces, [3]int{base, base + 1, base + 2})
	return b
}

// unitTriangle adds the triangle (0,0,0),(1,0,0),(0,1,0) shifted by off.
func (b *builder) unitTriangle(off r3.Vec) *builder {
	return b.triangle(off, r3.Add(off, r3.Vec{X: 1}), r3.Add(off, r3.Vec{Y: 1}))
}

// patch adds an open n×n grid of unit squares in the z=off.Z plane,
// two triangles per square.
func (b *builder) patch(n int, off r3.Vec) *builder {
	base := len(b.pts)
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			b.pts = append(b.pts, r3.Add(off, r3.Vec{X: float64(x), Y: float64(y)}))
		}
	}
	idx := func(x, y int) int { return base + y*(n+1) + x }
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			b.faces = append(b.faces,
				[3]int{idx(x, y), idx(x+1, y), idx(x+1, y+1)},
				[3]int{idx(x, y), idx(x+1, y+1), idx(x, y+1)},
			)
		}
	}
	return b
}

// tetra adds a closed, consistently wound tetrahedron shifted by off.
func (b *builder) tetra(off r3.Vec) *builder {
	base := len(b.pts)
	b.pts = append(b.pts,
		off,
		r3.Add(off, r3.Vec{X: 1}),
		r3.Add(off, r3.Vec{Y: 1}),
		r3.Add(off, r3.Vec{Z: 1}),
	)
	for _, f := range [][3]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}} {
		b.faces = append(b.faces, [3]int{base + f[0], base + f[1], base + f[2]})
	}
	return b
}

func (b *builder) build(t testing.TB) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(b.pts, b.faces)
	require.NoError(t, err)
	return m
}

// canonical turns a partition into a sorted form independent of tag ids.
func canonical(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		c := append([]int(nil), g...)
		sort.Ints(c)
		out[i] = c
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// snapshot captures everything a no-op pass must leave untouched.
type snapshot struct {
	positions []r3.Vec
	tris      []mesh.Triangle
}

func takeSnapshot(t *testing.T, m *mesh.Mesh) snapshot {
	t.Helper()
	s := snapshot{positions: m.Positions()}
	for i := 0; i < m.NumTriangles(); i++ {
		tri, err := m.Triangle(i)
		require.NoError(t, err)
		s.tris = append(s.tris, tri)
	}
	return s
}
