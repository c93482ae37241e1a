package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// New builds a Mesh from vertex positions and triangle corner indices.
// The inputs are copied. Returns ErrVertexIndex for a corner outside the
// position slice and ErrDegenerateTriangle for a face repeating a corner.
// Complexity: O(V + T) time and memory.
func New(positions []r3.Vec, faces [][3]int) (*Mesh, error) {
	m := &Mesh{
		positions: make([]r3.Vec, len(positions)),
		tris:      make([]Triangle, 0, len(faces)),
		edges:     make(map[edgeKey][]corner, 3*len(faces)/2),
		incident:  make([][]int, len(positions)),
	}
	copy(m.positions, positions)
	for i, f := range faces {
		if _, err := m.AddTriangle(f[0], f[1], f[2]); err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
	}

	return m, nil
}

// NumVertices returns the number of vertices, referenced or not.
func (m *Mesh) NumVertices() int { return len(m.positions) }

// NumTriangles returns the number of triangles.
func (m *Mesh) NumTriangles() int { return len(m.tris) }

// Position returns the coordinates of vertex v.
func (m *Mesh) Position(v int) r3.Vec { return m.positions[v] }

// Corner returns the vertex at corner i (0..2) of triangle t.
func (m *Mesh) Corner(t, i int) int { return m.tris[t].V[i] }

// Neighbor returns the triangle across edge e of triangle t.
// ok is false when the edge is a boundary edge.
func (m *Mesh) Neighbor(t, e int) (int, bool) {
	n := m.tris[t].N[e]
	return n, n != NoNeighbor
}

// Triangle returns a copy of triangle t.
func (m *Mesh) Triangle(t int) (Triangle, error) {
	if t < 0 || t >= len(m.tris) {
		return Triangle{}, ErrTriangleIndex
	}
	return m.tris[t], nil
}

// SquaredDistance returns |p(v) - p(w)|².
func (m *Mesh) SquaredDistance(v, w int) float64 {
	return r3.Norm2(r3.Sub(m.positions[v], m.positions[w]))
}

// Positions returns a copy of all vertex positions.
func (m *Mesh) Positions() []r3.Vec {
	out := make([]r3.Vec, len(m.positions))
	copy(out, m.positions)
	return out
}

// Faces returns the corner indices of every triangle, in triangle order.
func (m *Mesh) Faces() [][3]int {
	out := make([][3]int, len(m.tris))
	for i, t := range m.tris {
		out[i] = t.V
	}
	return out
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p r3.Vec) int {
	m.positions = append(m.positions, p)
	m.incident = append(m.incident, nil)
	return len(m.positions) - 1
}

// AddTriangle appends triangle (a, b, c) and updates adjacency of the three
// edges it touches. Returns the new triangle index.
// Complexity: O(1) amortized.
func (m *Mesh) AddTriangle(a, b, c int) (int, error) {
	vs := [3]int{a, b, c}
	for _, v := range vs {
		if v < 0 || v >= len(m.positions) {
			return 0, fmt.Errorf("%w: %d", ErrVertexIndex, v)
		}
	}
	if a == b || b == c || a == c {
		return 0, fmt.Errorf("%w: (%d, %d, %d)", ErrDegenerateTriangle, a, b, c)
	}

	t := len(m.tris)
	m.tris = append(m.tris, Triangle{V: vs, N: [3]int{NoNeighbor, NoNeighbor, NoNeighbor}})
	for slot := 0; slot < 3; slot++ {
		key := makeEdgeKey(vs[slot], vs[(slot+1)%3])
		m.edges[key] = append(m.edges[key], corner{tri: t, slot: slot})
		m.relink(key)
	}
	for _, v := range vs {
		m.incident[v] = append(m.incident[v], t)
	}

	return t, nil
}

// relink refreshes the neighbor slots of every triangle using edge key.
// Only a two-sided edge links; any other count leaves all sides open.
func (m *Mesh) relink(key edgeKey) {
	cs := m.edges[key]
	if len(cs) == 2 {
		m.tris[cs[0].tri].N[cs[0].slot] = cs[1].tri
		m.tris[cs[1].tri].N[cs[1].slot] = cs[0].tri
		return
	}
	for _, c := range cs {
		m.tris[c.tri].N[c.slot] = NoNeighbor
	}
}
