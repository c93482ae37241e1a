package mesh

// slotOf returns the corner slot of v in triangle t, or -1.
func (m *Mesh) slotOf(t, v int) int {
	for j, c := range m.tris[t].V {
		if c == v {
			return j
		}
	}
	return -1
}

// OnBoundary reports whether vertex v is incident to at least one edge with
// no opposite triangle. Unreferenced vertices are not on a boundary.
// Complexity: O(deg(v)).
func (m *Mesh) OnBoundary(v int) bool {
	if v < 0 || v >= len(m.incident) {
		return false
	}
	for _, t := range m.incident[v] {
		j := m.slotOf(t, v)
		// outgoing edge v→next, incoming edge prev→v
		if m.tris[t].N[j] == NoNeighbor || m.tris[t].N[(j+2)%3] == NoNeighbor {
			return true
		}
	}
	return false
}

// NextOnBoundary returns the vertex that follows v along its outgoing
// boundary edge, in the winding of the triangle owning that edge. When v has
// several outgoing boundary edges (a non-manifold vertex) the one of the
// earliest incident triangle is used. ok is false if v has none.
// Complexity: O(deg(v)).
func (m *Mesh) NextOnBoundary(v int) (next int, ok bool) {
	if v < 0 || v >= len(m.incident) {
		return 0, false
	}
	for _, t := range m.incident[v] {
		j := m.slotOf(t, v)
		if m.tris[t].N[j] == NoNeighbor {
			return m.tris[t].V[(j+1)%3], true
		}
	}
	return 0, false
}

// BoundaryEdges returns every directed boundary edge as {from, to}, in
// triangle order.
// Complexity: O(T).
func (m *Mesh) BoundaryEdges() [][2]int {
	var out [][2]int
	for _, t := range m.tris {
		for j := 0; j < 3; j++ {
			if t.N[j] == NoNeighbor {
				out = append(out, [2]int{t.V[j], t.V[(j+1)%3]})
			}
		}
	}
	return out
}
