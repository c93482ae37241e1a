package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// KeepTriangles retains the triangles for which keep returns true, drops the
// rest, removes vertices no longer referenced by any triangle and rebuilds
// adjacency. Surviving triangles and vertices keep their relative order.
// Returns the number of removed triangles.
// Complexity: O(V + T).
func (m *Mesh) KeepTriangles(keep func(t int) bool) int {
	kept := make([]Triangle, 0, len(m.tris))
	for t, tri := range m.tris {
		if keep(t) {
			kept = append(kept, tri)
		}
	}
	removed := len(m.tris) - len(kept)
	if removed == 0 {
		return 0
	}

	// old vertex index → new, -1 when unreferenced
	remap := make([]int, len(m.positions))
	for i := range remap {
		remap[i] = -1
	}
	for _, tri := range kept {
		for _, v := range tri.V {
			remap[v] = 0
		}
	}
	positions := make([]r3.Vec, 0, len(m.positions))
	for v, p := range m.positions {
		if remap[v] < 0 {
			continue
		}
		remap[v] = len(positions)
		positions = append(positions, p)
	}

	m.positions = positions
	m.tris = make([]Triangle, 0, len(kept))
	m.edges = make(map[edgeKey][]corner, 3*len(kept)/2)
	m.incident = make([][]int, len(positions))
	for _, tri := range kept {
		if _, err := m.AddTriangle(remap[tri.V[0]], remap[tri.V[1]], remap[tri.V[2]]); err != nil {
			panic(fmt.Sprintf("mesh: KeepTriangles remap broke triangle %v: %v", tri.V, err))
		}
	}

	return removed
}
