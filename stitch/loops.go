package stitch

// ExtractLoops walks every open-boundary cycle of b into a Loop.
//
// Vertices are scanned in index order; each one with an outgoing boundary
// edge that is not yet visited starts a loop following NextOnBoundary until
// it returns to its head. Every vertex with an outgoing boundary edge ends
// up in exactly one loop. The loop's Component is read once from its head
// through l; a nil l leaves it Untagged.
//
// A vertex with only incoming boundary edges (inconsistent winding across
// a shared edge) has no successor and cannot be bridged, so it never joins
// a loop and a walk reaching it stops there. On non-manifold input a walk
// can also run into a vertex already claimed by another loop; the loop is
// closed there instead of spinning.
//
// The visited marks live in a slice owned by this call.
// Time:   O(V + Σ deg) for the scan and walks.
// Memory: O(V).
func ExtractLoops(b Boundary, l *Labels) []Loop {
	n := b.NumVertices()
	visited := make([]bool, n)
	var loops []Loop

	for v := 0; v < n; v++ {
		if visited[v] || !b.OnBoundary(v) {
			continue
		}
		next, ok := b.NextOnBoundary(v)
		if !ok {
			visited[v] = true
			continue
		}
		loop := Loop{Component: Untagged}
		if l != nil {
			loop.Component = l.VertexTag(v)
		}
		for w := v; ; {
			loop.Vertices = append(loop.Vertices, w)
			visited[w] = true
			if next == v || next < 0 || next >= n || visited[next] {
				break
			}
			after, ok := b.NextOnBoundary(next)
			if !ok {
				visited[next] = true
				break
			}
			w, next = next, after
		}
		loops = append(loops, loop)
	}

	return loops
}

// CountBoundaries returns the number of open-boundary loops of b.
func CountBoundaries(b Boundary) int {
	return len(ExtractLoops(b, nil))
}
