package mesh

import "fmt"

// JoinBoundaryLoops bridges the open loop through v with the open loop
// through w.
//
// With vn = NextOnBoundary(v) and wn = NextOnBoundary(w) it inserts
//
//	(vn, v, w)   glued to boundary edge v→vn
//	(v, wn, w)   glued to boundary edge w→wn, sharing diagonal v–w
//
// The consumed edges v→vn and w→wn become interior and the new open edges
// w→vn and v→wn splice both loops into one:
//
//	… → v → wn → … → w → vn → … → v
//
// When the loops belong to different components the component count drops
// by exactly one. Unusable endpoints yield ErrVertexIndex, ErrSameVertex,
// ErrNotOnBoundary, or ErrDegenerateTriangle when v and w already share a
// boundary edge. The mesh is unchanged on error.
// Complexity: O(deg(v) + deg(w)).
func (m *Mesh) JoinBoundaryLoops(v, w int) error {
	n := len(m.positions)
	if v < 0 || v >= n || w < 0 || w >= n {
		return fmt.Errorf("%w: bridge %d-%d", ErrVertexIndex, v, w)
	}
	if v == w {
		return fmt.Errorf("%w: %d", ErrSameVertex, v)
	}
	vn, ok := m.NextOnBoundary(v)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotOnBoundary, v)
	}
	wn, ok := m.NextOnBoundary(w)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotOnBoundary, w)
	}
	// vn == w or wn == v would collapse a bridge triangle.
	if vn == w || wn == v {
		return fmt.Errorf("%w: %d and %d share a boundary edge", ErrDegenerateTriangle, v, w)
	}

	if _, err := m.AddTriangle(vn, v, w); err != nil {
		return err
	}
	_, err := m.AddTriangle(v, wn, w)
	return err
}
