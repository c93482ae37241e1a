package stitch

// Labels is the pass-scoped component labeling of one surface.
// Triangle and vertex tags are indexed by triangle and vertex index.
type Labels struct {
	tri   []Tag
	vert  []Tag
	count int
	stack []int
}

// Label partitions the triangles of a into maximal edge-connected
// components and tags every triangle, and each of its corners, with a
// positive component id.
//
// Triangles are visited in index order; each untagged one opens a new id
// and is flood-filled through an explicit LIFO worklist, never recursion,
// so meshes with hundreds of thousands of triangles are safe.
//
// When fewer than two components exist every tag is cleared again and
// only Count reports the result: there is nothing to join.
//
// Time:   O(V + T).
// Memory: O(V + T) for tags and the worklist.
func Label(a Adjacency) *Labels {
	l := &Labels{}
	l.label(a)
	return l
}

// CountComponents returns the number of edge-connected components of a.
func CountComponents(a Adjacency) int {
	return Label(a).Count()
}

// label runs the flood fill into l, reusing its buffers.
func (l *Labels) label(a Adjacency) {
	nt, nv := a.NumTriangles(), a.NumVertices()
	l.tri = resize(l.tri, nt)
	l.vert = resize(l.vert, nv)
	l.count = 0

	var id Tag
	for t := 0; t < nt; t++ {
		if l.tri[t] != Untagged {
			continue
		}
		id++
		l.tri[t] = id
		l.stack = append(l.stack[:0], t)
		for len(l.stack) > 0 {
			u := l.stack[len(l.stack)-1]
			l.stack = l.stack[:len(l.stack)-1]
			for e := 0; e < 3; e++ {
				n, ok := a.Neighbor(u, e)
				if ok && l.tri[n] == Untagged {
					l.tri[n] = id
					l.stack = append(l.stack, n)
				}
			}
		}
	}
	l.count = int(id)

	if l.count < 2 {
		l.clearTags()
		return
	}
	for t := 0; t < nt; t++ {
		for i := 0; i < 3; i++ {
			l.vert[a.Corner(t, i)] = l.tri[t]
		}
	}
}

// Count returns the number of components found.
func (l *Labels) Count() int { return l.count }

// TriangleTag returns the component tag of triangle t, Untagged if out of range.
func (l *Labels) TriangleTag(t int) Tag {
	if t < 0 || t >= len(l.tri) {
		return Untagged
	}
	return l.tri[t]
}

// VertexTag returns the component tag of vertex v, Untagged if out of range
// or unreferenced.
func (l *Labels) VertexTag(v int) Tag {
	if v < 0 || v >= len(l.vert) {
		return Untagged
	}
	return l.vert[v]
}

// Groups returns the triangle indices of each component, ordered by tag.
// Groups()[k] holds the triangles tagged k+1. Empty after a single-component
// labeling or a Reset.
func (l *Labels) Groups() [][]int {
	if l.count < 2 {
		return nil
	}
	groups := make([][]int, l.count)
	for t, tag := range l.tri {
		if tag != Untagged {
			groups[tag-1] = append(groups[tag-1], t)
		}
	}
	return groups
}

// Reset returns every tag to Untagged.
func (l *Labels) Reset() {
	l.clearTags()
	l.count = 0
}

func (l *Labels) clearTags() {
	for i := range l.tri {
		l.tri[i] = Untagged
	}
	for i := range l.vert {
		l.vert[i] = Untagged
	}
}

// resize returns s with length n and every element Untagged.
func resize(s []Tag, n int) []Tag {
	if cap(s) < n {
		return make([]Tag, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = Untagged
	}
	return s
}
