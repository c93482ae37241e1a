package stitch

import "go.uber.org/zap"

// RemoveSmallestComponents keeps only the component with the most
// triangles (the lowest tag on ties) and drops every other one, together
// with the vertices they no longer reference. Returns the number of
// components removed.
// Time: O(V + T).
func RemoveSmallestComponents(p Pruner) (int, error) {
	if p == nil {
		return 0, ErrNilSurface
	}
	l := Label(p)
	defer l.Reset()
	if l.Count() < 2 {
		return 0, nil
	}

	groups := l.Groups()
	largest := 0
	for k := 1; k < len(groups); k++ {
		if len(groups[k]) > len(groups[largest]) {
			largest = k
		}
	}
	keep := Tag(largest + 1)
	p.KeepTriangles(func(t int) bool { return l.TriangleTag(t) == keep })
	Logger().Debug("removed small components",
		zap.Int("removed", l.Count()-1),
		zap.Int("kept_triangles", len(groups[largest])))

	return l.Count() - 1, nil
}
