package stitch

import "math"

// ClosestPair returns the vertex pair (v, w), v on loop i and w on loop j
// with i < j, minimizing squared distance over all loop pairs whose
// components differ. Loops of the same component are never paired; their
// holes are left to a hole-filling stage.
//
// The search is exhaustive and uses strict less-than, so among equal
// distances the first pair met wins: loops in extraction order, then
// vertices of loop i, then vertices of loop j. ok is false when no two
// loops belong to different components.
//
// Time:   O(L²·k²) for L loops of average length k.
// Memory: O(1).
func ClosestPair(d Distancer, loops []Loop) (p Pair, ok bool) {
	p.Dist2 = math.Inf(1)
	for i := 0; i < len(loops); i++ {
		for j := i + 1; j < len(loops); j++ {
			if loops[i].Component == loops[j].Component {
				continue
			}
			for _, v := range loops[i].Vertices {
				for _, w := range loops[j].Vertices {
					if dist := d.SquaredDistance(v, w); dist < p.Dist2 {
						p = Pair{V: v, W: w, Dist2: dist}
						ok = true
					}
				}
			}
		}
	}
	if !ok {
		return Pair{}, false
	}
	return p, true
}
