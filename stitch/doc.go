// Package stitch merges the disconnected open pieces of a triangle mesh
// into one connected surface by bridging, again and again, the two closest
// boundary vertices that belong to different pieces.
//
// What
//
//   - Label:          flood-fills the triangle dual graph into components.
//   - ExtractLoops:   walks every open boundary into an ordered vertex loop.
//   - ClosestPair:    brute-force nearest vertex pair across loops of
//     different components, first-encountered minimum on ties.
//   - JoinOnce:       one label → extract → match → bridge pass.
//   - Join:           repeats passes until one component remains or no
//     cross-component pair exists; reports progress through OnMerge.
//   - RemoveSmallestComponents: keeps only the largest component.
//
// Pass-scoped state
//
//	Component tags and visited marks are never stored on the mesh. They live
//	in a Labels value and a per-call slice, and every tag is back to
//	Untagged when a pass returns, whether or not it bridged anything.
//
// Limitations
//
//   - Components without an open boundary (closed shells) cannot be bridged;
//     Join stops as soon as only such components are left apart.
//   - Holes whose loops belong to one component are never bridged here.
//
// Complexity (T triangles, V vertices, L loops of average length k)
//
//   - Label:        O(V + T)
//   - ExtractLoops: O(V)
//   - ClosestPair:  O(L²·k²), the dominant cost; L is small in practice.
//   - Join:         at most C₀−1 passes for C₀ initial components.
//
// Usage
//
//	res, err := stitch.Join(m,
//	    stitch.WithMaxJoins(100),
//	    stitch.WithOnMerge(func(p stitch.Pair, remaining int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrNilSurface       if the surface is nil.
//   - ErrOptionViolation  for an invalid Option (e.g. negative MaxJoins).
//   - ErrBridge           wrapping the engine error of a failed bridge.
//   - the context error   when Ctx is done before a pass.
//
// Concurrency
//
//	Single-threaded and synchronous. The caller must hold exclusive access
//	to the surface for the duration of a call.
package stitch
