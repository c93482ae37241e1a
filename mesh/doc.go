// Package mesh is the triangle-mesh engine consumed by package stitch.
//
// What:
//
//   - Mesh stores vertex positions (gonum r3.Vec) and triangles with
//     per-edge neighbor links. An undirected edge shared by exactly two
//     triangles links them; an edge with one triangle is a boundary edge;
//     an edge with three or more triangles is non-manifold and is treated as
//     boundary on every side.
//   - Boundary navigation: OnBoundary and NextOnBoundary follow the outgoing
//     boundary edge of a vertex in its triangle's own winding.
//   - JoinBoundaryLoops is the bridge primitive: two triangles glue a vertex
//     of one open loop to a vertex of another, merging both loops (and their
//     components) into one.
//   - KeepTriangles drops triangles and compacts unreferenced vertices.
//
// Determinism:
//
//	Incidence lists keep insertion order, so every navigation query answers
//	the same way for the same input.
//
// Concurrency:
//
//	A Mesh is not safe for concurrent mutation. The caller owns it for the
//	duration of any mutating call.
//
// Complexity:
//
//   - New:               O(V + T) time and memory.
//   - AddTriangle:       O(1) amortized.
//   - NextOnBoundary:    O(deg(v)).
//   - KeepTriangles:     O(V + T).
//
// Errors:
//
//   - ErrVertexIndex         a corner or query refers to a missing vertex.
//   - ErrTriangleIndex       a query refers to a missing triangle.
//   - ErrDegenerateTriangle  a triangle repeats a corner.
//   - ErrSameVertex          a bridge was requested from a vertex to itself.
//   - ErrNotOnBoundary       a bridge endpoint has no open boundary edge.
package mesh
