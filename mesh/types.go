package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh operations.
var (
	// ErrVertexIndex indicates a vertex index outside [0, NumVertices).
	ErrVertexIndex = errors.New("mesh: vertex index out of range")

	// ErrTriangleIndex indicates a triangle index outside [0, NumTriangles).
	ErrTriangleIndex = errors.New("mesh: triangle index out of range")

	// ErrDegenerateTriangle indicates a triangle that uses one vertex twice.
	ErrDegenerateTriangle = errors.New("mesh: triangle repeats a vertex")

	// ErrSameVertex indicates a bridge from a vertex to itself.
	ErrSameVertex = errors.New("mesh: bridge endpoints are the same vertex")

	// ErrNotOnBoundary indicates a bridge endpoint with no open boundary edge.
	ErrNotOnBoundary = errors.New("mesh: vertex is not on a boundary")
)

// NoNeighbor marks a triangle edge without an opposite triangle.
const NoNeighbor = -1

// Triangle is three corners and the triangle across each edge.
//
// N[i] is the neighbor across edge V[i]→V[(i+1)%3], or NoNeighbor when that
// edge is a boundary edge.
type Triangle struct {
	V [3]int
	N [3]int
}

// edgeKey is an undirected edge with the smaller index first.
type edgeKey struct {
	lo, hi int
}

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// corner addresses one edge slot of one triangle.
type corner struct {
	tri, slot int
}

// Mesh is an indexed triangle mesh with edge adjacency.
type Mesh struct {
	positions []r3.Vec
	tris      []Triangle

	// edges maps every undirected edge to the triangle slots using it.
	edges map[edgeKey][]corner
	// incident lists, per vertex, the triangles using it in insertion order.
	incident [][]int
}
