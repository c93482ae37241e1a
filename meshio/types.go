package meshio

import "errors"

// Sentinel errors for mesh file I/O.
var (
	// ErrSyntax indicates malformed text content.
	ErrSyntax = errors.New("meshio: syntax error")

	// ErrTruncated indicates a binary STL shorter than its header promises.
	ErrTruncated = errors.New("meshio: truncated STL")

	// ErrUnknownFormat indicates a file extension with no codec.
	ErrUnknownFormat = errors.New("meshio: unknown mesh format")
)

// Format names a supported file format.
type Format int

const (
	// OBJ is Wavefront OBJ.
	OBJ Format = iota
	// STL is stereolithography; written as binary.
	STL
)

// faceList collects triangles, skipping those with a repeated corner.
type faceList struct {
	faces   [][3]int
	skipped int
}

func (fl *faceList) add(a, b, c int) {
	if a == b || b == c || a == c {
		fl.skipped++
		return
	}
	fl.faces = append(fl.faces, [3]int{a, b, c})
}
