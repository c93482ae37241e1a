// Package meshio reads and writes triangle meshes as Wavefront OBJ and
// STL (binary, plus ASCII on input).
//
// Readers weld STL corners by exact coordinates, fan-triangulate OBJ
// polygons, and drop faces that collapse onto a repeated vertex. Load and
// Save pick the format from the file extension.
//
// Errors:
//
//   - ErrSyntax         malformed OBJ or ASCII STL content.
//   - ErrTruncated      binary STL shorter than its triangle count says.
//   - ErrUnknownFormat  extension other than .obj or .stl.
package meshio
