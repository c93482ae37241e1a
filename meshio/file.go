package meshio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/meshstitch/mesh"
)

// FormatOf maps a file name to its format by extension, case-insensitively.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return OBJ, nil
	case ".stl":
		return STL, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads the mesh stored at path.
func Load(path string) (*mesh.Mesh, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m *mesh.Mesh
	switch format {
	case STL:
		m, err = ReadSTL(f)
	default:
		m, err = ReadOBJ(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Save writes m to path, creating or truncating the file.
func Save(path string, m *mesh.Mesh) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case STL:
		return WriteSTL(f, m)
	default:
		return WriteOBJ(f, m)
	}
}
