package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshstitch/mesh"
)

// ReadOBJ parses a Wavefront OBJ stream. Only "v" and "f" records are
// used; other records are ignored. Face corners may carry texture and
// normal references ("3/1/2") and may be negative (relative to the last
// vertex read). Polygons are fanned from their first corner.
func ReadOBJ(r io.Reader) (*mesh.Mesh, error) {
	var (
		pts  []r3.Vec
		fl   faceList
		line int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line++
		words := strings.Fields(sc.Text())
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "v":
			if len(words) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrSyntax, line)
			}
			var c [3]float64
			for i := range c {
				f, err := strconv.ParseFloat(words[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
				}
				c[i] = f
			}
			pts = append(pts, r3.Vec{X: c[0], Y: c[1], Z: c[2]})

		case "f":
			if len(words) < 4 {
				return nil, fmt.Errorf("%w: line %d: face needs 3 corners", ErrSyntax, line)
			}
			idx := make([]int, 0, len(words)-1)
			for _, w := range words[1:] {
				v, err := objIndex(w, len(pts))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
				}
				idx = append(idx, v)
			}
			for k := 1; k+1 < len(idx); k++ {
				fl.add(idx[0], idx[k], idx[k+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return mesh.New(pts, fl.faces)
}

// objIndex converts one face corner token to a 0-based vertex index.
func objIndex(tok string, nv int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	switch {
	case v > 0:
		v--
	case v < 0:
		v += nv
	default:
		return 0, fmt.Errorf("index 0 is not valid")
	}
	if v < 0 || v >= nv {
		return 0, fmt.Errorf("index %s out of range (%d vertices)", tok, nv)
	}

	return v, nil
}

// WriteOBJ writes m as OBJ with one "v" line per vertex and one "f" line
// per triangle, using 1-based indices.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, p := range m.Positions() {
		fmt.Fprintf(bw, "v %s %s %s\n", fmtFloat(p.X), fmtFloat(p.Y), fmtFloat(p.Z))
	}
	for _, f := range m.Faces() {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}

	return bw.Flush()
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
