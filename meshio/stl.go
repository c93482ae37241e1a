package meshio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshstitch/mesh"
)

const (
	stlHeaderLen = 80
	stlTriLen    = 4*3*4 + 2 // normal, three corners, attribute word
)

// welder assigns indices to distinct positions in first-seen order.
type welder struct {
	index map[r3.Vec]int
	pts   []r3.Vec
}

func newWelder() *welder {
	return &welder{index: make(map[r3.Vec]int)}
}

func (w *welder) id(p r3.Vec) int {
	i, ok := w.index[p]
	if !ok {
		i = len(w.pts)
		w.pts = append(w.pts, p)
		w.index[p] = i
	}
	return i
}

// ReadSTL parses a binary or ASCII STL stream. Corners with identical
// coordinates become one vertex; triangles that collapse after welding
// are dropped. A stream is read as ASCII when it starts with "solid" and
// its length does not match the binary layout.
func ReadSTL(r io.Reader) (*mesh.Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if isASCIISTL(data) {
		return readASCIISTL(data)
	}
	return readBinarySTL(data)
}

func isASCIISTL(data []byte) bool {
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return false
	}
	if len(data) < stlHeaderLen+4 {
		return true
	}
	n := binary.LittleEndian.Uint32(data[stlHeaderLen:])
	return uint64(len(data)) != stlHeaderLen+4+uint64(n)*stlTriLen
}

func readBinarySTL(data []byte) (*mesh.Mesh, error) {
	if len(data) < stlHeaderLen+4 {
		return nil, fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}
	n := binary.LittleEndian.Uint32(data[stlHeaderLen:])
	body := data[stlHeaderLen+4:]
	if uint64(len(body)) < uint64(n)*stlTriLen {
		return nil, fmt.Errorf("%w: %d triangles declared, %d bytes of data", ErrTruncated, n, len(body))
	}

	wd := newWelder()
	var fl faceList
	var tri [3]int
	for i := 0; i < int(n); i++ {
		rec := body[i*stlTriLen : (i+1)*stlTriLen]
		for v := range tri {
			const start = 3 * 4 // skip normal
			var c [3]float64
			for k := range c {
				bits := binary.LittleEndian.Uint32(rec[start+12*v+4*k:])
				c[k] = float64(math.Float32frombits(bits))
			}
			tri[v] = wd.id(r3.Vec{X: c[0], Y: c[1], Z: c[2]})
		}
		fl.add(tri[0], tri[1], tri[2])
	}

	return mesh.New(wd.pts, fl.faces)
}

func readASCIISTL(data []byte) (*mesh.Mesh, error) {
	wd := newWelder()
	var (
		fl     faceList
		corner []int
		line   int
	)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line++
		words := bytes.Fields(sc.Bytes())
		if len(words) == 0 {
			continue
		}
		switch string(words[0]) {
		case "vertex":
			if len(words) != 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrSyntax, line)
			}
			var c [3]float64
			for k := range c {
				f, err := strconv.ParseFloat(string(words[k+1]), 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
				}
				c[k] = f
			}
			corner = append(corner, wd.id(r3.Vec{X: c[0], Y: c[1], Z: c[2]}))
		case "endloop":
			if len(corner) != 3 {
				return nil, fmt.Errorf("%w: line %d: facet has %d vertices", ErrSyntax, line, len(corner))
			}
			fl.add(corner[0], corner[1], corner[2])
			corner = corner[:0]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(corner) != 0 {
		return nil, fmt.Errorf("%w: unterminated facet", ErrSyntax)
	}

	return mesh.New(wd.pts, fl.faces)
}

// WriteSTL writes m as binary STL with per-facet unit normals.
// Degenerate facets get a zero normal.
func WriteSTL(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	var header [stlHeaderLen]byte
	copy(header[:], "meshstitch binary STL")
	bw.Write(header[:])

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(m.NumTriangles()))
	bw.Write(count[:])

	var rec [stlTriLen]byte
	put := func(off int, p r3.Vec) {
		binary.LittleEndian.PutUint32(rec[off:], math.Float32bits(float32(p.X)))
		binary.LittleEndian.PutUint32(rec[off+4:], math.Float32bits(float32(p.Y)))
		binary.LittleEndian.PutUint32(rec[off+8:], math.Float32bits(float32(p.Z)))
	}
	for _, f := range m.Faces() {
		a, b, c := m.Position(f[0]), m.Position(f[1]), m.Position(f[2])
		put(0, facetNormal(a, b, c))
		put(12, a)
		put(24, b)
		put(36, c)
		bw.Write(rec[:])
	}

	return bw.Flush()
}

func facetNormal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}
