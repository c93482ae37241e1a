// Package stitch defines the pass-scoped types, engine interfaces, options
// and sentinel errors used by component stitching.
package stitch

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for stitch operations.
var (
	// ErrNilSurface is returned when a nil surface is passed in.
	ErrNilSurface = errors.New("stitch: surface is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stitch: invalid option supplied")

	// ErrBridge wraps a failure reported by the surface's bridge primitive.
	ErrBridge = errors.New("stitch: bridge failed")
)

// Tag is a pass-local component id. Positive values name components;
// Untagged is the neutral value every tag returns to when a pass ends.
type Tag int32

// Untagged is the neutral tag value.
const Untagged Tag = 0

// Adjacency is the triangle dual graph consumed by the component labeler.
type Adjacency interface {
	NumVertices() int
	NumTriangles() int
	// Corner returns the vertex at corner i (0..2) of triangle t.
	Corner(t, i int) int
	// Neighbor returns the triangle across edge e of t; ok is false on a boundary edge.
	Neighbor(t, e int) (n int, ok bool)
}

// Boundary is the open-boundary navigation consumed by the loop extractor.
type Boundary interface {
	NumVertices() int
	OnBoundary(v int) bool
	// NextOnBoundary returns the next vertex along v's open boundary edge.
	NextOnBoundary(v int) (next int, ok bool)
}

// Distancer measures squared Euclidean distance between two vertices.
type Distancer interface {
	SquaredDistance(v, w int) float64
}

// Bridger joins the open loops through v and w into one.
type Bridger interface {
	JoinBoundaryLoops(v, w int) error
}

// Surface is everything a stitch pass needs from the mesh engine.
// *mesh.Mesh implements it.
type Surface interface {
	Adjacency
	Boundary
	Distancer
	Bridger
}

// Pruner is a surface whose triangles can be filtered.
type Pruner interface {
	Adjacency
	KeepTriangles(keep func(t int) bool) int
}

// Loop is one closed open-boundary cycle, in traversal order.
// Component is the tag of the head vertex at extraction time.
type Loop struct {
	Vertices  []int
	Component Tag
}

// Pair is the closest cross-component vertex pair of a pass.
// V lies on the earlier loop in extraction order, W on the later one.
type Pair struct {
	V, W  int
	Dist2 float64
}

// Option configures Join and JoinOnce via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a stitch run.
type Options struct {
	// Ctx is checked between passes; a pass itself is never interrupted.
	Ctx context.Context

	// MaxJoins, if > 0, stops Join after that many merges.
	// Zero means no limit.
	MaxJoins int

	// OnMerge is called once per successful merge with the bridged pair and
	// the number of components remaining afterwards. Purely observational.
	OnMerge func(p Pair, remaining int)

	// Logger receives pass and merge records.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no merge limit
//   - a no-op OnMerge hook
//   - the package Logger()
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxJoins: 0,
		OnMerge:  func(Pair, int) {},
		Logger:   Logger(),
	}
}

// WithContext sets a context checked before every pass.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxJoins limits the number of merges performed by Join.
//
//	n > 0:  at most n merges
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxJoins(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxJoins cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxJoins = n
	}
}

// WithOnMerge registers the progress hook.
func WithOnMerge(fn func(p Pair, remaining int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// WithLogger overrides the package logger for one call.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// JoinResult is the outcome of Join.
type JoinResult struct {
	// Merges is the number of successful bridges.
	Merges int
	// Pairs lists the bridged vertex pairs in merge order.
	Pairs []Pair
	// Components is the component count when Join stopped.
	Components int
}
