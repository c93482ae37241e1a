package stitch

import (
	"fmt"

	"go.uber.org/zap"
)

// stitcher holds the state of one Join or JoinOnce call.
type stitcher struct {
	surface Surface
	opts    Options
	log     *zap.Logger
	labels  Labels // scratch, reset after every pass
}

// JoinOnce runs one full stitch pass: label components, extract boundary
// loops, find the closest cross-component pair and bridge it.
// merged reports whether a bridge was made; a single-component surface and
// a surface whose other components have no open boundary both return false
// without touching the mesh.
//
// The context is checked before the pass and OnMerge fires after a
// successful bridge, exactly as for one round of Join. MaxJoins does not
// apply to a single pass.
func JoinOnce(s Surface, opts ...Option) (p Pair, merged bool, err error) {
	st, err := newStitcher(s, opts)
	if err != nil {
		return Pair{}, false, err
	}
	if err = st.opts.Ctx.Err(); err != nil {
		return Pair{}, false, err
	}
	p, n, merged, err := st.pass()
	if err != nil || !merged {
		return p, false, err
	}
	st.opts.OnMerge(p, n-1)

	return p, true, nil
}

// Join merges the two closest distinct components of s, pass after pass,
// until one component remains or no bridge is possible. Each merge lowers
// the component count by one, so Join stops within C₀−1 merges.
//
// OnMerge fires once per merge with the remaining component count.
// The context is checked before every pass; MaxJoins caps the merges.
// Returns the partial result together with any error; Components then
// holds the count last measured.
func Join(s Surface, opts ...Option) (*JoinResult, error) {
	st, err := newStitcher(s, opts)
	if err != nil {
		return nil, err
	}
	res := &JoinResult{}
	for {
		if err = st.opts.Ctx.Err(); err != nil {
			if res.Merges == 0 {
				res.Components = CountComponents(st.surface)
			}
			return res, err
		}
		if st.opts.MaxJoins > 0 && res.Merges >= st.opts.MaxJoins {
			break
		}
		p, n, merged, err := st.pass()
		if err != nil {
			res.Components = n
			return res, err
		}
		if !merged {
			res.Components = n
			break
		}
		res.Merges++
		res.Pairs = append(res.Pairs, p)
		res.Components = n - 1
		st.opts.OnMerge(p, n-1)
	}
	st.log.Debug("stitch done",
		zap.Int("merges", res.Merges),
		zap.Int("components", res.Components))

	return res, nil
}

func newStitcher(s Surface, opts []Option) (*stitcher, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &stitcher{surface: s, opts: o, log: o.Logger}, nil
}

// pass performs one label → extract → match → bridge cycle and returns the
// component count seen by the labeler. Tags are cleared on every return.
func (st *stitcher) pass() (p Pair, components int, merged bool, err error) {
	defer st.labels.Reset()

	st.labels.label(st.surface)
	components = st.labels.Count()
	if components < 2 {
		st.log.Debug("single component, nothing to join", zap.Int("components", components))
		return Pair{}, components, false, nil
	}

	loops := ExtractLoops(st.surface, &st.labels)
	p, ok := ClosestPair(st.surface, loops)
	if !ok {
		st.log.Debug("no cross-component boundary pair",
			zap.Int("components", components),
			zap.Int("loops", len(loops)))
		return Pair{}, components, false, nil
	}

	if err = st.surface.JoinBoundaryLoops(p.V, p.W); err != nil {
		return Pair{}, components, false, fmt.Errorf("%w %d-%d: %w", ErrBridge, p.V, p.W, err)
	}
	st.log.Info("joined components",
		zap.Int("v", p.V),
		zap.Int("w", p.W),
		zap.Float64("dist2", p.Dist2),
		zap.Int("loops", len(loops)),
		zap.Int("remaining", components-1))

	return p, components, true, nil
}
