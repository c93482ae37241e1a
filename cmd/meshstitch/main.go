// Command meshstitch loads a triangle mesh, optionally keeps only its
// largest piece, bridges open pieces together and writes the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/meshstitch/meshio"
	"github.com/katalvlaran/meshstitch/stitch"
)

type config struct {
	in          string
	out         string
	joinComp    bool
	removeSmall bool
	maxJoins    int
	verbose     bool
}

func main() {
	var (
		inFile      = flag.String("in", "", "Input mesh (.obj or .stl)")
		outFile     = flag.String("out", "", "Output mesh (.obj or .stl); omit to only report")
		joinComp    = flag.Bool("joincomp", false, "Bridge open components at their closest boundary vertices")
		removeSmall = flag.Bool("remove-small", false, "Keep only the component with the most triangles")
		maxJoins    = flag.Int("max-joins", 0, "Stop after N bridges (0 = unlimited)")
		verbose     = flag.Bool("v", false, "Development logging on stderr")
	)
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: meshstitch -in <mesh> [-out <mesh>] [-joincomp] [-remove-small] [-max-joins N] [-v]")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, config{
		in:          *inFile,
		out:         *outFile,
		joinComp:    *joinComp,
		removeSmall: *removeSmall,
		maxJoins:    *maxJoins,
		verbose:     *verbose,
	}, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, w io.Writer) error {
	log, err := newLogger(cfg.verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()
	stitch.SetLogger(log)
	defer stitch.SetLogger(nil)

	m, err := meshio.Load(cfg.in)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	log.Debug("loaded", zap.String("path", cfg.in),
		zap.Int("vertices", m.NumVertices()), zap.Int("triangles", m.NumTriangles()))

	tty := isTerminal(w)
	rep := &report{input: cfg.in, output: cfg.out, before: measure(m)}

	if cfg.removeSmall {
		n, err := stitch.RemoveSmallestComponents(m)
		if err != nil {
			return fmt.Errorf("remove small components: %w", err)
		}
		rep.pruned, rep.removed = true, n
	}

	if cfg.joinComp {
		bar := newMergeBar(w, tty, stitch.CountComponents(m))
		res, err := stitch.Join(m,
			stitch.WithContext(ctx),
			stitch.WithMaxJoins(cfg.maxJoins),
			stitch.WithLogger(log),
			stitch.WithOnMerge(bar.merged),
		)
		bar.finish()
		if err != nil {
			return fmt.Errorf("join components: %w", err)
		}
		rep.joined, rep.merges = true, res.Merges
	}

	rep.after = measure(m)
	if cfg.out != "" {
		if err := meshio.Save(cfg.out, m); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}

	_, err = io.WriteString(w, rep.render(tty))
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
