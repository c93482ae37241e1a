package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/meshstitch/mesh"
	"github.com/katalvlaran/meshstitch/stitch"
)

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
}

var (
	colorStyles = styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")),
		value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90")),
		warn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
	}

	plainStyles = styles{
		title: lipgloss.NewStyle(),
		label: lipgloss.NewStyle(),
		value: lipgloss.NewStyle(),
		warn:  lipgloss.NewStyle(),
	}
)

// stats is a snapshot of mesh shape.
type stats struct {
	vertices   int
	triangles  int
	components int
	boundaries int
}

func measure(m *mesh.Mesh) stats {
	return stats{
		vertices:   m.NumVertices(),
		triangles:  m.NumTriangles(),
		components: stitch.CountComponents(m),
		boundaries: stitch.CountBoundaries(m),
	}
}

func (s stats) String() string {
	return fmt.Sprintf("%d vertices, %d triangles, %d components, %d boundary loops",
		s.vertices, s.triangles, s.components, s.boundaries)
}

type report struct {
	input, output string
	before, after stats

	pruned  bool
	removed int

	joined bool
	merges int
}

func (r *report) render(tty bool) string {
	st := plainStyles
	if tty {
		st = colorStyles
	}

	var b strings.Builder
	b.WriteString(st.title.Render("meshstitch"))
	b.WriteByte('\n')
	row := func(k, v string) {
		fmt.Fprintf(&b, "%s %s\n", st.label.Render(fmt.Sprintf("%-8s", k)), st.value.Render(v))
	}
	row("input", r.input)
	row("before", r.before.String())
	if r.pruned {
		row("removed", fmt.Sprintf("%d components", r.removed))
	}
	if r.joined {
		row("bridges", fmt.Sprint(r.merges))
	}
	row("after", r.after.String())
	if r.output != "" {
		row("output", r.output)
	}
	if r.joined && r.after.components > 1 {
		b.WriteString(st.warn.Render(fmt.Sprintf("%d components could not be joined", r.after.components)))
		b.WriteByte('\n')
	}

	return b.String()
}

// mergeBar reports Join progress: a redrawn bar on a terminal, one line
// per bridge otherwise.
type mergeBar struct {
	w     io.Writer
	tty   bool
	total int
	count int
	bar   progress.Model
}

func newMergeBar(w io.Writer, tty bool, components int) *mergeBar {
	return &mergeBar{
		w:     w,
		tty:   tty,
		total: components - 1,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (b *mergeBar) merged(p stitch.Pair, remaining int) {
	b.count++
	if !b.tty {
		fmt.Fprintf(b.w, "bridge %d: %d-%d dist² %g, %d components left\n", b.count, p.V, p.W, p.Dist2, remaining)
		return
	}
	frac := 1.0
	if b.total > 0 {
		frac = min(float64(b.count)/float64(b.total), 1)
	}
	fmt.Fprintf(b.w, "\r%s %d left", b.bar.ViewAs(frac), remaining)
}

func (b *mergeBar) finish() {
	if b.tty && b.count > 0 {
		fmt.Fprintln(b.w)
	}
}
