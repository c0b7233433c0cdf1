package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/npillmayer/yapar/lr"
)

// Options control the appearance of a CFSM in Graphviz.
type Options struct {
	DotMarker    string `toml:"dot_marker"`    // marker for the dot of items
	KernelMarker string `toml:"kernel_marker"` // prefix for kernel items
	AcceptColor  string `toml:"accept_color"`  // fill color of the accepting state
	StateColor   string `toml:"state_color"`   // fill color of other states
	FontName     string `toml:"font_name"`
	FontSize     int    `toml:"font_size"`
	DotPath      string `toml:"dot_path"` // path of the Graphviz executable
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		DotMarker:    lr.DotMarker,
		KernelMarker: "*** ",
		AcceptColor:  "lightgray",
		StateColor:   "white",
		FontName:     "Helvetica",
		FontSize:     10,
		DotPath:      "dot",
	}
}

// Dot exports a CFSM to the Graphviz Dot format. Every state is drawn as a
// record with its ID and its items; kernel items are prefixed by the kernel
// marker. The accepting state gets an additional edge, labelled with the
// end marker, to a node 'accept'.
func Dot(w io.Writer, cfsm *lr.CFSM, opts Options) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `digraph {
graph [splines=true, fontname=%[1]s, fontsize=%[2]d];
node [shape=Mrecord, style=filled, fontname=%[1]s, fontsize=%[2]d];
edge [fontname=%[1]s, fontsize=%[2]d];

`, opts.FontName, opts.FontSize)
	for _, s := range cfsm.States() {
		fmt.Fprintf(bw, "s%03d [fillcolor=%s label=\"{State %d | %s}\"]\n",
			s.ID, nodecolor(s, opts), s.ID, stateLabel(s, opts))
	}
	for _, e := range cfsm.Transitions() {
		fmt.Fprintf(bw, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, escape(e.Label.Name))
	}
	if from, label, ok := cfsm.AcceptEdge(); ok {
		bw.WriteString("accept [shape=doublecircle, fillcolor=white]\n")
		fmt.Fprintf(bw, "s%03d -> accept [label=\"%s\"]\n", from, escape(label.Name))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// WriteDotFile exports a CFSM to a Dot file.
func WriteDotFile(filename string, cfsm *lr.CFSM, opts Options) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create Dot file: %w", err)
	}
	if err = Dot(f, cfsm, opts); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("CFSM written to %s", filename)
	return f.Close()
}

// PDF converts a Dot file to PDF, calling the Graphviz executable.
func PDF(ctx context.Context, dotfile, pdffile string, opts Options) error {
	dotpath := opts.DotPath
	if dotpath == "" {
		dotpath = "dot"
	}
	cmd := exec.CommandContext(ctx, dotpath, "-Tpdf", "-o", pdffile, dotfile)
	out, err := cmd.CombinedOutput()
	if err != nil {
		tracer().Errorf("%s: %s", dotpath, strings.TrimSpace(string(out)))
		return fmt.Errorf("cannot create PDF with %s: %w", dotpath, err)
	}
	tracer().Infof("CFSM written to %s", pdffile)
	return nil
}

func nodecolor(state *lr.CFSMState, opts Options) string {
	if state.Accept {
		return opts.AcceptColor
	}
	return opts.StateColor
}

func stateLabel(s *lr.CFSMState, opts Options) string {
	var b strings.Builder
	for _, line := range s.Lines(opts.DotMarker) {
		if line.Kernel {
			b.WriteString(escape(opts.KernelMarker))
		}
		b.WriteString(escape(line.Text))
		b.WriteString(`\l`)
	}
	return b.String()
}

// escape quotes characters with a special meaning in record labels.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '{', '}', '|', '<', '>', '"', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
