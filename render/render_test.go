package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/yapar/lr"
	"github.com/stretchr/testify/assert"
)

func makeCFSM(t *testing.T) (*lr.LRAnalysis, *lr.CFSM) {
	b := lr.NewGrammarBuilder("G")
	b.LHS("S").N("A").N("B").End()
	b.LHS("S").N("C").End()
	b.LHS("A").T("a").N("A").End()
	b.LHS("A").T("b").End()
	b.LHS("B").T("c").End()
	b.LHS("C").T("d").End()
	b.LHS("C").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := lr.Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	cfsm, err := lr.NewCFSMBuilder(ga).Build()
	if err != nil {
		t.Fatal(err)
	}
	return ga, cfsm
}

func Test_Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.render")
	defer teardown()
	assert := assert.New(t)

	_, cfsm := makeCFSM(t)
	var buf bytes.Buffer
	assert.Nil(Dot(&buf, cfsm, DefaultOptions()))
	dot := buf.String()
	assert.True(strings.HasPrefix(dot, "digraph {"))
	assert.Contains(dot, `s000 [fillcolor=white label="{State 0 | *** S' -\> • S\lS -\> • A B\l`)
	assert.Contains(dot, `s006 [fillcolor=lightgray label="{State 6 | *** C -\> d •\l}"]`)
	assert.Contains(dot, `s004 -> s004 [label="a"]`)
	assert.Contains(dot, `s006 -> accept [label="$"]`)
	assert.Equal(11+1, strings.Count(dot, " -> "))
}

func Test_DotOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.render")
	defer teardown()
	assert := assert.New(t)

	_, cfsm := makeCFSM(t)
	opts := DefaultOptions()
	opts.DotMarker = "."
	opts.KernelMarker = "> "
	opts.AcceptColor = "yellow"
	opts.FontName = "Courier"
	var buf bytes.Buffer
	assert.Nil(Dot(&buf, cfsm, opts))
	dot := buf.String()
	assert.Contains(dot, "fontname=Courier")
	assert.Contains(dot, `s006 [fillcolor=yellow label="{State 6 | \> C -\> d .\l}"]`)
}

func Test_WriteDotFile(t *testing.T) {
	assert := assert.New(t)

	_, cfsm := makeCFSM(t)
	filename := filepath.Join(t.TempDir(), "LR0.dot")
	assert.Nil(WriteDotFile(filename, cfsm, DefaultOptions()))
	content, err := os.ReadFile(filename)
	assert.Nil(err)
	assert.Contains(string(content), "s009")
}

func Test_PDFWithoutGraphviz(t *testing.T) {
	assert := assert.New(t)

	opts := DefaultOptions()
	opts.DotPath = filepath.Join(t.TempDir(), "no-such-dot")
	err := PDF(context.Background(), "LR0.dot", "LR0.pdf", opts)
	assert.Error(err)
}

func Test_Escape(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(`x -\> \{y\|z\}`, escape("x -> {y|z}"))
	assert.Equal(`\"q\"`, escape(`"q"`))
}

func Test_Tables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.render")
	defer teardown()
	assert := assert.New(t)

	ga, cfsm := makeCFSM(t)
	states := StateTable(cfsm, lr.DotMarker)
	assert.Contains(states, "* A -> a • A")
	assert.Contains(states, "A -> 9")
	assert.Contains(states, "$ -> accept")

	first, err := FirstTable(ga)
	assert.Nil(err)
	assert.Contains(first, "{ d, ε }")
	assert.Contains(first, "NON-TERMINAL") // rosed prints headers in upper case

	rules := RuleTable(ga.Grammar())
	assert.Contains(rules, "S' -> S")
	assert.Contains(rules, "C -> ε")
}
