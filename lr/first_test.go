package lr

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFirstSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.lr")
	defer teardown()
	//
	ga := makeAnalysis(t)
	var firsts = map[string]string{
		"S'": "a b d ε",
		"S":  "a b d ε",
		"A":  "a b",
		"B":  "c",
		"C":  "d ε",
		"a":  "a",
		"ε":  "ε",
	}
	for name, expected := range firsts {
		F, err := ga.FirstOf(name)
		if err != nil {
			t.Fatal(err)
		}
		if first := strings.Join(SymbolNames(F), " "); first != expected {
			t.Errorf("expected FIRST(%s) = {%s}, is {%s}", name, expected, first)
		}
	}
}

func TestFirstIsOwnedByCaller(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.lr")
	defer teardown()
	//
	ga := makeAnalysis(t)
	F, _ := ga.FirstOf("B")
	F.Clear()
	G, _ := ga.FirstOf("B")
	if G.Size() != 1 {
		t.Errorf("FIRST set of B has been modified by client, is %v", SymbolNames(G))
	}
}

func TestFirstLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("LeftRecursive")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"E", "T", "F"} {
		F, err := ga.FirstOf(name)
		if err != nil {
			t.Fatal(err)
		}
		if first := strings.Join(SymbolNames(F), " "); first != "( id" {
			t.Errorf("expected FIRST(%s) = {( id}, is {%s}", name, first)
		}
	}
}

func TestFirstUnknownSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.lr")
	defer teardown()
	//
	ga := makeAnalysis(t)
	_, err := ga.FirstOf("nope")
	var uerr *UndeclaredSymbolError
	if !errors.As(err, &uerr) || uerr.Symbol != "nope" {
		t.Errorf("expected error for undeclared symbol, is %v", err)
	}
	if _, err = ga.First(&Symbol{Name: "A"}); err == nil {
		t.Errorf("expected symbol of another grammar to be rejected")
	}
}

func TestAnalysisOfEmptyGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yapar.lr")
	defer teardown()
	//
	if _, err := Analysis(nil); !errors.Is(err, ErrNoProductions) {
		t.Errorf("expected analysis of nil grammar to fail, err = %v", err)
	}
}
