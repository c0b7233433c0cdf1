package lr

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// LRAnalysis is an object for grammar analysis: it computes FIRST sets and
// performs the item set operations closure and goto. An LRAnalysis is not safe
// for concurrent use; analyse independent grammars with independent objects.
type LRAnalysis struct {
	g        *Grammar
	firstSet map[*Symbol]*treeset.Set // FIRST sets of top-level calls
	derived  map[string]*Rule         // rules from epsilon promotion
	serial   int                      // next serial for derived rules
}

// Analysis creates an analysis object for a grammar. The grammar is
// augmented first, if it is not already.
func Analysis(g *Grammar) (*LRAnalysis, error) {
	if g == nil || len(g.rules) == 0 {
		name := "<nil>"
		if g != nil {
			name = g.Name
		}
		return nil, noProductions(name, "")
	}
	if !g.IsAugmented() {
		var err error
		if g, err = g.Augment(); err != nil {
			return nil, err
		}
	}
	ga := &LRAnalysis{
		g:        g,
		firstSet: make(map[*Symbol]*treeset.Set),
		derived:  make(map[string]*Rule),
		serial:   len(g.rules),
	}
	return ga, nil
}

// Grammar returns the (augmented) grammar under analysis.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// FirstOf returns FIRST(A) for a symbol given by name.
func (ga *LRAnalysis) FirstOf(name string) (*treeset.Set, error) {
	A := ga.g.Symbol(name)
	if A == nil {
		return nil, &UndeclaredSymbolError{Symbol: name}
	}
	return ga.First(A)
}

// First returns the set of terminals which may start a derivation of A. If
// A derives the empty string, the set includes ε.
//
// FIRST considers the first symbol of every right hand side of A only.
// Recursive derivations (e.g., from left-recursive rules) contribute nothing
// on their second visit.
//
// The returned set is owned by the caller.
func (ga *LRAnalysis) First(A *Symbol) (*treeset.Set, error) {
	if A == nil || ga.g.symbols[A.Name] != A {
		name := "<nil>"
		if A != nil {
			name = A.Name
		}
		return nil, &UndeclaredSymbolError{Symbol: name}
	}
	S, ok := ga.firstSet[A]
	if !ok {
		var err error
		visited := make(map[*Symbol]bool)
		memo := make(map[*Symbol]*treeset.Set)
		if S, err = ga.first(A, visited, memo); err != nil {
			return nil, err
		}
		ga.firstSet[A] = S
	}
	return newSymbolSet(toSymbols(S.Values())...), nil
}

// first computes FIRST(A). visited holds the non-terminals on the current
// chain of recursive calls, memo the results computed during the current
// top-level call.
func (ga *LRAnalysis) first(A *Symbol, visited map[*Symbol]bool, memo map[*Symbol]*treeset.Set) (*treeset.Set, error) {
	switch {
	case A.IsEpsilon():
		return newSymbolSet(ga.g.epsilon), nil
	case A.IsTerminal():
		return newSymbolSet(A), nil
	}
	if visited[A] {
		tracer().Debugf("FIRST(%s) is recursive, cutting off", A)
		return newSymbolSet(), nil
	}
	if S, ok := memo[A]; ok {
		return S, nil
	}
	rules := ga.g.RulesFor(A)
	if len(rules) == 0 {
		return nil, &UndeclaredSymbolError{Symbol: A.Name}
	}
	visited[A] = true
	defer delete(visited, A)
	S := newSymbolSet()
	for _, r := range rules {
		if r.IsEpsilon() {
			S.Add(ga.g.epsilon)
			continue
		}
		F, err := ga.first(r.rhs[0], visited, memo)
		if err != nil {
			return nil, err
		}
		S.Add(F.Values()...)
	}
	memo[A] = S
	tracer().Debugf("FIRST(%s) = {%s}", A, strings.Join(SymbolNames(S), ", "))
	return S, nil
}

func toSymbols(values []interface{}) []*Symbol {
	syms := make([]*Symbol, len(values))
	for i, x := range values {
		syms[i] = x.(*Symbol)
	}
	return syms
}
