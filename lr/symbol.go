package lr

import (
	"unicode"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolKind tags grammar symbols.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	NonTerminal SymbolKind = iota
	Terminal
	EndMarker
	Epsilon
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminal:
		return "non-terminal"
	case Terminal:
		return "terminal"
	case EndMarker:
		return "end-marker"
	case Epsilon:
		return "epsilon"
	}
	return "<unknown>"
}

// Names of the distinguished symbols.
const (
	EndMarkerName = "$"
	EpsilonName   = "ε"
)

// Symbol is a grammar symbol. Symbols are interned per grammar: symbols with
// equal names are identical.
type Symbol struct {
	Name         string
	Value        int // serial number within the grammar
	kind         SymbolKind
	conventional bool // kind has been derived from the name only
}

// Kind returns the kind of a symbol.
func (A *Symbol) Kind() SymbolKind {
	return A.kind
}

// IsTerminal is true for terminals and for the end marker.
func (A *Symbol) IsTerminal() bool {
	return A.kind == Terminal || A.kind == EndMarker
}

// IsNonTerminal is true for non-terminals.
func (A *Symbol) IsNonTerminal() bool {
	return A.kind == NonTerminal
}

// IsEpsilon is true for the empty-marker.
func (A *Symbol) IsEpsilon() bool {
	return A.kind == Epsilon
}

func (A *Symbol) String() string {
	return A.Name
}

// ClassifyByName classifies a symbol by its name. Names written in lower case
// (at least one cased letter, none of them upper case) denote non-terminals,
// all others terminals.
func ClassifyByName(name string) SymbolKind {
	switch name {
	case EndMarkerName:
		return EndMarker
	case EpsilonName:
		return Epsilon
	}
	cased := false
	for _, r := range name {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return Terminal
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	if cased {
		return NonTerminal
	}
	return Terminal
}

// --- Sets of symbols -------------------------------------------------------

// We need this for sets of symbols. It sorts symbols by name.
func symbolComparator(s1, s2 interface{}) int {
	A := s1.(*Symbol)
	B := s2.(*Symbol)
	return utils.StringComparator(A.Name, B.Name)
}

func newSymbolSet(syms ...*Symbol) *treeset.Set {
	S := treeset.NewWith(symbolComparator)
	for _, A := range syms {
		S.Add(A)
	}
	return S
}

// SymbolNames returns the names of the symbols in a set of symbols, as
// returned by LRAnalysis.First.
func SymbolNames(S *treeset.Set) []string {
	names := make([]string, 0, S.Size())
	for _, x := range S.Values() {
		names = append(names, x.(*Symbol).Name)
	}
	return names
}
