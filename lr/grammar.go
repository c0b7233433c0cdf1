package lr

import (
	"fmt"
	"strings"
)

// === Rules =================================================================

// Rule is a type for the productions of a grammar. Rules are immutable once
// they have been added to a grammar.
type Rule struct {
	Serial    int     // ordinal no. of this rule
	LHS       *Symbol // non-terminal on the left hand side
	rhs       []*Symbol
	synthetic bool // created by epsilon promotion during closure
}

// RHS returns a copy of the right hand side of a rule.
func (r *Rule) RHS() []*Symbol {
	rhs := make([]*Symbol, len(r.rhs))
	copy(rhs, r.rhs)
	return rhs
}

// Len returns the number of symbols on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for rules with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// IsSynthetic is true for rules which are not part of the grammar, but have
// been derived from a rule suffix by the closure operation.
func (r *Rule) IsSynthetic() bool {
	return r.synthetic
}

func (r *Rule) String() string {
	if r.IsEpsilon() {
		return fmt.Sprintf("%s -> %s", r.LHS, EpsilonName)
	}
	return fmt.Sprintf("%s -> %s", r.LHS, strings.Join(names(r.rhs), " "))
}

func (r *Rule) sameRHS(rhs []*Symbol) bool {
	if len(r.rhs) != len(rhs) {
		return false
	}
	for i, A := range r.rhs {
		if A != rhs[i] {
			return false
		}
	}
	return true
}

func names(syms []*Symbol) []string {
	n := make([]string, len(syms))
	for i, A := range syms {
		n[i] = A.Name
	}
	return n
}

// === Grammars ==============================================================

// Grammar is a type for context-free grammars. Create grammars using a
// GrammarBuilder; grammars are never modified after they have been built.
type Grammar struct {
	Name     string
	rules    []*Rule
	symbols  map[string]*Symbol
	nonterms []*Symbol // in order of declaration
	terms    []*Symbol // in order of first occurrence
	byLHS    map[*Symbol][]*Rule
	start    *Symbol
	origin   *Symbol // start symbol before augmentation
	eof      *Symbol
	epsilon  *Symbol
}

func newGrammar(name string) *Grammar {
	g := &Grammar{
		Name:    name,
		symbols: make(map[string]*Symbol),
		byLHS:   make(map[*Symbol][]*Rule),
	}
	g.eof = g.intern(EndMarkerName, EndMarker, false)
	g.epsilon = g.intern(EpsilonName, Epsilon, false)
	return g
}

func (g *Grammar) intern(name string, kind SymbolKind, conventional bool) *Symbol {
	if A, ok := g.symbols[name]; ok {
		return A
	}
	A := &Symbol{Name: name, Value: len(g.symbols), kind: kind, conventional: conventional}
	g.symbols[name] = A
	switch kind {
	case NonTerminal:
		g.nonterms = append(g.nonterms, A)
	case Terminal:
		g.terms = append(g.terms, A)
	}
	return A
}

// reclassify changes the kind of a symbol which has been classified by
// naming convention only.
func (g *Grammar) reclassify(A *Symbol, kind SymbolKind) {
	if A.kind == kind {
		return
	}
	switch A.kind {
	case NonTerminal:
		g.nonterms = without(g.nonterms, A)
		g.terms = append(g.terms, A)
	case Terminal:
		g.terms = without(g.terms, A)
		g.nonterms = append(g.nonterms, A)
	}
	A.kind = kind
	A.conventional = false
}

func without(syms []*Symbol, A *Symbol) []*Symbol {
	r := make([]*Symbol, 0, len(syms))
	for _, B := range syms {
		if B != A {
			r = append(r, B)
		}
	}
	return r
}

func (g *Grammar) addRule(r *Rule) {
	g.rules = append(g.rules, r)
	g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule gets a grammar rule by serial number, or nil.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns all rules of the grammar in order of their serial numbers.
func (g *Grammar) Rules() []*Rule {
	rules := make([]*Rule, len(g.rules))
	copy(rules, g.rules)
	return rules
}

// RulesFor returns the rules with left hand side A, in order of declaration.
// Clients must not modify the returned slice.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	return g.byLHS[A]
}

// Symbol returns the symbol for a name, or nil if the grammar does not know
// a symbol of this name.
func (g *Grammar) Symbol(name string) *Symbol {
	return g.symbols[name]
}

// Classify returns the kind of a symbol. Symbols unknown to the grammar are
// classified by naming convention.
func (g *Grammar) Classify(name string) SymbolKind {
	if A, ok := g.symbols[name]; ok {
		return A.kind
	}
	return ClassifyByName(name)
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// EOF returns the end marker.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// Epsilon returns the empty-marker.
func (g *Grammar) Epsilon() *Symbol {
	return g.epsilon
}

// IsAugmented is true for grammars created by Augment.
func (g *Grammar) IsAugmented() bool {
	return g.origin != nil
}

// Terminals returns the terminals of the grammar in order of occurrence.
func (g *Grammar) Terminals() []*Symbol {
	return append([]*Symbol(nil), g.terms...)
}

// NonTerminals returns the non-terminals of the grammar in order of declaration.
func (g *Grammar) NonTerminals() []*Symbol {
	return append([]*Symbol(nil), g.nonterms...)
}

// EachNonTerminal iterates over all non-terminals of the grammar,
// calling a mapper function for each.
func (g *Grammar) EachNonTerminal(mapper func(N *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.nonterms {
		r = append(r, mapper(A))
	}
	return r
}

// EachSymbol iterates over all non-terminals and terminals of the grammar,
// calling a mapper function for each.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	r := g.EachNonTerminal(mapper)
	for _, A := range g.terms {
		r = append(r, mapper(A))
	}
	return r
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s %s", g.Name, strings.Repeat("-", 40))
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf(strings.Repeat("-", 45))
}

func (g *Grammar) copyGrammar() *Grammar {
	c := &Grammar{
		Name:     g.Name,
		symbols:  make(map[string]*Symbol, len(g.symbols)+1),
		byLHS:    make(map[*Symbol][]*Rule, len(g.byLHS)+1),
		nonterms: append([]*Symbol(nil), g.nonterms...),
		terms:    append([]*Symbol(nil), g.terms...),
		start:    g.start,
		eof:      g.eof,
		epsilon:  g.epsilon,
	}
	for name, A := range g.symbols {
		c.symbols[name] = A
	}
	return c
}

// Augment returns a copy of g with an additional start rule S' -> S, where S
// is the start symbol of g. The start rule will be rule 0.
//
// If g already has a non-terminal named S', the start rule is prepended to
// the rules of S' and all rules for S' move to the front.
func (g *Grammar) Augment() (*Grammar, error) {
	if g == nil {
		return nil, noProductions("<nil>", "")
	}
	if len(g.rules) == 0 || g.start == nil {
		return nil, noProductions(g.Name, "")
	}
	if len(g.byLHS[g.start]) == 0 {
		return nil, noProductions(g.Name, g.start.Name)
	}
	ag := g.copyGrammar()
	name := g.start.Name + "'"
	for A := ag.symbols[name]; A != nil && !A.IsNonTerminal(); A = ag.symbols[name] {
		name += "'" // S' is already in use as a terminal
	}
	sprime, exists := ag.symbols[name]
	if !exists {
		sprime = ag.intern(name, NonTerminal, false)
	}
	ag.nonterms = append([]*Symbol{sprime}, without(ag.nonterms, sprime)...)
	rules := []*Rule{{LHS: sprime, rhs: []*Symbol{g.start}}}
	for _, r := range g.rules {
		if r.LHS == sprime {
			rules = append(rules, r)
		}
	}
	for _, r := range g.rules {
		if r.LHS != sprime {
			rules = append(rules, r)
		}
	}
	for i, r := range rules {
		ag.addRule(&Rule{Serial: i, LHS: r.LHS, rhs: r.rhs})
	}
	ag.start = sprime
	ag.origin = g.start
	if exists {
		tracer().Infof("grammar %s: extending existing rules for %s", g.Name, sprime)
	}
	tracer().Debugf("augmented grammar %s with start rule %v", g.Name, ag.rules[0])
	return ag, nil
}

// === Grammar Builder =======================================================

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder and add rules with LHS(…). A builder must not be used
// after its grammar has been retrieved.
type GrammarBuilder struct {
	g        *Grammar
	start    string
	firstLHS *Symbol
	tokens   map[string]bool
	err      error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		g:      newGrammar(gname),
		tokens: make(map[string]bool),
	}
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		gb.err = err
	}
}

// symbol interns a symbol. Explicit classifications win over conventional ones.
func (gb *GrammarBuilder) symbol(name string, kind SymbolKind, conventional bool) *Symbol {
	A, ok := gb.g.symbols[name]
	if !ok {
		return gb.g.intern(name, kind, conventional)
	}
	if A.kind == kind {
		A.conventional = A.conventional && conventional
		return A
	}
	if conventional {
		return A
	}
	if A.conventional {
		gb.g.reclassify(A, kind)
		return A
	}
	gb.fail(&StructuralError{
		Grammar: gb.g.Name,
		Symbol:  name,
		Reason:  fmt.Sprintf("symbol used as %s and as %s", A.kind, kind),
	})
	return A
}

// Token declares terminals. If a grammar declares tokens, every terminal on
// the right hand side of a rule has to be declared.
func (gb *GrammarBuilder) Token(names ...string) *GrammarBuilder {
	for _, name := range names {
		gb.symbol(name, Terminal, false)
		gb.tokens[name] = true
	}
	return gb
}

// Start sets the start symbol. The default is the left hand side of the
// first rule.
func (gb *GrammarBuilder) Start(name string) *GrammarBuilder {
	gb.start = name
	return gb
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	var A *Symbol
	switch s {
	case EndMarkerName, EpsilonName:
		gb.fail(&StructuralError{Grammar: gb.g.Name, Symbol: s, Reason: "reserved symbol on left hand side"})
		A = gb.g.symbols[s]
	default:
		A = gb.symbol(s, NonTerminal, false)
	}
	if gb.firstLHS == nil {
		gb.firstLHS = A
	}
	return &RuleBuilder{gb: gb, lhs: A}
}

// Production adds a rule with symbols classified by naming convention.
// An empty rhs adds an epsilon-production.
func (gb *GrammarBuilder) Production(lhs string, rhs []string) *Rule {
	rb := gb.LHS(lhs)
	for _, s := range rhs {
		rb.Sym(s)
	}
	return rb.End()
}

// Grammar returns the grammar built so far. It checks that the grammar has
// productions, that the start symbol has productions and that every symbol
// on a right hand side is declared.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	g := gb.g
	if len(g.rules) == 0 {
		return nil, noProductions(g.Name, "")
	}
	g.start = gb.firstLHS
	if gb.start != "" {
		g.start = g.symbols[gb.start]
		if g.start == nil || len(g.byLHS[g.start]) == 0 {
			return nil, noProductions(g.Name, gb.start)
		}
	}
	for _, r := range g.rules {
		for _, A := range r.rhs {
			if A.IsNonTerminal() && len(g.byLHS[A]) == 0 {
				return nil, &UndeclaredSymbolError{Symbol: A.Name, Rule: r.String()}
			}
			if A.kind == Terminal && len(gb.tokens) > 0 && !gb.tokens[A.Name] {
				return nil, &UndeclaredSymbolError{Symbol: A.Name, Rule: r.String()}
			}
		}
	}
	tracer().Debugf("grammar %s has %d rules, start symbol is %s", g.Name, len(g.rules), g.start)
	return g, nil
}

// RuleBuilder is a builder type for rules, created by GrammarBuilder.LHS.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	return rb.append(s, NonTerminal, false)
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	return rb.append(s, Terminal, false)
}

// Sym appends a symbol to the right hand side, classified by naming
// convention (see ClassifyByName). Symbols already known to the grammar
// keep their kind.
func (rb *RuleBuilder) Sym(s string) *RuleBuilder {
	return rb.append(s, ClassifyByName(s), true)
}

func (rb *RuleBuilder) append(s string, kind SymbolKind, conventional bool) *RuleBuilder {
	switch s {
	case EpsilonName:
		return rb
	case EndMarkerName:
		if kind == NonTerminal && !conventional {
			rb.gb.fail(&StructuralError{Grammar: rb.gb.g.Name, Symbol: s, Reason: "end marker used as non-terminal"})
		}
		rb.rhs = append(rb.rhs, rb.gb.g.eof)
		return rb
	}
	rb.rhs = append(rb.rhs, rb.gb.symbol(s, kind, conventional))
	return rb
}

// End finishes a rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	g := rb.gb.g
	r := &Rule{Serial: len(g.rules), LHS: rb.lhs, rhs: rb.rhs}
	g.addRule(r)
	return r
}

// Epsilon finishes a rule as an epsilon-production.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}
