package lr

import (
	"strings"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Closure computes the closure of an item set. For every item
//
//     X -> α • N β
//
// with a non-terminal N after the dot, the start items of all rules for N are
// added. If FIRST(β₀) contains ε, the remainder β is promoted to a rule
// X -> β of its own, and its start item is added as well. This repeats until
// a full pass over the set does not add anything.
//
// S is not modified.
func (ga *LRAnalysis) Closure(S *ItemSet) (*ItemSet, error) {
	C := S.Copy()
	for changed := true; changed; {
		changed = false
		for _, item := range C.Items() {
			N := item.PeekSymbol()
			if N == nil || !N.IsNonTerminal() {
				continue
			}
			rules := ga.g.RulesFor(N)
			if len(rules) == 0 {
				return nil, &UndeclaredSymbolError{Symbol: N.Name, Rule: item.rule.String()}
			}
			for _, r := range rules {
				if C.Add(StartItem(r)) {
					changed = true
				}
			}
			beta := item.rule.rhs[item.dot+1:]
			if len(beta) == 0 {
				continue
			}
			F, err := ga.First(beta[0])
			if err != nil {
				return nil, err
			}
			if F.Contains(ga.g.epsilon) {
				promoted := StartItem(ga.promote(item.rule.LHS, beta))
				if C.Add(promoted) {
					tracer().Debugf("closure: promoted %s from %s", promoted, item)
					changed = true
				}
			}
		}
	}
	return C, nil
}

// promote returns a rule lhs -> rhs. If the grammar contains such a rule, it
// is used; otherwise a synthetic rule is created once per analysis.
func (ga *LRAnalysis) promote(lhs *Symbol, rhs []*Symbol) *Rule {
	for _, r := range ga.g.RulesFor(lhs) {
		if r.sameRHS(rhs) {
			return r
		}
	}
	key := lhs.Name + "\x00" + strings.Join(names(rhs), "\x00")
	if r, ok := ga.derived[key]; ok {
		return r
	}
	r := &Rule{
		Serial:    ga.serial,
		LHS:       lhs,
		rhs:       append([]*Symbol(nil), rhs...),
		synthetic: true,
	}
	ga.serial++
	ga.derived[key] = r
	tracer().Debugf("derived rule %d: %s", r.Serial, r)
	return r
}

// gotoSet advances the dot over A for every item in S which has A
// after the dot. The result is the kernel of the successor.
func (ga *LRAnalysis) gotoSet(S *ItemSet, A *Symbol) *ItemSet {
	// for every item in S
	// if item in S:  N -> ... *A ...
	//     advance N -> ... A * ...
	gotoset := NewItemSet()
	for _, i := range S.Items() {
		if i.PeekSymbol() == A {
			ii := i.Advance()
			tracer().Debugf("goto(%s) -%s-> %s", i, A, ii)
			gotoset.Add(ii)
		}
	}
	return gotoset
}

// Goto computes the successor of an item set S for symbol A. It returns the
// kernel of the successor together with its closure. If no item in S has A
// after the dot, both sets are empty.
func (ga *LRAnalysis) Goto(S *ItemSet, A *Symbol) (kernel *ItemSet, closure *ItemSet, err error) {
	kernel = ga.gotoSet(S, A)
	if kernel.Empty() {
		return kernel, NewItemSet(), nil
	}
	if closure, err = ga.Closure(kernel); err != nil {
		return nil, nil, err
	}
	tracer().Debugf("goto(%s) --%s--> %s", S, A, closure)
	return kernel, closure, nil
}

// SymbolsAfterDot returns the symbols occurring directly after the dot of an
// item in S, in order of their first occurrence.
func SymbolsAfterDot(S *ItemSet) []*Symbol {
	seen := make(map[*Symbol]bool)
	var syms []*Symbol
	for _, i := range S.Items() {
		if A := i.PeekSymbol(); A != nil && !seen[A] {
			seen[A] = true
			syms = append(syms, A)
		}
	}
	return syms
}
