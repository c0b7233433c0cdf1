/*
Package lr implements the grammar analysis for an LR(0) front end.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").N("B").End()   // S  ->  A B
    b.LHS("S").N("C").End()          // S  ->  C
    b.LHS("A").T("a").N("A").End()   // A  ->  a A
    b.LHS("A").T("b").End()          // A  ->  b
    b.LHS("B").T("c").End()          // B  ->  c
    b.LHS("C").T("d").End()          // C  ->  d
    b.LHS("C").Epsilon()             // C  ->
    g, err := b.Grammar()

Grammars read from grammar files do not classify symbols explicitly. For them,
RuleBuilder.Sym classifies a symbol by naming convention: symbols written in
lower case are non-terminals, all others are terminals.

Before analysis a grammar is augmented with a fresh start rule S' -> S,
which always is rule 0 of the augmented grammar:

    ag, err := g.Augment()
    ag.Dump()

      0: S' -> S
      1: S -> A B
      2: S -> C
    ...

Static Grammar Analysis

An LRAnalysis object computes FIRST sets and provides the item set
operations closure and goto.

    ga, err := lr.Analysis(g)  // analyser for grammar above
    first, err := ga.First(g.Symbol("C"))

    // first = [d ε]

CFSM Construction

From the analysis a characteristic finite state machine (CFSM) is built, i.e.
the canonical collection of LR(0) item sets together with the transitions
between them. States are identified by their kernel items; the initial state
always has ID 0.

    cfsm, err := lr.NewCFSMBuilder(ga).Build()
    for _, s := range cfsm.States() {
        ...
    }

Package render is able to export a CFSM to Graphviz's Dot-format.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'yapar.lr'.
func tracer() tracing.Trace {
	return tracing.Select("yapar.lr")
}
