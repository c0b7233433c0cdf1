package render

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/npillmayer/yapar/lr"
)

const tableWidth = 80

var tableOpts = rosed.Options{
	TableHeaders:             true,
	TableBorders:             true,
	NoTrailingLineSeparators: true,
}

// StateTable returns a text table of the states of a CFSM, listing the items
// and the outgoing transitions of every state. Kernel items are marked with
// an asterisk.
func StateTable(cfsm *lr.CFSM, marker string) string {
	data := [][]string{{"State", "Items", "Transitions"}}
	for _, s := range cfsm.States() {
		var items []string
		for _, line := range s.Lines(marker) {
			if line.Kernel {
				items = append(items, "* "+line.Text)
			} else {
				items = append(items, "  "+line.Text)
			}
		}
		edges := transitions(cfsm, s)
		for n := 0; n < len(items) || n < len(edges); n++ {
			row := make([]string, 3)
			if n == 0 {
				row[0] = fmt.Sprintf("%d", s.ID)
			}
			if n < len(items) {
				row[1] = items[n]
			}
			if n < len(edges) {
				row[2] = edges[n]
			}
			data = append(data, row)
		}
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, tableWidth, tableOpts).
		String()
}

func transitions(cfsm *lr.CFSM, s *lr.CFSMState) []string {
	var edges []string
	for _, e := range cfsm.Transitions() {
		if e.From == s.ID {
			edges = append(edges, fmt.Sprintf("%s -> %d", e.Label, e.To))
		}
	}
	if s.Accept {
		edges = append(edges, fmt.Sprintf("%s -> accept", lr.EndMarkerName))
	}
	return edges
}

// FirstTable returns a text table of the FIRST sets of all non-terminals.
func FirstTable(ga *lr.LRAnalysis) (string, error) {
	data := [][]string{{"Non-Terminal", "FIRST"}}
	for _, N := range ga.Grammar().NonTerminals() {
		F, err := ga.First(N)
		if err != nil {
			return "", err
		}
		data = append(data, []string{N.Name, "{ " + strings.Join(lr.SymbolNames(F), ", ") + " }"})
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, tableWidth, tableOpts).
		String(), nil
}

// RuleTable returns a text table of the rules of a grammar.
func RuleTable(g *lr.Grammar) string {
	data := [][]string{{"No.", "Rule"}}
	for _, r := range g.Rules() {
		data = append(data, []string{fmt.Sprintf("%d", r.Serial), r.String()})
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, tableWidth, tableOpts).
		String()
}
