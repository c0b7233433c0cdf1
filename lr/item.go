package lr

import (
	"strings"
)

// DotMarker is the default marker for the dot of an item.
const DotMarker = "•"

// Item is an LR(0) item, i.e. a rule together with a dot position in the
// range 0…len(RHS). Items are values; items are equal iff their rules and
// dot positions are equal.
type Item struct {
	rule *Rule
	dot  int
}

// StartItem returns the item with the dot in front of the right hand side of r.
func StartItem(r *Rule) Item {
	return Item{rule: r, dot: 0}
}

func asItem(x interface{}) Item {
	return x.(Item)
}

// Rule returns the rule of an item.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the dot position of an item.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the dot, or nil if the dot is at the end.
func (i Item) PeekSymbol() *Symbol {
	if i.rule == nil || i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// Advance returns the item with the dot moved one position to the right.
// Advancing a completed item returns the item unchanged.
func (i Item) Advance() Item {
	if i.IsComplete() {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1}
}

// Prefix returns the symbols in front of the dot.
func (i Item) Prefix() []*Symbol {
	return i.rule.rhs[:i.dot]
}

// Rest returns the symbols after the dot.
func (i Item) Rest() []*Symbol {
	return i.rule.rhs[i.dot:]
}

// IsComplete is true if the dot is at the end of the right hand side.
func (i Item) IsComplete() bool {
	return i.dot >= len(i.rule.rhs)
}

func (i Item) String() string {
	return i.Format(DotMarker)
}

// Format prints an item as "lhs -> α marker β".
func (i Item) Format(marker string) string {
	if i.rule == nil {
		return "<no item>"
	}
	parts := make([]string, 0, len(i.rule.rhs)+1)
	parts = append(parts, names(i.rule.rhs[:i.dot])...)
	parts = append(parts, marker)
	parts = append(parts, names(i.rule.rhs[i.dot:])...)
	return i.rule.LHS.Name + " -> " + strings.Join(parts, " ")
}
