package lr

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// ItemSet is a set of items. It remembers the order in which items have
// been added, which makes all iterations over item sets deterministic.
type ItemSet struct {
	set *linkedhashset.Set
}

// NewItemSet creates an item set containing items.
func NewItemSet(items ...Item) *ItemSet {
	S := &ItemSet{set: linkedhashset.New()}
	for _, i := range items {
		S.set.Add(i)
	}
	return S
}

// Add adds an item to the set. It returns false if the item already was a
// member of the set.
func (S *ItemSet) Add(i Item) bool {
	if S.set.Contains(i) {
		return false
	}
	S.set.Add(i)
	return true
}

// Contains checks if an item is a member of S.
func (S *ItemSet) Contains(i Item) bool {
	return S.set.Contains(i)
}

// Size returns the number of items in S.
func (S *ItemSet) Size() int {
	return S.set.Size()
}

// Empty is true for the empty item set.
func (S *ItemSet) Empty() bool {
	return S.set.Empty()
}

// Items returns the items of S in order of insertion.
func (S *ItemSet) Items() []Item {
	values := S.set.Values()
	items := make([]Item, len(values))
	for n, x := range values {
		items[n] = asItem(x)
	}
	return items
}

// Copy returns a copy of S.
func (S *ItemSet) Copy() *ItemSet {
	return NewItemSet(S.Items()...)
}

// Equals compares two item sets, disregarding order.
func (S *ItemSet) Equals(other *ItemSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, i := range S.Items() {
		if !other.Contains(i) {
			return false
		}
	}
	return true
}

func (S *ItemSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for n, i := range S.Items() {
		if n == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(i.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper.
func (S *ItemSet) Dump() {
	for n, i := range S.Items() {
		tracer().Debugf("[%2d] %s", n+1, i)
	}
}

// --- Digests ---------------------------------------------------------------

// Item sets are identified by a digest over their sorted items, which is
// independent of insertion order.
type itemSetDigest struct {
	Items []itemDigest
}

type itemDigest struct {
	Rule int
	Dot  int
}

func (S *ItemSet) digest() (string, error) {
	d := itemSetDigest{Items: make([]itemDigest, 0, S.Size())}
	for _, i := range S.Items() {
		d.Items = append(d.Items, itemDigest{Rule: i.rule.Serial, Dot: i.dot})
	}
	sort.Slice(d.Items, func(a, b int) bool {
		if d.Items[a].Rule == d.Items[b].Rule {
			return d.Items[a].Dot < d.Items[b].Dot
		}
		return d.Items[a].Rule < d.Items[b].Rule
	})
	h, err := structhash.Hash(d, 1)
	if err != nil {
		return "", fmt.Errorf("cannot create digest for item set: %w", err)
	}
	return h, nil
}
