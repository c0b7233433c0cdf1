package lr

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar. A state is identified
// by its kernel items.
type CFSMState struct {
	ID     uint     // serial ID of this state
	kernel *ItemSet // items which define this state
	items  *ItemSet // closure of the kernel items
	Accept bool     // is this the accepting state?
	digest string
}

// Create a state from a kernel and its closure
func state(id uint, kernel, closure *ItemSet, digest string) *CFSMState {
	return &CFSMState{
		ID:     id,
		kernel: kernel,
		items:  closure,
		digest: digest,
	}
}

// Kernel returns the kernel items of a state.
func (s *CFSMState) Kernel() *ItemSet {
	return s.kernel
}

// Closure returns all items of a state, i.e. the closure of the kernel.
func (s *CFSMState) Closure() *ItemSet {
	return s.items
}

// IsKernel is true if i is a kernel item of state s.
func (s *CFSMState) IsKernel(i Item) bool {
	return s.kernel.Contains(i)
}

// Completes is true if s contains the completed start rule S' -> S •.
func (s *CFSMState) Completes() bool {
	for _, i := range s.kernel.Items() {
		if i.rule.Serial == 0 && !i.rule.synthetic && i.IsComplete() {
			return true
		}
	}
	return false
}

// StateLine is an item of a state, printed for display.
type StateLine struct {
	Text   string // item, with the dot printed as marker
	Kernel bool   // is this a kernel item?
}

// Lines returns the items of a state for display, kernel items first.
func (s *CFSMState) Lines(marker string) []StateLine {
	lines := make([]StateLine, 0, s.items.Size())
	for _, i := range s.items.Items() {
		lines = append(lines, StateLine{Text: i.Format(marker), Kernel: s.IsKernel(i)})
	}
	return lines
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	s.items.Dump()
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

// Transition is an edge of the CFSM, directed and labelled with a grammar
// symbol.
type Transition struct {
	From  uint
	Label *Symbol
	To    uint
}

func (t Transition) String() string {
	return fmt.Sprintf("%d --%s--> %d", t.From, t.Label, t.To)
}

// We need this for the set of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.UInt64Comparator(uint64(c1.ID), uint64(c2.ID))
}

// CFSM is the characteristic finite state machine for an LR grammar, i.e. the
// LR(0) state diagram. Will be constructed by a CFSMBuilder.
type CFSM struct {
	g           *Grammar
	states      *treeset.Set    // all the states
	edges       *arraylist.List // all the transitions, in order of creation
	S0          *CFSMState      // start state
	AcceptState *CFSMState      // accepting state, if any
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar) *CFSM {
	c := &CFSM{g: g}
	c.states = treeset.NewWith(stateComparator)
	c.edges = arraylist.New()
	return c
}

func (c *CFSM) addEdge(from, to *CFSMState, sym *Symbol) Transition {
	e := Transition{From: from.ID, Label: sym, To: to.ID}
	c.edges.Add(e)
	return e
}

// Grammar returns the augmented grammar the CFSM has been built for.
func (c *CFSM) Grammar() *Grammar {
	return c.g
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	r := make([]*CFSMState, 0, c.states.Size())
	for _, x := range c.states.Values() {
		r = append(r, x.(*CFSMState))
	}
	return r
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id uint) *CFSMState {
	_, x := c.states.Find(func(_ int, x interface{}) bool {
		return x.(*CFSMState).ID == id
	})
	if x == nil {
		return nil
	}
	return x.(*CFSMState)
}

// Transitions returns all transitions in order of creation.
func (c *CFSM) Transitions() []Transition {
	r := make([]Transition, 0, c.edges.Size())
	it := c.edges.Iterator()
	for it.Next() {
		r = append(r, it.Value().(Transition))
	}
	return r
}

// Successor returns the state reached from state id by a transition for A.
func (c *CFSM) Successor(id uint, A *Symbol) (*CFSMState, bool) {
	for _, e := range c.Transitions() {
		if e.From == id && e.Label == A {
			return c.State(e.To), true
		}
	}
	return nil, false
}

// AcceptEdge returns the implicit edge from the accepting state, labelled
// with the end marker. ok is false if the CFSM has no accepting state.
func (c *CFSM) AcceptEdge() (from uint, label *Symbol, ok bool) {
	if c.AcceptState == nil {
		return 0, nil, false
	}
	return c.AcceptState.ID, c.g.EOF(), true
}

// === CFSM Builder ==========================================================

// AcceptMode selects how the builder determines the accepting state.
type AcceptMode int

const (
	// AcceptByScan scans the transitions backwards for the first one touching
	// the start state. The opposite end of this transition accepts.
	AcceptByScan AcceptMode = iota
	// AcceptByCompletion selects the state containing S' -> S •.
	AcceptByCompletion
)

// BuilderOption configures a CFSMBuilder.
type BuilderOption func(b *CFSMBuilder)

// WithAcceptMode sets the mode for accept detection. Default is AcceptByScan.
func WithAcceptMode(mode AcceptMode) BuilderOption {
	return func(b *CFSMBuilder) {
		b.mode = mode
	}
}

// CFSMBuilder constructs the canonical collection of LR(0) item sets for a
// grammar. A builder owns all data of a construction run; it must not be
// shared between goroutines.
type CFSMBuilder struct {
	ga       *LRAnalysis
	mode     AcceptMode
	cfsm     *CFSM
	kernels  map[string]*CFSMState // states by kernel digest
	realized []*CFSMState          // states in order of creation
	nextID   uint                  // serial IDs for CFSM states
}

// NewCFSMBuilder creates a new builder for a (previously analysed) grammar.
func NewCFSMBuilder(ga *LRAnalysis, opts ...BuilderOption) *CFSMBuilder {
	b := &CFSMBuilder{ga: ga}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add a state to the CFSM, given its kernel and closure. Checks first if a
// state with the same kernel is present.
func (b *CFSMBuilder) addState(kernel, closure *ItemSet) (*CFSMState, bool, error) {
	digest, err := kernel.digest()
	if err != nil {
		return nil, false, err
	}
	if s, ok := b.kernels[digest]; ok {
		return s, false, nil
	}
	s := state(b.nextID, kernel, closure, digest)
	b.nextID++
	b.kernels[digest] = s
	b.realized = append(b.realized, s)
	b.cfsm.states.Add(s)
	return s, true, nil
}

// Build constructs the characteristic finite state machine CFSM for the
// grammar. Every call starts a new construction run.
func (b *CFSMBuilder) Build() (*CFSM, error) {
	tracer().Debugf("=== build CFSM ==================================================")
	if b.ga == nil || b.ga.g == nil {
		return nil, noProductions("<nil>", "")
	}
	if len(b.ga.g.rules) == 0 {
		return nil, noProductions(b.ga.g.Name, "")
	}
	G := b.ga.Grammar()
	b.cfsm = emptyCFSM(G)
	b.kernels = make(map[string]*CFSMState)
	b.realized = nil
	b.nextID = 0
	start := StartItem(G.rules[0])
	tracer().Debugf("Start item=%v", start)
	kernel0 := NewItemSet(start)
	closure0, err := b.ga.Closure(kernel0)
	if err != nil {
		return nil, err
	}
	if b.cfsm.S0, _, err = b.addState(kernel0, closure0); err != nil {
		return nil, err
	}
	b.cfsm.S0.Dump()
	for n := 0; n < len(b.realized); n++ { // b.realized grows while we iterate
		s := b.realized[n]
		for _, A := range SymbolsAfterDot(s.items) {
			if A.kind == EndMarker {
				continue
			}
			tracer().Debugf("checking goto-set for symbol = %v", A)
			kernel, closure, err := b.ga.Goto(s.items, A)
			if err != nil {
				return nil, err
			}
			if kernel.Empty() {
				continue
			}
			snew, isNew, err := b.addState(kernel, closure)
			if err != nil {
				return nil, err
			}
			if isNew {
				snew.Dump()
			}
			b.cfsm.addEdge(s, snew, A)
		}
		tracer().Debugf("-----------------------------------------------------------------")
	}
	b.detectAccept()
	tracer().Infof("CFSM for %s has %d states and %d transitions", G.Name,
		b.cfsm.Size(), b.cfsm.edges.Size())
	return b.cfsm, nil
}

func (b *CFSMBuilder) detectAccept() {
	c := b.cfsm
	var acc *CFSMState
	switch b.mode {
	case AcceptByCompletion:
		for _, s := range b.realized {
			if s.Completes() {
				acc = s
				break
			}
		}
	default:
		edges := c.Transitions()
		for n := len(edges) - 1; n >= 0; n-- {
			if e := edges[n]; e.From == c.S0.ID {
				acc = c.State(e.To)
				break
			} else if e.To == c.S0.ID {
				acc = c.State(e.From)
				break
			}
		}
	}
	if acc == nil {
		tracer().Infof("CFSM for %s has no accepting state", c.g.Name)
		return
	}
	acc.Accept = true
	c.AcceptState = acc
	tracer().Debugf("accepting state is %d", acc.ID)
}
