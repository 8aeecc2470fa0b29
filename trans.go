package minnow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/minnow/internal/util"
	"github.com/dekarrin/rosed"
)

// transKey is the (state, symbol) pair a transition function is keyed by.
type transKey struct {
	from int
	sym  rune
}

func (k transKey) less(o transKey) bool {
	if k.from != o.from {
		return k.from < o.from
	}
	return k.sym < o.sym
}

// TransitionFunction is the transition function δ of a deterministic finite
// automaton. It is a partial function mapping each (state, symbol) pair to at
// most one next state; defining a second transition for a pair that already
// has one is an error, so that an ambiguous (non-deterministic) specification
// is caught at the point of definition.
//
// Every symbol added must belong to the AlphabetSet the function was created
// with.
type TransitionFunction struct {
	sigma       *AlphabetSet
	transitions map[transKey]int
}

// NewTransitionFunction creates an empty TransitionFunction whose symbols are
// validated against the given AlphabetSet.
func NewTransitionFunction(sigma *AlphabetSet) *TransitionFunction {
	return &TransitionFunction{
		sigma:       sigma,
		transitions: make(map[transKey]int),
	}
}

// AddTransition defines δ(from, sym) = to. It returns an error wrapping
// ErrNotInAlphabet if sym is not in the function's AlphabetSet, or one
// wrapping ErrDuplicateEntry if a transition for (from, sym) is already
// defined.
func (f *TransitionFunction) AddTransition(from int, sym Symbol, to int) error {
	if err := f.validateSymbol(sym); err != nil {
		return err
	}

	k := transKey{from: from, sym: sym.ch}
	if _, ok := f.transitions[k]; ok {
		return fmt.Errorf("transition for state %d and symbol %q: %w", from, sym.ch, ErrDuplicateEntry)
	}

	f.transitions[k] = to
	return nil
}

// RemoveTransition removes the transition defined for (from, sym). It returns
// an error wrapping ErrNotFound if no such transition is defined.
func (f *TransitionFunction) RemoveTransition(from int, sym Symbol) error {
	k := transKey{from: from, sym: sym.ch}
	if _, ok := f.transitions[k]; !ok {
		return fmt.Errorf("transition for state %d with symbol %q: %w", from, sym.ch, ErrNotFound)
	}

	delete(f.transitions, k)
	return nil
}

// NextState gives the state the automaton moves to from the given state on the
// given input symbol. It returns an error wrapping ErrNoTransition if no
// transition is defined for the pair; for a well-formed DFA, which covers the
// full alphabet at every state, that indicates a misspecified automaton.
func (f *TransitionFunction) NextState(from int, sym Symbol) (int, error) {
	to, ok := f.transitions[transKey{from: from, sym: sym.ch}]
	if !ok {
		return 0, fmt.Errorf("%w for state %d with symbol %q", ErrNoTransition, from, sym.ch)
	}
	return to, nil
}

// HasTransition returns whether a transition is defined for (from, sym).
func (f *TransitionFunction) HasTransition(from int, sym Symbol) bool {
	_, ok := f.transitions[transKey{from: from, sym: sym.ch}]
	return ok
}

// Len returns the number of transitions defined.
func (f *TransitionFunction) Len() int {
	return len(f.transitions)
}

// Copy returns a duplicate of this TransitionFunction. The AlphabetSet used
// for validation is copied as well.
func (f *TransitionFunction) Copy() *TransitionFunction {
	copied := NewTransitionFunction(f.sigma.Copy())
	for k := range f.transitions {
		copied.transitions[k] = f.transitions[k]
	}
	return copied
}

func (f *TransitionFunction) validateSymbol(sym Symbol) error {
	if !f.sigma.ContainsSymbol(sym) {
		return fmt.Errorf("symbol %q: %w", sym.ch, ErrNotInAlphabet)
	}
	return nil
}

func (f *TransitionFunction) orderedKeys() []transKey {
	keys := make([]transKey, 0, len(f.transitions))
	for k := range f.transitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].less(keys[j])
	})
	return keys
}

// String renders the function as one line per transition, in the form
// δ(q0, 'a') -> q1, ordered by state and then by symbol.
func (f *TransitionFunction) String() string {
	var sb strings.Builder

	keys := f.orderedKeys()
	for i, k := range keys {
		sb.WriteString(fmt.Sprintf("δ(q%d, '%s') -> q%d", k.from, string(k.sym), f.transitions[k]))
		if i+1 < len(keys) {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// Table renders the function as a state-by-symbol grid. Rows are the states
// that have at least one transition defined, columns are the symbols of the
// function's AlphabetSet, and each cell holds the next state, or is blank
// where no transition is defined.
func (f *TransitionFunction) Table() string {
	froms := util.NewKeySet[int]()
	for k := range f.transitions {
		froms.Add(k.from)
	}

	syms := f.sigma.Symbols()

	data := [][]string{}

	// symbols go in as an ordinary data row; header styling would restyle
	// their case and the alphabet must render verbatim
	topRow := []string{"δ"}
	for _, sym := range syms {
		topRow = append(topRow, sym.String())
	}
	data = append(data, topRow)

	for _, from := range util.OrderedElements[int](froms) {
		row := []string{fmt.Sprintf("q%d", from)}

		for _, sym := range syms {
			cell := ""
			if to, ok := f.transitions[transKey{from: from, sym: sym.ch}]; ok {
				cell = fmt.Sprintf("q%d", to)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			TableBorders: true,
		}).
		String()
}

// MultiValuedTransitionFunction is the transition function δ of a
// non-deterministic finite automaton. It is a partial function mapping each
// (state, symbol) pair to a set of next states. Unlike the deterministic
// TransitionFunction, adding an edge that already exists is a no-op, and
// looking up a pair with no edges is not an error; it simply yields the empty
// set.
type MultiValuedTransitionFunction struct {
	sigma       *AlphabetSet
	transitions map[transKey]util.KeySet[int]
}

// NewMultiValuedTransitionFunction creates an empty
// MultiValuedTransitionFunction whose symbols are validated against the given
// AlphabetSet.
func NewMultiValuedTransitionFunction(sigma *AlphabetSet) *MultiValuedTransitionFunction {
	return &MultiValuedTransitionFunction{
		sigma:       sigma,
		transitions: make(map[transKey]util.KeySet[int]),
	}
}

// AddTransition adds to to the set of states reachable from the given state on
// the given input symbol. It returns an error wrapping ErrNotInAlphabet if sym
// is not in the function's AlphabetSet. Adding an edge that is already present
// has no effect.
func (f *MultiValuedTransitionFunction) AddTransition(from int, sym Symbol, to int) error {
	if !f.sigma.ContainsSymbol(sym) {
		return fmt.Errorf("symbol %q: %w", sym.ch, ErrNotInAlphabet)
	}

	k := transKey{from: from, sym: sym.ch}
	targets, ok := f.transitions[k]
	if !ok {
		targets = util.NewKeySet[int]()
		f.transitions[k] = targets
	}
	targets.Add(to)

	return nil
}

// RemoveTransition removes the edge from the given state to to on the given
// input symbol. It returns an error wrapping ErrNotFound if that exact edge is
// not present. Once the last edge for a (state, symbol) pair is removed, the
// pair is dropped entirely and subsequent lookups of it yield the empty set.
func (f *MultiValuedTransitionFunction) RemoveTransition(from int, sym Symbol, to int) error {
	k := transKey{from: from, sym: sym.ch}
	targets, ok := f.transitions[k]
	if !ok || !targets.Has(to) {
		return fmt.Errorf("transition for state %d, symbol %q to state %d: %w", from, sym.ch, to, ErrNotFound)
	}

	targets.Remove(to)
	if targets.Empty() {
		delete(f.transitions, k)
	}

	return nil
}

// NextStates gives the set of states reachable from the given state on the
// given input symbol. The returned set is a copy; mutating it does not affect
// the function. If no edge is defined for the pair, the empty set is returned;
// absence of edges is a normal non-deterministic outcome, not an error.
func (f *MultiValuedTransitionFunction) NextStates(from int, sym Symbol) util.KeySet[int] {
	targets, ok := f.transitions[transKey{from: from, sym: sym.ch}]
	if !ok {
		return util.NewKeySet[int]()
	}
	return util.NewKeySet(targets)
}

// HasTransition returns whether at least one edge is defined for (from, sym).
func (f *MultiValuedTransitionFunction) HasTransition(from int, sym Symbol) bool {
	_, ok := f.transitions[transKey{from: from, sym: sym.ch}]
	return ok
}

// Len returns the number of individual edges defined.
func (f *MultiValuedTransitionFunction) Len() int {
	var n int
	for k := range f.transitions {
		n += f.transitions[k].Len()
	}
	return n
}

// Copy returns a duplicate of this MultiValuedTransitionFunction. The
// AlphabetSet used for validation is copied as well.
func (f *MultiValuedTransitionFunction) Copy() *MultiValuedTransitionFunction {
	copied := NewMultiValuedTransitionFunction(f.sigma.Copy())
	for k := range f.transitions {
		copied.transitions[k] = util.NewKeySet(f.transitions[k])
	}
	return copied
}

func (f *MultiValuedTransitionFunction) orderedKeys() []transKey {
	keys := make([]transKey, 0, len(f.transitions))
	for k := range f.transitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].less(keys[j])
	})
	return keys
}

// String renders the function as one line per edge, in the form
// δ(q0, 'a') -> q1, ordered by state, then by symbol, then by target.
func (f *MultiValuedTransitionFunction) String() string {
	var sb strings.Builder

	keys := f.orderedKeys()
	for i, k := range keys {
		targets := util.OrderedElements[int](f.transitions[k])
		for j, to := range targets {
			sb.WriteString(fmt.Sprintf("δ(q%d, '%s') -> q%d", k.from, string(k.sym), to))
			if j+1 < len(targets) || i+1 < len(keys) {
				sb.WriteRune('\n')
			}
		}
	}

	return sb.String()
}

// Table renders the function as a state-by-symbol grid. Rows are the states
// that have at least one edge defined, columns are the symbols of the
// function's AlphabetSet, and each cell lists the reachable states, or is
// blank where no edge is defined.
func (f *MultiValuedTransitionFunction) Table() string {
	froms := util.NewKeySet[int]()
	for k := range f.transitions {
		froms.Add(k.from)
	}

	syms := f.sigma.Symbols()

	data := [][]string{}

	// same as the deterministic Table, symbols must stay verbatim so they
	// are not routed through header styling
	topRow := []string{"δ"}
	for _, sym := range syms {
		topRow = append(topRow, sym.String())
	}
	data = append(data, topRow)

	for _, from := range util.OrderedElements[int](froms) {
		row := []string{fmt.Sprintf("q%d", from)}

		for _, sym := range syms {
			cell := ""
			if targets, ok := f.transitions[transKey{from: from, sym: sym.ch}]; ok {
				cellParts := []string{}
				for _, to := range util.OrderedElements[int](targets) {
					cellParts = append(cellParts, fmt.Sprintf("q%d", to))
				}
				cell = strings.Join(cellParts, ", ")
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			TableBorders: true,
		}).
		String()
}
