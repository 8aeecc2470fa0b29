package minnow

import (
	"fmt"

	"github.com/dekarrin/minnow/internal/util"
)

// NFA is a non-deterministic finite automaton: a StateSet, an AlphabetSet, and
// a MultiValuedTransitionFunction, together with the set of states the machine
// is currently in.
//
// Rather than picking one of the possible moves at each step, the NFA
// simulates every branch at once: its configuration is the full set of states
// reachable over the input consumed so far. A state with no outgoing edge for
// the current symbol is a dead branch and simply drops out of the
// configuration. If every branch dies the configuration is empty, and it stays
// empty for the rest of the run, as no edges leave the empty set.
//
// As with DFA, the parts handed to NewNFA are read, never written; the only
// state an NFA mutates is its own configuration and trace.
type NFA struct {
	q     *StateSet
	sigma *AlphabetSet
	delta *MultiValuedTransitionFunction

	current util.KeySet[int]
	trace   []Step
}

// NewNFA creates an NFA over the given states, alphabet, and transition
// function, positioned at the configuration containing only the start state of
// q. It returns an error wrapping ErrNoStartState if q has no start state
// configured.
func NewNFA(q *StateSet, sigma *AlphabetSet, delta *MultiValuedTransitionFunction) (*NFA, error) {
	if _, err := q.StartState(); err != nil {
		return nil, err
	}

	m := &NFA{
		q:     q,
		sigma: sigma,
		delta: delta,
	}
	m.Reset()

	return m, nil
}

// Feed runs the given symbols through the automaton. Each symbol advances
// every state in the current configuration at once; the next configuration is
// the union of the destination sets of all active states, and every edge
// actually traversed is appended to the trace.
//
// Every symbol is validated against the alphabet before any step is taken; if
// any symbol is not in the alphabet, an error wrapping ErrNotInAlphabet is
// returned and the configuration and trace are untouched.
func (m *NFA) Feed(input []Symbol) error {
	for _, sym := range input {
		if !m.sigma.ContainsSymbol(sym) {
			return fmt.Errorf("input symbol %q: %w", sym.Rune(), ErrNotInAlphabet)
		}
	}

	for _, sym := range input {
		m.eat(sym)
	}

	return nil
}

// FeedString decodes input against the automaton's alphabet and feeds the
// result. If any character of input is not in the alphabet, an error wrapping
// ErrNotInAlphabet is returned and the configuration and trace are untouched.
func (m *NFA) FeedString(input string) error {
	syms, err := m.sigma.Decode(input)
	if err != nil {
		return err
	}
	return m.Feed(syms)
}

// Accepts reports whether the automaton accepts the given string, which it
// does if at least one branch of the simulation ends in an accepting state.
// The automaton is reset before returning, so successive calls are independent
// of each other.
func (m *NFA) Accepts(input string) (bool, error) {
	syms, err := m.sigma.Decode(input)
	if err != nil {
		return false, err
	}
	return m.AcceptsSymbols(syms)
}

// AcceptsSymbols is Accepts for a pre-decoded symbol sequence.
func (m *NFA) AcceptsSymbols(input []Symbol) (bool, error) {
	if err := m.Feed(input); err != nil {
		return false, err
	}

	accepted := m.Accepting()
	m.Reset()
	return accepted, nil
}

// Accepting returns whether any state in the automaton's current configuration
// is an accepting state. It is trivially false for the empty configuration.
func (m *NFA) Accepting() bool {
	return m.current.Any(func(id int) bool {
		return m.q.IsAccepting(id)
	})
}

// CurrentStates returns the ids of the states in the current configuration,
// ordered ascending.
func (m *NFA) CurrentStates() []int {
	return util.OrderedElements[int](m.current)
}

// Trace returns the edges traversed so far in the current run, in order. Every
// edge taken by every active branch is recorded, so the trace covers the full
// simulated breadth rather than any single accepting path. The returned slice
// is a copy.
func (m *NFA) Trace() []Step {
	trace := make([]Step, len(m.trace))
	copy(trace, m.trace)
	return trace
}

// Reset returns the automaton to the configuration containing only the start
// state and clears the trace.
func (m *NFA) Reset() {
	m.current = util.KeySetOf([]int{mustStartID(m.q)})
	m.trace = nil
}

// eat advances every active state by one symbol, which must already be
// validated against the alphabet.
func (m *NFA) eat(sym Symbol) {
	next := util.NewKeySet[int]()

	for _, id := range util.OrderedElements[int](m.current) {
		for _, to := range util.OrderedElements[int](m.delta.NextStates(id, sym)) {
			m.trace = append(m.trace, Step{From: id, Input: sym, To: to})
			next.Add(to)
		}
	}

	m.current = next
}

func (m *NFA) String() string {
	return fmt.Sprintf("NFA(%s, %s, start=q%d, current=%s)", m.q, m.sigma, mustStartID(m.q), m.current.StringOrdered())
}
