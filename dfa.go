package minnow

import (
	"fmt"
)

// Step is a single traversed edge of a simulation run: the automaton was in
// state From, consumed Input, and moved to state To.
type Step struct {
	From  int
	Input Symbol
	To    int
}

func (st Step) String() string {
	return fmt.Sprintf("q%d =(%s)=> q%d", st.From, st.Input, st.To)
}

// DFA is a deterministic finite automaton: a StateSet, an AlphabetSet, and a
// deterministic TransitionFunction, together with the single state the machine
// is currently in.
//
// The three parts handed to NewDFA are shared with the caller and are read,
// never written, by the DFA; the only state a DFA mutates is its own current
// state and trace. Multiple engines may simulate over the same parts
// concurrently as long as no caller mutates them mid-run.
type DFA struct {
	q     *StateSet
	sigma *AlphabetSet
	delta *TransitionFunction

	current int
	trace   []Step
}

// NewDFA creates a DFA over the given states, alphabet, and transition
// function, positioned at the start state of q. It returns an error wrapping
// ErrNoStartState if q has no start state configured.
func NewDFA(q *StateSet, sigma *AlphabetSet, delta *TransitionFunction) (*DFA, error) {
	start, err := q.StartState()
	if err != nil {
		return nil, err
	}

	return &DFA{
		q:       q,
		sigma:   sigma,
		delta:   delta,
		current: start.ID(),
	}, nil
}

// Feed runs the given symbols through the automaton, one step per symbol,
// advancing the current state and appending each traversed edge to the trace.
//
// Every symbol is validated against the alphabet before any step is taken; if
// any symbol is not in the alphabet, an error wrapping ErrNotInAlphabet is
// returned and the current state and trace are untouched. If a step has no
// transition defined, an error wrapping ErrNoTransition is returned; the
// steps already taken remain applied, as the automaton itself is misspecified
// at that point rather than merely fed bad input.
func (m *DFA) Feed(input []Symbol) error {
	for _, sym := range input {
		if !m.sigma.ContainsSymbol(sym) {
			return fmt.Errorf("input symbol %q: %w", sym.Rune(), ErrNotInAlphabet)
		}
	}

	for _, sym := range input {
		if err := m.eat(sym); err != nil {
			return err
		}
	}

	return nil
}

// FeedString decodes input against the automaton's alphabet and feeds the
// result. If any character of input is not in the alphabet, an error wrapping
// ErrNotInAlphabet is returned and the current state and trace are untouched.
func (m *DFA) FeedString(input string) error {
	syms, err := m.sigma.Decode(input)
	if err != nil {
		return err
	}
	return m.Feed(syms)
}

// Accepts reports whether the automaton accepts the given string. The string
// is decoded against the alphabet, fed, and the accepting flag of the final
// state read; the automaton is then reset before returning, so successive
// calls are independent of each other.
func (m *DFA) Accepts(input string) (bool, error) {
	syms, err := m.sigma.Decode(input)
	if err != nil {
		return false, err
	}
	return m.AcceptsSymbols(syms)
}

// AcceptsSymbols is Accepts for a pre-decoded symbol sequence.
func (m *DFA) AcceptsSymbols(input []Symbol) (bool, error) {
	if err := m.Feed(input); err != nil {
		return false, err
	}

	accepted := m.Accepting()
	m.Reset()
	return accepted, nil
}

// Accepting returns whether the automaton's current state is an accepting
// state.
func (m *DFA) Accepting() bool {
	return m.q.IsAccepting(m.current)
}

// CurrentState returns the id of the state the automaton is currently in.
func (m *DFA) CurrentState() int {
	return m.current
}

// Trace returns the edges traversed so far in the current run, in order. The
// returned slice is a copy.
func (m *DFA) Trace() []Step {
	trace := make([]Step, len(m.trace))
	copy(trace, m.trace)
	return trace
}

// Reset returns the automaton to its start state and clears the trace.
func (m *DFA) Reset() {
	m.current = mustStartID(m.q)
	m.trace = nil
}

// eat advances the automaton by one symbol, which must already be validated
// against the alphabet.
func (m *DFA) eat(sym Symbol) error {
	next, err := m.delta.NextState(m.current, sym)
	if err != nil {
		return err
	}

	m.trace = append(m.trace, Step{From: m.current, Input: sym, To: next})
	m.current = next
	return nil
}

func (m *DFA) String() string {
	return fmt.Sprintf("DFA(%s, %s, start=q%d, current=q%d)", m.q, m.sigma, mustStartID(m.q), m.current)
}

// mustStartID gives the start state id of a StateSet that is known to have one
// configured, which holds for any StateSet an engine was built over.
func mustStartID(q *StateSet) int {
	start, err := q.StartState()
	if err != nil {
		panic(err.Error())
	}
	return start.ID()
}
