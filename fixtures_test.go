package minnow

import (
	"testing"
)

// mustAlphabet builds an AlphabetSet from chars or fails the test.
func mustAlphabet(t *testing.T, chars string) *AlphabetSet {
	t.Helper()

	sigma, err := NewAlphabetSet(chars)
	if err != nil {
		t.Fatalf("creating alphabet %q: %v", chars, err)
	}
	return sigma
}

// mustStates builds a StateSet with a start state and accepting states or
// fails the test.
func mustStates(t *testing.T, size int, start int, accepting ...int) *StateSet {
	t.Helper()

	q, err := NewStateSet(size)
	if err != nil {
		t.Fatalf("creating state set of size %d: %v", size, err)
	}
	if err := q.SetStartState(start); err != nil {
		t.Fatalf("setting start state %d: %v", start, err)
	}
	if err := q.SetAcceptingStates(accepting...); err != nil {
		t.Fatalf("setting accepting states %v: %v", accepting, err)
	}
	return q
}

// sym retrieves a Symbol from sigma or fails the test.
func sym(t *testing.T, sigma *AlphabetSet, ch rune) Symbol {
	t.Helper()

	s, err := sigma.Get(ch)
	if err != nil {
		t.Fatalf("getting symbol %q: %v", ch, err)
	}
	return s
}

// deltaEdge is one edge of a transition function under construction.
type deltaEdge struct {
	from int
	ch   rune
	to   int
}

// abCounterDFA builds the 3-state machine over {a, b} used throughout the DFA
// tests: start q0, accept q2, with
//
//	δ(0,a)=1 δ(0,b)=0 δ(1,a)=1 δ(1,b)=2 δ(2,a)=2 δ(2,b)=1
//
// Among other strings it accepts "abbabaaa" and rejects "abb".
func abCounterDFA(t *testing.T) *DFA {
	t.Helper()

	q := mustStates(t, 3, 0, 2)
	sigma := mustAlphabet(t, "ab")

	delta := NewTransitionFunction(sigma)
	edges := []deltaEdge{
		{0, 'a', 1},
		{0, 'b', 0},
		{1, 'a', 1},
		{1, 'b', 2},
		{2, 'a', 2},
		{2, 'b', 1},
	}
	for _, e := range edges {
		if err := delta.AddTransition(e.from, sym(t, sigma, e.ch), e.to); err != nil {
			t.Fatalf("adding transition δ(q%d, %q) -> q%d: %v", e.from, e.ch, e.to, err)
		}
	}

	m, err := NewDFA(q, sigma, delta)
	if err != nil {
		t.Fatalf("creating DFA: %v", err)
	}
	return m
}

// containsABNFA builds the 3-state machine over {a, b} used throughout the NFA
// tests: start q0, accept q2, with
//
//	δ(0,a)={0,1} δ(0,b)={0} δ(1,b)={2} δ(2,a)={2} δ(2,b)={2}
//
// It accepts strings containing "ab" as a substring.
func containsABNFA(t *testing.T) *NFA {
	t.Helper()

	q := mustStates(t, 3, 0, 2)
	sigma := mustAlphabet(t, "ab")

	delta := NewMultiValuedTransitionFunction(sigma)
	edges := []deltaEdge{
		{0, 'a', 0},
		{0, 'a', 1},
		{0, 'b', 0},
		{1, 'b', 2},
		{2, 'a', 2},
		{2, 'b', 2},
	}
	for _, e := range edges {
		if err := delta.AddTransition(e.from, sym(t, sigma, e.ch), e.to); err != nil {
			t.Fatalf("adding transition δ(q%d, %q) -> q%d: %v", e.from, e.ch, e.to, err)
		}
	}

	m, err := NewNFA(q, sigma, delta)
	if err != nil {
		t.Fatalf("creating NFA: %v", err)
	}
	return m
}
