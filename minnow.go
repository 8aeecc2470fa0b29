// Package minnow provides construction and simulation of finite-state
// automata over finite alphabets. It covers both deterministic machines (DFA)
// and non-deterministic machines (NFA).
//
// An automaton is assembled from three parts: a StateSet giving the states and
// which of them are the start state and the accepting states, an AlphabetSet
// giving the universe of valid input symbols, and a transition function
// mapping (state, symbol) pairs to what comes next. The deterministic
// TransitionFunction maps each pair to exactly one next state; the
// MultiValuedTransitionFunction used by NFAs maps each pair to a set of next
// states.
//
// Once built, the parts are handed to NewDFA or NewNFA and input is run
// through the machine with Accepts, or incrementally with Feed and Accepting.
// Engines only ever mutate their own simulation state; the state set,
// alphabet, and transition function they are built over are treated as
// read-only once simulation begins. Callers that need to mutate a shared
// table mid-run should hand each engine its own Copy.
package minnow
