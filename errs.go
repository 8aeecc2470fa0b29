package minnow

import "errors"

var (
	// ErrInvalidSymbol is returned when a symbol is created from anything
	// other than a single alphanumeric character.
	ErrInvalidSymbol = errors.New("must be a single alphanumeric character")

	// ErrDuplicateEntry is returned when an insertion would silently redefine
	// an entry that already exists.
	ErrDuplicateEntry = errors.New("entry already exists")

	// ErrNotFound is returned when removing or retrieving an entry that does
	// not exist.
	ErrNotFound = errors.New("entry does not exist")

	// ErrNotInAlphabet is returned when a symbol is used with an automaton
	// whose alphabet set does not contain it.
	ErrNotInAlphabet = errors.New("symbol is not in the alphabet set")

	// ErrNoTransition is returned when a deterministic transition function has
	// no transition defined for a (state, symbol) pair. A complete DFA defines
	// a transition for every pair, so hitting this during simulation means the
	// automaton itself is misspecified.
	ErrNoTransition = errors.New("no transition defined")

	// ErrNoStartState is returned when the start state is read from a StateSet
	// that has never had one set.
	ErrNoStartState = errors.New("no start state has been set")

	// ErrIndexOutOfBounds is returned when a state index falls outside the
	// range of its StateSet.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)
