package minnow

import (
	"fmt"
	"strings"
)

// State is a single state of an automaton, identified by a non-negative
// integer id unique within its owning StateSet. A State may additionally be
// flagged as the start state and/or as an accepting state; those flags are
// managed by the owning StateSet.
type State struct {
	id        int
	start     bool
	accepting bool
}

// ID returns the state's identifier.
func (s State) ID() int {
	return s.id
}

// IsStart returns whether the state is the start state of its automaton.
func (s State) IsStart() bool {
	return s.start
}

// IsAccepting returns whether the state is an accepting state.
func (s State) IsAccepting() bool {
	return s.accepting
}

// Equal returns whether the State equals another value. Comparison is by id
// only; two States with the same id are interchangeable for the automaton's
// purposes regardless of their flags.
func (s State) Equal(o any) bool {
	other, ok := o.(State)
	if !ok {
		otherPtr, ok := o.(*State)
		if !ok {
			return false
		}
		if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	return s.id == other.id
}

func (s State) String() string {
	str := fmt.Sprintf("q%d", s.id)
	if s.start {
		str += " (start)"
	}
	if s.accepting {
		str += " (accept)"
	}
	return str
}

// StateSet is a fixed-size collection of the states of an automaton. States
// are numbered 0 through Len()-1 at construction and never renumbered. At most
// one state is flagged as the start state at any time; accepting states form
// an arbitrary subset.
//
// The zero value is not usable; call NewStateSet.
type StateSet struct {
	states []State

	// index of the start state, or -1 until one is set
	start int
}

// NewStateSet creates a StateSet holding size states with ids 0 through
// size-1, none of them flagged as start or accepting. It returns an error if
// size is not greater than 0.
func NewStateSet(size int) (*StateSet, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size expected greater than 0, received %d", size)
	}

	q := &StateSet{
		states: make([]State, size),
		start:  -1,
	}
	for i := range q.states {
		q.states[i] = State{id: i}
	}

	return q, nil
}

// Len returns the number of states in the set.
func (q *StateSet) Len() int {
	return len(q.states)
}

// States returns a copy of the states in the set, ordered by id.
func (q *StateSet) States() []State {
	states := make([]State, len(q.states))
	copy(states, q.states)
	return states
}

// State retrieves the state with the given index. It returns an error wrapping
// ErrIndexOutOfBounds if the index is not valid for the set.
func (q *StateSet) State(index int) (State, error) {
	if err := q.validateIndex(index); err != nil {
		return State{}, err
	}
	return q.states[index], nil
}

// SetStartState flags the state at the given index as the start state,
// unflagging any state previously flagged. It returns an error wrapping
// ErrIndexOutOfBounds if the index is not valid for the set.
func (q *StateSet) SetStartState(index int) error {
	if err := q.validateIndex(index); err != nil {
		return err
	}

	for i := range q.states {
		q.states[i].start = false
	}
	q.states[index].start = true
	q.start = index

	return nil
}

// SetAcceptingStates flags the states at the given indices as accepting.
// States already flagged accepting are unaffected. If any index is not valid
// for the set, an error wrapping ErrIndexOutOfBounds is returned and no flag
// is changed.
func (q *StateSet) SetAcceptingStates(indices ...int) error {
	for _, i := range indices {
		if err := q.validateIndex(i); err != nil {
			return err
		}
	}

	for _, i := range indices {
		q.states[i].accepting = true
	}

	return nil
}

// StartState retrieves the start state. It returns an error wrapping
// ErrNoStartState if no start state has ever been set; see SetStartState.
func (q *StateSet) StartState() (State, error) {
	if q.start < 0 {
		return State{}, fmt.Errorf("%w; see StateSet.SetStartState", ErrNoStartState)
	}
	return q.states[q.start], nil
}

// AcceptingStates returns the accepting states of the set, ordered by id.
func (q *StateSet) AcceptingStates() []State {
	accepting := []State{}
	for i := range q.states {
		if q.states[i].accepting {
			accepting = append(accepting, q.states[i])
		}
	}
	return accepting
}

// IsAccepting returns whether the state with the given index is flagged
// accepting. It returns false if the index is not valid for the set.
func (q *StateSet) IsAccepting(index int) bool {
	if index < 0 || index >= len(q.states) {
		return false
	}
	return q.states[index].accepting
}

// Copy returns a duplicate of this StateSet.
func (q *StateSet) Copy() *StateSet {
	copied := &StateSet{
		states: make([]State, len(q.states)),
		start:  q.start,
	}
	copy(copied.states, q.states)
	return copied
}

func (q *StateSet) validateIndex(index int) error {
	if index < 0 || index >= len(q.states) {
		return fmt.Errorf("index %d out of bounds for StateSet of size %d: %w", index, len(q.states), ErrIndexOutOfBounds)
	}
	return nil
}

func (q *StateSet) String() string {
	var sb strings.Builder

	sb.WriteRune('{')
	for i := range q.states {
		sb.WriteString(q.states[i].String())
		if i+1 < len(q.states) {
			sb.WriteRune(',')
			sb.WriteRune(' ')
		}
	}
	sb.WriteRune('}')

	return sb.String()
}
