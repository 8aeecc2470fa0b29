package minnow

import (
	"fmt"

	"github.com/dekarrin/minnow/internal/util"
	"github.com/dekarrin/rezi"
)

// Binary marshaling of automaton components. Every building block of an
// automaton round-trips through MarshalBinary/UnmarshalBinary so a fully
// constructed machine can be handed between processes by an embedding
// application. Engines themselves are not marshaled; they are rebuilt from
// their parts with NewDFA/NewNFA.

func (sym Symbol) MarshalBinary() ([]byte, error) {
	return rezi.EncString(string(sym.ch)), nil
}

func (sym *Symbol) UnmarshalBinary(data []byte) error {
	s, _, err := rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("character: %w", err)
	}

	runes := []rune(s)
	if len(runes) != 1 {
		return fmt.Errorf("character %q: %w", s, ErrInvalidSymbol)
	}

	decoded, err := NewSymbol(runes[0])
	if err != nil {
		return err
	}

	*sym = decoded
	return nil
}

func (sigma *AlphabetSet) MarshalBinary() ([]byte, error) {
	var chars string
	for _, k := range util.OrderedKeys(sigma.symbols) {
		chars += string(k)
	}
	return rezi.EncString(chars), nil
}

func (sigma *AlphabetSet) UnmarshalBinary(data []byte) error {
	chars, _, err := rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("characters: %w", err)
	}

	// cannot go through NewAlphabetSet; a set that had symbols removed after
	// construction may legitimately be empty
	decoded := &AlphabetSet{symbols: make(map[rune]Symbol)}
	for _, ch := range chars {
		if err := decoded.Add(ch); err != nil {
			return err
		}
	}

	*sigma = *decoded
	return nil
}

func (q *StateSet) MarshalBinary() ([]byte, error) {
	data := rezi.EncInt(len(q.states))
	data = append(data, rezi.EncInt(q.start)...)

	accepting := q.AcceptingStates()
	data = append(data, rezi.EncInt(len(accepting))...)
	for i := range accepting {
		data = append(data, rezi.EncInt(accepting[i].ID())...)
	}

	return data, nil
}

func (q *StateSet) UnmarshalBinary(data []byte) error {
	var n int

	size, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	data = data[n:]

	start, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	data = data[n:]

	numAccepting, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("accepting count: %w", err)
	}
	data = data[n:]

	accepting := make([]int, numAccepting)
	for i := 0; i < numAccepting; i++ {
		accepting[i], n, err = rezi.DecInt(data)
		if err != nil {
			return fmt.Errorf("accepting[%d]: %w", i, err)
		}
		data = data[n:]
	}

	decoded, err := NewStateSet(size)
	if err != nil {
		return err
	}
	if start >= 0 {
		if err := decoded.SetStartState(start); err != nil {
			return err
		}
	}
	if err := decoded.SetAcceptingStates(accepting...); err != nil {
		return err
	}

	*q = *decoded
	return nil
}

func (f *TransitionFunction) MarshalBinary() ([]byte, error) {
	data := rezi.EncBinary(f.sigma)
	data = append(data, rezi.EncInt(len(f.transitions))...)

	for _, k := range f.orderedKeys() {
		data = append(data, rezi.EncInt(k.from)...)
		data = append(data, rezi.EncString(string(k.sym))...)
		data = append(data, rezi.EncInt(f.transitions[k])...)
	}

	return data, nil
}

func (f *TransitionFunction) UnmarshalBinary(data []byte) error {
	var n int

	sigma := &AlphabetSet{}
	n, err := rezi.DecBinary(data, sigma)
	if err != nil {
		return fmt.Errorf("alphabet: %w", err)
	}
	data = data[n:]

	numTrans, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("transition count: %w", err)
	}
	data = data[n:]

	decoded := NewTransitionFunction(sigma)
	for i := 0; i < numTrans; i++ {
		from, chars, to, rest, err := decTransTriple(data, i)
		if err != nil {
			return err
		}
		data = rest

		sym, err := sigma.Get(firstRune(chars))
		if err != nil {
			return fmt.Errorf("transitions[%d]: %w", i, err)
		}
		if err := decoded.AddTransition(from, sym, to); err != nil {
			return fmt.Errorf("transitions[%d]: %w", i, err)
		}
	}

	*f = *decoded
	return nil
}

func (f *MultiValuedTransitionFunction) MarshalBinary() ([]byte, error) {
	data := rezi.EncBinary(f.sigma)

	keys := f.orderedKeys()
	data = append(data, rezi.EncInt(len(keys))...)

	for _, k := range keys {
		data = append(data, rezi.EncInt(k.from)...)
		data = append(data, rezi.EncString(string(k.sym))...)

		targets := util.OrderedElements[int](f.transitions[k])
		data = append(data, rezi.EncInt(len(targets))...)
		for _, to := range targets {
			data = append(data, rezi.EncInt(to)...)
		}
	}

	return data, nil
}

func (f *MultiValuedTransitionFunction) UnmarshalBinary(data []byte) error {
	var n int

	sigma := &AlphabetSet{}
	n, err := rezi.DecBinary(data, sigma)
	if err != nil {
		return fmt.Errorf("alphabet: %w", err)
	}
	data = data[n:]

	numKeys, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("transition count: %w", err)
	}
	data = data[n:]

	decoded := NewMultiValuedTransitionFunction(sigma)
	for i := 0; i < numKeys; i++ {
		from, n, err := rezi.DecInt(data)
		if err != nil {
			return fmt.Errorf("transitions[%d] from: %w", i, err)
		}
		data = data[n:]

		chars, n, err := rezi.DecString(data)
		if err != nil {
			return fmt.Errorf("transitions[%d] symbol: %w", i, err)
		}
		data = data[n:]

		sym, err := sigma.Get(firstRune(chars))
		if err != nil {
			return fmt.Errorf("transitions[%d]: %w", i, err)
		}

		numTargets, n, err := rezi.DecInt(data)
		if err != nil {
			return fmt.Errorf("transitions[%d] target count: %w", i, err)
		}
		data = data[n:]

		for j := 0; j < numTargets; j++ {
			to, n, err := rezi.DecInt(data)
			if err != nil {
				return fmt.Errorf("transitions[%d] target[%d]: %w", i, j, err)
			}
			data = data[n:]

			if err := decoded.AddTransition(from, sym, to); err != nil {
				return fmt.Errorf("transitions[%d]: %w", i, err)
			}
		}
	}

	*f = *decoded
	return nil
}

// decTransTriple decodes one (from, symbol chars, to) deterministic transition
// record and returns the remaining data.
func decTransTriple(data []byte, idx int) (from int, chars string, to int, rest []byte, err error) {
	var n int

	from, n, err = rezi.DecInt(data)
	if err != nil {
		return 0, "", 0, nil, fmt.Errorf("transitions[%d] from: %w", idx, err)
	}
	data = data[n:]

	chars, n, err = rezi.DecString(data)
	if err != nil {
		return 0, "", 0, nil, fmt.Errorf("transitions[%d] symbol: %w", idx, err)
	}
	data = data[n:]

	to, n, err = rezi.DecInt(data)
	if err != nil {
		return 0, "", 0, nil, fmt.Errorf("transitions[%d] to: %w", idx, err)
	}
	data = data[n:]

	return from, chars, to, data, nil
}

func firstRune(s string) rune {
	for _, ch := range s {
		return ch
	}
	return 0
}
