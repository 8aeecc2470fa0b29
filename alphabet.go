package minnow

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dekarrin/minnow/internal/util"
)

// Symbol is a single character drawn from an automaton's alphabet. It is
// immutable once created; two Symbols are equal exactly when they wrap the
// same character.
type Symbol struct {
	ch rune
}

// NewSymbol creates a Symbol for the given character. It returns an error
// wrapping ErrInvalidSymbol if ch is not alphanumeric.
func NewSymbol(ch rune) (Symbol, error) {
	if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
		return Symbol{}, fmt.Errorf("%q: %w", ch, ErrInvalidSymbol)
	}
	return Symbol{ch: ch}, nil
}

// Rune returns the character the Symbol wraps.
func (sym Symbol) Rune() rune {
	return sym.ch
}

// Less returns whether the Symbol sorts before o. Ordering is by character
// value and is used only for deterministic iteration and rendering.
func (sym Symbol) Less(o Symbol) bool {
	return sym.ch < o.ch
}

// Equal returns whether the Symbol equals another value. Only Symbol and
// *Symbol values wrapping the same character are considered equal.
func (sym Symbol) Equal(o any) bool {
	other, ok := o.(Symbol)
	if !ok {
		otherPtr, ok := o.(*Symbol)
		if !ok {
			return false
		}
		if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	return sym.ch == other.ch
}

func (sym Symbol) String() string {
	return string(sym.ch)
}

// AlphabetSet is the complete set of symbols valid as input to an automaton.
// It contains no duplicates and is never empty at construction, though
// removals may later empty it.
//
// The zero value is not usable; call NewAlphabetSet.
type AlphabetSet struct {
	symbols map[rune]Symbol
}

// NewAlphabetSet creates an AlphabetSet containing one Symbol per character of
// chars. It returns an error if chars is empty, if any character is not a
// single alphanumeric code point, or if any character repeats.
func NewAlphabetSet(chars string) (*AlphabetSet, error) {
	if chars == "" {
		return nil, fmt.Errorf("alphabet cannot be empty")
	}

	sigma := &AlphabetSet{symbols: make(map[rune]Symbol)}
	for _, ch := range chars {
		if err := sigma.Add(ch); err != nil {
			return nil, err
		}
	}

	return sigma, nil
}

// Add adds a new symbol for the given character. It returns an error wrapping
// ErrInvalidSymbol if the character is not alphanumeric, or one wrapping
// ErrDuplicateEntry if the character is already in the set.
func (sigma *AlphabetSet) Add(ch rune) error {
	sym, err := NewSymbol(ch)
	if err != nil {
		return err
	}

	if _, ok := sigma.symbols[ch]; ok {
		return fmt.Errorf("%q: %w", ch, ErrDuplicateEntry)
	}

	sigma.symbols[ch] = sym
	return nil
}

// Remove removes the symbol for the given character. It returns an error
// wrapping ErrNotFound if the character is not in the set.
func (sigma *AlphabetSet) Remove(ch rune) error {
	if _, ok := sigma.symbols[ch]; !ok {
		return fmt.Errorf("%q: %w", ch, ErrNotFound)
	}

	delete(sigma.symbols, ch)
	return nil
}

// Contains returns whether the set has a symbol for the given character.
func (sigma *AlphabetSet) Contains(ch rune) bool {
	_, ok := sigma.symbols[ch]
	return ok
}

// ContainsSymbol returns whether the set has the given Symbol.
func (sigma *AlphabetSet) ContainsSymbol(sym Symbol) bool {
	return sigma.Contains(sym.ch)
}

// Get retrieves the Symbol for the given character. It returns an error
// wrapping ErrNotFound if the character is not in the set.
func (sigma *AlphabetSet) Get(ch rune) (Symbol, error) {
	sym, ok := sigma.symbols[ch]
	if !ok {
		return Symbol{}, fmt.Errorf("%q: %w", ch, ErrNotFound)
	}
	return sym, nil
}

// Size returns the number of symbols in the set.
func (sigma *AlphabetSet) Size() int {
	return len(sigma.symbols)
}

// Symbols returns the symbols in the set, sorted by character value.
func (sigma *AlphabetSet) Symbols() []Symbol {
	ordered := util.OrderedKeys(sigma.symbols)

	syms := make([]Symbol, len(ordered))
	for i := range ordered {
		syms[i] = sigma.symbols[ordered[i]]
	}

	return syms
}

// Decode converts a raw string into the sequence of Symbols it spells. It
// returns an error wrapping ErrNotInAlphabet if any character of input has no
// symbol in the set; in that case no partial result is returned.
func (sigma *AlphabetSet) Decode(input string) ([]Symbol, error) {
	syms := make([]Symbol, 0, len(input))
	for _, ch := range input {
		sym, ok := sigma.symbols[ch]
		if !ok {
			return nil, fmt.Errorf("input symbol %q: %w", ch, ErrNotInAlphabet)
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

// Copy returns a duplicate of this AlphabetSet.
func (sigma *AlphabetSet) Copy() *AlphabetSet {
	copied := &AlphabetSet{symbols: make(map[rune]Symbol)}
	for k := range sigma.symbols {
		copied.symbols[k] = sigma.symbols[k]
	}
	return copied
}

func (sigma *AlphabetSet) String() string {
	var sb strings.Builder

	ordered := util.OrderedKeys(sigma.symbols)

	sb.WriteRune('{')
	for i := range ordered {
		sb.WriteString(string(ordered[i]))
		if i+1 < len(ordered) {
			sb.WriteRune(',')
			sb.WriteRune(' ')
		}
	}
	sb.WriteRune('}')

	return sb.String()
}
