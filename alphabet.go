package alphaid

import (
	"fmt"
)

// DefaultAlphabet is the alphabet used unless [Options.Alphabet] says otherwise.
// It contains 64 url-safe symbols, so the default numeral base is 64.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

// Alphabet is a validated, ordered set of distinct byte symbols.
// Symbol i is the digit of value i in the positional numeral system whose base is [Alphabet.Len]
//
// Use [NewAlphabet] to get a valid Alphabet; the zero value is not usable.
// An Alphabet is immutable and safe for concurrent use.
type Alphabet struct {
	chars []byte
	// reverse lookup for every possible byte value. -1 means not a member.
	index [256]int16
}

// NewAlphabet returns an [Alphabet] made of the symbols in chars, in order.
// It returns [ErrInvalidAlphabet] if chars has fewer than 2 symbols or contains a duplicate;
// a duplicate would make decoding ambiguous.
func NewAlphabet(chars string) (Alphabet, error) {
	if len(chars) < 2 {
		return Alphabet{}, fmt.Errorf("%w: need atleast 2 symbols, got %d", ErrInvalidAlphabet, len(chars))
	}

	a := Alphabet{chars: []byte(chars)}
	for i := range a.index {
		a.index[i] = -1
	}
	for i, b := range a.chars {
		if a.index[b] >= 0 {
			return Alphabet{}, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, b)
		}
		a.index[b] = int16(i)
	}

	return a, nil
}

// Len returns the number of symbols, ie the numeral base.
func (a Alphabet) Len() int {
	return len(a.chars)
}

// String implements [fmt.Stringer]
func (a Alphabet) String() string {
	return string(a.chars)
}

// symbol returns the byte for digit value i.
// Callers are expected to stay in range; untrusted input never reaches here.
func (a Alphabet) symbol(i int) byte {
	return a.chars[i]
}

// digit returns the digit value of b, or -1 if b is not a member.
// This is the validation gate for untrusted input during decode.
func (a Alphabet) digit(b byte) int {
	return int(a.index[b])
}
