// Package alphaid converts unsigned integers(eg. database row IDs) into short
// youtube-like textual IDs and back.
//
// The mapping is a deterministic bijection between an integer and a string over a
// configurable alphabet; ie. reversible obfuscation, not encryption.
// The alphabet and minimum length are not secrets and this package makes no
// cryptographic guarantees whatsoever.
package alphaid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// The encoding is a little-endian positional numeral system whose base is the
// alphabet size; digit value i is rendered as the alphabet's i'th symbol.
// The minimum-length extension keeps the mapping bijective by encoding the
// integer as two parts; the low base^(minLen-1) range is written out as exactly
// minLen-1 digits(zero padded), and everything above it is written as the minimal
// expansion of (high + 1). Adding one reserves the all-zero high part, so every
// encoded ID ends in a nonzero digit and decoding is unambiguous.

var (
	// ErrInvalidAlphabet is returned by [New] when the configured alphabet
	// has fewer than 2 symbols or contains duplicates.
	ErrInvalidAlphabet = errors.New("alphaid: invalid alphabet")
	// ErrUnknownSymbol is returned when decoding input that contains a byte
	// which is not part of the configured alphabet.
	ErrUnknownSymbol = errors.New("alphaid: unknown symbol")
	// ErrOverflow is returned when decoding input whose value does not fit
	// in the codec's integer type.
	ErrOverflow = errors.New("alphaid: overflow")
	// ErrTruncated is returned when decoding input that is shorter than the
	// configured minimum length, or that is missing the padding terminator.
	// The encoder never produces such input.
	ErrTruncated = errors.New("alphaid: truncated input")
)

// Options are the parameters used to configure a [Codec].
// The zero value is valid and selects the defaults.
type Options struct {
	// Alphabet is the ordered set of symbols used as digits.
	// It defaults to [DefaultAlphabet].
	Alphabet string
	// MinLen is the minimum length of encoded IDs.
	// It defaults to 1, ie. no padding.
	MinLen int
}

// Codec encodes unsigned integers of type T into IDs and decodes them back.
//
// Use [New] or [MustNew] to get a valid Codec.
// A Codec is immutable and safe for concurrent use; Encode and Decode are pure
// functions of the configuration and their input.
type Codec[T constraints.Unsigned] struct {
	alphabet Alphabet
	minLen   int
	base     uint64
	max      uint64 // largest value representable in T.
}

// New returns a [Codec] for the integer type T, configured by opts.
//
// It returns [ErrInvalidAlphabet] if the alphabet is rejected, and a plain
// error if opts.MinLen is negative.
func New[T constraints.Unsigned](opts Options) (*Codec[T], error) {
	chars := opts.Alphabet
	if chars == "" {
		chars = DefaultAlphabet
	}
	alphabet, err := NewAlphabet(chars)
	if err != nil {
		return nil, err
	}

	minLen := opts.MinLen
	if minLen < 0 {
		return nil, fmt.Errorf("alphaid: negative minimum length %d", minLen)
	}
	if minLen == 0 {
		minLen = 1
	}

	return &Codec[T]{
		alphabet: alphabet,
		minLen:   minLen,
		base:     uint64(alphabet.Len()),
		max:      uint64(^T(0)),
	}, nil
}

// MustNew is like [New] except it panics on error.
// Use it for package-level codecs with known-good configuration.
func MustNew[T constraints.Unsigned](opts Options) *Codec[T] {
	c, err := New[T](opts)
	if err != nil {
		panic(err)
	}
	return c
}

// MinLen returns the minimum length of IDs produced by this codec.
func (c *Codec[T]) MinLen() int {
	return c.minLen
}

// Alphabet returns the codec's alphabet.
func (c *Codec[T]) Alphabet() Alphabet {
	return c.alphabet
}

// Encode encodes v.
// The result is never empty and its length is always >= the configured minimum
// length. Encode cannot fail; every value of T has exactly one encoding.
func (c *Codec[T]) Encode(v T) []byte {
	n := uint64(v)
	out := make([]byte, 0, c.minLen+12)

	if c.minLen > 1 {
		for i := 0; i < c.minLen-1; i++ {
			out = append(out, c.alphabet.symbol(int(n%c.base)))
			n /= c.base
		}
		// Reserve zero as the "no more digits" terminator for the high part.
		// n <= max/base here, so this cannot wrap.
		n++
	}

	for {
		out = append(out, c.alphabet.symbol(int(n%c.base)))
		n /= c.base
		if n == 0 {
			break
		}
	}

	return out
}

// EncodeToString is like [Codec.Encode] except it returns a string.
func (c *Codec[T]) EncodeToString(v T) string {
	return string(c.Encode(v))
}

// Decode decodes id back into the integer it was encoded from.
//
// It returns [ErrUnknownSymbol] if id contains a byte outside the alphabet,
// [ErrOverflow] if the value does not fit in T and [ErrTruncated] if id is
// shorter than the minimum length or is missing the padding terminator.
func (c *Codec[T]) Decode(id []byte) (T, error) {
	digits := make([]int, len(id))
	for i, b := range id {
		d := c.alphabet.digit(b)
		if d < 0 {
			return 0, fmt.Errorf("%w %q at position %d", ErrUnknownSymbol, b, i)
		}
		digits[i] = d
	}

	if c.minLen == 1 {
		n, err := c.value(digits)
		if err != nil {
			return 0, err
		}
		return T(n), nil
	}

	if len(digits) < c.minLen {
		return 0, fmt.Errorf("%w: got %d bytes, want atleast %d", ErrTruncated, len(digits), c.minLen)
	}

	split := c.minLen - 1
	low, err := c.value(digits[:split])
	if err != nil {
		return 0, err
	}
	high, err := c.value(digits[split:])
	if err != nil {
		return 0, err
	}
	if high == 0 {
		// All high digits were zero; the encoder always terminates the
		// high part with a nonzero digit.
		return 0, fmt.Errorf("%w: missing padding terminator", ErrTruncated)
	}
	high--

	// Recombine; n = low + high*base^split, rejecting anything above max.
	for i := 0; i < split; i++ {
		if high > c.max/c.base {
			return 0, fmt.Errorf("%w: value does not fit in the codec's integer type", ErrOverflow)
		}
		high *= c.base
	}
	if c.max-high < low {
		return 0, fmt.Errorf("%w: value does not fit in the codec's integer type", ErrOverflow)
	}

	return T(high + low), nil
}

// DecodeString is like [Codec.Decode] except it takes a string.
func (c *Codec[T]) DecodeString(id string) (T, error) {
	return c.Decode([]byte(id))
}

// value reconstructs a little-endian digit sequence positionally;
// n = sum(digits[i] * base^i), rejecting anything above max.
func (c *Codec[T]) value(digits []int) (uint64, error) {
	var n uint64
	pow := uint64(1) // base^i
	inRange := true  // whether pow is still <= max
	for i, d := range digits {
		if d != 0 {
			x := uint64(d)
			// a*b > limit iff a > limit/b, in integer division.
			if !inRange || pow > c.max/x {
				return 0, fmt.Errorf("%w: value does not fit in the codec's integer type", ErrOverflow)
			}
			add := pow * x
			if c.max-n < add {
				return 0, fmt.Errorf("%w: value does not fit in the codec's integer type", ErrOverflow)
			}
			n += add
		}

		if i == len(digits)-1 {
			break
		}
		if pow > c.max/c.base {
			// base^(i+1) exceeds max; any later nonzero digit overflows.
			// Trailing zero digits are still fine.
			inRange = false
		} else {
			pow *= c.base
		}
	}

	return n, nil
}
