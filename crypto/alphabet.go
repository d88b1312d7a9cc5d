package crypto

import (
	"errors"
	"fmt"
)

// Latin is the canonical cipher alphabet: the 26 uppercase letters A-Z.
var Latin = mustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Alphabet maps characters to zero-based positions and back. The modulus of
// every cipher operation is Size().
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

func newAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return nil, errors.New("alphabet cannot be empty")
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("duplicate alphabet symbol %q", r)
		}
		index[r] = i
	}

	return &Alphabet{symbols: runes, index: index}, nil
}

func mustAlphabet(symbols string) *Alphabet {
	a, err := newAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols, M.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Contains reports whether r is a member of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// CharToIndex returns the position of r. Characters outside the alphabet
// yield an *InvalidCharacterError.
func (a *Alphabet) CharToIndex(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, &InvalidCharacterError{Char: r}
	}
	return i, nil
}

// IndexToChar returns the symbol at n mod M. Negative and out of range
// values wrap around.
func (a *Alphabet) IndexToChar(n int) rune {
	return a.symbols[wrap(n, len(a.symbols))]
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}

// wrap is the non-negative modulus; Go's % keeps the sign of the dividend.
func wrap(n, m int) int {
	return ((n % m) + m) % m
}
