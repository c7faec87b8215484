package word

import (
	"errors"
	"fmt"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
)

// AlphabetSize is the number of distinct symbols. It is a domain constant, not
// configuration: every table indexed by Symbol has exactly this many entries.
const AlphabetSize = 26

// ErrOutOfAlphabet is returned (wrapped) when a letter outside A-Z is encoded.
var ErrOutOfAlphabet = errors.New("letter outside A-Z")

// Symbol is one letter of the alphabet, 0 for A through 25 for Z.
type Symbol uint8

// SymbolOf encodes a letter, ignoring case. Anything other than an ASCII
// letter yields an error wrapping ErrOutOfAlphabet.
func SymbolOf(r rune) (Symbol, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Symbol(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return Symbol(r - 'a'), nil
	}
	return 0, apperrors.Wrap(apperrors.ErrCodeInvalidLetter, ErrOutOfAlphabet, "cannot encode %q", r)
}

// MustSymbol is like SymbolOf but panics on out-of-alphabet input.
func MustSymbol(r rune) Symbol {
	s, err := SymbolOf(r)
	if err != nil {
		panic(err)
	}
	return s
}

// Valid reports whether s is inside the alphabet.
func (s Symbol) Valid() bool { return s < AlphabetSize }

// Rune decodes s to its canonical uppercase letter.
func (s Symbol) Rune() rune { return 'A' + rune(s) }

// String returns the uppercase letter for s, or Symbol(n) if s is invalid.
func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
	return string(s.Rune())
}
