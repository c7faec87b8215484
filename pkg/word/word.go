package word

import (
	"strings"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
)

// Word is an immutable sequence of symbols.
//
// Words compare with == and order with [Compare]; both are structural. The
// symbols are stored one per byte, which keeps Word comparable and cheap to
// use as a map key.
type Word struct {
	syms string
}

// Empty returns the empty word. It is equal to the zero value.
func Empty() Word { return Word{} }

// FromSymbols builds a word from symbols. It panics if any symbol is invalid.
func FromSymbols(syms ...Symbol) Word {
	b := make([]byte, len(syms))
	for i, s := range syms {
		if !s.Valid() {
			panic(apperrors.New(apperrors.ErrCodeInvalidLetter, "invalid symbol %d at position %d", uint8(s), i))
		}
		b[i] = byte(s)
	}
	return Word{syms: string(b)}
}

// Parse encodes text case-insensitively. It fails on the first character
// outside A-Z; the returned error wraps ErrOutOfAlphabet.
func Parse(text string) (Word, error) {
	b := make([]byte, 0, len(text))
	for i, r := range text {
		s, err := SymbolOf(r)
		if err != nil {
			return Word{}, apperrors.Wrap(apperrors.ErrCodeInvalidWord, err, "word %q position %d", text, i)
		}
		b = append(b, byte(s))
	}
	return Word{syms: string(b)}, nil
}

// MustParse is like Parse but panics on invalid input. Use it for literals.
func MustParse(text string) Word {
	w, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseAll encodes every entry of texts, stopping at the first failure.
func ParseAll(texts []string) ([]Word, error) {
	words := make([]Word, 0, len(texts))
	for _, t := range texts {
		w, err := Parse(t)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

// Append returns a new word with s added at the end. The receiver is left
// untouched. It panics if s is invalid.
func (w Word) Append(s Symbol) Word {
	if !s.Valid() {
		panic(apperrors.New(apperrors.ErrCodeInvalidLetter, "invalid symbol %d", uint8(s)))
	}
	return Word{syms: w.syms + string([]byte{byte(s)})}
}

// Len returns the number of symbols in w.
func (w Word) Len() int { return len(w.syms) }

// IsEmpty reports whether w has no symbols.
func (w Word) IsEmpty() bool { return len(w.syms) == 0 }

// At returns the symbol at index i. It panics if i is out of range.
func (w Word) At(i int) Symbol { return Symbol(w.syms[i]) }

// First returns the first symbol and false if w is empty.
func (w Word) First() (Symbol, bool) {
	if len(w.syms) == 0 {
		return 0, false
	}
	return Symbol(w.syms[0]), true
}

// Symbols returns a copy of the symbols in w.
func (w Word) Symbols() []Symbol {
	out := make([]Symbol, len(w.syms))
	for i := 0; i < len(w.syms); i++ {
		out[i] = Symbol(w.syms[i])
	}
	return out
}

// HasPrefix reports whether p is a prefix of w.
func (w Word) HasPrefix(p Word) bool { return strings.HasPrefix(w.syms, p.syms) }

// String renders w in canonical uppercase.
func (w Word) String() string { return w.render('A') }

// Lower renders w in lowercase, the form dictionaries are usually written in.
func (w Word) Lower() string { return w.render('a') }

// GoString makes %#v print Word(FOO) instead of the raw bytes.
func (w Word) GoString() string { return "Word(" + w.String() + ")" }

func (w Word) render(base byte) string {
	b := make([]byte, len(w.syms))
	for i := 0; i < len(w.syms); i++ {
		b[i] = base + w.syms[i]
	}
	return string(b)
}

// Compare orders words lexicographically by symbol, shorter prefixes first.
// It returns -1, 0 or +1 and can be passed to slices.SortFunc.
func Compare(a, b Word) int { return strings.Compare(a.syms, b.syms) }
