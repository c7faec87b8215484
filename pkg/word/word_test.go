package word

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
)

func TestSymbolOf(t *testing.T) {
	tests := []struct {
		in   rune
		want Symbol
	}{
		{'A', 0},
		{'a', 0},
		{'M', 12},
		{'m', 12},
		{'Z', 25},
		{'z', 25},
	}
	for _, tt := range tests {
		got, err := SymbolOf(tt.in)
		if err != nil {
			t.Fatalf("SymbolOf(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("SymbolOf(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSymbolOfOutOfAlphabet(t *testing.T) {
	for _, r := range []rune{'@', '[', '`', '{', '0', ' ', 'é', 'Ω'} {
		_, err := SymbolOf(r)
		if err == nil {
			t.Errorf("SymbolOf(%q) error = nil, want error", r)
			continue
		}
		if !errors.Is(err, ErrOutOfAlphabet) {
			t.Errorf("SymbolOf(%q) error = %v, want ErrOutOfAlphabet", r, err)
		}
		if !apperrors.Is(err, apperrors.ErrCodeInvalidLetter) {
			t.Errorf("SymbolOf(%q) code = %v, want %v", r, apperrors.GetCode(err), apperrors.ErrCodeInvalidLetter)
		}
	}
}

func TestMustSymbolPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustSymbol('1') did not panic")
		}
	}()
	MustSymbol('1')
}

func TestSymbolDecode(t *testing.T) {
	for s := Symbol(0); s < AlphabetSize; s++ {
		if !s.Valid() {
			t.Errorf("Symbol(%d).Valid() = false", s)
		}
		back, err := SymbolOf(s.Rune())
		if err != nil || back != s {
			t.Errorf("SymbolOf(Symbol(%d).Rune()) = %d, %v", s, back, err)
		}
	}
	if got := MustSymbol('q').String(); got != "Q" {
		t.Errorf("String() = %q, want %q", got, "Q")
	}
	if Symbol(AlphabetSize).Valid() {
		t.Error("Symbol(26).Valid() = true, want false")
	}
	if got := Symbol(30).String(); got != "Symbol(30)" {
		t.Errorf("String() = %q, want %q", got, "Symbol(30)")
	}
}

func TestParse(t *testing.T) {
	w, err := Parse("FoOoZ")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []Symbol{5, 14, 14, 14, 25}
	if diff := cmp.Diff(want, w.Symbols()); diff != "" {
		t.Errorf("Symbols() mismatch (-want +got):\n%s", diff)
	}
	if w.Len() != 5 {
		t.Errorf("Len() = %d, want 5", w.Len())
	}
	if w.String() != "FOOOZ" {
		t.Errorf("String() = %q, want %q", w.String(), "FOOOZ")
	}
	if w.Lower() != "foooz" {
		t.Errorf("Lower() = %q, want %q", w.Lower(), "foooz")
	}
	if w != MustParse("foooz") {
		t.Error("Parse should be case-insensitive")
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"b4r", "foo bar", "naïve", "x-ray"} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) error = nil, want error", in)
			continue
		}
		if !errors.Is(err, ErrOutOfAlphabet) {
			t.Errorf("Parse(%q) error = %v, want ErrOutOfAlphabet in chain", in, err)
		}
		if apperrors.GetCode(err) != apperrors.ErrCodeInvalidWord {
			t.Errorf("Parse(%q) code = %v, want %v", in, apperrors.GetCode(err), apperrors.ErrCodeInvalidWord)
		}
	}
}

func TestParseAll(t *testing.T) {
	words, err := ParseAll([]string{"foo", "BAR", ""})
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}
	got := make([]string, len(words))
	for i, w := range words {
		got[i] = w.String()
	}
	if diff := cmp.Diff([]string{"FOO", "BAR", ""}, got); diff != "" {
		t.Errorf("ParseAll mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseAll([]string{"ok", "n0pe"}); err == nil {
		t.Error("ParseAll with bad entry should fail")
	}
}

func TestEmpty(t *testing.T) {
	e := Empty()
	if e != (Word{}) {
		t.Error("Empty() should equal the zero value")
	}
	if e.Len() != 0 || !e.IsEmpty() {
		t.Errorf("Empty().Len() = %d, want 0", e.Len())
	}
	if _, ok := e.First(); ok {
		t.Error("Empty().First() ok = true, want false")
	}
	if e.String() != "" {
		t.Errorf("Empty().String() = %q, want empty", e.String())
	}
}

func TestAppendDoesNotMutate(t *testing.T) {
	base := MustParse("fo")
	a := base.Append(MustSymbol('o'))
	b := base.Append(MustSymbol('x'))

	if base.String() != "FO" {
		t.Errorf("base = %v, want FO", base)
	}
	if a.String() != "FOO" || b.String() != "FOX" {
		t.Errorf("a, b = %v, %v, want FOO, FOX", a, b)
	}

	syms := a.Symbols()
	syms[0] = MustSymbol('z')
	if a.String() != "FOO" {
		t.Errorf("mutating Symbols() result changed word to %v", a)
	}
}

func TestAppendInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Append(Symbol(26)) did not panic")
		}
	}()
	Empty().Append(Symbol(AlphabetSize))
}

func TestWordEqualityAndHashing(t *testing.T) {
	a := Empty().Append(1).Append(0).Append(17)
	b := MustParse("bar")
	if a != b {
		t.Errorf("%v != %v, want equal", a, b)
	}

	seen := map[Word]int{a: 1}
	seen[b]++
	if len(seen) != 1 || seen[MustParse("BAR")] != 2 {
		t.Errorf("map keyed by Word = %v, want single entry with count 2", seen)
	}
}

func TestCompare(t *testing.T) {
	words := []Word{MustParse("baz"), MustParse("bar"), MustParse("ba"), MustParse("a"), MustParse("barz")}
	slices.SortFunc(words, Compare)

	got := make([]string, len(words))
	for i, w := range words {
		got[i] = w.Lower()
	}
	want := []string{"a", "ba", "bar", "barz", "baz"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted mismatch (-want +got):\n%s", diff)
	}
}

func TestHasPrefixAndAt(t *testing.T) {
	w := MustParse("foooz")
	if !w.HasPrefix(MustParse("foo")) {
		t.Error("HasPrefix(foo) = false, want true")
	}
	if !w.HasPrefix(Empty()) {
		t.Error("HasPrefix(empty) = false, want true")
	}
	if w.HasPrefix(MustParse("fox")) {
		t.Error("HasPrefix(fox) = true, want false")
	}
	if w.At(4) != MustSymbol('z') {
		t.Errorf("At(4) = %v, want Z", w.At(4))
	}
	if first, ok := w.First(); !ok || first != MustSymbol('f') {
		t.Errorf("First() = %v, %v, want F, true", first, ok)
	}
}

func TestFromSymbols(t *testing.T) {
	w := FromSymbols(2, 0, 19)
	if w.String() != "CAT" {
		t.Errorf("FromSymbols = %v, want CAT", w)
	}
	if got := w.GoString(); got != "Word(CAT)" {
		t.Errorf("GoString() = %q, want %q", got, "Word(CAT)")
	}
}
