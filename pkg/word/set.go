package word

import (
	"iter"
	"math/bits"
	"strings"
)

// Set is a bitset of symbols. The zero value is the empty set. Because the
// alphabet has 26 letters a Set fits in a uint32 and is passed by value.
//
// The trie reports the letters that may follow a node as a Set and the grid
// reports the letters around a tile as a Set; intersecting the two tells a
// search which branches are worth following.
type Set uint32

// SetOf returns the set containing syms. Invalid symbols are ignored.
func SetOf(syms ...Symbol) Set {
	var s Set
	for _, sym := range syms {
		s = s.With(sym)
	}
	return s
}

// With returns s plus sym. Invalid symbols leave s unchanged.
func (s Set) With(sym Symbol) Set {
	if !sym.Valid() {
		return s
	}
	return s | 1<<sym
}

// Contains reports whether sym is in s.
func (s Set) Contains(sym Symbol) bool {
	return sym.Valid() && s&(1<<sym) != 0
}

// Len returns the number of symbols in s.
func (s Set) Len() int { return bits.OnesCount32(uint32(s)) }

// IsEmpty reports whether s has no symbols.
func (s Set) IsEmpty() bool { return s == 0 }

// Union returns the symbols in either set.
func (s Set) Union(other Set) Set { return s | other }

// Intersect returns the symbols in both sets.
func (s Set) Intersect(other Set) Set { return s & other }

// All iterates the symbols of s in ascending order.
func (s Set) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for rest := uint32(s); rest != 0; rest &= rest - 1 {
			if !yield(Symbol(bits.TrailingZeros32(rest))) {
				return
			}
		}
	}
}

// Symbols returns the symbols of s in ascending order.
func (s Set) Symbols() []Symbol {
	out := make([]Symbol, 0, s.Len())
	for sym := range s.All() {
		out = append(out, sym)
	}
	return out
}

// String renders s as e.g. "[A E T]".
func (s Set) String() string {
	parts := make([]string, 0, s.Len())
	for sym := range s.All() {
		parts = append(parts, sym.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
