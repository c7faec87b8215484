// Package word encodes the fixed 26-letter alphabet used by wordhunt.
//
// # Overview
//
// Letters are handled internally as a [Symbol], an integer in [0, 25], so that
// the dictionary trie and the grid graph never have to think about case or
// text encoding. A [Word] is an immutable sequence of symbols and a [Set] is a
// compact bitset of symbols.
//
// Conversion happens only at the boundary:
//
//	w, err := word.Parse("Foooz") // case-insensitive
//	fmt.Println(w)                // FOOOZ
//	fmt.Println(w.Lower())        // foooz
//
// Input outside A-Z is rejected with an error wrapping [ErrOutOfAlphabet].
// Callers that already validated their input can use [MustParse] and
// [MustSymbol], which panic instead.
//
// # Value Semantics
//
// Word is a comparable value type: == compares contents, words can be used as
// map keys, and [Word.Append] returns a new word without touching the
// receiver. The zero value is the empty word.
//
// # Concurrency
//
// All types in this package are immutable values and safe to share.
package word
