// Package trie provides the dictionary trie used to prune word searches.
//
// # Overview
//
// A [Trie] stores a set of [word.Word] values as a forest: one root per
// first letter and one child per following letter. Nodes that end a
// dictionary word are marked as a terminus. Interior nodes on the way to a
// longer word are not words themselves, so "foo" and "foooz" can share a
// path while only the two terminal nodes answer [Trie.Contains].
//
// # Arena Layout
//
// Nodes live in a single append-only slice and are addressed by dense
// integer ids starting at 0. Each node records the id of its parent (-1 for
// roots), which makes the structure cycle free and lets [Trie.WordAt]
// rebuild the word spelled by any node. Ids are never reassigned, so a
// search may keep them across calls.
//
// # Basic Usage
//
//	t := trie.New()
//	t.Insert(word.MustParse("foo"))
//	t.Insert(word.MustParse("foooz"))
//
//	t.Contains(word.MustParse("foo"))   // true
//	t.Contains(word.MustParse("fooo"))  // false
//	t.HasPrefix(word.MustParse("fooo")) // true
//	t.ListWords()                       // [FOO FOOOZ]
//
// A search walks the trie with [Trie.Root], [Trie.Child] and
// [Trie.NextSymbols] while it walks the grid, stopping as soon as the
// letters on the board leave every dictionary path.
//
// # Concurrency
//
// A Trie is not safe for concurrent mutation. Build it from one goroutine,
// then share it freely between readers.
package trie
