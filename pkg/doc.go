// Package pkg holds the wordhunt libraries.
//
// # Overview
//
// Wordhunt builds the two structures a Boggle-style word search walks: a
// dictionary trie and a letter-grid adjacency graph. Both are arenas of
// nodes addressed by integer ids, built once and read many times.
//
//  1. [word] - Letters as 26-symbol codes, words as symbol sequences, and
//     symbol sets
//  2. [trie] - The dictionary trie: Insert, ListWords, prefix queries
//  3. [grid] - The board graph: tiles, king-move adjacency, neighbors by letter
//  4. [io] - Dictionary and board readers and writers
//  5. [render] - Graphviz rendering of boards and tries
//  6. [pipeline] - Load, build and render stages with caching
//  7. [cache] - File, Redis and null caches for rendered artifacts
//
// # Architecture
//
//	word lists                  board rows
//	    ↓                           ↓
//	[io] ReadWords              [io] ReadGrid
//	    ↓                           ↓
//	[trie] Insert               [grid] Build
//	    ↓                           ↓
//	         [render] DOT / SVG / PNG
//
// # Quick Start
//
//	t, _ := trie.FromStrings([]string{"foo", "bar", "baz"})
//	t.Contains(word.MustParse("bar"))  // true
//	t.HasPrefix(word.MustParse("ba"))  // true
//
//	g, _ := grid.Parse([]string{"ABCD", "EFGH", "IJKL", "MNOP"})
//	id, _ := g.At(grid.Coord{Row: 0, Col: 0})
//	g.NeighborSymbols(id)              // [B E F]
//
// [word]: https://pkg.go.dev/github.com/matzehuels/wordhunt/pkg/word
// [trie]: https://pkg.go.dev/github.com/matzehuels/wordhunt/pkg/trie
// [grid]: https://pkg.go.dev/github.com/matzehuels/wordhunt/pkg/grid
// [io]: https://pkg.go.dev/github.com/matzehuels/wordhunt/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/wordhunt/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wordhunt/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordhunt/pkg/cache
package pkg
