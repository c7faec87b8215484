// Package grid provides the adjacency graph of a word-hunt board.
//
// # Overview
//
// A board is an N×N square of letter tiles. A word is traced by moving from
// a tile to any of its eight surrounding tiles (king moves), so a corner has
// 3 neighbors, a tile on an edge has 5 and an interior tile has 8.
//
// [Build] turns a letter matrix into a [Graph]: one node per tile in
// row-major order, then an undirected edge between every pair of king-move
// neighbors that fall inside the board.
//
// # Letter-Keyed Neighbors
//
// Each node groups its neighbors by letter. A search that already knows
// which letters may extend the current prefix (see trie.Trie.NextSymbols)
// asks only for those:
//
//	g, _ := grid.Parse([]string{"ABCD", "EFGH", "IJKL", "MNOP"})
//	id, _ := g.At(grid.Coord{Row: 0, Col: 0})
//	g.NeighborSymbols(id)               // [B E F]
//	g.Neighbors(id, word.MustSymbol('f')) // [5]
//
// # Arena Layout
//
// Nodes are stored in one slice and addressed by dense ids starting at 0.
// A row → column index resolves coordinates to ids. Coordinates are unique:
// [Graph.AddNode] refuses an occupied coordinate with
// [ErrDuplicateCoordinate] and leaves the graph unchanged.
//
// # Validation
//
// [Graph.Validate] checks the invariants every built graph satisfies:
// unique coordinates, neighbor keys matching neighbor letters, and
// symmetric adjacency.
//
// # Concurrency
//
// A Graph is built once and then only read. Concurrent readers are safe;
// concurrent calls to AddNode or AddEdge are not.
package grid
