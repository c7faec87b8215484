package grid

import (
	"errors"
	"maps"
	"slices"

	"github.com/matzehuels/wordhunt/pkg/word"
)

var (
	// ErrDuplicateCoordinate is returned by [Graph.AddNode] when a node
	// already occupies the coordinate, and by [Build] when that happens
	// during construction. The graph is not modified.
	ErrDuplicateCoordinate = errors.New("duplicate coordinate")

	// ErrUnknownNode is returned by [Graph.AddEdge] when either endpoint
	// does not exist.
	ErrUnknownNode = errors.New("unknown node")

	// ErrSelfEdge is returned by [Graph.AddEdge] when both endpoints are the
	// same tile.
	ErrSelfEdge = errors.New("tile cannot neighbor itself")

	// ErrEmptyGrid is returned by [Build] for a zero dimension or a letter
	// matrix without rows.
	ErrEmptyGrid = errors.New("grid has no tiles")

	// ErrNonSquare is returned by [Build] when the letter matrix is not
	// dimension × dimension.
	ErrNonSquare = errors.New("grid is not square")

	// ErrInvalidSymbol is returned by [Build] when a tile holds a symbol
	// outside the alphabet.
	ErrInvalidSymbol = errors.New("invalid tile symbol")

	// ErrAsymmetricEdge is returned by [Graph.Validate] when a node lists a
	// neighbor that does not list it back, or lists it under the wrong letter.
	ErrAsymmetricEdge = errors.New("asymmetric edge")
)

// Default board sizes.
const (
	DefaultDimension = 4
	BigDimension     = 5
)

// Coord is a tile position. Row 0 is the top row and Col 0 the left column.
type Coord struct {
	Row int
	Col int
}

// Node is a read-only view of one tile.
type Node struct {
	ID     int
	Symbol word.Symbol
	Coord  Coord
}

type node struct {
	Node
	neighbors map[word.Symbol]map[int]struct{}
}

// Graph is the tile adjacency graph of a board.
//
// The zero value is an empty graph; use [Build] or [Parse] for a board.
type Graph struct {
	nodes     []node
	index     map[int]map[int]int
	dimension int
}

// kingMoves lists the eight surrounding offsets as {dRow, dCol}.
var kingMoves = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: make(map[int]map[int]int)}
}

// AddNode appends a tile with symbol s at c and returns its id.
func (g *Graph) AddNode(s word.Symbol, c Coord) (int, error) {
	if _, ok := g.At(c); ok {
		return 0, ErrDuplicateCoordinate
	}
	if g.index == nil {
		g.index = make(map[int]map[int]int)
	}
	cols := g.index[c.Row]
	if cols == nil {
		cols = make(map[int]int)
		g.index[c.Row] = cols
	}
	id := len(g.nodes)
	g.nodes = append(g.nodes, node{
		Node:      Node{ID: id, Symbol: s, Coord: c},
		neighbors: make(map[word.Symbol]map[int]struct{}),
	})
	cols[c.Col] = id
	return id, nil
}

// AddEdge makes a and b neighbors of each other. Each endpoint files the
// other under the other's letter. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(a, b int) error {
	if !g.valid(a) || !g.valid(b) {
		return ErrUnknownNode
	}
	if a == b {
		return ErrSelfEdge
	}
	g.link(a, b)
	g.link(b, a)
	return nil
}

func (g *Graph) link(from, to int) {
	s := g.nodes[to].Symbol
	set := g.nodes[from].neighbors[s]
	if set == nil {
		set = make(map[int]struct{})
		g.nodes[from].neighbors[s] = set
	}
	set[to] = struct{}{}
}

// Build creates the graph of a dimension × dimension board.
//
// Tiles are added in row-major order, so the tile at (r, c) gets id
// r*dimension + c. On any error the partially built graph is discarded and
// nil is returned.
func Build(letters [][]word.Symbol, dimension int) (*Graph, error) {
	if dimension <= 0 || len(letters) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(letters) != dimension {
		return nil, ErrNonSquare
	}
	for _, row := range letters {
		if len(row) != dimension {
			return nil, ErrNonSquare
		}
		for _, s := range row {
			if !s.Valid() {
				return nil, ErrInvalidSymbol
			}
		}
	}

	g := New()
	g.dimension = dimension
	for r, row := range letters {
		for c, s := range row {
			if _, err := g.AddNode(s, Coord{Row: r, Col: c}); err != nil {
				return nil, err
			}
		}
	}
	for id := range g.nodes {
		c := g.nodes[id].Coord
		for _, d := range kingMoves {
			other, ok := g.At(Coord{Row: c.Row + d[0], Col: c.Col + d[1]})
			if !ok {
				continue
			}
			if err := g.AddEdge(id, other); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Len returns the number of tiles.
func (g *Graph) Len() int { return len(g.nodes) }

// Dimension returns the board side length, or 0 for graphs assembled with
// AddNode.
func (g *Graph) Dimension() int { return g.dimension }

// Node returns a copy of tile id.
func (g *Graph) Node(id int) (Node, bool) {
	if !g.valid(id) {
		return Node{}, false
	}
	return g.nodes[id].Node, true
}

// Nodes returns all tiles in id order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].Node
	}
	return out
}

// At returns the id of the tile at c.
func (g *Graph) At(c Coord) (int, bool) {
	id, ok := g.index[c.Row][c.Col]
	return id, ok
}

// Neighbors returns the ids of tiles next to id that show letter s, in
// ascending order.
func (g *Graph) Neighbors(id int, s word.Symbol) []int {
	if !g.valid(id) {
		return nil
	}
	return slices.Sorted(maps.Keys(g.nodes[id].neighbors[s]))
}

// NeighborSymbols returns the letters shown around tile id.
func (g *Graph) NeighborSymbols(id int) word.Set {
	var set word.Set
	if !g.valid(id) {
		return set
	}
	for s, ids := range g.nodes[id].neighbors {
		if len(ids) > 0 {
			set = set.With(s)
		}
	}
	return set
}

// NeighborCount returns the number of tiles next to id, counting every
// letter group.
func (g *Graph) NeighborCount(id int) int {
	if !g.valid(id) {
		return 0
	}
	n := 0
	for _, ids := range g.nodes[id].neighbors {
		n += len(ids)
	}
	return n
}

// AllNeighbors returns every tile next to id in ascending order.
func (g *Graph) AllNeighbors(id int) []int {
	if !g.valid(id) {
		return nil
	}
	out := make([]int, 0, 8)
	for _, ids := range g.nodes[id].neighbors {
		for other := range ids {
			out = append(out, other)
		}
	}
	slices.Sort(out)
	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for id := range g.nodes {
		total += g.NeighborCount(id)
	}
	return total / 2
}

// Letters returns the board as a symbol matrix. It returns nil for graphs
// without a dimension.
func (g *Graph) Letters() [][]word.Symbol {
	if g.dimension == 0 {
		return nil
	}
	out := make([][]word.Symbol, g.dimension)
	for r := range out {
		out[r] = make([]word.Symbol, g.dimension)
		for c := range out[r] {
			if id, ok := g.At(Coord{Row: r, Col: c}); ok {
				out[r][c] = g.nodes[id].Symbol
			}
		}
	}
	return out
}

// Rows returns the board as one uppercase string per row.
func (g *Graph) Rows() []string {
	letters := g.Letters()
	rows := make([]string, len(letters))
	for r, row := range letters {
		rows[r] = word.FromSymbols(row...).String()
	}
	return rows
}

// Validate checks coordinate uniqueness and adjacency symmetry.
func (g *Graph) Validate() error {
	seen := make(map[Coord]int, len(g.nodes))
	for id := range g.nodes {
		n := &g.nodes[id]
		if _, dup := seen[n.Coord]; dup {
			return ErrDuplicateCoordinate
		}
		seen[n.Coord] = id
		if indexed, ok := g.At(n.Coord); !ok || indexed != id {
			return ErrDuplicateCoordinate
		}
		for s, ids := range n.neighbors {
			for other := range ids {
				if !g.valid(other) || other == id {
					return ErrUnknownNode
				}
				if g.nodes[other].Symbol != s {
					return ErrAsymmetricEdge
				}
				if _, back := g.nodes[other].neighbors[n.Symbol][id]; !back {
					return ErrAsymmetricEdge
				}
			}
		}
	}
	return nil
}

func (g *Graph) valid(id int) bool {
	return id >= 0 && id < len(g.nodes)
}
