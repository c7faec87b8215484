package trie

import (
	"iter"
	"slices"

	"github.com/matzehuels/wordhunt/pkg/word"
)

// NoParent is the parent id recorded on root nodes.
const NoParent = -1

// Node is a read-only view of one trie node.
type Node struct {
	ID       int         // Dense arena id, starting at 0
	Parent   int         // Parent id, or NoParent for roots
	Symbol   word.Symbol // Letter this node adds to its parent's path
	Terminus bool        // The path ending here is a dictionary word
	Depth    int         // Path length; roots have depth 1
}

type node struct {
	Node
	children map[word.Symbol]int
	next     word.Set
}

// Trie is an arena-backed prefix tree over words.
//
// The zero value is an empty trie ready for use.
type Trie struct {
	nodes    []node
	roots    [word.AlphabetSize]int
	rootSet  word.Set
	terminal int
}

// Stats summarizes the shape of a trie.
type Stats struct {
	Nodes    int // Total node count
	Words    int // Terminus count
	Roots    int // Distinct first letters
	MaxDepth int // Length of the longest stored word
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{}
}

// FromWords creates a trie containing words.
func FromWords(words ...word.Word) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// FromStrings parses texts case-insensitively and inserts them. It stops at
// the first entry containing a character outside A-Z.
func FromStrings(texts []string) (*Trie, error) {
	words, err := word.ParseAll(texts)
	if err != nil {
		return nil, err
	}
	return FromWords(words...), nil
}

// Insert adds w to the trie. Inserting the empty word does nothing and
// inserting a word twice leaves the trie unchanged.
//
// Existing nodes along the path are reused. A node already on the path of a
// longer word is upgraded to a terminus when w ends there; a terminus is
// never downgraded.
func (t *Trie) Insert(w word.Word) {
	first, ok := w.First()
	if !ok {
		return
	}
	last := w.Len() - 1
	id := t.ensureRoot(first, last == 0)
	for i := 1; i <= last; i++ {
		id = t.ensureChild(id, w.At(i), i == last)
	}
}

func (t *Trie) ensureRoot(s word.Symbol, terminus bool) int {
	if t.rootSet.Contains(s) {
		id := t.roots[s]
		t.markTerminus(id, terminus)
		return id
	}
	id := t.push(NoParent, s, terminus, 1)
	t.roots[s] = id
	t.rootSet = t.rootSet.With(s)
	return id
}

func (t *Trie) ensureChild(parent int, s word.Symbol, terminus bool) int {
	p := &t.nodes[parent]
	if id, ok := p.children[s]; ok {
		t.markTerminus(id, terminus)
		return id
	}
	depth := p.Depth + 1
	id := t.push(parent, s, terminus, depth)
	p = &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[word.Symbol]int)
	}
	p.children[s] = id
	p.next = p.next.With(s)
	return id
}

func (t *Trie) push(parent int, s word.Symbol, terminus bool, depth int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{Node: Node{
		ID:       id,
		Parent:   parent,
		Symbol:   s,
		Terminus: terminus,
		Depth:    depth,
	}})
	if terminus {
		t.terminal++
	}
	return id
}

func (t *Trie) markTerminus(id int, terminus bool) {
	if terminus && !t.nodes[id].Terminus {
		t.nodes[id].Terminus = true
		t.terminal++
	}
}

// ListWords returns every stored word. Roots and children are visited in
// symbol order, so the result is sorted lexicographically.
func (t *Trie) ListWords() []word.Word {
	out := make([]word.Word, 0, t.terminal)
	for w := range t.Words() {
		out = append(out, w)
	}
	return out
}

// Words iterates the stored words in the same order as [Trie.ListWords]
// without collecting them.
func (t *Trie) Words() iter.Seq[word.Word] {
	return func(yield func(word.Word) bool) {
		for _, id := range t.Roots() {
			if !t.walk(id, word.Empty(), yield) {
				return
			}
		}
	}
}

// walk emits the path at every terminus and keeps descending, because a
// terminus may still lead to longer words.
func (t *Trie) walk(id int, prefix word.Word, yield func(word.Word) bool) bool {
	n := &t.nodes[id]
	path := prefix.Append(n.Symbol)
	if n.Terminus && !yield(path) {
		return false
	}
	for s := range n.next.All() {
		if !t.walk(n.children[s], path, yield) {
			return false
		}
	}
	return true
}

// Lookup returns the id of the node spelling w. It reports false when w is
// empty or no stored word starts with w.
func (t *Trie) Lookup(w word.Word) (int, bool) {
	first, ok := w.First()
	if !ok {
		return 0, false
	}
	id, ok := t.Root(first)
	for i := 1; ok && i < w.Len(); i++ {
		id, ok = t.Child(id, w.At(i))
	}
	return id, ok
}

// Contains reports whether w was inserted.
func (t *Trie) Contains(w word.Word) bool {
	id, ok := t.Lookup(w)
	return ok && t.nodes[id].Terminus
}

// HasPrefix reports whether some stored word starts with w. The empty word
// is a prefix of everything, so it reports whether the trie holds any word.
func (t *Trie) HasPrefix(w word.Word) bool {
	if w.IsEmpty() {
		return t.terminal > 0
	}
	_, ok := t.Lookup(w)
	return ok
}

// Root returns the root node for first letter s.
func (t *Trie) Root(s word.Symbol) (int, bool) {
	if !t.rootSet.Contains(s) {
		return 0, false
	}
	return t.roots[s], true
}

// RootSymbols returns the set of first letters.
func (t *Trie) RootSymbols() word.Set { return t.rootSet }

// Roots returns the root ids ordered by symbol.
func (t *Trie) Roots() []int {
	ids := make([]int, 0, t.rootSet.Len())
	for s := range t.rootSet.All() {
		ids = append(ids, t.roots[s])
	}
	return ids
}

// Child returns the child of id reached by s.
func (t *Trie) Child(id int, s word.Symbol) (int, bool) {
	if !t.valid(id) {
		return 0, false
	}
	child, ok := t.nodes[id].children[s]
	return child, ok
}

// Children returns the child ids of id ordered by symbol.
func (t *Trie) Children(id int) []int {
	if !t.valid(id) {
		return nil
	}
	n := &t.nodes[id]
	ids := make([]int, 0, n.next.Len())
	for s := range n.next.All() {
		ids = append(ids, n.children[s])
	}
	return ids
}

// NextSymbols returns the letters that may follow the path ending at id.
func (t *Trie) NextSymbols(id int) word.Set {
	if !t.valid(id) {
		return 0
	}
	return t.nodes[id].next
}

// Node returns a copy of node id.
func (t *Trie) Node(id int) (Node, bool) {
	if !t.valid(id) {
		return Node{}, false
	}
	return t.nodes[id].Node, true
}

// WordAt rebuilds the word spelled from the root down to id by following
// parent links. It returns the empty word for unknown ids.
func (t *Trie) WordAt(id int) word.Word {
	if !t.valid(id) {
		return word.Empty()
	}
	syms := make([]word.Symbol, 0, t.nodes[id].Depth)
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		syms = append(syms, t.nodes[cur].Symbol)
	}
	slices.Reverse(syms)
	return word.FromSymbols(syms...)
}

// Len returns the number of nodes.
func (t *Trie) Len() int { return len(t.nodes) }

// WordCount returns the number of distinct stored words.
func (t *Trie) WordCount() int { return t.terminal }

// Stats reports node, word and root counts plus the longest word length.
func (t *Trie) Stats() Stats {
	s := Stats{
		Nodes: len(t.nodes),
		Words: t.terminal,
		Roots: t.rootSet.Len(),
	}
	for i := range t.nodes {
		if t.nodes[i].Terminus {
			s.MaxDepth = max(s.MaxDepth, t.nodes[i].Depth)
		}
	}
	return s
}

func (t *Trie) valid(id int) bool {
	return id >= 0 && id < len(t.nodes)
}
