package nodelink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/wordhunt/pkg/grid"
	"github.com/matzehuels/wordhunt/pkg/trie"
)

// Options configures DOT generation.
type Options struct {
	// Detailed adds ids (and coordinates for tiles) to node labels.
	// When false, only the letter is shown.
	Detailed bool
}

// tileSpacing is the distance between tile centers, in inches.
const tileSpacing = 1.2

// GridDOT converts a board graph to DOT. Every undirected edge is written
// once. Graphs built with [grid.Build] are laid out with neato using their
// pinned coordinates.
func GridDOT(g *grid.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, width=0.8, height=0.8, fixedsize=true];\n")
	buf.WriteString("  edge [color=grey60];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := n.Symbol.String()
		if opts.Detailed {
			label = fmt.Sprintf("%s\n#%d %v", label, n.ID, n.Coord)
		}
		x := float64(n.Coord.Col) * tileSpacing
		y := -float64(n.Coord.Row) * tileSpacing
		fmt.Fprintf(&buf, "  t%d [label=%q, pos=\"%.2f,%.2f!\"];\n", n.ID, label, x, y)
	}

	buf.WriteString("\n")
	for _, n := range g.Nodes() {
		for _, other := range g.AllNeighbors(n.ID) {
			if other > n.ID {
				fmt.Fprintf(&buf, "  t%d -- t%d;\n", n.ID, other)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// TrieDOT converts a trie to DOT. Roots hang off an unlabeled point node
// and children are listed in symbol order.
func TrieDOT(t *trie.Trie, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("  root [shape=point, width=0.1];\n")
	buf.WriteString("\n")

	for id := 0; id < t.Len(); id++ {
		n, _ := t.Node(id)
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, trieAttrs(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, id := range t.Roots() {
		fmt.Fprintf(&buf, "  root -> n%d;\n", id)
	}
	for id := 0; id < t.Len(); id++ {
		for _, child := range t.Children(id) {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", id, child)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func trieAttrs(n trie.Node, detailed bool) string {
	label := n.Symbol.String()
	if detailed {
		label = fmt.Sprintf("%s\n%d", label, n.ID)
	}
	attrs := fmt.Sprintf("label=%q", label)
	if n.Terminus {
		attrs += ", shape=doublecircle, fillcolor=lightyellow"
	}
	return attrs
}
