package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/wordhunt/pkg/grid"
	"github.com/matzehuels/wordhunt/pkg/trie"
)

func TestGridDOT(t *testing.T) {
	g, err := grid.Parse([]string{"ABC", "DEF", "GHI"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	dot := GridDOT(g, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("GridDOT should start with an undirected graph header:\n%s", dot)
	}
	if got := strings.Count(dot, "[label="); got != 9 {
		t.Errorf("GridDOT has %d tile nodes, want 9", got)
	}
	if got := strings.Count(dot, " -- "); got != g.EdgeCount() {
		t.Errorf("GridDOT has %d edges, want %d", got, g.EdgeCount())
	}
	if !strings.Contains(dot, `t4 [label="E", pos="1.20,-1.20!"];`) {
		t.Errorf("GridDOT missing pinned center tile:\n%s", dot)
	}
	if !strings.Contains(dot, "t0 -- t4;") || strings.Contains(dot, "t4 -- t0;") {
		t.Error("GridDOT should write each edge once from the lower id")
	}
}

func TestGridDOTDetailed(t *testing.T) {
	g, _ := grid.Parse([]string{"AB", "CD"})
	dot := GridDOT(g, Options{Detailed: true})
	if !strings.Contains(dot, `label="D\n#3 (1, 1)"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestTrieDOT(t *testing.T) {
	tr, err := trie.FromStrings([]string{"foo", "bar", "baz", "foooz", "barz", "buz"})
	if err != nil {
		t.Fatalf("FromStrings error: %v", err)
	}
	dot := TrieDOT(tr, Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("TrieDOT should start with a digraph header:\n%s", dot)
	}
	if got := strings.Count(dot, "doublecircle"); got != tr.WordCount() {
		t.Errorf("TrieDOT has %d terminus nodes, want %d", got, tr.WordCount())
	}
	if got := strings.Count(dot, "root -> "); got != 2 {
		t.Errorf("TrieDOT has %d root edges, want 2", got)
	}
	// every non-root node has exactly one incoming edge
	if got := strings.Count(dot, " -> n"); got != tr.Len() {
		t.Errorf("TrieDOT has %d edges, want %d", got, tr.Len())
	}
}

func TestTrieDOTEmpty(t *testing.T) {
	dot := TrieDOT(trie.New(), Options{Detailed: true})
	if strings.Contains(dot, "->") {
		t.Errorf("empty trie should have no edges:\n%s", dot)
	}
}
