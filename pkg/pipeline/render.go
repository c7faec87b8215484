package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/wordhunt/pkg/cache"
	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
	"github.com/matzehuels/wordhunt/pkg/grid"
	"github.com/matzehuels/wordhunt/pkg/observability"
	"github.com/matzehuels/wordhunt/pkg/render"
	"github.com/matzehuels/wordhunt/pkg/render/nodelink"
	"github.com/matzehuels/wordhunt/pkg/trie"
)

// GridHash returns the content hash of a board: every tile with its letter
// and coordinate, followed by its neighbors. Graphs assembled tile by tile
// hash as precisely as parsed boards.
func GridHash(g *grid.Graph) string {
	lines := make([]string, 0, g.Len()+1)
	lines = append(lines, "dimension "+strconv.Itoa(g.Dimension()))
	for _, n := range g.Nodes() {
		var b strings.Builder
		fmt.Fprintf(&b, "%d %s %d,%d:", n.ID, n.Symbol, n.Coord.Row, n.Coord.Col)
		for _, other := range g.AllNeighbors(n.ID) {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(other))
		}
		lines = append(lines, b.String())
	}
	return cache.HashStrings(lines)
}

// TrieHash returns the content hash of the words stored in t.
func TrieHash(t *trie.Trie) string {
	words := make([]string, 0, t.WordCount())
	for w := range t.Words() {
		words = append(words, w.String())
	}
	return cache.HashStrings(words)
}

// RenderGridDOT renders g without caching.
func RenderGridDOT(ctx context.Context, g *grid.Graph, opts RenderOptions) ([]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return renderDOT(ctx, SubjectGrid, nodelink.GridDOT(g, nodelink.Options{Detailed: opts.Detailed}), opts.Format)
}

// RenderTrieDOT renders t without caching. Tries with more than
// [MaxTrieRenderNodes] nodes are rejected.
func RenderTrieDOT(ctx context.Context, t *trie.Trie, opts RenderOptions) ([]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if t.Len() > MaxTrieRenderNodes {
		return nil, apperrors.New(apperrors.ErrCodeUnsupported,
			"trie has %d nodes, rendering is limited to %d; use a smaller dictionary", t.Len(), MaxTrieRenderNodes)
	}
	return renderDOT(ctx, SubjectTrie, nodelink.TrieDOT(t, nodelink.Options{Detailed: opts.Detailed}), opts.Format)
}

func renderDOT(ctx context.Context, subject, dot, format string) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, subject, format)
	data, err := render.Render(ctx, dot, format)
	observability.Render().OnRenderComplete(ctx, subject, format, len(data), time.Since(start), err)
	return data, err
}
