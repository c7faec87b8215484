package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
	"github.com/matzehuels/wordhunt/pkg/grid"
	wio "github.com/matzehuels/wordhunt/pkg/io"
	"github.com/matzehuels/wordhunt/pkg/observability"
	"github.com/matzehuels/wordhunt/pkg/trie"
	"github.com/matzehuels/wordhunt/pkg/word"
)

// LoadDictionary reads every dictionary in opts and builds one trie.
//
// Files are read concurrently. The first failure cancels the remaining
// reads and is returned; no partial trie is returned.
func LoadDictionary(ctx context.Context, opts Options) (*trie.Trie, int, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, 0, err
	}

	lists := make([][]word.Word, len(opts.Dictionaries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultLoadConcurrency)
	for i, src := range opts.Dictionaries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			observability.Build().OnLoadStart(gctx, src)
			words, err := wio.ImportWords(src, wio.WordOptions{
				SkipInvalid: opts.SkipInvalid,
				MinLength:   opts.MinLength,
			})
			observability.Build().OnLoadComplete(gctx, src, len(words), time.Since(start), err)
			if err != nil {
				return err
			}
			opts.Logger.Debug("read dictionary", "source", src, "words", len(words), "duration", time.Since(start))
			lists[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	start := time.Now()
	t := trie.New()
	read := 0
	for _, words := range lists {
		for _, w := range words {
			t.Insert(w)
		}
		read += len(words)
	}
	observability.Build().OnTrieBuilt(ctx, t.Len(), t.WordCount(), time.Since(start))
	return t, read, nil
}

// BuildGrid reads, parses or generates the board described by opts.
func BuildGrid(ctx context.Context, opts Options) (*grid.Graph, error) {
	if err := opts.ValidateForGrid(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := buildGrid(opts)
	dim, edges := 0, 0
	if g != nil {
		dim, edges = g.Dimension(), g.EdgeCount()
	}
	observability.Build().OnGraphBuilt(ctx, dim, edges, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("built board", "tiles", g.Len(), "edges", edges, "duration", time.Since(start))
	return g, nil
}

func buildGrid(opts Options) (*grid.Graph, error) {
	switch {
	case opts.GridPath != "":
		return wio.ImportGrid(opts.GridPath)
	case len(opts.GridRows) > 0:
		return grid.Parse(opts.GridRows)
	default:
		var r *rand.Rand
		if opts.Seed != 0 {
			r = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
		}
		g, err := grid.Build(grid.Random(opts.Dimension, r), opts.Dimension)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "random board")
		}
		return g, nil
	}
}
