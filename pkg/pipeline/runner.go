package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wordhunt/pkg/cache"
	"github.com/matzehuels/wordhunt/pkg/grid"
	"github.com/matzehuels/wordhunt/pkg/trie"
)

// Runner runs pipeline stages with shared caching and logging.
//
// The Runner is stateless except for the cache and logger: it does not keep
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration // Render artifact lifetime; zero means cache.TTLRender
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLRender,
	}
}

// Execute runs the load and board stages requested by opts. When both are
// requested they run concurrently.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForExecute(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}
	g, gctx := errgroup.WithContext(ctx)
	if opts.HasDictionary() {
		g.Go(func() error {
			start := time.Now()
			t, read, err := r.loadDictionary(gctx, opts)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			result.Trie = t
			result.Stats.Sources = len(opts.Dictionaries)
			result.Stats.Words = read
			result.Stats.TrieNodes = t.Len()
			result.Stats.LoadTime = time.Since(start)
			return nil
		})
	}
	if opts.HasGrid() {
		g.Go(func() error {
			start := time.Now()
			board, err := r.BuildGrid(gctx, opts)
			if err != nil {
				return fmt.Errorf("board: %w", err)
			}
			result.Grid = board
			result.Stats.Tiles = board.Len()
			result.Stats.Edges = board.EdgeCount()
			result.Stats.BoardTime = time.Since(start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// LoadDictionary builds the trie for opts and logs its size.
func (r *Runner) LoadDictionary(ctx context.Context, opts Options) (*trie.Trie, error) {
	r.applyLogger(&opts)
	t, _, err := r.loadDictionary(ctx, opts)
	return t, err
}

func (r *Runner) loadDictionary(ctx context.Context, opts Options) (*trie.Trie, int, error) {
	start := time.Now()
	t, read, err := LoadDictionary(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	r.Logger.Info("loaded dictionary",
		"sources", len(opts.Dictionaries),
		"read", read,
		"words", t.WordCount(),
		"nodes", t.Len(),
		"duration", time.Since(start))
	return t, read, nil
}

// BuildGrid builds the board for opts and logs its size.
func (r *Runner) BuildGrid(ctx context.Context, opts Options) (*grid.Graph, error) {
	r.applyLogger(&opts)
	start := time.Now()
	g, err := BuildGrid(ctx, opts)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("built board",
		"dimension", g.Dimension(),
		"tiles", g.Len(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start))
	return g, nil
}

// RenderGrid renders g with caching. The boolean reports a cache hit.
func (r *Runner) RenderGrid(ctx context.Context, g *grid.Graph, opts RenderOptions) ([]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	return r.cached(ctx, SubjectGrid, GridHash(g), opts, func() ([]byte, error) {
		return RenderGridDOT(ctx, g, opts)
	})
}

// RenderTrie renders t with caching. The boolean reports a cache hit.
func (r *Runner) RenderTrie(ctx context.Context, t *trie.Trie, opts RenderOptions) ([]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	return r.cached(ctx, SubjectTrie, TrieHash(t), opts, func() ([]byte, error) {
		return RenderTrieDOT(ctx, t, opts)
	})
}

func (r *Runner) cached(ctx context.Context, subject, hash string, opts RenderOptions, compute func() ([]byte, error)) ([]byte, bool, error) {
	key := r.Keyer.RenderKey(subject, hash, opts.KeyOpts())
	if opts.NoCache {
		data, err := compute()
		if err == nil {
			_ = r.Cache.Set(ctx, key, data, r.ttl())
		}
		return data, false, err
	}
	start := time.Now()
	data, hit, err := cache.Fetch(ctx, r.Cache, key, r.ttl(), compute)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("rendered",
		"subject", subject,
		"format", opts.Format,
		"bytes", len(data),
		"cached", hit,
		"duration", time.Since(start))
	return data, hit, nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLRender
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
