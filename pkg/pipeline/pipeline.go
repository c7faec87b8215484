// Package pipeline loads dictionaries and boards and renders them.
//
// This package is the glue between the file readers in pkg/io, the core
// structures in pkg/trie and pkg/grid, and the Graphviz renderers. The CLI
// uses it so every command loads and caches things the same way.
//
// # Architecture
//
// A run has up to three stages:
//
//  1. Load: read one or more dictionary files and build a trie
//  2. Board: read, parse or randomly generate a board and build its graph
//  3. Render: draw the trie or the board as DOT, SVG or PNG, with caching
//
// The load and board stages are independent and [Runner.Execute] runs them
// concurrently. Dictionary files are read in parallel, but words are
// inserted into the trie from a single goroutine in source order.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Dictionaries: []string{"words.txt"},
//	    GridPath:     "board.txt",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Trie.WordCount(), res.Grid.Len())
//
// Run individual stages:
//
//	t, err := runner.LoadDictionary(ctx, opts)
//	g, err := runner.BuildGrid(ctx, opts)
//	svg, hit, err := runner.RenderGrid(ctx, g, pipeline.RenderOptions{Format: "svg"})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordhunt/pkg/cache"
	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
	"github.com/matzehuels/wordhunt/pkg/grid"
	"github.com/matzehuels/wordhunt/pkg/render"
	"github.com/matzehuels/wordhunt/pkg/trie"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultDimension is the side length of generated boards.
	DefaultDimension = grid.DefaultDimension

	// DefaultLoadConcurrency bounds how many dictionary files are read at once.
	DefaultLoadConcurrency = 4

	// MaxTrieRenderNodes is the largest trie [Runner.RenderTrie] accepts.
	// Graphviz layouts of bigger tries take minutes and are unreadable.
	MaxTrieRenderNodes = 2000
)

// Render subjects, used in cache keys and hook events.
const (
	SubjectGrid = "grid"
	SubjectTrie = "trie"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Load options
	Dictionaries []string `json:"dictionaries,omitempty"`
	SkipInvalid  bool     `json:"skip_invalid,omitempty"` // Drop entries outside A-Z instead of failing
	MinLength    int      `json:"min_length,omitempty"`   // Drop shorter words

	// Board options: exactly one of GridPath, GridRows or Random
	GridPath  string   `json:"grid_path,omitempty"`
	GridRows  []string `json:"grid_rows,omitempty"`
	Random    bool     `json:"random,omitempty"`
	Dimension int      `json:"dimension,omitempty"` // Random boards only
	Seed      uint64   `json:"seed,omitempty"`      // Random boards only; 0 draws a fresh board

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// RenderOptions configures [Runner.RenderGrid] and [Runner.RenderTrie].
type RenderOptions struct {
	Format   string // dot, svg or png
	Detailed bool   // Label nodes with ids and coordinates
	NoCache  bool   // Skip the cache lookup; the result is still stored
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Trie holds the loaded dictionary, or nil when none was requested.
	Trie *trie.Trie

	// Grid holds the board graph, or nil when no board was requested.
	Grid *grid.Graph

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Sources   int
	Words     int // Words read, before deduplication
	TrieNodes int
	Tiles     int
	Edges     int
	LoadTime  time.Duration
	BoardTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// HasDictionary reports whether the load stage should run.
func (o *Options) HasDictionary() bool { return len(o.Dictionaries) > 0 }

// HasGrid reports whether the board stage should run.
func (o *Options) HasGrid() bool {
	return o.GridPath != "" || len(o.GridRows) > 0 || o.Random
}

// ValidateForLoad checks the load options.
func (o *Options) ValidateForLoad() error {
	if !o.HasDictionary() {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "at least one dictionary is required")
	}
	for _, p := range o.Dictionaries {
		if err := apperrors.ValidatePath(p); err != nil {
			return err
		}
	}
	if o.MinLength < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "min length must not be negative")
	}
	o.setLogger()
	return nil
}

// ValidateForGrid checks the board options and applies defaults.
func (o *Options) ValidateForGrid() error {
	sources := 0
	for _, set := range []bool{o.GridPath != "", len(o.GridRows) > 0, o.Random} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return apperrors.New(apperrors.ErrCodeInvalidInput, "a board file, rows or --random is required")
	case sources > 1:
		return apperrors.New(apperrors.ErrCodeInvalidInput, "use only one of a board file, rows or --random")
	}
	if o.GridPath != "" {
		if err := apperrors.ValidatePath(o.GridPath); err != nil {
			return err
		}
	}
	if o.Random {
		if o.Dimension == 0 {
			o.Dimension = DefaultDimension
		}
		if err := apperrors.ValidateDimension(o.Dimension); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// ValidateForExecute checks every stage that will run. At least one stage
// must be requested.
func (o *Options) ValidateForExecute() error {
	if !o.HasDictionary() && !o.HasGrid() {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "nothing to do: give a dictionary, a board, or both")
	}
	if o.HasDictionary() {
		if err := o.ValidateForLoad(); err != nil {
			return err
		}
	}
	if o.HasGrid() {
		if err := o.ValidateForGrid(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender checks the render options.
func (o *RenderOptions) ValidateForRender() error {
	if o.Format == "" {
		o.Format = render.FormatSVG
	}
	return render.ValidateFormat(o.Format)
}

// KeyOpts returns cache key options for rendering.
func (o *RenderOptions) KeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format: o.Format,
		Labels: o.Detailed,
	}
}
