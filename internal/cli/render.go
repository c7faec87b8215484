package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
	"github.com/matzehuels/wordhunt/pkg/pipeline"
	"github.com/matzehuels/wordhunt/pkg/render"
)

// renderFlags holds flags shared by the render subcommands.
type renderFlags struct {
	output   string
	format   string
	detailed bool
	noCache  bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default <subject>.<format>)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: "+strings.Join(render.Formats, ", ")+" (default from output extension, else svg)")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "label nodes with ids and coordinates")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "render without reading the cache")
}

// options resolves the format from the flag or the output extension and
// the output path from the format.
func (f *renderFlags) options(subject string) (pipeline.RenderOptions, string, error) {
	format := f.format
	if format == "" {
		format = formatFromPath(f.output)
	}
	opts := pipeline.RenderOptions{Format: format, Detailed: f.detailed, NoCache: f.noCache}
	if err := opts.ValidateForRender(); err != nil {
		return opts, "", err
	}
	out := f.output
	if out == "" {
		out = subject + "." + opts.Format
	}
	return opts, out, nil
}

// formatFromPath returns the format named by a path's extension, or "".
func formatFromPath(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	ext := strings.ToLower(path[i+1:])
	for _, f := range render.Formats {
		if f == ext {
			return ext
		}
	}
	return ""
}

// renderCommand creates the render command group.
func (c *CLI) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a board or a dictionary trie with Graphviz",
		Long: `Draw a board or a dictionary trie with Graphviz.

Rendered artifacts are cached by content, so drawing the same board twice
reads the second result from the cache. Use --no-cache to force a fresh
render.`,
	}

	cmd.AddCommand(c.renderGridCommand())
	cmd.AddCommand(c.renderTrieCommand())

	return cmd
}

// renderGridCommand creates the "render grid" subcommand.
func (c *CLI) renderGridCommand() *cobra.Command {
	var (
		flags renderFlags
		board boardFlags
	)

	cmd := &cobra.Command{
		Use:   "grid [board]",
		Short: "Draw a board as tiles joined by adjacency edges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, out, err := flags.options(pipeline.SubjectGrid)
			if err != nil {
				return err
			}
			g, err := c.loadBoard(ctx, c.boardOptions(&board, args))
			if err != nil {
				return err
			}
			return c.renderTo(ctx, out, opts, []count{{g.Len(), "tiles"}, {g.EdgeCount(), "edges"}},
				func(runner *pipeline.Runner) ([]byte, bool, error) {
					return runner.RenderGrid(ctx, g, opts)
				})
		},
	}

	flags.register(cmd)
	board.register(cmd)
	return cmd
}

// renderTrieCommand creates the "render trie" subcommand.
func (c *CLI) renderTrieCommand() *cobra.Command {
	var (
		flags renderFlags
		words wordsFlags
	)

	cmd := &cobra.Command{
		Use:   "trie [dictionary...]",
		Short: "Draw the trie built from dictionaries",
		Long: fmt.Sprintf(`Draw the trie built from dictionaries.

Terminus nodes are drawn as double circles. Tries larger than %d nodes are
refused; use a smaller word list.`, pipeline.MaxTrieRenderNodes),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, out, err := flags.options(pipeline.SubjectTrie)
			if err != nil {
				return err
			}
			load := c.loadOptions(args)
			words.apply(cmd, &load)
			t, err := c.loadTrie(ctx, load)
			if err != nil {
				return err
			}
			return c.renderTo(ctx, out, opts, []count{{t.Len(), "nodes"}, {t.WordCount(), "words"}},
				func(runner *pipeline.Runner) ([]byte, bool, error) {
					return runner.RenderTrie(ctx, t, opts)
				})
		},
	}

	flags.register(cmd)
	words.register(cmd)
	return cmd
}

// renderTo runs fn with a cached runner and writes its output to path.
func (c *CLI) renderTo(ctx context.Context, path string, opts pipeline.RenderOptions, counts []count, fn func(*pipeline.Runner) ([]byte, bool, error)) error {
	runner, err := c.newRunner(ctx, opts.NoCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering "+opts.Format+"...")
	spinner.Start()
	data, cached, err := fn(runner)
	spinner.Stop()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "write %s", path)
	}
	printSuccess("Rendered %s", opts.Format)
	printFile(path)
	printStats(counts, cached)
	return nil
}
