package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
	"github.com/matzehuels/wordhunt/pkg/grid"
	wio "github.com/matzehuels/wordhunt/pkg/io"
	"github.com/matzehuels/wordhunt/pkg/pipeline"
	"github.com/matzehuels/wordhunt/pkg/trie"
)

// boardFlags selects where a board comes from.
type boardFlags struct {
	random    bool
	dimension int
	seed      uint64
	rows      []string
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.random, "random", false, "generate a random board")
	cmd.Flags().IntVarP(&f.dimension, "dimension", "n", 0, "side length of a random board (default from config, else 4)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for a random board (0 draws a fresh one)")
	cmd.Flags().StringSliceVar(&f.rows, "rows", nil, "board rows given inline, e.g. --rows ABCD,EFGH,IJKL,MNOP")
}

// boardOptions resolves a board source from an optional file argument and the flags.
// With neither a file nor rows, a random board is generated.
func (c *CLI) boardOptions(f *boardFlags, args []string) pipeline.Options {
	opts := pipeline.Options{Logger: c.Logger}
	switch {
	case len(args) > 0:
		opts.GridPath = args[0]
	case len(f.rows) > 0:
		opts.GridRows = f.rows
	default:
		opts.Random = true
	}
	if f.random {
		opts.Random = true
	}
	if opts.Random {
		opts.Dimension = c.Config.Dimension
		if f.dimension > 0 {
			opts.Dimension = f.dimension
		}
		opts.Seed = c.Config.Seed
		if f.seed != 0 {
			opts.Seed = f.seed
		}
	}
	return opts
}

// loadBoard builds the board described by opts.
func (c *CLI) loadBoard(ctx context.Context, opts pipeline.Options) (*grid.Graph, error) {
	runner := pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
	return runner.BuildGrid(ctx, opts)
}

// gridCommand creates the grid command group.
func (c *CLI) gridCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Build and inspect letter boards",
		Long: `Build a letter board as an adjacency graph and inspect it.

A board file holds one row per line, each row as long as there are rows.
Without a file a random board is generated; "grid export" saves it.`,
	}

	cmd.AddCommand(c.gridShowCommand())
	cmd.AddCommand(c.gridNeighborsCommand())
	cmd.AddCommand(c.gridInspectCommand())
	cmd.AddCommand(c.gridExportCommand())

	return cmd
}

// gridShowCommand creates the "grid show" subcommand.
func (c *CLI) gridShowCommand() *cobra.Command {
	var flags boardFlags

	cmd := &cobra.Command{
		Use:   "show [board]",
		Short: "Print a board and how many tiles touch each tile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadBoard(cmd.Context(), c.boardOptions(&flags, args))
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render("Board"))
			fmt.Println(renderLetters(g))
			fmt.Println(StyleTitle.Render("Neighbors per tile"))
			fmt.Println(renderNeighborCounts(g))
			printStats([]count{{g.Len(), "tiles"}, {g.EdgeCount(), "edges"}}, false)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// gridNeighborsCommand creates the "grid neighbors" subcommand.
func (c *CLI) gridNeighborsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbors <board> <row> <col>",
		Short: "List the tiles next to one tile, grouped by letter",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseCoord(args[1], args[2])
			if err != nil {
				return err
			}
			g, err := c.loadBoard(cmd.Context(), pipeline.Options{GridPath: args[0], Logger: c.Logger})
			if err != nil {
				return err
			}
			id, ok := g.At(at)
			if !ok {
				return apperrors.New(apperrors.ErrCodeNotFound, "no tile at %s", at)
			}
			node, _ := g.Node(id)
			fmt.Println(StyleTitle.Render(fmt.Sprintf("%s at %s", node.Symbol, node.Coord)))
			for _, line := range neighborLines(g, id) {
				printInfo("%s", line)
			}
			return nil
		},
	}

	return cmd
}

// gridInspectCommand creates the "grid inspect" subcommand.
func (c *CLI) gridInspectCommand() *cobra.Command {
	var (
		flags boardFlags
		dicts []string
	)

	cmd := &cobra.Command{
		Use:   "inspect [board]",
		Short: "Walk a board interactively",
		Long: `Walk a board tile by tile with the arrow keys.

With --dict, the inspector also shows which neighboring letters continue a
dictionary word starting at the selected tile.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := c.loadBoard(ctx, c.boardOptions(&flags, args))
			if err != nil {
				return err
			}
			var t *trie.Trie
			if len(dicts) > 0 {
				if t, err = c.loadTrie(ctx, c.loadOptions(dicts)); err != nil {
					return err
				}
			}
			final, err := tea.NewProgram(NewInspectModel(g, t), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(InspectModel); ok {
				node, _ := g.Node(m.Selected())
				printDetail("last tile %s at %s", node.Symbol, node.Coord)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringSliceVarP(&dicts, "dict", "d", nil, "dictionary used to highlight word continuations")
	return cmd
}

// gridExportCommand creates the "grid export" subcommand.
func (c *CLI) gridExportCommand() *cobra.Command {
	var (
		flags  boardFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [board]",
		Short: "Write a board's rows to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadBoard(cmd.Context(), c.boardOptions(&flags, args))
			if err != nil {
				return err
			}
			if err := wio.ExportGrid(output, g); err != nil {
				return err
			}
			printSuccess("Exported board")
			printFile(output)
			printStats([]count{{g.Len(), "tiles"}, {g.EdgeCount(), "edges"}}, false)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "board.txt", "output file")
	return cmd
}

// parseCoord reads a zero-based row and column.
func parseCoord(row, col string) (grid.Coord, error) {
	r, err := strconv.Atoi(row)
	if err != nil || r < 0 {
		return grid.Coord{}, apperrors.New(apperrors.ErrCodeInvalidInput, "row must be a non-negative integer, got %q", row)
	}
	cl, err := strconv.Atoi(col)
	if err != nil || cl < 0 {
		return grid.Coord{}, apperrors.New(apperrors.ErrCodeInvalidInput, "col must be a non-negative integer, got %q", col)
	}
	return grid.Coord{Row: r, Col: cl}, nil
}

// neighborLines describes the tiles next to id, one line per letter:
// "E → (0, 1) (1, 1)".
func neighborLines(g *grid.Graph, id int) []string {
	var lines []string
	for s := range g.NeighborSymbols(id).All() {
		coords := make([]string, 0, 2)
		for _, other := range g.Neighbors(id, s) {
			node, _ := g.Node(other)
			coords = append(coords, node.Coord.String())
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", s, iconArrow, strings.Join(coords, " ")))
	}
	return lines
}
