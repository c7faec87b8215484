package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
	wio "github.com/matzehuels/wordhunt/pkg/io"
	"github.com/matzehuels/wordhunt/pkg/pipeline"
	"github.com/matzehuels/wordhunt/pkg/trie"
	"github.com/matzehuels/wordhunt/pkg/word"
)

// wordsFlags holds dictionary reading flags shared by the words commands.
type wordsFlags struct {
	skipInvalid bool
	minLength   int
}

func (f *wordsFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.skipInvalid, "skip-invalid", false, "drop entries with letters outside A-Z instead of failing")
	cmd.Flags().IntVar(&f.minLength, "min-length", 0, "drop words shorter than this")
}

// apply overrides configured values with flags the user set.
func (f *wordsFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("skip-invalid") {
		opts.SkipInvalid = f.skipInvalid
	}
	if cmd.Flags().Changed("min-length") {
		opts.MinLength = f.minLength
	}
}

// wordsCommand creates the words command group.
func (c *CLI) wordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Load and query dictionaries",
		Long: `Load one or more word lists into a dictionary trie and query it.

Dictionaries are plain text, one word per line. Blank lines and lines starting
with # are ignored. Without arguments the dictionaries from the config file
are used.`,
	}

	cmd.AddCommand(c.wordsListCommand())
	cmd.AddCommand(c.wordsCheckCommand())
	cmd.AddCommand(c.wordsStatsCommand())

	return cmd
}

// wordsListCommand creates the "words list" subcommand.
func (c *CLI) wordsListCommand() *cobra.Command {
	var (
		flags  wordsFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "list [dictionary...]",
		Short: "Print every distinct word in sorted order",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.loadOptions(args)
			flags.apply(cmd, &opts)
			t, err := c.loadTrie(cmd.Context(), opts)
			if err != nil {
				return err
			}
			words := t.ListWords()
			if output == "" {
				return wio.WriteWords(os.Stdout, words)
			}
			if err := wio.ExportWords(output, words); err != nil {
				return err
			}
			printSuccess("Wrote %s", plural(len(words), "word", "words"))
			printFile(output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the words to a file instead of stdout")
	return cmd
}

// wordsCheckCommand creates the "words check" subcommand.
func (c *CLI) wordsCheckCommand() *cobra.Command {
	var flags wordsFlags

	cmd := &cobra.Command{
		Use:   "check <dictionary> <word>...",
		Short: "Report whether words or prefixes occur in a dictionary",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.loadOptions(args[:1])
			flags.apply(cmd, &opts)
			t, err := c.loadTrie(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Println(checkTable(t, args[1:]))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// wordsStatsCommand creates the "words stats" subcommand.
func (c *CLI) wordsStatsCommand() *cobra.Command {
	var flags wordsFlags

	cmd := &cobra.Command{
		Use:   "stats [dictionary...]",
		Short: "Summarize the trie built from dictionaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.loadOptions(args)
			flags.apply(cmd, &opts)
			t, err := c.loadTrie(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printStatsBlock(t)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// loadTrie reads the dictionaries in opts behind a spinner.
func (c *CLI) loadTrie(ctx context.Context, opts pipeline.Options) (*trie.Trie, error) {
	if err := opts.ValidateForLoad(); err != nil {
		if !opts.HasDictionary() {
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "no dictionary given and none configured")
		}
		return nil, err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Loading "+plural(len(opts.Dictionaries), "dictionary", "dictionaries")+"...")
	spinner.Start()
	t, read, err := pipeline.LoadDictionary(ctx, opts)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	prog.done("Loaded "+plural(len(opts.Dictionaries), "dictionary", "dictionaries"),
		"read", read, "words", t.WordCount(), "nodes", t.Len())
	return t, nil
}

// checkTable reports membership and prefix status for each query.
func checkTable(t *trie.Trie, queries []string) string {
	rows := make([][]string, 0, len(queries))
	for _, q := range queries {
		w, err := word.Parse(q)
		if err != nil {
			rows = append(rows, []string{q, "invalid", "invalid"})
			continue
		}
		rows = append(rows, []string{w.Lower(), yesNo(t.Contains(w)), yesNo(t.HasPrefix(w))})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Word", "In dictionary", "Prefix").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 {
				return StyleValue
			}
			switch rows[row][col] {
			case "yes":
				return StyleSuccess
			case "invalid":
				return StyleWarning
			}
			return StyleDim
		}).
		Render()
}

func printStatsBlock(t *trie.Trie) {
	s := t.Stats()
	fmt.Println(StyleTitle.Render("Dictionary"))
	printKeyValue("Words", strconv.Itoa(s.Words))
	printKeyValue("Nodes", strconv.Itoa(s.Nodes))
	printKeyValue("Roots", fmt.Sprintf("%d %s", s.Roots, t.RootSymbols()))
	printKeyValue("Longest", strconv.Itoa(s.MaxDepth))
	printNewline()
	printNextStep("Draw it", appName+" render trie <dictionary>")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
