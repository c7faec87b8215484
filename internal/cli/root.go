package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordhunt/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The configuration file is loaded before any subcommand runs, and the
// logger attached to the command context follows --verbose or the
// configured log level.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Wordhunt builds dictionary tries and letter-grid graphs",
		Long:         `Wordhunt loads word lists into a prefix trie and letter boards into an adjacency graph, the two structures a Boggle-style word search walks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordhunt/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.wordsCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
