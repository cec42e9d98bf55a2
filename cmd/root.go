package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd builds the j48json command tree. Run without a subcommand it
// behaves like "j48json parse".
func NewRootCmd() *cobra.Command {
	var cfgFile string
	opts := &parseOptions{}
	rootCmd := &cobra.Command{
		Use:   "j48json [file]",
		Short: "Convert Weka J48 decision trees to JSON",
		Long: `j48json reads the tree printed by Weka's J48 classifier, from a file or
from standard input, and writes it as a nested JSON array:

  ["feature", [[comparator, value, child-or-class], ...]]`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}

			ctx := withConfig(cmd.Context(), cfg)
			cmd.SetContext(withLogger(ctx, logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.addFlags(rootCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./"+DefaultConfigFile+")")
	flags.String("input-format", "", "Input format (auto|text|html)")
	flags.String("infinity", "", "Encoding of infinite range bounds (string|null|max)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("log-format", "", "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("input-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{InputAuto, InputText, InputHTML}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("infinity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"string", "null", "max"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
