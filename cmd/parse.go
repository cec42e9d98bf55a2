package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/clems4ever/j48-json/j48"
	"github.com/spf13/cobra"
)

type parseOptions struct {
	output string
}

func (o *parseOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write the JSON to this file instead of stdout")
}

func newParseCommand() *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Convert a J48 tree to JSON",
		Long: `Parse the J48 tree found in a file, or in standard input when no file is
given, and print it as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *parseOptions) error {
	cfg := configFrom(cmd.Context())
	inf, err := cfg.InfinityEncoding()
	if err != nil {
		return err
	}

	root, err := readTree(cmd, args)
	if err != nil {
		return err
	}

	// The document is complete in memory before anything is written.
	var buf bytes.Buffer
	enc := j48.NewEncoder(&buf)
	enc.Infinity = inf
	if err := enc.Encode(root); err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.output, err)
		}
		loggerFrom(cmd.Context()).Info("wrote tree", "path", opts.output)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
