package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/clems4ever/j48-json/j48"
	"github.com/spf13/cobra"
)

func newFormatCommand() *cobra.Command {
	var bare, unpruned bool
	cmd := &cobra.Command{
		Use:   "format [json_file]",
		Short: "Print a JSON tree back as a J48 tree",
		Long: `Read a tree in the JSON form produced by "parse" and print it the way J48
does, so that it can be parsed again.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			var root j48.Node
			if err := json.Unmarshal(data, &root); err != nil {
				return fmt.Errorf("failed to decode %s: %w", sourceName(name), err)
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			if !bare {
				title := "J48 pruned tree"
				if unpruned {
					title = "J48 unpruned tree"
				}
				fmt.Fprintf(w, "%s\n------------------\n\n", title)
			}
			if err := j48.Format(w, &root); err != nil {
				return err
			}
			if !bare {
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&bare, "bare", false, "Print only the tree lines, without title and divider")
	cmd.Flags().BoolVar(&unpruned, "unpruned", false, `Title the tree "J48 unpruned tree"`)
	return cmd
}
