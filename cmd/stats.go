package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/clems4ever/j48-json/j48"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize a J48 tree",
		Long:  `Print leaf count, tree size, depth, features and class distribution of a J48 tree.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree(cmd, args)
			if err != nil {
				return err
			}
			renderStats(cmd.OutOrStdout(), j48.Summarize(root))
			return nil
		},
	}
}

func renderStats(w io.Writer, s j48.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{"Number of Leaves", s.Leaves})
	t.AppendRow(table.Row{"Size of the tree", s.Size})
	t.AppendRow(table.Row{"Depth", s.Depth})
	t.AppendRow(table.Row{"Features", strings.Join(s.Features, ", ")})
	t.Render()

	c := table.NewWriter()
	c.SetOutputMirror(w)
	c.SetStyle(table.StyleLight)
	c.AppendHeader(table.Row{"Class", "Leaves", "Instances"})
	for _, class := range s.ClassOrder {
		instances := "-"
		if v, ok := s.Instances[class]; ok {
			instances = strconv.FormatFloat(v, 'f', -1, 64)
		}
		c.AppendRow(table.Row{class, s.Classes[class], instances})
	}
	c.Render()
}
