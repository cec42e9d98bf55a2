package cmd

import (
	"fmt"

	"github.com/clems4ever/j48-json/j48"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/spf13/cobra"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Draw a J48 tree",
		Long:  `Parse the J48 tree in a file, or standard input, and draw it as a connected tree.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTree(root))
			return err
		},
	}
}

func renderTree(root *j48.Node) string {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	appendNode(l, root)
	return l.Render()
}

func appendNode(l list.Writer, n *j48.Node) {
	l.AppendItem(n.Feature)
	l.Indent()
	for _, b := range n.Branches {
		label := b.Comparator + " " + b.Value.String()
		if b.IsLeaf() {
			label += " => " + b.Class
			if b.Weight != nil {
				label += " " + b.Weight.String()
			}
			l.AppendItem(label)
			continue
		}
		l.AppendItem(label)
		l.Indent()
		appendNode(l, b.Child)
		l.UnIndent()
	}
	l.UnIndent()
}
