package j48

import (
	"bufio"
	"io"
	"strings"
)

// Format writes n back as J48 tree body lines, one per branch in pre-order.
func Format(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, n, 0)
	return bw.Flush()
}

// String returns the tree body as J48 prints it.
func (n *Node) String() string {
	var sb strings.Builder
	_ = Format(&sb, n)
	return sb.String()
}

func writeNode(w *bufio.Writer, n *Node, depth int) {
	indent := strings.Repeat(DepthMarker+"   ", depth)
	for _, b := range n.Branches {
		w.WriteString(indent)
		w.WriteString(n.Feature + " " + b.Comparator + " " + b.Value.String())
		if b.Child != nil {
			w.WriteString("\n")
			writeNode(w, b.Child, depth+1)
			continue
		}
		w.WriteString(": " + b.Class)
		if b.Weight != nil {
			w.WriteString(" " + b.Weight.String())
		}
		w.WriteString("\n")
	}
}
