package j48

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// InfinityEncoding selects how infinite range bounds are written, since
// JSON has no literal for them.
type InfinityEncoding int

const (
	// InfinityString writes "Infinity" and "-Infinity".
	InfinityString InfinityEncoding = iota
	// InfinityNull writes null.
	InfinityNull
	// InfinityMaxFloat writes the largest finite float64 with the bound's sign.
	InfinityMaxFloat
)

// ParseInfinityEncoding maps the config names "string", "null" and "max".
func ParseInfinityEncoding(s string) (InfinityEncoding, error) {
	switch s {
	case "", "string":
		return InfinityString, nil
	case "null":
		return InfinityNull, nil
	case "max":
		return InfinityMaxFloat, nil
	}
	return 0, fmt.Errorf("unknown infinity encoding %q (want string, null or max)", s)
}

// Encoder writes trees as JSON documents, one per line.
type Encoder struct {
	w        io.Writer
	Infinity InfinityEncoding
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode marshals n completely before writing, so a failure leaves nothing
// on the writer.
func (e *Encoder) Encode(n *Node) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(n.document(e.Infinity)); err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	if _, err := e.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	return nil
}

// document converts the tree into plain slices json.Marshal can write.
func (n *Node) document(inf InfinityEncoding) []any {
	branches := make([]any, 0, len(n.Branches))
	for _, b := range n.Branches {
		var target any = b.Class
		if b.Child != nil {
			target = b.Child.document(inf)
		}
		branches = append(branches, []any{b.Comparator, valueDocument(b.Value, inf), target})
	}
	return []any{n.Feature, branches}
}

func valueDocument(v Value, inf InfinityEncoding) any {
	switch t := v.(type) {
	case Number:
		return float64(t)
	case Range:
		return []any{boundDocument(t.Low, inf), boundDocument(t.High, inf)}
	case Nominal:
		return string(t)
	}
	return nil
}

func boundDocument(f float64, inf InfinityEncoding) any {
	if !math.IsInf(f, 0) {
		return f
	}
	switch inf {
	case InfinityNull:
		return nil
	case InfinityMaxFloat:
		if f < 0 {
			return -math.MaxFloat64
		}
		return math.MaxFloat64
	}
	if f < 0 {
		return "-Infinity"
	}
	return "Infinity"
}
