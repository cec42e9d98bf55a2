package j48

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Node is an internal node of the tree: a feature and the branches that
// split on it, in printed order.
type Node struct {
	Feature  string
	Branches []Branch
}

// Branch is one outgoing edge of a Node. Exactly one of Child and Class is
// meaningful: Child is nil on leaves.
type Branch struct {
	Comparator string
	Value      Value
	Child      *Node
	Class      string
	// Weight is only known for leaves parsed from text.
	Weight *Weight
}

// IsLeaf reports whether the branch ends in a classification.
func (b Branch) IsLeaf() bool {
	return b.Child == nil
}

// MarshalJSON encodes the node as [feature, [branch, ...]] with infinite
// range bounds written as "Infinity" / "-Infinity".
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(n.document(InfinityString)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes the array form produced by MarshalJSON. Range bounds
// written with any InfinityEncoding are accepted.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("node: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("node: expected [feature, branches], got %d elements", len(raw))
	}
	var feature string
	if err := json.Unmarshal(raw[0], &feature); err != nil {
		return fmt.Errorf("node feature: %w", err)
	}
	var rawBranches []json.RawMessage
	if err := json.Unmarshal(raw[1], &rawBranches); err != nil {
		return fmt.Errorf("node %s branches: %w", feature, err)
	}
	if len(rawBranches) == 0 {
		return fmt.Errorf("node %s has no branches", feature)
	}

	branches := make([]Branch, 0, len(rawBranches))
	for i, rb := range rawBranches {
		b, err := decodeBranch(rb)
		if err != nil {
			return fmt.Errorf("node %s branch %d: %w", feature, i, err)
		}
		branches = append(branches, b)
	}
	n.Feature = feature
	n.Branches = branches
	return nil
}

func decodeBranch(data []byte) (Branch, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Branch{}, err
	}
	if len(raw) != 3 {
		return Branch{}, fmt.Errorf("expected [comparator, value, target], got %d elements", len(raw))
	}
	var b Branch
	if err := json.Unmarshal(raw[0], &b.Comparator); err != nil {
		return Branch{}, fmt.Errorf("comparator: %w", err)
	}
	v, err := decodeValue(raw[1])
	if err != nil {
		return Branch{}, fmt.Errorf("value: %w", err)
	}
	b.Value = v

	target := bytes.TrimSpace(raw[2])
	if len(target) > 0 && target[0] == '"' {
		if err := json.Unmarshal(target, &b.Class); err != nil {
			return Branch{}, fmt.Errorf("class: %w", err)
		}
		return b, nil
	}
	child := &Node{}
	if err := child.UnmarshalJSON(target); err != nil {
		return Branch{}, err
	}
	b.Child = child
	return b, nil
}

func decodeValue(data []byte) (Value, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case float64:
		return Number(t), nil
	case string:
		return Nominal(t), nil
	case []any:
		if len(t) != 2 {
			return nil, fmt.Errorf("range: expected [low, high], got %d elements", len(t))
		}
		lo, err := decodeBound(t[0], -1)
		if err != nil {
			return nil, fmt.Errorf("range low: %w", err)
		}
		hi, err := decodeBound(t[1], 1)
		if err != nil {
			return nil, fmt.Errorf("range high: %w", err)
		}
		// Bin upper bounds print closed unless infinite.
		return Range{Low: lo, High: hi, Closed: !math.IsInf(hi, 1)}, nil
	}
	return nil, fmt.Errorf("unexpected value %s", string(data))
}

// decodeBound reads a range bound. sign selects the infinity a null or a
// saturated float stands for.
func decodeBound(v any, sign int) (float64, error) {
	switch t := v.(type) {
	case nil:
		return math.Inf(sign), nil
	case float64:
		if t == math.MaxFloat64 {
			return math.Inf(1), nil
		}
		if t == -math.MaxFloat64 {
			return math.Inf(-1), nil
		}
		return t, nil
	case string:
		switch t {
		case "Infinity", "inf":
			return math.Inf(1), nil
		case "-Infinity", "-inf":
			return math.Inf(-1), nil
		}
	}
	return 0, fmt.Errorf("invalid bound %v", v)
}
