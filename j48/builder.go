package j48

// builder rebuilds the tree from the flat body lines. pos is the single
// read position shared by every recursion level: nested calls consume the
// same linear stream.
type builder struct {
	lines []string
	pos   int
}

// Build reconstructs the tree from the body lines returned by
// ExtractTreeLines.
func Build(lines []string) (*Node, error) {
	if len(lines) == 0 {
		return nil, &Error{Kind: KindFormat, Err: ErrMalformedInput, Msg: "tree body is empty"}
	}
	b := &builder{lines: lines}
	root, err := b.parse(0)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (b *builder) parse(depth int) (*Node, error) {
	node := &Node{}
	for b.pos < len(b.lines) {
		raw := b.lines[b.pos]
		lineNo := b.pos + 1
		l, err := ParseLine(raw)
		if err != nil {
			if e, ok := err.(*Error); ok {
				e.LineNo = lineNo
			}
			return nil, err
		}

		if l.Depth < depth {
			// Belongs to an ancestor, which reads it again.
			break
		}
		if l.Depth > depth {
			return nil, structureError(ErrDepthJump, lineNo, raw,
				"expected depth %d, got %d", depth, l.Depth)
		}

		if node.Feature == "" {
			node.Feature = l.Feature
		} else if node.Feature != l.Feature {
			return nil, structureError(ErrFeatureMismatch, lineNo, raw,
				"expected %s but got %s", node.Feature, l.Feature)
		}
		b.pos++

		br := Branch{
			Comparator: l.Comparator,
			Value:      ParseValue(l.Value),
		}
		if l.Leaf {
			br.Class = l.Class
			br.Weight = l.Weight
		} else {
			child, err := b.parse(depth + 1)
			if err != nil {
				return nil, err
			}
			if len(child.Branches) == 0 {
				return nil, structureError(ErrMalformedLine, lineNo, raw,
					"split on %s has no children", l.Feature)
			}
			br.Child = child
		}
		node.Branches = append(node.Branches, br)
	}
	return node, nil
}
