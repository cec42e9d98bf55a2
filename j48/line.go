package j48

import (
	"strconv"
	"strings"
)

// DepthMarker is the fragment J48 repeats to indent nested splits.
const DepthMarker = "|"

// Weight holds the instance counts J48 prints after a leaf label, as in
// "yes (3.0/1.0)": Total instances reached the leaf, Errors were
// misclassified.
type Weight struct {
	Total  float64
	Errors float64
}

func (w Weight) String() string {
	if w.Errors == 0 {
		return "(" + weightFloat(w.Total) + ")"
	}
	return "(" + weightFloat(w.Total) + "/" + weightFloat(w.Errors) + ")"
}

// weightFloat keeps at least one decimal, the way J48 prints counts.
func weightFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Line is one tokenized line of a tree body.
type Line struct {
	Depth      int
	Feature    string
	Comparator string
	// Value is the raw token, typed later by ParseValue.
	Value string
	// Class is set on leaf lines only; Leaf tells whether it is.
	Class  string
	Leaf   bool
	Weight *Weight
}

func splitFragments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ':'
	})
}

// ParseLine tokenizes a single tree body line.
func ParseLine(s string) (Line, error) {
	parts := splitFragments(s)
	depth := 0
	for depth < len(parts) && parts[depth] == DepthMarker {
		depth++
	}
	rest := parts[depth:]
	if len(rest) < 3 {
		return Line{}, &Error{
			Kind: KindStructure,
			Err:  ErrMalformedLine,
			Msg:  "expected feature, comparator and value",
			Line: s,
		}
	}

	l := Line{
		Depth:      depth,
		Feature:    rest[0],
		Comparator: rest[1],
		Value:      rest[2],
	}
	if len(rest) > 3 {
		l.Class = rest[3]
		l.Leaf = true
	}
	if len(rest) > 4 {
		l.Weight = parseWeight(rest[4])
	}
	return l, nil
}

// parseWeight reads "(n)" or "(n/e)". Anything else yields nil.
func parseWeight(s string) *Weight {
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil
	}
	total, errs, hasErrs := strings.Cut(s[1:len(s)-1], "/")
	w := &Weight{}
	var err error
	if w.Total, err = strconv.ParseFloat(total, 64); err != nil {
		return nil
	}
	if hasErrs {
		if w.Errors, err = strconv.ParseFloat(errs, 64); err != nil {
			return nil
		}
	}
	return w
}
