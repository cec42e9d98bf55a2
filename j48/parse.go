// Package j48 parses the tree printed by Weka's J48 classifier into a
// recursive Node structure and encodes it as JSON.
//
// A dump looks like:
//
//	J48 pruned tree
//	------------------
//
//	outlook = sunny
//	|   humidity <= 75: yes (2.0)
//	|   humidity > 75: no (3.0)
//	outlook = overcast: yes (4.0)
//
// and encodes to
//
//	["outlook",[["=","sunny",["humidity",[["<=",75,"yes"],[">",75,"no"]]]],["=","overcast","yes"]]]
package j48

import (
	"io"
)

// Parse reads a whole J48 dump from r and returns the root of its tree.
func Parse(r io.Reader) (*Node, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

// ParseHTML is Parse for dumps embedded in an HTML page.
func ParseHTML(r io.Reader) (*Node, error) {
	lines, err := HTMLLines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

// ParseLines locates the tree block in lines and builds it.
func ParseLines(lines []string) (*Node, error) {
	body, err := ExtractTreeLines(lines)
	if err != nil {
		return nil, err
	}
	return Build(body)
}
