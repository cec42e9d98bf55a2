package j48

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	reHeader  = regexp.MustCompile(`^J48 (un)?pruned tree`)
	reDivider = regexp.MustCompile(`^-*$`)
	reBlank   = regexp.MustCompile(`^[ \t]*$`)
)

// ReadLines reads r to the end and returns its lines with their terminators
// kept. A final line without a terminator is returned as is.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}
	if len(lines) == 0 {
		return nil, &Error{Kind: KindInput, Err: ErrEmptyInput}
	}
	return lines, nil
}

func trimEOL(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}

// ExtractTreeLines locates the J48 tree block in lines and returns its body
// with line terminators stripped.
//
// The block starts after the "J48 pruned tree" (or "unpruned") title, its
// dash divider and one blank line, and runs until the next blank line or the
// end of input.
func ExtractTreeLines(lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, &Error{Kind: KindInput, Err: ErrEmptyInput}
	}
	for i := 0; i+2 < len(lines); i++ {
		if !reHeader.MatchString(lines[i]) {
			continue
		}
		if !reDivider.MatchString(trimEOL(lines[i+1])) {
			return nil, &Error{
				Kind:   KindFormat,
				Err:    ErrMalformedInput,
				Msg:    "expected a dash divider after the tree title",
				Line:   trimEOL(lines[i+1]),
				LineNo: i + 2,
			}
		}
		if !reBlank.MatchString(trimEOL(lines[i+2])) {
			return nil, &Error{
				Kind:   KindFormat,
				Err:    ErrMalformedInput,
				Msg:    "expected a blank line after the divider",
				Line:   trimEOL(lines[i+2]),
				LineNo: i + 3,
			}
		}

		var body []string
		for _, l := range lines[i+3:] {
			l = trimEOL(l)
			if reBlank.MatchString(l) {
				break
			}
			body = append(body, l)
		}
		if len(body) == 0 {
			return nil, &Error{Kind: KindFormat, Err: ErrMalformedInput, Msg: "tree body is empty"}
		}
		return body, nil
	}
	return nil, &Error{Kind: KindNotFound, Err: ErrTreeNotFound}
}
