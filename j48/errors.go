package j48

import (
	"errors"
	"fmt"
)

// Kind classifies parse failures.
type Kind int

const (
	// KindInput covers problems acquiring the input (empty input).
	KindInput Kind = iota
	// KindFormat covers missing or broken header framing.
	KindFormat
	// KindNotFound is reported when no tree header exists in the input.
	KindNotFound
	// KindStructure covers inconsistencies inside the tree body.
	KindStructure
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindFormat:
		return "format"
	case KindNotFound:
		return "not found"
	case KindStructure:
		return "structure"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrTreeNotFound    = errors.New("failed to find tree in input")
	ErrMalformedInput  = errors.New("input not in expected format")
	ErrMalformedLine   = errors.New("malformed tree line")
	ErrFeatureMismatch = errors.New("feature mismatch")
	ErrDepthJump       = errors.New("input jumps two levels at once")
)

// Error is the error returned by every parsing stage. Line and LineNo are
// set when a specific line is at fault. LineNo is 1-based within the lines
// the failing stage was given: the raw input for framing errors, the tree
// body for structural ones.
type Error struct {
	Kind   Kind
	Err    error
	Msg    string
	Line   string
	LineNo int
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.LineNo > 0 {
		msg += fmt.Sprintf(" (line %d: %q)", e.LineNo, e.Line)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func structureError(err error, lineNo int, line, format string, args ...any) *Error {
	return &Error{
		Kind:   KindStructure,
		Err:    err,
		Msg:    fmt.Sprintf(format, args...),
		Line:   line,
		LineNo: lineNo,
	}
}
