package j48

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// framed wraps body lines with the J48 title, divider, blank line and a
// trailing blank line, each terminated by a newline.
func framed(body ...string) []string {
	lines := []string{"J48 pruned tree\n", "------------------\n", "\n"}
	for _, b := range body {
		lines = append(lines, b+"\n")
	}
	return append(lines, "\n")
}

var weatherBody = []string{
	"outlook = sunny",
	"|   humidity <= 75: yes (2.0)",
	"|   humidity > 75: no (3.0)",
	"outlook = overcast: yes (4.0)",
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("a\nb\r\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a\n", "b\r\n", "c"}, lines)
}

func TestReadLines_Empty(t *testing.T) {
	_, err := ReadLines(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, KindInput, perr.Kind)
}

func TestExtractTreeLines(t *testing.T) {
	input := append([]string{"=== Classifier model ===\n", "\n"}, framed(weatherBody...)...)
	input = append(input, "Number of Leaves  : \t3\n")

	body, err := ExtractTreeLines(input)
	require.NoError(t, err)
	assert.Equal(t, weatherBody, body)
}

func TestExtractTreeLines_Unpruned(t *testing.T) {
	input := framed(weatherBody...)
	input[0] = "J48 unpruned tree\n"

	body, err := ExtractTreeLines(input)
	require.NoError(t, err)
	assert.Len(t, body, 4)
}

func TestExtractTreeLines_CRLF(t *testing.T) {
	input := []string{"J48 pruned tree\r\n", "---\r\n", "\r\n", "a = b: c (1.0)\r\n", "\r\n"}

	body, err := ExtractTreeLines(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"a = b: c (1.0)"}, body)
}

func TestExtractTreeLines_EndOfInputClosesBlock(t *testing.T) {
	input := []string{"J48 pruned tree\n", "------\n", "\n", "a = b: c (1.0)\n", "a = d: e (1.0)"}

	body, err := ExtractTreeLines(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"a = b: c (1.0)", "a = d: e (1.0)"}, body)
}

func TestExtractTreeLines_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr error
		kind    Kind
		errSub  string
	}{
		{
			name:    "no header",
			input:   []string{"nothing\n", "to\n", "see\n", "here\n"},
			wantErr: ErrTreeNotFound,
			kind:    KindNotFound,
		},
		{
			name:    "header without room for framing",
			input:   []string{"J48 pruned tree\n", "-----\n"},
			wantErr: ErrTreeNotFound,
			kind:    KindNotFound,
		},
		{
			name:    "missing divider",
			input:   []string{"J48 pruned tree\n", "outlook = sunny: yes (1.0)\n", "\n", "\n"},
			wantErr: ErrMalformedInput,
			kind:    KindFormat,
			errSub:  "divider",
		},
		{
			name:    "missing blank line",
			input:   []string{"J48 pruned tree\n", "-----\n", "outlook = sunny: yes (1.0)\n", "\n"},
			wantErr: ErrMalformedInput,
			kind:    KindFormat,
			errSub:  "blank line",
		},
		{
			name:    "empty body",
			input:   []string{"J48 pruned tree\n", "-----\n", "\n", "\n", "Number of Leaves : 0\n"},
			wantErr: ErrMalformedInput,
			kind:    KindFormat,
			errSub:  "empty",
		},
		{
			name:    "no lines",
			input:   nil,
			wantErr: ErrEmptyInput,
			kind:    KindInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := ExtractTreeLines(tt.input)
			require.Error(t, err)
			assert.Nil(t, body)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
			if tt.errSub != "" {
				assert.Contains(t, err.Error(), tt.errSub)
			}
		})
	}
}

func TestExtractTreeLines_MissingDividerReportsLine(t *testing.T) {
	_, err := ExtractTreeLines([]string{"intro\n", "J48 pruned tree\n", "oops\n", "\n"})

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.LineNo)
	assert.Equal(t, "oops", perr.Line)
}
