package j48

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Line
	}{
		{
			name: "split at root",
			line: "outlook = sunny",
			want: Line{Depth: 0, Feature: "outlook", Comparator: "=", Value: "sunny"},
		},
		{
			name: "leaf with weight",
			line: "|   humidity <= 75: yes (2.0)",
			want: Line{Depth: 1, Feature: "humidity", Comparator: "<=", Value: "75", Class: "yes", Leaf: true, Weight: &Weight{Total: 2}},
		},
		{
			name: "leaf with errors",
			line: "|   |   petallength <= 4.9: Iris-versicolor (48.0/1.0)",
			want: Line{Depth: 2, Feature: "petallength", Comparator: "<=", Value: "4.9", Class: "Iris-versicolor", Leaf: true, Weight: &Weight{Total: 48, Errors: 1}},
		},
		{
			name: "leaf without weight",
			line: "outlook = overcast: yes",
			want: Line{Feature: "outlook", Comparator: "=", Value: "overcast", Class: "yes", Leaf: true},
		},
		{
			name: "range value passes through raw",
			line: "|   petalwidth = '(-inf-0.8]': Iris-setosa (50.0)",
			want: Line{Depth: 1, Feature: "petalwidth", Comparator: "=", Value: "'(-inf-0.8]'", Class: "Iris-setosa", Leaf: true, Weight: &Weight{Total: 50}},
		},
		{
			name: "repeated delimiters",
			line: "|  |    a   >   3  :  b",
			want: Line{Depth: 2, Feature: "a", Comparator: ">", Value: "3", Class: "b", Leaf: true},
		},
		{
			name: "unreadable weight is dropped",
			line: "a = b: c (x/y)",
			want: Line{Feature: "a", Comparator: "=", Value: "b", Class: "c", Leaf: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_TooShort(t *testing.T) {
	for _, line := range []string{"", "|   |", "outlook =", ": yes (14.0/5.0)"} {
		_, err := ParseLine(line)
		require.Error(t, err, line)
		assert.True(t, errors.Is(err, ErrMalformedLine))
	}
}

func TestWeight_String(t *testing.T) {
	assert.Equal(t, "(2.0)", Weight{Total: 2}.String())
	assert.Equal(t, "(3.0/1.0)", Weight{Total: 3, Errors: 1}.String())
	assert.Equal(t, "(2.35/0.12)", Weight{Total: 2.35, Errors: 0.12}.String())
}
