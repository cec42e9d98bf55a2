package j48

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rangeTree = &Node{
	Feature: "age",
	Branches: []Branch{
		{Comparator: "=", Value: Range{Low: math.Inf(-1), High: -1, Closed: true}, Class: "young"},
		{Comparator: "=", Value: Range{Low: -1, High: math.Inf(1)}, Class: "old"},
	},
}

func TestEncoder_InfinityEncodings(t *testing.T) {
	tests := []struct {
		name string
		inf  InfinityEncoding
		want string
	}{
		{
			name: "string",
			inf:  InfinityString,
			want: `["age",[["=",["-Infinity",-1],"young"],["=",[-1,"Infinity"],"old"]]]`,
		},
		{
			name: "null",
			inf:  InfinityNull,
			want: `["age",[["=",[null,-1],"young"],["=",[-1,null],"old"]]]`,
		},
		{
			name: "max",
			inf:  InfinityMaxFloat,
			want: `["age",[["=",[-1.7976931348623157e+308,-1],"young"],["=",[-1,1.7976931348623157e+308],"old"]]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			enc := NewEncoder(&buf)
			enc.Infinity = tt.inf
			require.NoError(t, enc.Encode(rangeTree))
			assert.Equal(t, tt.want+"\n", buf.String())

			var back Node
			require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
			assert.Equal(t, rangeTree.Branches[0].Value, back.Branches[0].Value)
			assert.Equal(t, rangeTree.Branches[1].Value, back.Branches[1].Value)
		})
	}
}

func TestEncoder_DoesNotEscapeComparators(t *testing.T) {
	root, err := Build(weatherBody)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(root))
	assert.Contains(t, buf.String(), `"<="`)
	assert.Contains(t, buf.String(), `">"`)
}

func TestNode_MarshalJSONMatchesEncoder(t *testing.T) {
	root, err := Build(weatherBody)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(root))

	got, err := root.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(buf.String(), "\n"), string(got))
	assert.Contains(t, string(got), `"<="`)
	assert.NotContains(t, string(got), `\u003c`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncoder_WriteError(t *testing.T) {
	err := NewEncoder(failingWriter{}).Encode(rangeTree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestParseInfinityEncoding(t *testing.T) {
	for in, want := range map[string]InfinityEncoding{
		"":       InfinityString,
		"string": InfinityString,
		"null":   InfinityNull,
		"max":    InfinityMaxFloat,
	} {
		got, err := ParseInfinityEncoding(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseInfinityEncoding("nan")
	assert.Error(t, err)
}

func TestNode_JSONRoundTrip(t *testing.T) {
	root, err := Build([]string{
		"outlook = sunny",
		"|   humidity <= 75.5: yes (2.0)",
		"|   humidity > 75.5",
		"|   |   temp = '(-inf-60]': no (1.0)",
		"|   |   temp = '(60-inf)': yes (1.0)",
		"outlook = overcast: yes (4.0)",
	})
	require.NoError(t, err)

	data, err := json.Marshal(root)
	require.NoError(t, err)

	var back Node
	require.NoError(t, json.Unmarshal(data, &back))

	// Weights are not part of the JSON document.
	assert.Equal(t, withoutWeights(root), &back)
}

func withoutWeights(n *Node) *Node {
	out := &Node{Feature: n.Feature}
	for _, b := range n.Branches {
		b.Weight = nil
		if b.Child != nil {
			b.Child = withoutWeights(b.Child)
		}
		out.Branches = append(out.Branches, b)
	}
	return out
}

func TestNode_UnmarshalJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an array", `{"feature":"a"}`},
		{"wrong arity", `["a"]`},
		{"no branches", `["a",[]]`},
		{"short branch", `["a",[["=","b"]]]`},
		{"bad value", `["a",[["=",true,"c"]]]`},
		{"bad range", `["a",[["=",[1,2,3],"c"]]]`},
		{"bad bound", `["a",[["=",["x",2],"c"]]]`},
		{"bad child", `["a",[["=","b",["c"]]]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Node
			assert.Error(t, json.Unmarshal([]byte(tt.data), &n))
		})
	}
}
