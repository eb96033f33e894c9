package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{"0001", 1, true},
		{" 42 ", 42, true},
		{"12345", 12345, true},
		{"0", 0, false},
		{"two-sum", 0, false},
		{"1a", 0, false},
		{"-1", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseID(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProblem_Snippet(t *testing.T) {
	p := &Problem{Snippets: map[string]string{"python3": "class Solution:"}}
	assert.Equal(t, "class Solution:", p.Snippet("python3"))
	assert.Empty(t, p.Snippet("golang"))
	assert.Empty(t, (&Problem{}).Snippet("golang"))
}
