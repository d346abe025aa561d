package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenSnippet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "buy milk", want: "buy milk"},
		{name: "emphasis stripped", in: "buy **milk** and _eggs_", want: "buy milk and eggs"},
		{name: "code span stripped", in: "run `palette` now", want: "run palette now"},
		{name: "link keeps text", in: "see [the list](https://example.com/list)", want: "see the list"},
		{name: "multi-line collapses", in: "first line\n\nsecond line", want: "first line second line"},
		{name: "list items collapse", in: "- milk\n- eggs", want: "milk eggs"},
		{name: "heading collapses", in: "# Shopping\nmilk", want: "Shopping milk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flattenSnippet(tt.in))
		})
	}
}
