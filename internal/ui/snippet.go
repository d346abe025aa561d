package ui

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	mdparser "github.com/gomarkdown/markdown/parser"
)

// flattenSnippet reduces a markdown snippet to a single plain-text line for
// the result row. Emphasis, code spans and links are stripped down to their
// literal text; block structure collapses to spaces.
func flattenSnippet(snippet string) string {
	if snippet == "" {
		return ""
	}
	p := mdparser.New()
	doc := p.Parse([]byte(snippet))

	var b strings.Builder
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if leaf := node.AsLeaf(); leaf != nil && len(leaf.Literal) > 0 {
			b.Write(leaf.Literal)
			b.WriteByte(' ')
		}
		return ast.GoToNext
	})
	return strings.Join(strings.Fields(b.String()), " ")
}
