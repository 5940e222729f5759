package export

import (
	"strings"

	"github.com/ymiyake/sectree/internal/outline"
)

const outlineIndent = "  "

// Outline renders the tree as indented plain text, one "- title" line per
// node in pre-order. Titles are emitted as-is.
func Outline(n *outline.Node) string {
	var lines []string

	type frame struct {
		node  *outline.Node
		depth int
	}
	stack := []frame{{node: n}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lines = append(lines, strings.Repeat(outlineIndent, f.depth)+"- "+f.node.Title)
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], depth: f.depth + 1})
		}
	}

	return strings.Join(lines, "\n")
}
