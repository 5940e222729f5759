package export

import (
	"fmt"
	"strings"

	"github.com/ymiyake/sectree/internal/outline"
)

// DOT renders the tree as a Graphviz digraph. Node ids come from a single
// counter advanced once per node in pre-order, so a parent always has a
// lower id than its descendants. The counter is local to the call.
func DOT(n *outline.Node) string {
	lines := []string{
		"digraph G {",
		`  graph [rankdir=TB, bgcolor="white"];`,
		`  node [shape=box, style="rounded,filled", color="#444444", fillcolor="white", fontname="sans-serif"];`,
		`  edge [color="#888888"];`,
	}

	type frame struct {
		node   *outline.Node
		parent string
	}
	stack := []frame{{node: n}}
	counter := 0

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		counter++
		id := fmt.Sprintf("n%d", counter)
		lines = append(lines, fmt.Sprintf("  %s [label=\"%s\"];", id, escapeDOTLabel(f.node.Title)))
		if f.parent != "" {
			lines = append(lines, fmt.Sprintf("  %s -> %s;", f.parent, id))
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], parent: id})
		}
	}

	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// escapeDOTLabel keeps a label single-line and safe inside double quotes.
func escapeDOTLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
