package export

import "github.com/ymiyake/sectree/internal/outline"

// Edge is one row of the chart-friendly parent table. The id is the node's
// own title, so duplicate titles at different positions collide; the
// charting heuristic accepts that.
type Edge struct {
	ID     string  `json:"id"`
	Parent *string `json:"parent"`
}

// Edges flattens the tree into pre-order id/parent rows for sunburst and
// treemap charts. The root row has a nil parent.
func Edges(n *outline.Node) []Edge {
	var rows []Edge

	type frame struct {
		node   *outline.Node
		parent *string
	}
	stack := []frame{{node: n}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rows = append(rows, Edge{ID: f.node.Title, Parent: f.parent})
		title := f.node.Title
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], parent: &title})
		}
	}

	return rows
}
