// Package outline turns an ordered sequence of document text lines into a
// labeled heading tree and bounds it to a display depth.
package outline

import "encoding/json"

// DefaultDepth is the display depth used when the caller does not pick one.
const DefaultDepth = 2

// Node is a single entry in the outline tree. Children keep insertion order.
// Build and Trim are the only producers; nodes are not mutated afterwards.
type Node struct {
	Title    string  `json:"title"`
	Children []*Node `json:"children"`
}

// MarshalJSON keeps children as an array even when empty, so the structured
// form is always {"title": ..., "children": [...]}.
func (n *Node) MarshalJSON() ([]byte, error) {
	type bare struct {
		Title    string  `json:"title"`
		Children []*Node `json:"children"`
	}
	out := bare{Title: n.Title, Children: n.Children}
	if out.Children == nil {
		out.Children = []*Node{}
	}
	return json.Marshal(out)
}

// Promote picks the display root: a lone top-level section replaces the
// synthetic root, anything else gets wrapped under "Document".
func Promote(root *Node) *Node {
	if len(root.Children) == 1 {
		return root.Children[0]
	}
	return &Node{Title: "Document", Children: root.Children}
}
