// Package export serializes outline trees into downstream-consumable text
// formats: structured JSON, Graphviz DOT, a mermaid mindmap, a flat indented
// outline and chart-ready edge rows. All exports are pure pre-order
// traversals of an already-trimmed tree.
package export

import (
	"encoding/json"

	"github.com/ymiyake/sectree/internal/outline"
)

// JSON renders the structured-data form, indented two spaces.
func JSON(n *outline.Node) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

// FromJSON reconstructs a tree from its structured-data form.
func FromJSON(data []byte) (*outline.Node, error) {
	var n outline.Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
