package outline

import "strings"

// Build assembles text lines into a tree rooted at a synthetic "ROOT" node.
// Headings open nested sections via stack-based level reconciliation; body
// lines attach to the most recently opened heading, or to the root when no
// heading has appeared yet. Build never fails, whatever the line content.
func Build(lines []string) *Node {
	root := &Node{Title: "ROOT"}

	type frame struct {
		level int
		node  *Node
	}
	stack := []frame{{level: 0, node: root}}
	last := root

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		h, ok := Classify(line)
		if !ok {
			last.Children = append(last.Children, &Node{Title: line})
			continue
		}

		level := h.Level
		if level < 1 {
			level = 1
		}
		node := &Node{Title: h.Title}

		// Close out siblings and deeper sections at or below this level.
		for len(stack) > 1 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, frame{level: level, node: node})
		last = node
	}

	return root
}
