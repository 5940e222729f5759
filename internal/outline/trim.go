package outline

// Trim returns an independent copy of the subtree at node with every
// descendant deeper than maxDepth-1 removed. A node that survives the cutoff
// always appears, even when all of its children are cut. Trim returns nil
// when maxDepth <= 0: there is no content at that depth, which callers treat
// as a distinct outcome rather than a failure. The copy shares no nodes with
// its source, so repeated trims of one tree are independent.
func Trim(node *Node, maxDepth int) *Node {
	if node == nil || maxDepth <= 0 {
		return nil
	}

	dup := &Node{Title: node.Title}

	// Worklist instead of recursion: section numbering can nest arbitrarily
	// deep on adversarial input.
	type frame struct {
		src   *Node
		dst   *Node
		depth int
	}
	stack := []frame{{src: node, dst: dup, depth: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth+1 >= maxDepth {
			continue
		}
		for _, child := range f.src.Children {
			c := &Node{Title: child.Title}
			f.dst.Children = append(f.dst.Children, c)
			stack = append(stack, frame{src: child, dst: c, depth: f.depth + 1})
		}
	}

	return dup
}
