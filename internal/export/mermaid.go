package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ymiyake/sectree/internal/outline"
)

const mindmapIndent = "  "

// Mindmap renders the tree in mermaid mindmap notation. Indentation encodes
// depth and the root gets the circle wrapper.
func Mindmap(n *outline.Node) string {
	lines := []string{"mindmap"}

	type frame struct {
		node  *outline.Node
		depth int
	}
	stack := []frame{{node: n}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		label := sanitizeLabel(f.node.Title)
		indent := strings.Repeat(mindmapIndent, f.depth+1)
		if f.depth == 0 {
			lines = append(lines, fmt.Sprintf("%sroot((%s))", indent, label))
		} else {
			lines = append(lines, indent+label)
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], depth: f.depth + 1})
		}
	}

	return strings.Join(lines, "\n")
}

var (
	bulletPrefixRe = regexp.MustCompile(`^[-•*]\s*`)
	pureNumberRe   = regexp.MustCompile(`^[0-9]+$`)
	spaceRunRe     = regexp.MustCompile(`\s+`)

	// Characters mermaid would read as markup, swapped for harmless
	// lookalikes.
	labelReplacer = strings.NewReplacer(
		"`", "'",
		`\`, "/",
		"{", "(",
		"}", ")",
		"[", "(",
		"]", ")",
		"<", "(",
		">", ")",
		"#", "-",
		"|", "/",
		`"`, "'",
		"~", "-",
	)
)

// sanitizeLabel makes a title safe for the mindmap grammar: strip a leading
// bullet, keep pure numbers from parsing as shapes, swap markup characters,
// collapse whitespace. An empty result becomes an ellipsis placeholder.
func sanitizeLabel(s string) string {
	s = bulletPrefixRe.ReplaceAllString(s, "")
	if pureNumberRe.MatchString(s) {
		s = "No. " + s
	}
	s = labelReplacer.Replace(s)
	s = strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
	if s == "" {
		return "…"
	}
	return s
}
