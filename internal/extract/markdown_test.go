package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestMarkdownExtractor_HeadingsBecomeHashLines(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1
`
	e := &MarkdownExtractor{}
	lines, err := e.Lines(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"# Title",
		"Intro text.",
		"## Section A",
		"Section A content.",
		"### Subsection A1",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %q, got %q", want, lines)
	}
}

func TestMarkdownExtractor_CodeBlocksKeptAsBody(t *testing.T) {
	input := "## Endpoints\n\n```\nGET /api/users\nPOST /api/users\n```\n"
	e := &MarkdownExtractor{}
	lines, err := e.Lines(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lines) == 0 || lines[0] != "## Endpoints" {
		t.Fatalf("expected heading first, got %q", lines)
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "GET /api/users") {
		t.Errorf("expected code block content in lines, got %q", lines)
	}
}

func TestMarkdownExtractor_EmptyInput(t *testing.T) {
	e := &MarkdownExtractor{}
	lines, err := e.Lines(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected 0 lines for empty input, got %d", len(lines))
	}
}

func TestHTMLExtractor_HeadingsAndContent(t *testing.T) {
	input := `<html><head><title>ignored</title><style>b{}</style></head>
<body>
<h1>Report</h1>
<p>Summary text.</p>
<h2>Findings</h2>
<ul><li>first</li><li>second</li></ul>
<script>alert(1)</script>
</body></html>`

	e := &HTMLExtractor{}
	lines, err := e.Lines(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"# Report",
		"Summary text.",
		"## Findings",
		"first",
		"second",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %q, got %q", want, lines)
	}
}
