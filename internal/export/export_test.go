package export

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ymiyake/sectree/internal/outline"
)

func sample() *outline.Node {
	return &outline.Node{
		Title: "Document",
		Children: []*outline.Node{
			{Title: "1 A", Children: []*outline.Node{
				{Title: "1.1 B"},
			}},
			{Title: "2 C"},
		},
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	tree := sample()
	data, err := JSON(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var flatten func(n *outline.Node, depth int, out *[]string)
	flatten = func(n *outline.Node, depth int, out *[]string) {
		*out = append(*out, strings.Repeat(">", depth)+n.Title)
		for _, c := range n.Children {
			flatten(c, depth+1, out)
		}
	}
	var a, b []string
	flatten(tree, 0, &a)
	flatten(back, 0, &b)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("round trip changed the tree:\n%v\n%v", a, b)
	}
}

func TestJSON_ChildrenAlwaysArray(t *testing.T) {
	data, err := JSON(&outline.Node{Title: "leaf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"children": []`) {
		t.Errorf("expected empty children array, got %s", data)
	}
}

func TestDOT_Structure(t *testing.T) {
	got := DOT(sample())

	if !strings.HasPrefix(got, "digraph G {") || !strings.HasSuffix(got, "}") {
		t.Fatalf("expected digraph wrapper, got:\n%s", got)
	}
	for _, want := range []string{
		`n1 [label="Document"];`,
		`n2 [label="1 A"];`,
		`n3 [label="1.1 B"];`,
		`n4 [label="2 C"];`,
		"n1 -> n2;",
		"n2 -> n3;",
		"n1 -> n4;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestDOT_LabelEscaping(t *testing.T) {
	n := &outline.Node{Title: "say \"hi\"\nback\\slash"}
	got := DOT(n)
	want := `[label="say \"hi\" back\\slash"]`
	if !strings.Contains(got, want) {
		t.Errorf("expected %q in:\n%s", want, got)
	}
	if strings.Contains(got, "\nback") {
		t.Error("newline survived into a label")
	}
}

func TestMindmap_Structure(t *testing.T) {
	got := Mindmap(sample())
	lines := strings.Split(got, "\n")
	want := []string{
		"mindmap",
		"  root((Document))",
		"    1 A",
		"      1.1 B",
		"    2 C",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("mindmap mismatch:\ngot  %q\nwant %q", lines, want)
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "No. 1"},
		{"tick`mark", "tick'mark"},
		{"a|b", "a/b"},
		{"- bullet item", "bullet item"},
		{"{braced} [boxed] <angled>", "(braced) (boxed) (angled)"},
		{"back\\slash #tag ~x", "back/slash -tag -x"},
		{"say \"it\"", "say 'it'"},
		{"lots   of\t spaces", "lots of spaces"},
		{"- ", "…"},
		{"", "…"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestOutline_Indentation(t *testing.T) {
	got := Outline(sample())
	want := strings.Join([]string{
		"- Document",
		"  - 1 A",
		"    - 1.1 B",
		"  - 2 C",
	}, "\n")
	if got != want {
		t.Errorf("outline mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEdges_PreOrder(t *testing.T) {
	rows := Edges(sample())
	wantIDs := []string{"Document", "1 A", "1.1 B", "2 C"}
	if len(rows) != len(wantIDs) {
		t.Fatalf("expected %d rows, got %d", len(wantIDs), len(rows))
	}
	for i, id := range wantIDs {
		if rows[i].ID != id {
			t.Errorf("row[%d]: expected id %q, got %q", i, id, rows[i].ID)
		}
	}
	if rows[0].Parent != nil {
		t.Errorf("expected nil parent for root, got %q", *rows[0].Parent)
	}
	if rows[1].Parent == nil || *rows[1].Parent != "Document" {
		t.Errorf("expected parent Document for row 1, got %v", rows[1].Parent)
	}
	if rows[2].Parent == nil || *rows[2].Parent != "1 A" {
		t.Errorf("expected parent %q for row 2, got %v", "1 A", rows[2].Parent)
	}
	if rows[3].Parent == nil || *rows[3].Parent != "Document" {
		t.Errorf("expected parent Document for row 3, got %v", rows[3].Parent)
	}
}
