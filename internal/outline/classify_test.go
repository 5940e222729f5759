package outline

import (
	"strings"
	"testing"
)

func TestClassify_Headings(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantTitle string
	}{
		{"Chapter 1 Introduction", 1, "Introduction"},
		{"Chapter 12", 1, "Chapter 12"},
		{"第3章 実験方法", 1, "実験方法"},
		{"第 2 章", 1, "第 2 章"},
		{"Appendix: Raw Data", 1, "Raw Data"},
		{"付録： 補足資料", 1, "補足資料"},
		{"Appendix", 1, "Appendix"},
		{"1. Overview", 1, "1 Overview"},
		{"2) Background", 1, "2 Background"},
		{"3． 関連研究", 1, "3 関連研究"},
		{"1.1 Scope", 2, "1.1 Scope"},
		{"1.1. Scope", 2, "1.1 Scope"},
		{"2-3 Results", 2, "2-3 Results"},
		{"1.2.3 Details", 3, "1.2.3 Details"},
		{"1.2.3.4 Fine print", 4, "1.2.3.4 Fine print"},
		{"1: Introduction", 1, "1 Introduction"},
		{"4 - Methods", 1, "4 Methods"},
		{"Overview:", 1, "Overview"},
		{"まとめ：", 1, "まとめ"},
	}
	for _, tt := range tests {
		h, ok := Classify(tt.line)
		if !ok {
			t.Errorf("Classify(%q): expected heading, got body", tt.line)
			continue
		}
		if h.Level != tt.wantLevel {
			t.Errorf("Classify(%q): expected level %d, got %d", tt.line, tt.wantLevel, h.Level)
		}
		if h.Title != tt.wantTitle {
			t.Errorf("Classify(%q): expected title %q, got %q", tt.line, tt.wantTitle, h.Title)
		}
	}
}

func TestClassify_BodyLines(t *testing.T) {
	lines := []string{
		"This is an ordinary sentence.",
		"2 cups of flour",
		"The section 1.1 covers scope.",
		"a line that is far too long to qualify as a colon label heading:",
		"....:",
		"---",
	}
	for _, line := range lines {
		if h, ok := Classify(line); ok {
			t.Errorf("Classify(%q): expected body, got heading %+v", line, h)
		}
	}
}

func TestClassify_HashHeadings(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantTitle string
	}{
		{"# Title", 1, "Title"},
		{"## Section", 2, "Section"},
		{"###### Deep", 6, "Deep"},
	}
	for _, tt := range tests {
		h, ok := Classify(tt.line)
		if !ok {
			t.Fatalf("Classify(%q): expected heading", tt.line)
		}
		if h.Level != tt.wantLevel || h.Title != tt.wantTitle {
			t.Errorf("Classify(%q): got (%d, %q), want (%d, %q)",
				tt.line, h.Level, h.Title, tt.wantLevel, tt.wantTitle)
		}
	}

	// Hash runs without a title stay body content.
	if _, ok := Classify("####"); ok {
		t.Error("Classify(\"####\"): expected body")
	}
}

func TestClassify_QuirkBareVsDottedColon(t *testing.T) {
	// "1: Intro" and "1.1: Intro" go through different vocabularies.
	h, ok := Classify("1: Introduction")
	if !ok || h.Level != 1 {
		t.Fatalf("expected level-1 heading for bare integer colon, got %+v ok=%v", h, ok)
	}
	h2, ok := Classify("1.1: Introduction")
	if !ok {
		t.Fatal("expected heading for dotted numeral")
	}
	if h2.Title == h.Title {
		t.Errorf("expected different titles for the two vocabularies, both %q", h.Title)
	}
}

func TestClassify_ColonLabelLength(t *testing.T) {
	// Exactly 30 runes still qualifies; 31 does not.
	ok30 := strings.Repeat("a", 29) + ":"
	if _, ok := Classify(ok30); !ok {
		t.Errorf("expected %q to classify as heading", ok30)
	}
	long := strings.Repeat("a", 30) + ":"
	if _, ok := Classify(long); ok {
		t.Errorf("expected %q to stay body content", long)
	}
}
