package outline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Heading is a line recognized as a structural marker.
type Heading struct {
	Level int // 1 is top-level.
	Title string
}

// matcher recognizes one heading vocabulary.
type matcher interface {
	match(line string) (Heading, bool)
}

// Matchers run in a fixed priority order; the first hit wins. New
// vocabularies slot in without disturbing the ones below them.
var matchers = []matcher{
	hashMatcher{},
	chapterMatcher{},
	appendixMatcher{},
	numberedMatcher{},
	colonNumberMatcher{},
	shortLabelMatcher{},
}

// Classify reports whether a trimmed, non-empty line is a heading and, if
// so, its nesting level and title. A miss means body content, not an error.
func Classify(line string) (Heading, bool) {
	for _, m := range matchers {
		if h, ok := m.match(line); ok {
			if h.Level < 1 {
				h.Level = 1
			}
			return h, true
		}
	}
	return Heading{}, false
}

var hashRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// hashMatcher handles markdown-style hash headings. Plain documents rarely
// contain these; the structured extractors emit them to carry format-native
// heading levels through the line pipeline.
type hashMatcher struct{}

func (hashMatcher) match(line string) (Heading, bool) {
	m := hashRe.FindStringSubmatch(line)
	if m == nil {
		return Heading{}, false
	}
	return Heading{Level: len(m[1]), Title: strings.TrimSpace(m[2])}, true
}

var chapterRe = regexp.MustCompile(`^(?:Chapter\s*\d+|第\s*\d+\s*章)\s*(.*)$`)

// chapterMatcher handles chapter markers ("Chapter 3", "第3章 序論").
type chapterMatcher struct{}

func (chapterMatcher) match(line string) (Heading, bool) {
	m := chapterRe.FindStringSubmatch(line)
	if m == nil {
		return Heading{}, false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		title = strings.TrimSpace(line)
	}
	return Heading{Level: 1, Title: title}, true
}

var appendixRe = regexp.MustCompile(`^(?:Appendix|付録)\s*[:：]?\s*(.*)$`)

// appendixMatcher handles appendix markers.
type appendixMatcher struct{}

func (appendixMatcher) match(line string) (Heading, bool) {
	m := appendixRe.FindStringSubmatch(line)
	if m == nil {
		return Heading{}, false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		title = strings.TrimSpace(line)
	}
	return Heading{Level: 1, Title: title}, true
}

var (
	dottedSpaceRe = regexp.MustCompile(`^(\d+(?:[.\-]\d+){1,3})\s+(.+)$`)
	numberSepRe   = regexp.MustCompile(`^(\d+(?:[.\-]\d+){0,3})[).．]\s*(.+)$`)
)

// numberedMatcher handles section numerals like "1.", "2.3)" or "1.2.3
// Title". The level is the count of internal separators plus one. A numeral
// that already contains a separator may be followed by plain whitespace; a
// bare integer needs an explicit terminator so prose that starts with a
// number stays body content.
type numberedMatcher struct{}

func (numberedMatcher) match(line string) (Heading, bool) {
	m := dottedSpaceRe.FindStringSubmatch(line)
	if m == nil {
		m = numberSepRe.FindStringSubmatch(line)
	}
	if m == nil {
		return Heading{}, false
	}
	num := m[1]
	level := strings.Count(num, ".") + strings.Count(num, "-") + 1
	title := strings.TrimSpace(num + " " + strings.TrimSpace(m[2]))
	return Heading{Level: level, Title: title}, true
}

var colonNumberRe = regexp.MustCompile(`^(\d+)\s*[:：-]\s*(.+)$`)

// colonNumberMatcher handles "1: Introduction" style lines. The level is
// always 1, unlike numberedMatcher — "1: Intro" and "1.1: Intro" go through
// different vocabularies on purpose.
type colonNumberMatcher struct{}

func (colonNumberMatcher) match(line string) (Heading, bool) {
	m := colonNumberRe.FindStringSubmatch(line)
	if m == nil {
		return Heading{}, false
	}
	title := strings.TrimSpace(m[1] + " " + strings.TrimSpace(m[2]))
	return Heading{Level: 1, Title: title}, true
}

const maxLabelRunes = 30

var labelWordRe = regexp.MustCompile(`[A-Za-z0-9一-龥ぁ-んァ-ン]`)

// shortLabelMatcher catches short colon-terminated labels like "Overview:".
type shortLabelMatcher struct{}

func (shortLabelMatcher) match(line string) (Heading, bool) {
	if utf8.RuneCountInString(line) > maxLabelRunes {
		return Heading{}, false
	}
	if !strings.HasSuffix(line, ":") && !strings.HasSuffix(line, "：") {
		return Heading{}, false
	}
	if !labelWordRe.MatchString(line) {
		return Heading{}, false
	}
	title := strings.TrimSuffix(strings.TrimSuffix(line, ":"), "：")
	return Heading{Level: 1, Title: strings.TrimSpace(title)}, true
}
