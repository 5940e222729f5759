// Package extract turns supported document formats into the ordered,
// trimmed, non-empty text lines the outline builder consumes. Byte decoding
// and format quirks stay here; the outline core never sees a file.
package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extractor produces the line sequence for one document format.
type Extractor interface {
	Lines(r io.Reader, filename string) ([]string, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// appendLines splits text on newlines and appends the trimmed non-empty
// ones, preserving order.
func appendLines(dst []string, text string) []string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			dst = append(dst, line)
		}
	}
	return dst
}
