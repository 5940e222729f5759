package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/ymiyake/sectree/internal/export"
	"github.com/ymiyake/sectree/internal/extract"
	"github.com/ymiyake/sectree/internal/outline"
)

// Export formats the API can render.
const (
	FormatJSON    = "json"
	FormatDOT     = "dot"
	FormatMermaid = "mermaid"
	FormatOutline = "outline"
	FormatEdges   = "edges"
)

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !extract.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	depth, err := s.parseDepth(r.FormValue("depth"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if depth <= 0 {
		warnEmptyDepth(w, depth)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	tree, err := s.buildTree(data, filename, depth)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.writeExport(w, tree, formatOr(r.FormValue("format")))
}

// handleOutlineText accepts raw text in the request body, the paste-text
// input mode.
func (s *Server) handleOutlineText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	depth, err := s.parseDepth(r.URL.Query().Get("depth"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if depth <= 0 {
		warnEmptyDepth(w, depth)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		jsonError(w, "text body is required", http.StatusBadRequest)
		return
	}

	tree, err := s.buildTree(data, "body.txt", depth)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.writeExport(w, tree, formatOr(r.URL.Query().Get("format")))
}

// handleOutlineBatch outlines several documents in one request. Each
// document pipeline is independent, so they run concurrently under a
// configured bound.
func (s *Server) handleOutlineBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	depth, err := s.parseDepth(r.FormValue("depth"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if depth <= 0 {
		warnEmptyDepth(w, depth)
		return
	}
	format := formatOr(r.FormValue("format"))

	results := make([]map[string]any, len(files))
	sem := make(chan struct{}, s.cfg.MaxConcurrentBuilds)
	var wg sync.WaitGroup

	for i, fh := range files {
		wg.Add(1)
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.outlineOne(fh, depth, format)
		}(i, fh)
	}
	wg.Wait()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": results})
}

// outlineOne runs the pipeline for one batch entry, folding failures into
// the result row.
func (s *Server) outlineOne(fh *multipart.FileHeader, depth int, format string) map[string]any {
	filename := sanitizeFilename(fh.Filename)
	if !extract.IsSupportedExtension(filename) {
		return map[string]any{
			"filename": filename,
			"error":    fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)),
		}
	}

	f, err := fh.Open()
	if err != nil {
		return map[string]any{"filename": filename, "error": "failed to open file"}
	}
	data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	f.Close()
	if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
		return map[string]any{"filename": filename, "error": "file too large or read error"}
	}

	tree, err := s.buildTree(data, filename, depth)
	if err != nil {
		return map[string]any{"filename": filename, "error": err.Error()}
	}
	payload, err := renderExport(tree, format)
	if err != nil {
		return map[string]any{"filename": filename, "error": err.Error()}
	}
	return map[string]any{"filename": filename, "outline": payload}
}

// buildTree runs extraction and outline construction for one document.
func (s *Server) buildTree(data []byte, filename string, depth int) (*outline.Node, error) {
	ex, err := extract.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if pdf, ok := ex.(*extract.PDFExtractor); ok {
		pdf.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	lines, err := ex.Lines(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}

	root := outline.Promote(outline.Build(lines))
	return outline.Trim(root, depth), nil
}

// parseDepth resolves the requested depth, applying the configured default
// and cap. Zero and negative values pass through; the caller reports them as
// the distinct "no content" outcome.
func (s *Server) parseDepth(raw string) (int, error) {
	if raw == "" {
		return s.cfg.DefaultDepth, nil
	}
	depth, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid depth: %q", raw)
	}
	if depth > s.cfg.MaxDepth {
		depth = s.cfg.MaxDepth
	}
	return depth, nil
}

func formatOr(format string) string {
	if format == "" {
		return FormatJSON
	}
	return strings.ToLower(format)
}

// warnEmptyDepth reports the depth<=0 outcome: valid, but nothing to show.
func warnEmptyDepth(w http.ResponseWriter, depth int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string]any{
		"warning": "no content at this depth",
		"depth":   depth,
	})
}

// writeExport renders the tree in the requested format with its natural
// content type.
func (s *Server) writeExport(w http.ResponseWriter, tree *outline.Node, format string) {
	switch format {
	case FormatJSON:
		data, err := export.JSON(tree)
		if err != nil {
			jsonError(w, "failed to encode tree: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	case FormatDOT:
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		io.WriteString(w, export.DOT(tree))
	case FormatMermaid:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, export.Mindmap(tree))
	case FormatOutline:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, export.Outline(tree))
	case FormatEdges:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(export.Edges(tree))
	default:
		jsonError(w, "unknown format: "+format, http.StatusBadRequest)
	}
}

// renderExport produces the export payload for embedding in a JSON envelope.
func renderExport(tree *outline.Node, format string) (any, error) {
	switch format {
	case FormatJSON:
		return tree, nil
	case FormatDOT:
		return export.DOT(tree), nil
	case FormatMermaid:
		return export.Mindmap(tree), nil
	case FormatOutline:
		return export.Outline(tree), nil
	case FormatEdges:
		return export.Edges(tree), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
