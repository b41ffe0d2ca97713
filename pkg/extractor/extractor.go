// Package extractor turns document files (plain text, HTML, PDF, DOCX)
// into analyzable prose.
package extractor

import (
	"context"
	"strings"
)

// Extractor extracts plain text from raw file content.
type Extractor interface {
	Extract(ctx context.Context, content []byte) (string, error)
}

// Engine dispatches extraction by file format.
type Engine struct {
	extractors map[string]Extractor
}

// NewEngine creates an engine covering the supported document formats.
func NewEngine() *Engine {
	text := &TextExtractor{}
	htmlEx := &HTMLExtractor{}
	docxEx := &DOCXExtractor{}
	return &Engine{
		extractors: map[string]Extractor{
			"text": text,
			"txt":  text,
			"md":   text,
			"html": htmlEx,
			"htm":  htmlEx,
			"pdf":  &PDFExtractor{MaxPages: 1000},
			"docx": docxEx,
			"doc":  docxEx,
		},
	}
}

// Extract extracts text from content in the given format (a file
// extension, without the dot). Unknown formats fall back to plain text.
func (e *Engine) Extract(ctx context.Context, content []byte, format string) (string, error) {
	ex, ok := e.extractors[strings.ToLower(strings.TrimPrefix(format, "."))]
	if !ok {
		ex = e.extractors["text"]
	}
	return ex.Extract(ctx, content)
}

// TextExtractor passes plain text through with newline normalization.
type TextExtractor struct{}

func (t *TextExtractor) Extract(ctx context.Context, content []byte) (string, error) {
	text := string(content)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text), nil
}
