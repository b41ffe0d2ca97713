package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCXExtractor extracts text from DOCX content.
type DOCXExtractor struct{}

func (d *DOCXExtractor) Extract(ctx context.Context, content []byte) (string, error) {
	// DOCX files are ZIP archives; check the signature before parsing.
	if len(content) < 4 || content[0] != 0x50 || content[1] != 0x4B {
		return "", fmt.Errorf("not a valid DOCX file")
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("parsing DOCX: %w", err)
	}

	text := doc.Editable().GetContent()
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)

	if text == "" {
		return "", fmt.Errorf("DOCX contains no extractable text")
	}
	return text, nil
}
