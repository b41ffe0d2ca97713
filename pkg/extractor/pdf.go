package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts text from PDF content. Pages past MaxPages are
// skipped; pages that fail to decode are skipped rather than aborting
// the whole document.
type PDFExtractor struct {
	MaxPages int
}

func (p *PDFExtractor) Extract(ctx context.Context, content []byte) (string, error) {
	if len(content) < 4 || string(content[:4]) != "%PDF" {
		return "", fmt.Errorf("not a valid PDF file")
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("parsing PDF: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if p.MaxPages > 0 && i > p.MaxPages {
			break
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n\n")
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("PDF contains no extractable text")
	}
	return text, nil
}
