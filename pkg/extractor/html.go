package extractor

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// HTMLExtractor extracts readable prose from an HTML document, skipping
// script, style, and navigation chrome.
type HTMLExtractor struct{}

var blankLines = regexp.MustCompile(`\n{3,}`)

func (h *HTMLExtractor) Extract(ctx context.Context, content []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var b strings.Builder
	collectText(doc, &b)

	text := blankLines.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(text), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "nav", "header", "footer", "aside", "title":
			return
		}
	}

	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			if n.Parent != nil && isBlockElement(n.Parent.Data) {
				b.WriteString("\n")
				b.WriteString(t)
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
				b.WriteString(t)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func isBlockElement(tag string) bool {
	switch tag {
	case "p", "div", "section", "article", "h1", "h2", "h3", "h4", "h5", "h6", "li", "blockquote", "pre":
		return true
	}
	return false
}
