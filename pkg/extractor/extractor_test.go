package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractorNormalizesNewlines(t *testing.T) {
	e := NewEngine()

	text, err := e.Extract(context.Background(), []byte("line one\r\nline two\r"), "txt")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
}

func TestUnknownFormatFallsBackToText(t *testing.T) {
	e := NewEngine()

	text, err := e.Extract(context.Background(), []byte("plain content"), "xyz")
	require.NoError(t, err)
	assert.Equal(t, "plain content", text)
}

func TestHTMLExtractorStripsMarkup(t *testing.T) {
	e := NewEngine()
	page := `<html><head><title>Ignored</title><style>p{color:red}</style></head>
<body><nav>menu</nav><p>First paragraph.</p><p>Second <b>bold</b> paragraph.</p>
<script>alert(1)</script></body></html>`

	text, err := e.Extract(context.Background(), []byte(page), "html")
	require.NoError(t, err)

	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "bold")
	assert.NotContains(t, text, "Ignored")
	assert.NotContains(t, text, "menu")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
}

func TestPDFExtractorRejectsNonPDF(t *testing.T) {
	e := NewEngine()

	_, err := e.Extract(context.Background(), []byte("this is not a pdf"), "pdf")
	assert.Error(t, err)
}

func TestDOCXExtractorRejectsNonDOCX(t *testing.T) {
	e := NewEngine()

	_, err := e.Extract(context.Background(), []byte("this is not a docx"), "docx")
	assert.Error(t, err)
}

func TestFormatDispatchIsCaseInsensitive(t *testing.T) {
	e := NewEngine()

	_, err := e.Extract(context.Background(), []byte("not a pdf"), ".PDF")
	assert.Error(t, err, "uppercase extension should still route to the PDF extractor")
}
