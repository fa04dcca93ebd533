package seqreport

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// notesConverter converts Markdown run notes to an HTML fragment suitable
// for embedding as a text content item.
type notesConverter struct {
	md goldmark.Markdown
}

// newNotesConverter creates a converter with GFM extensions and syntax
// highlighting. Chroma emits CSS classes so the scaffold stylesheet owns
// the highlight colors.
func newNotesConverter() *notesConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &notesConverter{md: md}
}

// toHTML converts Markdown content to an HTML fragment.
func (c *notesConverter) toHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}
