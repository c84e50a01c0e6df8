package section

import (
	"bytes"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// ContentRenderer turns the raw lines accumulated for a section into its
// Content string.
type ContentRenderer func(lines []string) string

// PlainText joins the trimmed non-blank lines with single spaces. This is
// the canonical content form consumed by the citation extractor.
func PlainText(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		sb.WriteString(t)
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}

// NewHTMLRenderer returns a renderer that converts a section's markdown
// to HTML with GFM extensions and chroma-classed syntax highlighting,
// for callers that still want rich block rendering. Conversion failures
// fall back to plain text.
func NewHTMLRenderer() ContentRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return func(lines []string) string {
		var buf bytes.Buffer
		if err := md.Convert([]byte(strings.Join(lines, "\n")), &buf); err != nil {
			return PlainText(lines)
		}
		return strings.TrimSpace(buf.String())
	}
}
