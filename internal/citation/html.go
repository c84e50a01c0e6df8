package citation

import (
	"strings"

	"golang.org/x/net/html"
)

// stripTags drops HTML markup from references text, keeping only text
// content. Section content may arrive rendered rather than as raw
// markdown; the extraction regexes operate on the visible text.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	tok := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(tok.Text())
		}
	}
}
