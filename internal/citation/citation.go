// Package citation extracts citation records from the free-text
// "References" blocks of generated articles. Both heuristics are total
// functions: malformed input degrades to partial or empty output, never
// an error.
package citation

// Style selects the extraction heuristic. It is an explicit flag injected
// by the caller, never inferred from the text.
type Style string

const (
	// StyleBracketNumbered handles run-on references of the form
	// "[1. (Source 2020) Title](http://...), [2. ...".
	StyleBracketNumbered Style = "bracket"
	// StyleWikipedia handles one reference per line of the form
	// "Title (http://...)".
	StyleWikipedia Style = "wiki"
)

// Citation is one extracted reference: a display string and a URL.
// Link is the empty string, never absent, when no URL is recoverable.
type Citation struct {
	Citation string `json:"citation"`
	Link     string `json:"link"`
}

// Extract dispatches on style. Unknown styles use the wikipedia-style
// heuristic, which degrades most gracefully on arbitrary lines.
func Extract(style Style, text string) []Citation {
	switch style {
	case StyleBracketNumbered:
		return ExtractBracketNumbered(text)
	default:
		return ExtractWikipedia(text)
	}
}
