package citation

import (
	"regexp"
	"strings"
)

var (
	parenURLRe    = regexp.MustCompile(`\((https?://[^\s)]+)\)`)
	trailingURLRe = regexp.MustCompile(`\s*\(https?://[^\s)]+\)\s*$`)
)

// ExtractWikipedia parses one reference per line, shaped like
// "Some Title (http://...)". A line with no parenthesized URL yields a
// citation with an empty link.
func ExtractWikipedia(text string) []Citation {
	var out []Citation
	for _, line := range strings.Split(stripTags(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		link := ""
		if m := parenURLRe.FindStringSubmatch(line); m != nil {
			link = m[1]
		}
		cite := strings.TrimSpace(trailingURLRe.ReplaceAllString(line, ""))
		out = append(out, Citation{Citation: cite, Link: link})
	}
	return out
}
