package citation

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// entryStartRe marks the beginning of a numbered citation with a
	// parenthetical source: "[3. (Smith 2020) ".
	entryStartRe = regexp.MustCompile(`\[\d+\.\s\([^()]*\)\s`)
	markerRe     = regexp.MustCompile(`^\[\d+\.\s\([^()]*\)\s*`)
	mdLinkRe     = regexp.MustCompile(`\]\((https?://[^)\s]+)\)`)
	// doiNoiseRe matches an embedded DOI remnant from the source format.
	doiNoiseRe = regexp.MustCompile(`\s*URL:\s*https?://dx\.doi\.org/[^,]*,`)
	remnantRe  = regexp.MustCompile(`\]\([^)]*\)`)
)

// ExtractBracketNumbered parses run-on references shaped like
// "[1. (Smith 2020) Some Title](http://...), [2. ...". The text is
// whitespace-normalized, split at entry-start markers, and each fragment
// reduced to its display string and first markdown-link URL.
func ExtractBracketNumbered(text string) []Citation {
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(stripTags(text), " "))
	if text == "" {
		return nil
	}

	starts := entryStartRe.FindAllStringIndex(text, -1)
	var fragments []string
	if len(starts) == 0 {
		fragments = []string{text}
	} else {
		if starts[0][0] > 0 {
			fragments = append(fragments, text[:starts[0][0]])
		}
		for i, m := range starts {
			end := len(text)
			if i+1 < len(starts) {
				end = starts[i+1][0]
			}
			fragments = append(fragments, text[m[0]:end])
		}
	}

	var out []Citation
	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		frag = markerRe.ReplaceAllString(frag, "")

		link := ""
		if m := mdLinkRe.FindStringSubmatch(frag); m != nil {
			link = m[1]
		}

		frag = doiNoiseRe.ReplaceAllString(frag, "")
		frag = remnantRe.ReplaceAllString(frag, "")
		frag = strings.TrimRight(strings.TrimSpace(frag), " ,")
		out = append(out, Citation{Citation: frag, Link: link})
	}
	return out
}
