package section

import (
	"regexp"
	"strings"

	"github.com/articlekit/articled/internal/citation"
)

// referencesTitle marks the section whose content is handed to the
// citation extractor.
const referencesTitle = "References"

// headingRe matches an ATX heading line. Depth is the number of leading
// '#' characters, title the trimmed remainder.
var headingRe = regexp.MustCompile(`^(#+)\s*(.*?)\s*$`)

// Builder folds a markdown document into an ordered list of Sections.
// The zero value renders plain text content and extracts citations
// wikipedia-style.
type Builder struct {
	// Renderer turns the raw lines accumulated for a section into its
	// Content string. Nil means PlainText.
	Renderer ContentRenderer
	// Style selects the citation heuristic applied to "References"
	// sections.
	Style citation.Style
}

// flushed pairs a section with the raw text it was rendered from. The
// citation extractor works on the raw lines so that line-oriented
// heuristics survive rendering.
type flushed struct {
	sec Section
	raw string
}

// Build parses markdown into sections. It is a total function: any input
// yields a (possibly empty) list, never an error. The first line of the
// document is the root title; a heading at depth d truncates the running
// hierarchy to d-1 titles before appending itself.
func (b *Builder) Build(markdown string) []Section {
	render := b.Renderer
	if render == nil {
		render = PlainText
	}

	body := strings.TrimLeft(markdown, "\r\n")
	if strings.TrimSpace(body) == "" {
		return nil
	}
	lines := strings.Split(body, "\n")

	rootTitle := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(lines[0]), "#"))
	all := []flushed{{sec: Section{Title: rootTitle, Content: "", Hierarchy: rootTitle}}}
	hierarchy := []string{rootTitle}

	var buf []string
	flush := func() {
		content := strings.TrimSpace(render(buf))
		if content == "" && len(hierarchy) <= 1 {
			return
		}
		all = append(all, flushed{
			sec: Section{
				Title:     hierarchy[len(hierarchy)-1],
				Content:   content,
				Hierarchy: strings.Join(hierarchy, " > "),
			},
			raw: rawText(buf),
		})
	}

	for _, line := range lines[1:] {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			buf = append(buf, line)
			continue
		}
		flush()
		depth := len(m[1])
		// Truncate to the parent depth, then append. A heading deeper
		// than the current chain+1 appends to what exists.
		if depth-1 < len(hierarchy) {
			hierarchy = hierarchy[:depth-1]
		}
		hierarchy = append(hierarchy, m[2])
		buf = buf[:0]
	}
	flush()

	sections := make([]Section, 0, len(all))
	for i, f := range all {
		// Drop flushed sections (other than the root itself) that carry
		// no content and whose hierarchy is just the root title. These
		// are artifacts of flushing at the first heading.
		if i > 0 && f.sec.Content == "" && f.sec.Hierarchy == rootTitle {
			continue
		}
		if f.sec.Title == referencesTitle && f.sec.Content != "" {
			f.sec.Citations = citation.Extract(b.Style, f.raw)
			f.sec.Content = ""
		}
		sections = append(sections, f.sec)
	}
	return sections
}

// rawText joins the trimmed non-blank lines with newlines, preserving
// the per-line structure the citation heuristics depend on.
func rawText(lines []string) string {
	var kept []string
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, "\n")
}
