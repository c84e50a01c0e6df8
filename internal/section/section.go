package section

import (
	"time"

	"github.com/articlekit/articled/internal/citation"
)

// Section is one titled slice of a generated article, tagged with the
// breadcrumb of enclosing heading titles.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	// Hierarchy is the heading titles from the document root down to this
	// section, joined with " > ".
	Hierarchy string `json:"hierarchy"`
	// Citations replaces Content for "References" sections; Content is
	// forced empty once citations are derived.
	Citations []citation.Citation `json:"citations,omitempty"`
}

// Meta is the optional YAML front matter carried by generated articles.
// Articles without front matter yield the zero Meta.
type Meta struct {
	Title  string    `json:"title,omitempty" yaml:"title"`
	Author string    `json:"author,omitempty" yaml:"author"`
	Date   time.Time `json:"date,omitempty" yaml:"date"`
	Tags   []string  `json:"tags,omitempty" yaml:"tags"`
	Model  string    `json:"model,omitempty" yaml:"model"`
}
