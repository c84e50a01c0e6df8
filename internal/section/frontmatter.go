package section

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// ParseDocument splits an article's optional YAML front matter from its
// markdown body. Articles without front matter yield the zero Meta;
// malformed front matter degrades to the raw source rather than failing.
func ParseDocument(source []byte) (Meta, string) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Meta{}, string(source)
	}
	return meta, string(body)
}
