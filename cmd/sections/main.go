// Command sections parses a markdown article file and prints its
// section list as JSON. Useful for inspecting parser output without
// running the server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/articlekit/articled/internal/citation"
	"github.com/articlekit/articled/internal/section"
)

func main() {
	var (
		styleFlag  = flag.String("style", "wiki", "citation style for References sections: bracket or wiki")
		htmlFlag   = flag.Bool("html", false, "render section content as HTML instead of plain text")
		prettyFlag = flag.Bool("pretty", false, "indent the JSON output")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sections [flags] FILE")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var style citation.Style
	switch *styleFlag {
	case "bracket":
		style = citation.StyleBracketNumbered
	case "wiki":
		style = citation.StyleWikipedia
	default:
		fmt.Fprintf(os.Stderr, "unknown citation style %q\n", *styleFlag)
		os.Exit(2)
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	b := section.Builder{Style: style}
	if *htmlFlag {
		b.Renderer = section.NewHTMLRenderer()
	}

	meta, body := section.ParseDocument(raw)
	out := struct {
		Meta section.Meta      `json:"meta"`
		Data []section.Section `json:"data"`
	}{Meta: meta, Data: b.Build(body)}

	enc := json.NewEncoder(os.Stdout)
	if *prettyFlag {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
