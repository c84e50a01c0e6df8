package citation

import (
	"reflect"
	"testing"
)

func TestExtractBracketNumbered(t *testing.T) {
	input := "[1. (Smith 2020) Some Title](http://example.com/a), [2. (Doe 2021) Other](http://example.com/b)"
	got := ExtractBracketNumbered(input)
	want := []Citation{
		{Citation: "Some Title", Link: "http://example.com/a"},
		{Citation: "Other", Link: "http://example.com/b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestExtractBracketNumbered_WhitespaceNormalized(t *testing.T) {
	input := "[1. (Smith 2020)  Some\n  Title](http://example.com/a)"
	got := ExtractBracketNumbered(input)
	if len(got) != 1 {
		t.Fatalf("expected 1 citation, got %+v", got)
	}
	if got[0].Citation != "Some Title" || got[0].Link != "http://example.com/a" {
		t.Errorf("unexpected citation: %+v", got[0])
	}
}

func TestExtractBracketNumbered_DOINoise(t *testing.T) {
	input := "[1. (Smith 2020) Title, URL: http://dx.doi.org/10.1000/abc, Journal](http://example.com/a)"
	got := ExtractBracketNumbered(input)
	if len(got) != 1 {
		t.Fatalf("expected 1 citation, got %+v", got)
	}
	if got[0].Citation != "Title, Journal" {
		t.Errorf("expected DOI noise removed, got %q", got[0].Citation)
	}
	if got[0].Link != "http://example.com/a" {
		t.Errorf("expected link kept, got %q", got[0].Link)
	}
}

func TestExtractBracketNumbered_NoMarker(t *testing.T) {
	// Text without entry markers degrades to a single citation.
	got := ExtractBracketNumbered("Loose reference text](http://example.com/x)")
	if len(got) != 1 {
		t.Fatalf("expected 1 citation, got %+v", got)
	}
	if got[0].Link != "http://example.com/x" {
		t.Errorf("expected link extracted, got %q", got[0].Link)
	}
	if got[0].Citation != "Loose reference text" {
		t.Errorf("expected remnant stripped, got %q", got[0].Citation)
	}
}

func TestExtractBracketNumbered_NoURL(t *testing.T) {
	got := ExtractBracketNumbered("[1. (Smith 2020) Unlinked Title")
	if len(got) != 1 {
		t.Fatalf("expected 1 citation, got %+v", got)
	}
	if got[0].Link != "" {
		t.Errorf("expected empty link, got %q", got[0].Link)
	}
	if got[0].Citation != "Unlinked Title" {
		t.Errorf("got %q", got[0].Citation)
	}
}

func TestExtractBracketNumbered_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		if got := ExtractBracketNumbered(input); len(got) != 0 {
			t.Errorf("input %q: expected no citations, got %+v", input, got)
		}
	}
}
