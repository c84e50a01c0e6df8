// Package article wires the store, section builder, and citation
// extractor into the two read paths the UI consumes: parsed articles
// and companion JSON results.
package article

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/articlekit/articled/internal/citation"
	"github.com/articlekit/articled/internal/section"
	"github.com/articlekit/articled/internal/store"
)

// ArticlePayload is the parsed form of a markdown article.
type ArticlePayload struct {
	Meta section.Meta      `json:"meta"`
	Data []section.Section `json:"data"`
}

// ResultsPayload carries the companion JSON document for an article.
// Data is null when no results file exists.
type ResultsPayload struct {
	Data any `json:"data"`
}

// Service reads and parses stored article documents. Every call
// re-parses; there is no cross-call state.
type Service struct {
	store    *store.Store
	renderer section.ContentRenderer
}

func New(st *store.Store, renderer section.ContentRenderer) *Service {
	return &Service{store: st, renderer: renderer}
}

// Article fetches and parses the markdown article with the given id.
// A missing article propagates store.ErrNotFound; the HTTP layer maps
// it to 404 rather than serving an empty page.
func (s *Service) Article(ctx context.Context, id string, style citation.Style) (*ArticlePayload, error) {
	raw, err := s.store.Get(ctx, store.CategoryArticles, id)
	if err != nil {
		return nil, err
	}

	meta, body := section.ParseDocument(raw)
	b := section.Builder{Renderer: s.renderer, Style: style}
	return &ArticlePayload{Meta: meta, Data: b.Build(body)}, nil
}

// Results fetches the companion JSON results for an article. A missing
// file yields {Data: nil} with no error; any other failure propagates.
func (s *Service) Results(ctx context.Context, id string) (*ResultsPayload, error) {
	raw, err := s.store.Get(ctx, store.CategoryResults, id)
	if errors.Is(err, store.ErrNotFound) {
		return &ResultsPayload{Data: nil}, nil
	}
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode results %s: %w", id, err)
	}
	return &ResultsPayload{Data: v}, nil
}
