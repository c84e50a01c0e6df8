package article

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/articlekit/articled/internal/citation"
	"github.com/articlekit/articled/internal/store"
)

const sampleArticle = `---
title: Test Article
author: Jordan
tags: [history, science]
---
# Test Article
## Background
Some background text.
## References
Smith 2020 (http://example.com/a)
Unlinked reference
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{store.CategoryArticles, store.CategoryResults} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, store.CategoryArticles, "test.md"), []byte(sampleArticle), 0o644); err != nil {
		t.Fatalf("write article: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, store.CategoryResults, "test.json"), []byte(`{"score": 0.9}`), 0o644); err != nil {
		t.Fatalf("write results: %v", err)
	}
	return New(store.New(root), nil)
}

func TestService_Article(t *testing.T) {
	svc := newTestService(t)

	payload, err := svc.Article(context.Background(), "test", citation.StyleWikipedia)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.Meta.Title != "Test Article" {
		t.Errorf("expected front matter title, got %q", payload.Meta.Title)
	}
	if payload.Meta.Author != "Jordan" {
		t.Errorf("expected author, got %q", payload.Meta.Author)
	}
	if !reflect.DeepEqual(payload.Meta.Tags, []string{"history", "science"}) {
		t.Errorf("expected tags, got %v", payload.Meta.Tags)
	}

	if len(payload.Data) != 3 {
		t.Fatalf("expected 3 sections, got %d: %+v", len(payload.Data), payload.Data)
	}
	refs := payload.Data[2]
	if refs.Title != "References" || refs.Content != "" {
		t.Fatalf("unexpected references section: %+v", refs)
	}
	want := []citation.Citation{
		{Citation: "Smith 2020", Link: "http://example.com/a"},
		{Citation: "Unlinked reference", Link: ""},
	}
	if !reflect.DeepEqual(refs.Citations, want) {
		t.Errorf("citations mismatch:\ngot  %+v\nwant %+v", refs.Citations, want)
	}
}

func TestService_ArticleNotFound(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Article(context.Background(), "missing", citation.StyleWikipedia)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Results(t *testing.T) {
	svc := newTestService(t)

	payload, err := svc.Results(context.Background(), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := payload.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object payload, got %T", payload.Data)
	}
	if m["score"] != 0.9 {
		t.Errorf("got %v", m["score"])
	}
}

func TestService_ResultsNotFound(t *testing.T) {
	svc := newTestService(t)

	payload, err := svc.Results(context.Background(), "missing")
	if err != nil {
		t.Fatalf("missing results must not error, got %v", err)
	}
	if payload.Data != nil {
		t.Errorf("expected nil data, got %v", payload.Data)
	}
}

func TestService_ResultsMalformed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, store.CategoryResults)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	svc := New(store.New(root), nil)
	if _, err := svc.Results(context.Background(), "bad"); err == nil {
		t.Error("expected decode error")
	}
}
