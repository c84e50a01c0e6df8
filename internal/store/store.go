// Package store is a file-backed blob source keyed by (category, id).
// Categories map to subdirectories and file extensions under a single
// data root.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that the backing store has no blob for the key.
var ErrNotFound = errors.New("blob not found")

const (
	// CategoryArticles resolves to <root>/articles/<id>.md.
	CategoryArticles = "articles"
	// CategoryResults resolves to <root>/results/<id>.json.
	CategoryResults = "results"
)

// Store reads blobs from a data directory.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// Get returns the raw bytes for (category, id). A missing blob yields
// ErrNotFound; any other read failure propagates wrapped.
func (s *Store) Get(ctx context.Context, category, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.resolve(category, id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", category, id, err)
	}
	return data, nil
}

func (s *Store) resolve(category, id string) (string, error) {
	var ext string
	switch category {
	case CategoryArticles:
		ext = ".md"
	case CategoryResults:
		ext = ".json"
	default:
		return "", fmt.Errorf("unknown category %q", category)
	}
	if id == "" {
		return "", fmt.Errorf("empty identifier")
	}
	// Refuse identifiers that escape the category directory.
	clean := filepath.Clean(id)
	if clean != id || filepath.IsAbs(clean) ||
		clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("invalid identifier %q", id)
	}
	return filepath.Join(s.root, category, clean+ext), nil
}
