package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/articlekit/articled/internal/citation"
	"github.com/articlekit/articled/internal/store"
	"github.com/go-chi/chi/v5"
)

// handleArticle returns the parsed section list for a markdown article.
func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "articleID")

	style, ok := s.citationStyle(r.URL.Query().Get("style"))
	if !ok {
		jsonError(w, "unknown citation style", http.StatusBadRequest)
		return
	}

	payload, err := s.articles.Article(r.Context(), id, style)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "article not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("article parse failed", "id", id, "error", err)
		jsonError(w, "failed to load article", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// handleResults returns the companion JSON results for an article.
// A missing results file is not an error: data is null.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "articleID")

	payload, err := s.articles.Results(r.Context(), id)
	if err != nil {
		s.log.Error("results load failed", "id", id, "error", err)
		jsonError(w, "failed to load results", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// citationStyle maps the style query parameter to a citation.Style,
// defaulting from config when absent.
func (s *Server) citationStyle(param string) (citation.Style, bool) {
	if param == "" {
		param = s.cfg.CitationStyle
	}
	switch param {
	case "bracket":
		return citation.StyleBracketNumbered, true
	case "wiki":
		return citation.StyleWikipedia, true
	default:
		return "", false
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
