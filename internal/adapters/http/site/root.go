// Package site serves the browser front page of the recommender.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error constants
var (
	ErrRender = errors.New("index page render failed")
)

const pageTitle = "Campus Dining Finder"

// CategoryLister supplies the categories offered on the page.
type CategoryLister interface {
	Categories(ctx context.Context) []string
}

// Register attaches the front page to mux.
func Register(_ context.Context, mux *http.ServeMux, lister CategoryLister) {
	if mux == nil {
		panic("mux is nil")
	}
	if lister == nil {
		panic("category lister is nil")
	}

	mux.HandleFunc("/", NewRootHandler(lister).HandleRoot)
}

// RootHandler renders the index page.
type RootHandler struct {
	lister CategoryLister
}

// NewRootHandler creates a new root handler
func NewRootHandler(lister CategoryLister) *RootHandler {
	return &RootHandler{lister: lister}
}

type pageData struct {
	Title      string
	Categories []string
}

// HandleRoot handles GET / requests. Any other path under / is not found.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	data := pageData{Title: pageTitle, Categories: h.lister.Categories(r.Context())}
	if err := indexTemplate.Execute(&buf, data); err != nil {
		http.Error(w, fmt.Errorf("%w: %w", ErrRender, err).Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
