package api

import "net/http"

// CatalogHandler serves read-only catalog listings.
type CatalogHandler struct {
	deps Dependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps Dependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// HandleGetCategories handles GET /categories requests.
func (h *CatalogHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_categories"
	if r.Method != http.MethodGet {
		notFound(w, op)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Categories(r.Context()))
}

// HandleGetVenues handles GET /venues requests.
func (h *CatalogHandler) HandleGetVenues(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_venues"
	if r.Method != http.MethodGet {
		notFound(w, op)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Venues(r.Context()))
}
