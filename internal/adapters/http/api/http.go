// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/campusdine/internal/domain/model"
	"github.com/okian/campusdine/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Recommend answers a food/time query. It never fails.
	Recommend(ctx context.Context, q model.Query) types.Recommendation

	// Read operations expose the catalog.
	Categories(ctx context.Context) []string
	Venues(ctx context.Context) []types.VenueListing
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	recommendHandler *RecommendHandler
	catalogHandler   *CatalogHandler
	maxBodyBytes     int64
}

// NewServer creates a new API server with all handlers. Request bodies are
// capped at maxBodyBytes; a non-positive value disables the cap.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxBodyBytes int64) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		recommendHandler: NewRecommendHandler(deps),
		catalogHandler:   NewCatalogHandler(deps),
		maxBodyBytes:     maxBodyBytes,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.wrap(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", s.wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommend", s.wrap(s.recommendHandler.HandlePostRecommend, "recommend"))
	mux.HandleFunc("/categories", s.wrap(s.catalogHandler.HandleGetCategories, "categories"))
	mux.HandleFunc("/venues", s.wrap(s.catalogHandler.HandleGetVenues, "venues"))
}

func (s *Server) wrap(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(MetricsMiddleware(BodyLimitMiddleware(next, s.maxBodyBytes), endpoint))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// notFound answers a request the route does not serve, such as a wrong method.
func notFound(w http.ResponseWriter, op string) {
	writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
