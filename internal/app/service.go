// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/campusdine/internal/domain/catalog"
	"github.com/okian/campusdine/internal/domain/clock"
	"github.com/okian/campusdine/internal/domain/model"
	"github.com/okian/campusdine/internal/domain/normalize"
	"github.com/okian/campusdine/internal/domain/recommend"
	"github.com/okian/campusdine/internal/domain/types"
	"github.com/okian/campusdine/pkg/logger"
	"github.com/okian/campusdine/pkg/metrics"
)

const unknownCategoryLabel = "unknown"

// Service implements the API dependencies for the dining recommender.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog    *catalog.Catalog
	converter  *clock.Converter
	normalizer *normalize.Normalizer
	filter     *recommend.Filter

	// Configuration
	now func() time.Time

	// State
	started       bool
	served        atomic.Int64
	emptyResults  atomic.Int64
	timeFallbacks atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the wall clock used when a request carries no usable time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCatalog replaces the reference catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// New constructs a new Service over the reference catalog.
func New(opts ...Option) *Service {
	s := &Service{
		catalog: catalog.Default(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.converter = clock.New(clock.WithNow(s.now))
	s.normalizer = normalize.New(s.catalog)
	s.filter = recommend.NewFilter(s.catalog, s.normalizer)

	return s
}

// Start publishes catalog metrics and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	categories := len(s.catalog.Categories())
	synonyms := len(s.catalog.SynonymTerms())
	metrics.UpdateCatalogSize(s.catalog.Len(), categories, synonyms)

	s.started = true
	s.logger.Info(ctx, "dining service started",
		logger.Int("venues", s.catalog.Len()),
		logger.Int("categories", categories),
		logger.Int("synonymTerms", synonyms),
	)

	return nil
}

// Stop marks the service stopped. It is safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "dining service stopped",
		logger.Int("served", int(s.served.Load())),
	)
}

// Recommend answers a query. Both fields are trimmed; an unusable time is
// replaced by the current wall-clock time.
func (s *Service) Recommend(ctx context.Context, q model.Query) types.Recommendation {
	log := s.log()

	at, fellBack := s.converter.Resolve(strings.TrimSpace(q.TimeText))
	if fellBack {
		s.timeFallbacks.Add(1)
		metrics.RecordTimeFallback()
		log.Warn(ctx, "time not understood, using current time",
			logger.String("time", q.TimeText),
			logger.String("using", clock.ToDisplay(at)),
		)
	}

	category, kind := s.normalizer.Resolve(strings.TrimSpace(q.FoodText))
	metrics.RecordNormalizeOutcome(string(kind))

	matches := s.filter.FindCategory(category, at)

	// Passthrough text is caller-controlled; keep it out of metric labels.
	label := category
	if kind == normalize.KindPassthrough {
		label = unknownCategoryLabel
	}
	metrics.RecordRecommendation(label, len(matches))

	s.served.Add(1)
	if len(matches) == 0 {
		s.emptyResults.Add(1)
	}

	log.Debug(ctx, "recommendation computed",
		logger.String("food", q.FoodText),
		logger.String("category", category),
		logger.String("rule", string(kind)),
		logger.Int("time", at),
		logger.Int("matches", len(matches)),
	)

	return types.Recommendation{
		Success:         true,
		Recommendations: matches,
		Count:           len(matches),
	}
}

// Categories returns the sorted category list.
func (s *Service) Categories(_ context.Context) []string {
	return s.catalog.Categories()
}

// Venues lists the catalog with display times and weekday names.
func (s *Service) Venues(_ context.Context) []types.VenueListing {
	venues := s.catalog.Venues()
	out := make([]types.VenueListing, 0, len(venues))
	for _, v := range venues {
		days := make([]string, 0, len(v.OpenDays))
		for _, d := range v.OpenDays {
			days = append(days, d.String())
		}
		out = append(out, types.VenueListing{
			Name:      v.Name,
			Foods:     v.Foods,
			OpenDays:  days,
			OpenTime:  clock.ToDisplay(v.OpenTime),
			CloseTime: clock.ToDisplay(v.CloseTime),
		})
	}
	return out
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":               s.started,
		"venues":                s.catalog.Len(),
		"categories":            len(s.catalog.Categories()),
		"synonymTerms":          len(s.catalog.SynonymTerms()),
		"recommendationsServed": s.served.Load(),
		"emptyResults":          s.emptyResults.Load(),
		"timeFallbacks":         s.timeFallbacks.Load(),
		"currentTime":           clock.ToDisplay(s.converter.Now()),
	}
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	l := s.logger
	s.mu.RUnlock()
	if l == nil {
		return logger.Get().Named("service")
	}
	return l
}
