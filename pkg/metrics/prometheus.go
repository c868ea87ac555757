// Package metrics provides Prometheus metrics for the dining recommender.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every metric the service exports.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Recommendation metrics
	recommendations     *prometheus.CounterVec
	recommendationSize  prometheus.Histogram
	normalizeOutcomes   *prometheus.CounterVec
	timeFallbacks       prometheus.Counter
	catalogVenues       prometheus.Gauge
	catalogCategories   prometheus.Gauge
	catalogSynonymTerms prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
	errorsByType        *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by the package-level recorders

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // exposed via GetRegistry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "campusdine",
		subsystem:        "recommender",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     buckets,
	}
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recommendations = auto.NewCounterVec(
		m.counterOpts("recommendations_total", "Recommendation requests by resolved category"),
		[]string{"category"},
	)
	m.recommendationSize = auto.NewHistogram(
		m.histogramOpts("recommendation_matches", "Number of venues returned per recommendation",
			[]float64{0, 1, 2, 3, 4, 5, 8}),
	)
	m.normalizeOutcomes = auto.NewCounterVec(
		m.counterOpts("normalize_outcomes_total", "Food normalization results by rule"),
		[]string{"kind"},
	)
	m.timeFallbacks = auto.NewCounter(
		m.counterOpts("time_fallbacks_total", "Requests whose time could not be parsed and used the wall clock"),
	)
	m.catalogVenues = auto.NewGauge(m.gaugeOpts("catalog_venues", "Venues in the catalog"))
	m.catalogCategories = auto.NewGauge(m.gaugeOpts("catalog_categories", "Distinct categories, Desserts included"))
	m.catalogSynonymTerms = auto.NewGauge(m.gaugeOpts("catalog_synonym_terms", "Entries in the synonym table"))

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)
	m.errorsByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "HTTP errors by endpoint, method and error type"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorsByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Errors by type and severity"),
		[]string{"error_type", "severity"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "Heap bytes allocated"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
}

// RecordRecommendation counts one served recommendation and its match count.
func RecordRecommendation(category string, matches int) {
	globalManager.recommendations.WithLabelValues(category).Inc()
	globalManager.recommendationSize.Observe(float64(matches))
}

// RecordNormalizeOutcome counts which normalization rule resolved an input.
func RecordNormalizeOutcome(kind string) {
	globalManager.normalizeOutcomes.WithLabelValues(kind).Inc()
}

// RecordTimeFallback counts a request that fell back to the wall clock.
func RecordTimeFallback() {
	globalManager.timeFallbacks.Inc()
}

// UpdateCatalogSize publishes the static catalog dimensions.
func UpdateCatalogSize(venues, categories, synonymTerms int) {
	globalManager.catalogVenues.Set(float64(venues))
	globalManager.catalogCategories.Set(float64(categories))
	globalManager.catalogSynonymTerms.Set(float64(synonymTerms))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
