package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/campusdine/internal/domain/types"
	"github.com/okian/campusdine/pkg/logger"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body, tagged with requestID.
func (c *HTTPClient) Post(ctx context.Context, url, requestID string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	return c.client.Do(req)
}

// submitProbes sends probes concurrently and returns results in probe order.
func submitProbes(ctx context.Context, config *Config, probes []Probe, stats *Stats) []Result {
	log := logger.Get()
	log.Info(ctx, "submitting probes", logger.Int("probes", len(probes)), logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/recommend"

	// Slots a worker never reaches keep ErrNotSubmitted.
	results := make([]Result, len(probes))
	for i, p := range probes {
		results[i] = Result{Probe: p, Err: ErrNotSubmitted}
	}
	var submitted int64

	indexes := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				results[idx] = submitSingleProbe(ctx, client, url, probes[idx])
				atomic.AddInt64(&submitted, 1)
			}
		}()
	}

	go func() {
		defer close(indexes)
		for i := range probes {
			select {
			case <-ctx.Done():
				return
			case indexes <- i:
			}
		}
	}()

	wg.Wait()

	stats.ProbesSubmitted = int(atomic.LoadInt64(&submitted))
	log.Info(ctx, "probe submission completed", logger.Int("submitted", stats.ProbesSubmitted))
	return results
}

// submitSingleProbe submits one probe and decodes the venue names.
func submitSingleProbe(ctx context.Context, client *HTTPClient, url string, p Probe) Result {
	res := Result{Probe: p}

	resp, err := client.Post(ctx, url, p.ID, recommendRequest{Food: p.Food, Time: p.Time})
	if err != nil {
		res.Err = err
		return res
	}
	defer func() { _ = resp.Body.Close() }()

	res.Status = resp.StatusCode
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Err = fmt.Errorf("read response: %w", err)
		return res
	}
	if resp.StatusCode != StatusOK {
		res.Err = fmt.Errorf("unexpected status %d", resp.StatusCode)
		return res
	}

	var rec types.Recommendation
	if err := json.Unmarshal(body, &rec); err != nil {
		res.Err = fmt.Errorf("decode response: %w", err)
		return res
	}
	if rec.Count != len(rec.Recommendations) {
		res.Err = fmt.Errorf("count %d does not match %d recommendations", rec.Count, len(rec.Recommendations))
		return res
	}
	res.Got = venueNames(rec.Recommendations)
	return res
}
