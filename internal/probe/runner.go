package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/campusdine/internal/domain/catalog"
	"github.com/okian/campusdine/pkg/logger"
)

// Run checks the service, submits the probe grid and verifies every
// answer against the reference catalog. The returned stats are populated
// even when verification fails.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	log := logger.Get()
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "starting dining probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("stepMinutes", config.StepMinutes))

	if err := checkServiceHealth(ctx, config); err != nil {
		return stats, err
	}

	probes := BuildGrid(catalog.Default(), config.StepMinutes)
	stats.ProbesGenerated = len(probes)
	if len(probes) == 0 {
		return stats, ErrNoProbes
	}

	if config.OutputFile != "" {
		if err := saveProbesToFile(ctx, config.OutputFile, probes); err != nil {
			log.Warn(ctx, "failed to save probes to file", logger.Error(err))
		}
	}

	results := submitProbes(ctx, config, probes, stats)
	verifyErr := verifyResults(ctx, config, results, stats)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	return stats, verifyErr
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveProbesToFile writes the probe grid as a JSON array.
func saveProbesToFile(ctx context.Context, filename string, probes []Probe) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(probes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal probes: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "probes saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var matchRate, probesPerSecond float64

	if stats.ProbesSubmitted > 0 {
		matchRate = float64(stats.ProbesMatched) / float64(stats.ProbesSubmitted) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		probesPerSecond = float64(stats.ProbesSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("probesGenerated", stats.ProbesGenerated),
		logger.Int("probesSubmitted", stats.ProbesSubmitted),
		logger.Int("probesMatched", stats.ProbesMatched),
		logger.Int("probesFailed", stats.ProbesFailed),
		logger.Int("mismatches", len(stats.Mismatches)),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("matchRate", matchRate),
		logger.Float64("probesPerSecond", probesPerSecond))
}
