package probe

import (
	"context"
	"fmt"
	"slices"

	"github.com/okian/campusdine/pkg/logger"
)

// verifyResults compares each answer with the locally computed one.
func verifyResults(ctx context.Context, config *Config, results []Result, stats *Stats) error {
	log := logger.Get()

	for _, r := range results {
		switch {
		case r.Err != nil:
			stats.ProbesFailed++
			stats.Mismatches = append(stats.Mismatches, Mismatch{Probe: r.Probe, Err: r.Err})
		case !slices.Equal(r.Got, r.Probe.Expected):
			stats.Mismatches = append(stats.Mismatches, Mismatch{Probe: r.Probe, Got: r.Got})
		default:
			stats.ProbesMatched++
		}
	}

	if config.Verbose {
		for _, m := range stats.Mismatches {
			log.Warn(ctx, "probe mismatch",
				logger.String("id", m.Probe.ID),
				logger.String("food", m.Probe.Food),
				logger.String("time", m.Probe.Time),
				logger.Any("expected", m.Probe.Expected),
				logger.Any("got", m.Got),
				logger.Error(m.Err),
			)
		}
	}

	if len(stats.Mismatches) > 0 {
		return fmt.Errorf("%w: %d of %d probes", ErrMismatch, len(stats.Mismatches), len(results))
	}
	return nil
}
