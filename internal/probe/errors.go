package probe

import "errors"

// Sentinel errors for probe runs.
var (
	ErrUnhealthy = errors.New("service unhealthy")
	ErrMismatch  = errors.New("recommendations differ from local filter")
	ErrNoProbes  = errors.New("no probes generated")

	ErrNotSubmitted = errors.New("probe not submitted")
)
