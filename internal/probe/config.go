package probe

import "time"

// Config holds configuration for a probe run
type Config struct {
	BaseURL     string        // Base URL of the service
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	StepMinutes int           // Spacing of probe times across the day
	OutputFile  string        // Optional JSON dump of the probe grid
	Verbose     bool          // Log every mismatch
}

// Probe is one query sent to the service together with the venues the
// local filter expects back.
type Probe struct {
	ID       string   `json:"id"`
	Food     string   `json:"food"`
	Time     string   `json:"time"`
	Expected []string `json:"expected"`
}

// Result is the outcome of submitting one probe.
type Result struct {
	Probe  Probe
	Status int
	Got    []string
	Err    error
}

// Mismatch describes a probe whose answer differed from the local filter.
type Mismatch struct {
	Probe Probe
	Got   []string
	Err   error
}

// Stats holds run statistics
type Stats struct {
	ProbesGenerated int
	ProbesSubmitted int
	ProbesMatched   int
	ProbesFailed    int
	Mismatches      []Mismatch
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}

// recommendRequest mirrors the body of POST /recommend.
type recommendRequest struct {
	Food string `json:"food"`
	Time string `json:"time"`
}
