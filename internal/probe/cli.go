package probe

import (
	"fmt"
	"os"

	"github.com/okian/campusdine/pkg/logger"
)

// SetupLogging initializes the logger for the CLI.
func SetupLogging(format string, verbose bool) error {
	if err := logger.Init(logger.WithFormat(format)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the probe tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Campus Dining Probe
===================

Sends every category and synonym term, at every time step across the day,
to a running recommender and checks each answer against the built-in catalog.

Usage:
  go run ./cmd/probe [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:5000")
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -step int
        Minutes between probe times (default 30)
  -output string
        Write the probe grid as JSON to this file
  -log-format string
        text or json (default "text")
  -verbose
        Log every mismatch
  -help
        Show this help message

Examples:
  go run ./cmd/probe -url http://localhost:8080 -step 15
  go run ./cmd/probe -verbose -output probes.json
`)
}
