package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/campusdine/internal/probe"
)

// Default configuration constants.
const (
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:5000", "Base URL of the service")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		step       = flag.Int("step", probe.DefaultStepMinutes, "Minutes between probe times")
		outputFile = flag.String("output", "", "Write the probe grid as JSON to this file")
		logFormat  = flag.String("log-format", "text", "Log format: text or json")
		verbose    = flag.Bool("verbose", false, "Log every mismatch")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}

	if err := probe.SetupLogging(*logFormat, *verbose); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &probe.Config{
		BaseURL:     *baseURL,
		Workers:     max(*workers, 1),
		Timeout:     *timeout,
		StepMinutes: *step,
		OutputFile:  *outputFile,
		Verbose:     *verbose,
	}

	if _, err := probe.Run(ctx, config); err != nil {
		_, _ = os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
