package config

import (
	"errors"
)

// ErrInvalidConfig marks a value rejected by Validate; ErrLoadConfig marks a
// dotenv, YAML or environment layer that could not be read.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
