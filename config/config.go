// Package config provides configuration management for fashionbench.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/ortall0201/fashionbench/logger"
)

// Config holds immutable runtime configuration.
type Config struct {
	// DataDir is the directory holding the *.jsonl datasets.
	DataDir string
	// Model is the display label for the (simulated) model under test.
	Model string
	// PassThreshold overrides every suite's pass threshold when > 0.
	PassThreshold float64
	// Parallelism is the per-suite case evaluation parallelism.
	Parallelism int
	// Verbose enables per-example output in the CLI.
	Verbose bool

	// Logger receives diagnostic output.
	Logger logger.Logger
}

// FromEnv loads configuration from environment variables with defaults.
//
// Supported environment variables:
//   - FASHIONBENCH_DATA_DIR: dataset directory (default: "datasets")
//   - FASHIONBENCH_MODEL: model label (default: "simulated")
//   - FASHIONBENCH_THRESHOLD: global pass threshold override (default: unset)
//   - FASHIONBENCH_PARALLELISM: case parallelism (default: 1)
//   - FASHIONBENCH_VERBOSE: per-example output (default: false)
//   - FASHIONBENCH_DEBUG: debug logging (default: false)
func FromEnv() *Config {
	return &Config{
		DataDir:       getEnvString("FASHIONBENCH_DATA_DIR", "datasets"),
		Model:         getEnvString("FASHIONBENCH_MODEL", "simulated"),
		PassThreshold: getEnvFloat("FASHIONBENCH_THRESHOLD", 0),
		Parallelism:   getEnvInt("FASHIONBENCH_PARALLELISM", 1),
		Verbose:       getEnvBool("FASHIONBENCH_VERBOSE", false),
		Logger:        logger.NewDefaultLogger(),
	}
}

// getEnvString returns the trimmed environment variable value or the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// getEnvBool returns the environment variable as a bool or the default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(strings.TrimSpace(value)) == "true"
	}
	return defaultValue
}

// getEnvFloat returns the environment variable as a float64 or the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvInt returns the environment variable as an int or the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return defaultValue
}
