package config

import (
	"fmt"
	"os"
	"strconv"
)

const EnvEvaluationThreshold = "GAUGE_EVALUATION_NOMINAL_THRESHOLD"

// EvaluationConfig holds measurement evaluation settings.
type EvaluationConfig struct {
	// NominalThreshold is the overshoot/undershoot threshold (mm) for
	// nominal resolution. Callers may still override it per request.
	NominalThreshold float64 `toml:"nominal_threshold"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *EvaluationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *EvaluationConfig) Merge(overlay *EvaluationConfig) {
	if overlay.NominalThreshold != 0 {
		c.NominalThreshold = overlay.NominalThreshold
	}
}

func (c *EvaluationConfig) loadDefaults() {
	if c.NominalThreshold == 0 {
		c.NominalThreshold = 0.9
	}
}

func (c *EvaluationConfig) loadEnv() {
	if v := os.Getenv(EnvEvaluationThreshold); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			c.NominalThreshold = threshold
		}
	}
}

func (c *EvaluationConfig) validate() error {
	if c.NominalThreshold <= 0 || c.NominalThreshold >= 1 {
		return fmt.Errorf("invalid nominal_threshold: %v (must be in (0, 1))", c.NominalThreshold)
	}
	return nil
}
