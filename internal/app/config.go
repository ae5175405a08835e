package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPath      string // plan.json file or a directory of plan files
	SchemaPath    string // optional provider schema file
	OverridesPath string // optional overrides file (.hcl, .yaml, .yml)
	OutputDir     string

	Format      string // "html" or "markdown"
	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates a configuration and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PlanPath == "" {
		return nil, errors.New("PlanPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	return &cfg, nil
}
