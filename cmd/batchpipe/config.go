package main

import (
	"fmt"

	"github.com/kbukum/batchpipe/batch"
	"github.com/kbukum/batchpipe/config"
	"github.com/kbukum/batchpipe/observability"
)

const (
	serviceName = "batchpipe"
	envPrefix   = "BATCHPIPE"
)

// AppConfig is the full configuration of the batchpipe binary.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Pipeline             batch.Config         `yaml:"pipeline" mapstructure:"pipeline"`
	Observability        observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills in zero values across all sections.
func (c *AppConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Pipeline.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate checks every section.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Pipeline.Validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("observability: %w", err)
	}
	return nil
}

func defaults() map[string]any {
	return map[string]any{
		"name":                      serviceName,
		"environment":               "production",
		"logging.level":             "info",
		"logging.format":            "plain",
		"pipeline.record_count":     batch.DefaultRecordCount,
		"pipeline.min_value":        batch.DefaultMinValue,
		"pipeline.max_value":        batch.DefaultMaxValue,
		"pipeline.seed":             0,
		"pipeline.stage_delay":      batch.DefaultStageDelay.String(),
		"observability.enabled":     false,
		"observability.insecure":    true,
		"observability.sample_rate": 1.0,
		"observability.interval":    "15s",
	}
}

func loadConfig(opts ...config.LoaderOption) (*AppConfig, error) {
	var cfg AppConfig
	opts = append([]config.LoaderOption{
		config.WithEnvPrefix(envPrefix),
		config.WithDefaults(defaults()),
	}, opts...)
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}
	return &cfg, nil
}
