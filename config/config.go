/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/suparena/dbbench/errors"
)

// Config is a benchmark plan read from a YAML file.
type Config struct {
	// RunID labels results; generated when empty.
	RunID string `yaml:"run_id"`

	Dataset  DatasetConfig  `yaml:"dataset"`
	Workload WorkloadConfig `yaml:"workload"`
	Targets  []TargetConfig `yaml:"targets"`

	// MetricsAddr, when set, exposes Prometheus metrics on that address
	// for the duration of the run (e.g. ":9103").
	MetricsAddr string `yaml:"metrics_addr"`

	Output OutputConfig `yaml:"output"`
}

// DatasetConfig selects the record source.
type DatasetConfig struct {
	// Path to a transactions CSV. Takes precedence over Synthetic.
	Path string `yaml:"path"`
	// Synthetic is the number of records to generate when Path is empty.
	Synthetic int `yaml:"synthetic"`
	// Seed for the synthetic generator.
	Seed int64 `yaml:"seed"`
}

// WorkloadConfig sizes the benchmark phases.
type WorkloadConfig struct {
	SingleOps         int           `yaml:"single_ops"`
	BatchSize         int           `yaml:"batch_size"`
	BulkSize          int           `yaml:"bulk_size"`
	BatchChunk        int           `yaml:"batch_chunk"`
	ReadRepetitions   int           `yaml:"read_repetitions"`
	UpdateRepetitions int           `yaml:"update_repetitions"`
	PageLimit         int           `yaml:"page_limit"`
	TargetKey         string        `yaml:"target_key"`
	MaxRetries        int           `yaml:"max_retries"`
	RetryBackoff      time.Duration `yaml:"retry_backoff"`
}

// TargetConfig describes one database under test. Driver-specific fields
// are flat; each driver reads the ones it needs and validates them.
type TargetConfig struct {
	// Name labels the target in results. Defaults to Driver.
	Name string `yaml:"name"`
	// Driver selects the registered driver: dynamodb, mongodb, astra, mock.
	Driver string `yaml:"driver"`

	// DynamoDB / Astra
	Table string `yaml:"table"`

	// DynamoDB
	Region string `yaml:"region"`

	// MongoDB
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	// Astra / Cassandra
	Hosts      []string `yaml:"hosts"`
	Port       int      `yaml:"port"`
	Keyspace   string   `yaml:"keyspace"`
	ChunkSize  int      `yaml:"chunk_size"`
	DisableTLS bool     `yaml:"disable_tls"`
}

// Label returns the display name for the target.
func (t TargetConfig) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Driver
}

// OutputConfig controls how results are emitted.
type OutputConfig struct {
	// Format is one of table, markdown, csv, json.
	Format string `yaml:"format"`
	// Dir, when set, is where run JSON files are written.
	Dir string `yaml:"dir"`
}

// Default returns a plan with the original benchmark's sizes filled in.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{
			Synthetic: 3100,
			Seed:      1,
		},
		Workload: WorkloadConfig{
			SingleOps:         10,
			BatchSize:         1000,
			BulkSize:          2000,
			BatchChunk:        100,
			ReadRepetitions:   10,
			UpdateRepetitions: 10,
			PageLimit:         1000,
			TargetKey:         "37077",
			MaxRetries:        3,
			RetryBackoff:      time.Second,
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Load reads, defaults and validates a plan file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes plan YAML, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Workload.SingleOps <= 0 {
		c.Workload.SingleOps = d.Workload.SingleOps
	}
	if c.Workload.BatchSize <= 0 {
		c.Workload.BatchSize = d.Workload.BatchSize
	}
	if c.Workload.BulkSize <= 0 {
		c.Workload.BulkSize = d.Workload.BulkSize
	}
	if c.Workload.BatchChunk <= 0 {
		c.Workload.BatchChunk = d.Workload.BatchChunk
	}
	if c.Workload.ReadRepetitions <= 0 {
		c.Workload.ReadRepetitions = d.Workload.ReadRepetitions
	}
	if c.Workload.UpdateRepetitions <= 0 {
		c.Workload.UpdateRepetitions = d.Workload.UpdateRepetitions
	}
	if c.Workload.PageLimit <= 0 {
		c.Workload.PageLimit = d.Workload.PageLimit
	}
	if c.Workload.TargetKey == "" {
		c.Workload.TargetKey = d.Workload.TargetKey
	}
	if c.Workload.MaxRetries < 0 {
		c.Workload.MaxRetries = d.Workload.MaxRetries
	}
	if c.Workload.RetryBackoff <= 0 {
		c.Workload.RetryBackoff = d.Workload.RetryBackoff
	}
	if c.Dataset.Path == "" && c.Dataset.Synthetic <= 0 {
		c.Dataset.Synthetic = d.Dataset.Synthetic
	}
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}
}

// Validate checks the plan for unusable settings.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return errors.NewConfigError("targets", "at least one target required")
	}
	seen := make(map[string]bool, len(c.Targets))
	for i, t := range c.Targets {
		if t.Driver == "" {
			return errors.NewConfigError(fmt.Sprintf("targets[%d].driver", i), "driver is required")
		}
		label := t.Label()
		if seen[label] {
			return errors.NewConfigError("targets", fmt.Sprintf("duplicate target name %q", label))
		}
		seen[label] = true
	}
	switch c.Output.Format {
	case "table", "markdown", "csv", "json":
	default:
		return errors.NewConfigError("output.format", fmt.Sprintf("unknown format %q", c.Output.Format))
	}
	return nil
}
