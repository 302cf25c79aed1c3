package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimConfig holds the simulation parameters, settable from CLI flags or a
// YAML file.
type SimConfig struct {
	// Policy selects the batch-composition policy ("simple" or "dynamic").
	Policy string `yaml:"policy"`
	// Preemption enables mid-flight preemption checks.
	Preemption bool `yaml:"preemption"`
	// MaxBatchSize caps the number of requests a policy may batch together.
	MaxBatchSize int `yaml:"max_batch_size"`
	// SLOFactor is the uniform deadline multiplier applied to generated
	// requests (ignored when per-request factors come from an SLO file).
	SLOFactor float64 `yaml:"slo_factor"`
	// OfflineNumReqs > 0 switches to offline mode with that many requests,
	// all available at time zero.
	OfflineNumReqs int `yaml:"offline_num_reqs"`
}

// LoadSimConfig reads and parses a YAML simulation configuration file.
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sim config: %w", err)
	}
	var cfg SimConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sim config: %w", err)
	}
	return &cfg, nil
}

// Validate checks configuration values eagerly, before any request is
// constructed or the simulation starts.
func (c *SimConfig) Validate() error {
	if !IsValidPolicy(c.Policy) {
		return fmt.Errorf("unknown policy %q", c.Policy)
	}
	if c.MaxBatchSize <= 0 {
		return fmt.Errorf("max batch size must be positive, got %d", c.MaxBatchSize)
	}
	if c.SLOFactor <= 0 {
		return fmt.Errorf("slo factor must be positive, got %f", c.SLOFactor)
	}
	if c.OfflineNumReqs < 0 {
		return fmt.Errorf("offline request count must be non-negative, got %d", c.OfflineNumReqs)
	}
	return nil
}
