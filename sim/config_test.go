package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *SimConfig {
	return &SimConfig{
		Policy:       "simple",
		MaxBatchSize: 16,
		SLOFactor:    5.0,
	}
}

func TestSimConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Policy = "greedy"
	assert.Error(t, cfg.Validate(), "unknown policy")

	cfg = validConfig()
	cfg.MaxBatchSize = 0
	assert.Error(t, cfg.Validate(), "non-positive max batch size")

	cfg = validConfig()
	cfg.SLOFactor = -1
	assert.Error(t, cfg.Validate(), "non-positive slo factor")

	cfg = validConfig()
	cfg.OfflineNumReqs = -3
	assert.Error(t, cfg.Validate(), "negative offline request count")
}

func TestLoadSimConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	yaml := "policy: dynamic\npreemption: true\nmax_batch_size: 8\nslo_factor: 3.5\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadSimConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "dynamic", cfg.Policy)
	assert.True(t, cfg.Preemption)
	assert.Equal(t, 8, cfg.MaxBatchSize)
	assert.Equal(t, 3.5, cfg.SLOFactor)
	assert.NoError(t, cfg.Validate())
}

func TestLoadSimConfig_MissingFile(t *testing.T) {
	_, err := LoadSimConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
