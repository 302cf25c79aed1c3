package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThroughputProfile_Validate(t *testing.T) {
	profile := ThroughputProfile{1: 10, 2: 15, 3: 18}

	assert.NoError(t, profile.Validate(3))
	assert.Error(t, profile.Validate(4), "missing entry for size 4")
	assert.Error(t, profile.Validate(0), "non-positive max batch size")

	bad := ThroughputProfile{1: 10, 2: -5}
	assert.Error(t, bad.Validate(2), "non-positive duration")
}

func TestThroughputProfile_Duration_MissingEntryPanics(t *testing.T) {
	profile := ThroughputProfile{1: 10}
	assert.Equal(t, 10.0, profile.Duration(1))
	assert.Equal(t, 10.0, profile.BaseRuntime())
	assert.Panics(t, func() { profile.Duration(5) })
}

func TestLoadThroughputProfile(t *testing.T) {
	// GIVEN a profile CSV in the expected column layout
	dir := t.TempDir()
	path := filepath.Join(dir, "runtimes_by_batch_size.csv")
	csv := "bsize,mean_runtime_ms\n1,10.5\n2,15.0\n4,22.25\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	profile, err := LoadThroughputProfile(path)
	require.NoError(t, err)

	assert.Equal(t, ThroughputProfile{1: 10.5, 2: 15.0, 4: 22.25}, profile)
}

func TestLoadThroughputProfile_BadHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("size,ms\n1,10\n"), 0644))

	_, err := LoadThroughputProfile(path)
	assert.Error(t, err)
}

func TestLoadThroughputProfile_MissingFile(t *testing.T) {
	_, err := LoadThroughputProfile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
