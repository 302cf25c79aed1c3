// Loads and validates the throughput profile: the empirical mapping from
// batch size to execution duration that drives every timing decision in
// the simulation.

package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ThroughputProfile maps a positive batch size to the measured execution
// duration (ms) of a batch of that size. It must contain an entry for
// size 1 (used by every deadline computation and admission check) and for
// every batch size a policy may choose.
type ThroughputProfile map[int]float64

// Duration returns the execution duration for a batch of the given size.
// A missing entry is a programming error: Validate is expected to have
// checked every size the policy may choose before the simulation starts.
func (p ThroughputProfile) Duration(batchSize int) float64 {
	d, ok := p[batchSize]
	if !ok {
		panic(fmt.Sprintf("throughput profile: no entry for batch size %d", batchSize))
	}
	return d
}

// BaseRuntime returns the batch-size-1 duration, the base latency behind
// deadlines and admission checks.
func (p ThroughputProfile) BaseRuntime() float64 {
	return p.Duration(1)
}

// Validate checks that the profile has a positive duration for every batch
// size from 1 through maxBatchSize.
func (p ThroughputProfile) Validate(maxBatchSize int) error {
	if maxBatchSize <= 0 {
		return fmt.Errorf("max batch size must be positive, got %d", maxBatchSize)
	}
	for size := 1; size <= maxBatchSize; size++ {
		d, ok := p[size]
		if !ok {
			return fmt.Errorf("throughput profile: missing entry for batch size %d", size)
		}
		if d <= 0 {
			return fmt.Errorf("throughput profile: non-positive duration %g for batch size %d", d, size)
		}
	}
	return nil
}

// LoadThroughputProfile reads a profile from a CSV file with columns
// "bsize" and "mean_runtime_ms".
func LoadThroughputProfile(path string) (ThroughputProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening throughput profile: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading profile CSV header: %w", err)
	}
	sizeCol, runtimeCol := -1, -1
	for i, name := range header {
		switch name {
		case "bsize":
			sizeCol = i
		case "mean_runtime_ms":
			runtimeCol = i
		}
	}
	if sizeCol < 0 || runtimeCol < 0 {
		return nil, fmt.Errorf("profile CSV must have bsize and mean_runtime_ms columns, got %v", header)
	}

	profile := make(ThroughputProfile)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading profile CSV row: %w", err)
		}
		size, err := strconv.Atoi(row[sizeCol])
		if err != nil {
			return nil, fmt.Errorf("parsing batch size %q: %w", row[sizeCol], err)
		}
		runtime, err := strconv.ParseFloat(row[runtimeCol], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing runtime %q: %w", row[runtimeCol], err)
		}
		if size <= 0 {
			return nil, fmt.Errorf("throughput profile: non-positive batch size %d", size)
		}
		profile[size] = runtime
	}
	return profile, nil
}
