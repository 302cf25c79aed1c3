// Package workload generates request arrival sequences for the simulator:
// replayed production traces (optionally compressed or overlaid for
// multiple concurrent users), per-request SLO files, and synthetic Poisson
// arrivals.
package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// LoadArrivalTimes reads request arrival instants (ms) from a CSV trace.
// The column named "arrival_time" is used when present; otherwise the
// first column is assumed. Rows need not be in time order; the result is
// sorted.
func LoadArrivalTimes(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading trace header: %w", err)
	}
	col := 0
	for i, name := range header {
		if name == "arrival_time" {
			col = i
			break
		}
	}

	var arrivals []float64
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading trace row: %w", err)
		}
		t, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing arrival time %q: %w", row[col], err)
		}
		arrivals = append(arrivals, t)
	}
	sort.Float64s(arrivals)
	return arrivals, nil
}

// CompressTrace rescales a trace's timeline toward its start: every
// interval from the first arrival is multiplied by ratio. A ratio below 1
// increases load by packing the same requests into a shorter window.
func CompressTrace(arrivals []float64, ratio float64) ([]float64, error) {
	if ratio <= 0 {
		return nil, fmt.Errorf("compress ratio must be positive, got %f", ratio)
	}
	if len(arrivals) == 0 {
		return nil, nil
	}
	start := arrivals[0]
	compressed := make([]float64, len(arrivals))
	for i, t := range arrivals {
		compressed[i] = start + (t-start)*ratio
	}
	return compressed, nil
}

// OverlayUsers models numUsers concurrent users each issuing the trace
// independently: the trace is replicated numUsers times and the merged
// arrival sequence returned in time order.
func OverlayUsers(arrivals []float64, numUsers int) ([]float64, error) {
	if numUsers <= 0 {
		return nil, fmt.Errorf("number of users must be positive, got %d", numUsers)
	}
	merged := make([]float64, 0, len(arrivals)*numUsers)
	for i := 0; i < numUsers; i++ {
		merged = append(merged, arrivals...)
	}
	sort.Float64s(merged)
	return merged, nil
}
