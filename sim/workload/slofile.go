package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// RequestSpec is one row of an externally supplied request list.
type RequestSpec struct {
	RequestID   int
	SLOFactor   float64
	ArrivalTime float64
}

// CSV column headers for SLO files.
var sloColumns = []string{"request_id", "slo_factor", "arrival_time"}

// LoadSLOFile reads per-request SLO factors and arrival times from a CSV
// file with columns request_id, slo_factor, arrival_time.
func LoadSLOFile(path string) ([]RequestSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening SLO file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading SLO file header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[name] = i
	}
	for _, want := range sloColumns {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("SLO file missing column %q, got %v", want, header)
		}
	}

	var specs []RequestSpec
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading SLO file row: %w", err)
		}
		id, err := strconv.Atoi(row[cols["request_id"]])
		if err != nil {
			return nil, fmt.Errorf("parsing request id %q: %w", row[cols["request_id"]], err)
		}
		slo, err := strconv.ParseFloat(row[cols["slo_factor"]], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing slo factor %q: %w", row[cols["slo_factor"]], err)
		}
		if slo <= 0 {
			return nil, fmt.Errorf("request %d: slo factor must be positive, got %f", id, slo)
		}
		arrival, err := strconv.ParseFloat(row[cols["arrival_time"]], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing arrival time %q: %w", row[cols["arrival_time"]], err)
		}
		specs = append(specs, RequestSpec{RequestID: id, SLOFactor: slo, ArrivalTime: arrival})
	}
	return specs, nil
}
