// Finished-request history and its serialization as a flat record list.
// Downstream metric computation consumes this surface.

package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// History is the ordered log of finished requests, dropped or completed,
// in the order the engine finished them.
type History struct {
	Requests []*Request
}

// Add appends finished requests to the history.
func (h *History) Add(reqs ...*Request) {
	h.Requests = append(h.Requests, reqs...)
}

// Len returns the number of finished requests.
func (h *History) Len() int {
	return len(h.Requests)
}

// FinishedRecord is the flat serialized form of one finished request.
// Scheduling fields are null for requests that were dropped before ever
// being scheduled; dropped_time is null for completed requests.
type FinishedRecord struct {
	ID          int     `json:"id"`
	ArrivalTime float64 `json:"arrival_time"`
	SLOFactor   float64 `json:"slo_factor"`
	Deadline    float64 `json:"deadline"`

	QueueTime     *float64 `json:"queue_time"`
	BatchSize     *int     `json:"batch_size"`
	ExecutionTime *float64 `json:"execution_time"`
	FinishTime    *float64 `json:"finish_time"`

	DroppedTime *float64 `json:"dropped_time"`
}

// Records flattens the history into serializable records.
func (h *History) Records() []FinishedRecord {
	records := make([]FinishedRecord, 0, len(h.Requests))
	for _, r := range h.Requests {
		rec := FinishedRecord{
			ID:          r.ID,
			ArrivalTime: r.ArrivalTime,
			SLOFactor:   r.SLOFactor,
			Deadline:    r.Deadline,
		}
		if p := r.Placement; p != nil {
			qt, et, ft := p.QueueTime, p.ExecutionTime, p.FinishTime
			bs := p.BatchSize
			rec.QueueTime = &qt
			rec.BatchSize = &bs
			rec.ExecutionTime = &et
			rec.FinishTime = &ft
		}
		if r.Dropped {
			dt := r.DroppedTime
			rec.DroppedTime = &dt
		}
		records = append(records, rec)
	}
	return records
}

// WriteJSON dumps the history to path as an indented JSON record list.
func (h *History) WriteJSON(path string) error {
	data, err := json.MarshalIndent(h.Records(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling finished requests: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing finished requests: %w", err)
	}
	return nil
}
