// Post-hoc summary statistics computed over the finished-request history.

package sim

import (
	"fmt"
	"math"
	"sort"
)

// Summary aggregates statistics about a finished simulation for final
// reporting. Useful for comparing policies and debugging behavior.
type Summary struct {
	TotalRequests int
	Completed     int
	Dropped       int

	DropRate      float64 // dropped / total
	SLOAttainment float64 // completed within deadline / total

	MeanLatency float64 // completion - arrival, completed requests only
	P50Latency  float64
	P95Latency  float64
	P99Latency  float64

	MeanQueueTime float64
	MeanBatchSize float64
}

// Summarize computes aggregate statistics from the finished history.
// Safe for nil or empty histories (returns zero-value fields).
func Summarize(h *History) Summary {
	var s Summary
	if h == nil || h.Len() == 0 {
		return s
	}

	s.TotalRequests = h.Len()
	var latencies []float64
	var queueSum, batchSum float64
	withinDeadline := 0
	for _, r := range h.Requests {
		if r.Dropped {
			s.Dropped++
			continue
		}
		s.Completed++
		p := r.Placement
		lat := p.FinishTime - r.ArrivalTime
		latencies = append(latencies, lat)
		queueSum += p.QueueTime
		batchSum += float64(p.BatchSize)
		if p.FinishTime <= r.Deadline {
			withinDeadline++
		}
	}

	s.DropRate = float64(s.Dropped) / float64(s.TotalRequests)
	s.SLOAttainment = float64(withinDeadline) / float64(s.TotalRequests)
	if s.Completed > 0 {
		sort.Float64s(latencies)
		for _, lat := range latencies {
			s.MeanLatency += lat
		}
		s.MeanLatency /= float64(s.Completed)
		s.P50Latency = percentile(latencies, 0.50)
		s.P95Latency = percentile(latencies, 0.95)
		s.P99Latency = percentile(latencies, 0.99)
		s.MeanQueueTime = queueSum / float64(s.Completed)
		s.MeanBatchSize = batchSum / float64(s.Completed)
	}
	return s
}

// percentile returns the nearest-rank percentile of sorted values.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(q*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}

// Print displays aggregated metrics at the end of the simulation.
func (s Summary) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Total Requests    : %d\n", s.TotalRequests)
	fmt.Printf("Completed         : %d\n", s.Completed)
	fmt.Printf("Dropped           : %d (%.2f%%)\n", s.Dropped, 100*s.DropRate)
	fmt.Printf("SLO Attainment    : %.2f%%\n", 100*s.SLOAttainment)
	if s.Completed > 0 {
		fmt.Printf("Average Latency   : %.2f ms\n", s.MeanLatency)
		fmt.Printf("P50/P95/P99       : %.2f / %.2f / %.2f ms\n", s.P50Latency, s.P95Latency, s.P99Latency)
		fmt.Printf("Average Queue Time: %.2f ms\n", s.MeanQueueTime)
		fmt.Printf("Average Batch Size: %.2f\n", s.MeanBatchSize)
	}
}
