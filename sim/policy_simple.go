package sim

import "math"

// SimplePolicy is the size- and order-agnostic baseline: whenever the batch
// is empty and requests are waiting, it commits as many of them as fit,
// most urgent deadline first. It never asks for a wakeup and never preempts.
type SimplePolicy struct {
	MaxBatchSize int
	Profile      ThroughputProfile
}

// Schedule moves up to MaxBatchSize requests from waiting into the batch.
func (p *SimplePolicy) Schedule(batch *Batch, waiting *RequestQueue, now float64) float64 {
	size := min(waiting.Len(), p.MaxBatchSize-batch.Len())
	for i := 0; i < size; i++ {
		batch.Add(waiting.Pop())
	}
	return math.Inf(1)
}

// Preempt never changes the batch.
func (p *SimplePolicy) Preempt(_ *Batch, _ *RequestQueue, _, _ float64) bool {
	return false
}

// OfflineSchedule drains the waiting queue in fixed-size chunks.
func (p *SimplePolicy) OfflineSchedule(batch *Batch, waiting *RequestQueue, now float64, finished *History) {
	runOfflineBatches(batch, waiting, now, finished, p.MaxBatchSize, p.Profile)
}
