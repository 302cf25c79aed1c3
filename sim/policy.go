package sim

import (
	"fmt"
)

// Policy decides batch composition; the engine decides when to invoke it
// and enforces consistency. A policy is granted mutation rights over
// exactly the waiting queue and the in-flight batch during its callbacks
// and must not touch the not-yet-arrived queue.
type Policy interface {
	// Schedule is called whenever the in-flight batch is empty or has just
	// drained. It may move zero or more requests from waiting into batch,
	// respecting the configured maximum batch size. It returns the time at
	// which the engine should re-invoke scheduling even absent other events
	// (a wakeup request, not a data result); +Inf means no wakeup needed.
	Schedule(batch *Batch, waiting *RequestQueue, now float64) float64

	// Preempt is called between arrival and completion events, only when
	// preemption is enabled. It may move requests out of the batch back to
	// waiting (clearing their placement) and/or promote new ones. It
	// reports whether the batch composition changed; the engine then
	// recomputes the batch finish time.
	Preempt(batch *Batch, waiting *RequestQueue, now, batchFinishTime float64) bool

	// OfflineSchedule is the one-shot bulk variant: all requests are
	// available at time zero and the policy consumes the entire waiting
	// queue, populating finished directly without the live event loop.
	OfflineSchedule(batch *Batch, waiting *RequestQueue, now float64, finished *History)
}

// ValidPolicies is the set of recognized policy names.
// Shared by config validation and NewPolicy to avoid duplication.
var ValidPolicies = map[string]bool{"": true, "simple": true, "dynamic": true}

// IsValidPolicy returns true if name is a recognized policy name.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// NewPolicy creates a Policy by name. An empty string defaults to the
// simple policy (for CLI flag default compatibility). Panics on
// unrecognized names.
func NewPolicy(name string, maxBatchSize int, profile ThroughputProfile) Policy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	switch name {
	case "", "simple":
		return &SimplePolicy{MaxBatchSize: maxBatchSize, Profile: profile}
	case "dynamic":
		return &DynamicPolicy{MaxBatchSize: maxBatchSize, Profile: profile}
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}

// runOfflineBatches drains the waiting queue into successive batches of at
// most maxBatchSize, advancing a local time cursor by each batch's duration
// and appending every request to finished. Requests whose deadline is
// already unreachable when their batch would form are dropped instead, with
// the same admission test the live loop uses. Both policy variants reduce
// to this plan when every request is available at time zero.
func runOfflineBatches(batch *Batch, waiting *RequestQueue, now float64, finished *History, maxBatchSize int, profile ThroughputProfile) {
	t := now
	base := profile.BaseRuntime()
	for waiting.Len() > 0 {
		finished.Add(DropExpired(t, base, waiting)...)
		size := min(waiting.Len(), maxBatchSize)
		if size == 0 {
			break
		}
		runtime := profile.Duration(size)
		for i := 0; i < size; i++ {
			batch.Add(waiting.Pop())
		}
		for _, r := range batch.Items() {
			r.Place(t, size, runtime)
		}
		t += runtime
		for batch.Len() > 0 {
			finished.Add(batch.Pop())
		}
	}
}
