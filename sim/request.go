// Defines the Request struct that models one unit of work in the simulation.
// Tracks arrival time, SLO deadline, batch placement, and drop/completion markers.

package sim

import (
	"fmt"
)

// Placement holds the scheduling state of a request while it sits in the
// in-flight batch. The four fields are always written together: a request
// either has a Placement (currently scheduled) or it does not.
type Placement struct {
	QueueTime     float64 // time spent waiting before the batch started
	BatchSize     int     // size of the batch the request was placed in
	ExecutionTime float64 // duration of that batch
	FinishTime    float64 // instant the batch completes
}

// Request models a single request's lifecycle in the simulation.
// Each request has:
// - a unique integer id
// - an immutable arrival time and SLO factor
// - a deadline derived once at construction from the batch-size-1 runtime
// - an optional Placement while it is in the in-flight batch
// - a drop marker, set at most once
type Request struct {
	ID          int
	ArrivalTime float64
	SLOFactor   float64

	// Deadline = ArrivalTime + SLOFactor * runtime of a batch of size 1.
	// Computed once by NewRequest and never mutated.
	Deadline float64

	// Placement is non-nil exactly while the request is in the in-flight batch.
	Placement *Placement

	Dropped     bool
	DroppedTime float64
}

// NewRequest creates a request and derives its deadline from baseRuntime,
// the execution duration of a batch of size 1. The throughput profile must
// be fully loaded before any request is constructed.
func NewRequest(id int, arrivalTime, sloFactor, baseRuntime float64) *Request {
	return &Request{
		ID:          id,
		ArrivalTime: arrivalTime,
		SLOFactor:   sloFactor,
		Deadline:    arrivalTime + sloFactor*baseRuntime,
	}
}

// Scheduled reports whether the request currently holds a batch placement.
func (r *Request) Scheduled() bool {
	return r.Placement != nil
}

// Place records the scheduling transition: the request enters a batch of
// size batchSize at instant now with execution duration runtime. All four
// placement fields are written together.
func (r *Request) Place(now float64, batchSize int, runtime float64) {
	if r.Dropped {
		panic(fmt.Sprintf("request %d: scheduling a dropped request", r.ID))
	}
	r.Placement = &Placement{
		QueueTime:     now - r.ArrivalTime,
		BatchSize:     batchSize,
		ExecutionTime: runtime,
		FinishTime:    now + runtime,
	}
}

// Unplace reverses the scheduling transition when the request is preempted
// out of an in-flight batch: all placement state is cleared at once.
func (r *Request) Unplace() {
	r.Placement = nil
}

// Drop marks the request as dropped at instant now. A request is dropped
// at most once; a second drop is a programming error.
func (r *Request) Drop(now float64) {
	if r.Dropped {
		panic(fmt.Sprintf("request %d: dropped twice", r.ID))
	}
	if r.Scheduled() {
		panic(fmt.Sprintf("request %d: dropping a request in the in-flight batch", r.ID))
	}
	r.Dropped = true
	r.DroppedTime = now
}

// This method returns a human-readable string representation of a Request.
func (r Request) String() string {
	if r.Placement == nil {
		return fmt.Sprintf("Request: (ID: %d, ArrivalTime: %g, SLOFactor: %g, Deadline: %g)",
			r.ID, r.ArrivalTime, r.SLOFactor, r.Deadline)
	}
	return fmt.Sprintf("Request: (ID: %d, ArrivalTime: %g, Deadline: %g, QueueTime: %g, BatchSize: %d, FinishTime: %g)",
		r.ID, r.ArrivalTime, r.Deadline, r.Placement.QueueTime, r.Placement.BatchSize, r.Placement.FinishTime)
}
