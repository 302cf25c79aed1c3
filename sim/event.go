package sim

// EventKind classifies what the event loop is reacting to at the current
// simulated instant. The classification is evaluated fresh at the top of
// every iteration; it is never stored between iterations.
type EventKind string

const (
	// EventNewReqsArrived: the in-flight batch is empty, so the engine is
	// reacting to arrivals (or the initial instant).
	EventNewReqsArrived EventKind = "new reqs arrived"
	// EventBatchFinished: the in-flight batch is due exactly now.
	EventBatchFinished EventKind = "batch finished"
	// EventCheckPreemption: the batch is executing and not yet due; the
	// only possible action is a mid-flight preemption check.
	EventCheckPreemption EventKind = "check preemption"
)

// ClassifyEvent determines the event kind for the current instant from the
// batch occupancy and the recorded batch finish time.
func ClassifyEvent(batchLen int, now, batchFinishTime float64) EventKind {
	if batchLen == 0 {
		return EventNewReqsArrived
	}
	if now == batchFinishTime {
		return EventBatchFinished
	}
	return EventCheckPreemption
}
