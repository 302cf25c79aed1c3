package sim

// DropExpired removes every waiting request whose deadline is unreachable
// even under best-case execution: deadline < now + baseRuntime, where
// baseRuntime is the batch-size-1 duration. The waiting queue is ordered
// by deadline, so this is a prefix removal: pop while the head fails the
// test and stop at the first request that passes.
//
// Each dropped request is stamped with now as its dropped time. Requests
// already in the in-flight batch are never evaluated here; they passed
// this check when last admitted.
//
// Returns the dropped requests in deadline order for recording.
func DropExpired(now, baseRuntime float64, waiting *RequestQueue) []*Request {
	var dropped []*Request
	for waiting.Len() > 0 && waiting.Peek().Deadline < now+baseRuntime {
		r := waiting.Pop()
		r.Drop(now)
		dropped = append(dropped, r)
	}
	return dropped
}
