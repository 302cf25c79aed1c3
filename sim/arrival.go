package sim

// AdmitArrivals moves every request whose arrival time has elapsed from the
// not-yet-arrived queue (ordered by arrival time) into the waiting queue
// (which keeps its own deadline order). Pure state transfer: no request
// fields are altered.
//
// Returns the newly arrived requests in arrival order.
func AdmitArrivals(now float64, future, waiting *RequestQueue) []*Request {
	var arrived []*Request
	for future.Len() > 0 && future.Peek().ArrivalTime <= now {
		r := future.Pop()
		waiting.Push(r)
		arrived = append(arrived, r)
	}
	return arrived
}
