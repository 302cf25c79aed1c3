// Implements the RequestQueue, the ordered container behind the three
// request pools of the simulation: not-yet-arrived (ordered by arrival time),
// waiting (ordered by deadline), and the in-flight batch (ordered by id).

package sim

import (
	"fmt"
	"sort"
	"strings"
)

// LessFunc orders two requests. Ties are broken by id inside the provided
// orderings so iteration order is deterministic.
type LessFunc func(a, b *Request) bool

// ByArrival orders requests by arrival time, then id.
func ByArrival(a, b *Request) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// ByDeadline orders requests by deadline, then id.
func ByDeadline(a, b *Request) bool {
	if a.Deadline != b.Deadline {
		return a.Deadline < b.Deadline
	}
	return a.ID < b.ID
}

// ByID orders requests by id.
func ByID(a, b *Request) bool {
	return a.ID < b.ID
}

// RequestQueue keeps requests sorted under a LessFunc. Push inserts in
// order via binary search; Peek and Pop operate on the current minimum.
type RequestQueue struct {
	less LessFunc
	reqs []*Request
}

// NewRequestQueue creates an empty queue ordered by less.
func NewRequestQueue(less LessFunc) *RequestQueue {
	if less == nil {
		panic("NewRequestQueue: less must not be nil")
	}
	return &RequestQueue{less: less}
}

// Len returns the number of requests in the queue.
func (q *RequestQueue) Len() int {
	return len(q.reqs)
}

// Push inserts a request preserving sort order.
func (q *RequestQueue) Push(r *Request) {
	if r == nil {
		panic("RequestQueue.Push: request must not be nil")
	}
	i := sort.Search(len(q.reqs), func(i int) bool {
		return q.less(r, q.reqs[i])
	})
	q.reqs = append(q.reqs, nil)
	copy(q.reqs[i+1:], q.reqs[i:])
	q.reqs[i] = r
}

// Peek returns the minimum request without removing it, or nil if empty.
func (q *RequestQueue) Peek() *Request {
	if len(q.reqs) == 0 {
		return nil
	}
	return q.reqs[0]
}

// Pop removes and returns the minimum request, or nil if empty.
func (q *RequestQueue) Pop() *Request {
	if len(q.reqs) == 0 {
		return nil
	}
	r := q.reqs[0]
	q.reqs = q.reqs[1:]
	return r
}

// At returns the request at position i in sort order.
func (q *RequestQueue) At(i int) *Request {
	return q.reqs[i]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers may iterate
// over it but must not append to or reslice it.
func (q *RequestQueue) Items() []*Request {
	return q.reqs
}

// Remove deletes the given request from the queue, reporting whether it
// was present.
func (q *RequestQueue) Remove(r *Request) bool {
	for i, cur := range q.reqs {
		if cur == r {
			q.reqs = append(q.reqs[:i], q.reqs[i+1:]...)
			return true
		}
	}
	return false
}

// IDs returns the request ids in queue order, for logging.
func (q *RequestQueue) IDs() []int {
	ids := make([]int, len(q.reqs))
	for i, r := range q.reqs {
		ids[i] = r.ID
	}
	return ids
}

func (q *RequestQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, r := range q.reqs {
		sb.WriteString(fmt.Sprint(r.ID))
		if i < len(q.reqs)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
