// batch.go
//
// Defines the Batch struct which represents the group of requests currently
// executing together as one unit of simulated duration.

package sim

import "fmt"

// Batch is the in-flight set of requests. Its execution duration is
// determined solely by its size via the throughput profile. Requests are
// kept ordered by id for deterministic iteration.
type Batch struct {
	q *RequestQueue
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{q: NewRequestQueue(ByID)}
}

// Len returns the number of requests in the batch.
func (b *Batch) Len() int {
	return b.q.Len()
}

// Add places a request into the batch. Adding a request that is already
// in the batch is a programming error.
func (b *Batch) Add(r *Request) {
	for _, cur := range b.q.Items() {
		if cur.ID == r.ID {
			panic(fmt.Sprintf("request %d: scheduled into the in-flight batch twice", r.ID))
		}
	}
	b.q.Push(r)
}

// Pop removes and returns the lowest-id request, or nil if empty.
func (b *Batch) Pop() *Request {
	return b.q.Pop()
}

// Remove deletes the given request from the batch, reporting whether it
// was present.
func (b *Batch) Remove(r *Request) bool {
	return b.q.Remove(r)
}

// Items returns the batch contents in id order for iteration.
func (b *Batch) Items() []*Request {
	return b.q.Items()
}

// IDs returns the request ids in the batch, for logging.
func (b *Batch) IDs() []int {
	return b.q.IDs()
}

func (b *Batch) String() string {
	return b.q.String()
}
