package sim

import (
	"testing"
)

func TestRequestQueue_Push_KeepsDeadlineOrder(t *testing.T) {
	// GIVEN requests pushed out of deadline order
	q := NewRequestQueue(ByDeadline)
	a := &Request{ID: 1, Deadline: 300}
	b := &Request{ID: 2, Deadline: 100}
	c := &Request{ID: 3, Deadline: 200}
	q.Push(a)
	q.Push(b)
	q.Push(c)

	// THEN popping yields deadline-ascending order
	want := []int{2, 3, 1}
	for i, id := range want {
		got := q.Pop()
		if got.ID != id {
			t.Errorf("pop[%d]: got request %d, want %d", i, got.ID, id)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained: len %d", q.Len())
	}
}

func TestRequestQueue_Push_TiesBrokenByID(t *testing.T) {
	// GIVEN two requests with equal deadlines
	q := NewRequestQueue(ByDeadline)
	q.Push(&Request{ID: 7, Deadline: 100})
	q.Push(&Request{ID: 3, Deadline: 100})

	// THEN the lower id comes first
	if got := q.Peek().ID; got != 3 {
		t.Errorf("Peek: got request %d, want 3", got)
	}
}

func TestRequestQueue_Peek_NonEmpty_ReturnsMinWithoutRemoving(t *testing.T) {
	// GIVEN a queue with two requests
	q := NewRequestQueue(ByArrival)
	early := &Request{ID: 1, ArrivalTime: 5}
	late := &Request{ID: 2, ArrivalTime: 9}
	q.Push(late)
	q.Push(early)

	// WHEN Peek() is called
	got := q.Peek()

	// THEN it returns the earliest arrival without removing it
	if got != early {
		t.Errorf("Peek: got request %d, want %d", got.ID, early.ID)
	}
	if q.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", q.Len())
	}
}

func TestRequestQueue_PeekPop_Empty_ReturnNil(t *testing.T) {
	q := NewRequestQueue(ByID)
	if q.Peek() != nil {
		t.Error("Peek on empty queue: want nil")
	}
	if q.Pop() != nil {
		t.Error("Pop on empty queue: want nil")
	}
}

func TestRequestQueue_At_PositionalAccess(t *testing.T) {
	// GIVEN requests with arrival times 10, 20, 30 pushed out of order
	q := NewRequestQueue(ByArrival)
	q.Push(&Request{ID: 2, ArrivalTime: 20})
	q.Push(&Request{ID: 3, ArrivalTime: 30})
	q.Push(&Request{ID: 1, ArrivalTime: 10})

	// THEN At returns elements in sort order
	for i, want := range []int{1, 2, 3} {
		if got := q.At(i).ID; got != want {
			t.Errorf("At(%d): got request %d, want %d", i, got, want)
		}
	}
}

func TestRequestQueue_Remove_PresentAndAbsent(t *testing.T) {
	// GIVEN a queue with requests [1, 2, 3]
	q := NewRequestQueue(ByID)
	r1 := &Request{ID: 1}
	r2 := &Request{ID: 2}
	r3 := &Request{ID: 3}
	q.Push(r1)
	q.Push(r2)
	q.Push(r3)

	// WHEN the middle request is removed
	if !q.Remove(r2) {
		t.Fatal("Remove: request 2 reported absent")
	}

	// THEN order of the rest is preserved and a second removal fails
	if got := q.IDs(); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("after Remove: got %v, want [1 3]", got)
	}
	if q.Remove(r2) {
		t.Error("Remove: removed request reported present")
	}
}

func TestBatch_Add_DuplicatePanics(t *testing.T) {
	// GIVEN a batch already holding request 1
	b := NewBatch()
	b.Add(&Request{ID: 1})

	// WHEN the same id is added again THEN it panics
	defer func() {
		if recover() == nil {
			t.Error("adding a request to the batch twice did not panic")
		}
	}()
	b.Add(&Request{ID: 1})
}
