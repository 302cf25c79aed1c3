// engine.go
//
// The discrete-event loop. The Engine owns the three request containers,
// classifies the current event each iteration, invokes the other components
// in a fixed order, advances simulated time, and enforces the global
// invariants of the request lifecycle.

package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Engine is the core object that holds simulation time, system state, and
// the event loop. It is single-threaded and strictly sequential: the whole
// per-instant protocol runs to completion before the next instant is
// considered, and simulated time advances in discrete jumps.
type Engine struct {
	profile    ThroughputProfile
	policy     Policy
	preemption bool

	// Clock is the current simulated time (ms).
	Clock float64
	// BatchFinishTime is when the in-flight batch completes; +Inf while
	// no batch is executing.
	BatchFinishTime float64
	// NextCheckTime is the policy's most recent wakeup request. It
	// persists across preemption-check iterations; only Schedule calls
	// overwrite it.
	NextCheckTime float64

	// Future holds requests that have not arrived yet, ordered by arrival time.
	Future *RequestQueue
	// Waiting holds admitted requests, ordered by deadline.
	Waiting *RequestQueue
	// InFlight is the batch currently executing.
	InFlight *Batch
	// Finished is the ordered history of dropped and completed requests.
	Finished *History

	iterations int
}

// NewEngine creates an engine over the given request set. The profile must
// already be validated for every batch size the policy may choose.
func NewEngine(profile ThroughputProfile, policy Policy, preemption bool, requests []*Request) *Engine {
	e := &Engine{
		profile:         profile,
		policy:          policy,
		preemption:      preemption,
		BatchFinishTime: math.Inf(1),
		NextCheckTime:   math.Inf(1),
		Future:          NewRequestQueue(ByArrival),
		Waiting:         NewRequestQueue(ByDeadline),
		InFlight:        NewBatch(),
		Finished:        &History{},
	}
	for _, r := range requests {
		e.Future.Push(r)
	}
	return e
}

// Iterations returns the number of event-loop iterations executed.
func (e *Engine) Iterations() int {
	return e.iterations
}

// Run executes the live event loop until the not-yet-arrived, waiting, and
// in-flight containers are all empty.
func (e *Engine) Run() {
	if e.Future.Len() == 0 {
		logrus.Info("No requests to simulate")
		return
	}
	e.Clock = e.Future.Peek().ArrivalTime

	for {
		event := ClassifyEvent(e.InFlight.Len(), e.Clock, e.BatchFinishTime)
		logrus.Infof("---------- t=%g (%s) ----------", e.Clock, event)

		dropped := DropExpired(e.Clock, e.profile.BaseRuntime(), e.Waiting)
		e.Finished.Add(dropped...)
		logrus.Infof("[Dropped requests] %v", requestIDs(dropped))

		arrived := AdmitArrivals(e.Clock, e.Future, e.Waiting)
		if len(arrived) > 0 {
			logrus.Infof("[New requests] %v", requestIDs(arrived))
		}
		logrus.Infof("[Current batch] %v", e.InFlight.IDs())
		logrus.Infof("[Queue] %v", e.Waiting.IDs())

		if event == EventCheckPreemption && e.preemption {
			logrus.Infof("[Check preemption] at %g", e.Clock)
			if e.policy.Preempt(e.InFlight, e.Waiting, e.Clock, e.BatchFinishTime) {
				e.commitBatch()
				logrus.Infof("[New scheduled batch] %v", e.InFlight.IDs())
			}
		}

		if event == EventBatchFinished {
			e.drainBatch()
			e.BatchFinishTime = math.Inf(1)
		}

		if event != EventCheckPreemption {
			e.NextCheckTime = e.policy.Schedule(e.InFlight, e.Waiting, e.Clock)
			if e.InFlight.Len() > 0 {
				e.commitBatch()
				logrus.Infof("[Scheduled] %v", e.InFlight.IDs())
			} else {
				logrus.Infof("[No batch scheduled] queue length: %d", e.Waiting.Len())
			}
		}

		if e.Future.Len() == 0 && e.Waiting.Len() == 0 && e.InFlight.Len() == 0 {
			logrus.Info("Trace finished")
			break
		}

		nextArrival := math.Inf(1)
		if e.Future.Len() > 0 {
			nextArrival = e.Future.Peek().ArrivalTime
		}
		if math.IsInf(e.NextCheckTime, 1) && math.IsInf(e.BatchFinishTime, 1) && math.IsInf(nextArrival, 1) {
			panic("engine deadlock: next check, batch finish, and next arrival are all infinite")
		}
		e.Clock = min(e.NextCheckTime, min(e.BatchFinishTime, nextArrival))
		logrus.Infof("[Time] batch finish time: %g next req arrival time: %g next check time: %g",
			e.BatchFinishTime, nextArrival, e.NextCheckTime)

		e.iterations++
	}
}

// RunOffline executes the one-shot bulk mode: every request is treated as
// available at time zero and the policy consumes the entire waiting queue
// without the live event loop.
func (e *Engine) RunOffline() {
	e.Clock = 0
	arrived := AdmitArrivals(e.Clock, e.Future, e.Waiting)
	logrus.Infof("[Offline] %d requests available at t=0", len(arrived))
	e.policy.OfflineSchedule(e.InFlight, e.Waiting, e.Clock, e.Finished)
}

// commitBatch recomputes the batch finish time from the current batch size
// and applies the scheduling transition to every member. This is the only
// caller of Request.Place, so the four placement fields always change
// together across the whole batch.
func (e *Engine) commitBatch() {
	size := e.InFlight.Len()
	runtime := e.profile.Duration(size)
	e.BatchFinishTime = e.Clock + runtime
	for _, r := range e.InFlight.Items() {
		r.Place(e.Clock, size, runtime)
	}
}

// drainBatch moves every request from the in-flight batch into the finished
// history. A drained request whose recorded finish time differs from the
// current instant indicates a scheduling bug.
func (e *Engine) drainBatch() {
	if e.InFlight.Len() == 0 {
		panic("batch finished event with an empty in-flight batch")
	}
	var ids []int
	for e.InFlight.Len() > 0 {
		r := e.InFlight.Pop()
		if r.Placement == nil || r.Placement.FinishTime != e.Clock {
			panic(fmt.Sprintf("request %d: finish time does not match drain instant %g", r.ID, e.Clock))
		}
		ids = append(ids, r.ID)
		e.Finished.Add(r)
	}
	logrus.Infof("[Batch finished] %v", ids)
}

// requestIDs extracts ids for logging.
func requestIDs(reqs []*Request) []int {
	ids := make([]int, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	return ids
}
