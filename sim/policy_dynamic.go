package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

// DynamicPolicy is the deadline-aware adaptive variant. When the waiting
// population would form an under-full batch, it defers committing while
// the most urgent deadline still has slack for a larger batch, asking the
// engine for a wakeup at the latest safe commit instant. Under preemption
// it promotes waiting requests that would otherwise expire before the
// current batch drains, evicting slack batch members when full.
type DynamicPolicy struct {
	MaxBatchSize int
	Profile      ThroughputProfile
}

// Schedule commits a batch now, or defers while waiting for more arrivals.
//
// The deferral bound is the latest instant at which a batch one request
// larger could still start and meet the most urgent waiting deadline. Once
// that bound is reached the batch commits, so a deferral never repeats
// without the waiting population changing.
func (p *DynamicPolicy) Schedule(batch *Batch, waiting *RequestQueue, now float64) float64 {
	if waiting.Len() == 0 {
		return math.Inf(1)
	}
	size := min(waiting.Len(), p.MaxBatchSize)
	if size < p.MaxBatchSize {
		latestCommit := waiting.Peek().Deadline - p.Profile.Duration(size+1)
		if latestCommit > now {
			logrus.Debugf("[Dynamic] deferring batch of %d, wakeup at %g", size, latestCommit)
			return latestCommit
		}
	}
	for i := 0; i < size; i++ {
		batch.Add(waiting.Pop())
	}
	return math.Inf(1)
}

// Preempt promotes urgent waiting requests into the executing batch.
//
// A waiting request is urgent when it cannot survive the current batch
// draining first: deadline < batchFinishTime + base runtime. Urgent
// requests are promoted while the batch has room and the enlarged batch
// would still meet their deadline; when the batch is full, the member with
// the slackest deadline is evicted back to waiting if the swap is feasible.
func (p *DynamicPolicy) Preempt(batch *Batch, waiting *RequestQueue, now, batchFinishTime float64) bool {
	changed := false
	base := p.Profile.BaseRuntime()
	for waiting.Len() > 0 {
		head := waiting.Peek()
		if head.Deadline >= batchFinishTime+base {
			// Deadline order: every request behind head can wait too.
			break
		}
		if batch.Len() < p.MaxBatchSize && now+p.Profile.Duration(batch.Len()+1) <= head.Deadline {
			logrus.Debugf("[Dynamic] promoting request %d into executing batch", head.ID)
			batch.Add(waiting.Pop())
			changed = true
			continue
		}
		victim := slackestMember(batch)
		if victim != nil && victim.Deadline > head.Deadline && now+p.Profile.Duration(batch.Len()) <= head.Deadline {
			logrus.Debugf("[Dynamic] evicting request %d for urgent request %d", victim.ID, head.ID)
			batch.Remove(victim)
			victim.Unplace()
			waiting.Push(victim)
			batch.Add(waiting.Pop())
			changed = true
			continue
		}
		break
	}
	return changed
}

// OfflineSchedule drains the waiting queue in fixed-size chunks; with all
// arrivals at time zero the deadline-aware plan degenerates to the same
// chunking the simple policy uses.
func (p *DynamicPolicy) OfflineSchedule(batch *Batch, waiting *RequestQueue, now float64, finished *History) {
	runOfflineBatches(batch, waiting, now, finished, p.MaxBatchSize, p.Profile)
}

// slackestMember returns the batch member with the latest deadline, or nil
// for an empty batch.
func slackestMember(batch *Batch) *Request {
	var victim *Request
	for _, r := range batch.Items() {
		if victim == nil || r.Deadline > victim.Deadline {
			victim = r
		}
	}
	return victim
}
