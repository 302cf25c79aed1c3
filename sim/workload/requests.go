package workload

import (
	"github.com/inference-sim/batchsim/sim"
)

// BuildRequests converts a sequence of arrival instants into sim.Request
// objects with a uniform SLO factor. The throughput profile supplies the
// base (batch-size-1) runtime every deadline derives from, so it must be
// fully loaded first. In offline mode arrival times are coerced to zero
// and at most offlineNumReqs requests are produced.
func BuildRequests(arrivals []float64, sloFactor float64, profile sim.ThroughputProfile, offlineNumReqs int) []*sim.Request {
	base := profile.BaseRuntime()
	requests := make([]*sim.Request, 0, len(arrivals))
	for i, arrival := range arrivals {
		if offlineNumReqs > 0 {
			arrival = 0
		}
		requests = append(requests, sim.NewRequest(i, arrival, sloFactor, base))
		if offlineNumReqs > 0 && i >= offlineNumReqs-1 {
			break
		}
	}
	return requests
}

// BuildRequestsFromSpecs converts externally supplied (id, slo factor,
// arrival time) triples into sim.Request objects, with the same offline
// coercion as BuildRequests.
func BuildRequestsFromSpecs(specs []RequestSpec, profile sim.ThroughputProfile, offlineNumReqs int) []*sim.Request {
	base := profile.BaseRuntime()
	requests := make([]*sim.Request, 0, len(specs))
	for _, spec := range specs {
		arrival := spec.ArrivalTime
		if offlineNumReqs > 0 {
			arrival = 0
		}
		requests = append(requests, sim.NewRequest(spec.RequestID, arrival, spec.SLOFactor, base))
		if offlineNumReqs > 0 && len(requests) >= offlineNumReqs {
			break
		}
	}
	return requests
}
