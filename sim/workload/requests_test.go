package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/batchsim/sim"
)

func TestBuildRequests(t *testing.T) {
	// GIVEN three arrivals and a base runtime of 10ms
	profile := sim.ThroughputProfile{1: 10, 2: 15}

	reqs := BuildRequests([]float64{0, 5, 30}, 2.0, profile, 0)

	require.Len(t, reqs, 3)
	assert.Equal(t, 0, reqs[0].ID)
	assert.Equal(t, 5.0, reqs[1].ArrivalTime)
	// Deadline = arrival + sloFactor * base runtime.
	assert.Equal(t, 25.0, reqs[1].Deadline)
	assert.Equal(t, 50.0, reqs[2].Deadline)
}

func TestBuildRequests_OfflineCoercesArrivalsAndCaps(t *testing.T) {
	profile := sim.ThroughputProfile{1: 10}

	reqs := BuildRequests([]float64{0, 5, 30, 45}, 2.0, profile, 2)

	require.Len(t, reqs, 2)
	for _, r := range reqs {
		assert.Equal(t, 0.0, r.ArrivalTime)
		assert.Equal(t, 20.0, r.Deadline)
	}
}

func TestBuildRequestsFromSpecs(t *testing.T) {
	profile := sim.ThroughputProfile{1: 10}
	specs := []RequestSpec{
		{RequestID: 0, SLOFactor: 1.5, ArrivalTime: 0},
		{RequestID: 1, SLOFactor: 3.0, ArrivalTime: 20},
	}

	reqs := BuildRequestsFromSpecs(specs, profile, 0)

	require.Len(t, reqs, 2)
	assert.Equal(t, 15.0, reqs[0].Deadline)
	assert.Equal(t, 50.0, reqs[1].Deadline)
}

func TestBuildRequestsFromSpecs_OfflineCap(t *testing.T) {
	profile := sim.ThroughputProfile{1: 10}
	specs := []RequestSpec{
		{RequestID: 0, SLOFactor: 1, ArrivalTime: 10},
		{RequestID: 1, SLOFactor: 1, ArrivalTime: 20},
		{RequestID: 2, SLOFactor: 1, ArrivalTime: 30},
	}

	reqs := BuildRequestsFromSpecs(specs, profile, 2)

	require.Len(t, reqs, 2)
	assert.Equal(t, 0.0, reqs[0].ArrivalTime)
	assert.Equal(t, 0.0, reqs[1].ArrivalTime)
}
