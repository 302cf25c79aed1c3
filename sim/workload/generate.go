package workload

import (
	"fmt"
	"math/rand"
)

// PoissonArrivals generates n arrival instants (ms) with exponentially
// distributed inter-arrival times at the given rate (requests per ms).
// Useful for synthetic load when no trace is available.
func PoissonArrivals(rng *rand.Rand, rate float64, n int) ([]float64, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("arrival rate must be positive, got %f", rate)
	}
	if n < 0 {
		return nil, fmt.Errorf("request count must be non-negative, got %d", n)
	}
	arrivals := make([]float64, n)
	t := 0.0
	for i := 0; i < n; i++ {
		t += rng.ExpFloat64() / rate
		arrivals[i] = t
	}
	return arrivals, nil
}
