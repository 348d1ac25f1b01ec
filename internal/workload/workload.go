package workload

import (
	"fmt"
	"math/rand"

	"cpusched/internal/sched"
)

// Default returns the classic five-process textbook dataset.
func Default() []sched.Process {
	return []sched.Process{
		{ID: "P1", Arrival: 0, Burst: 7},
		{ID: "P2", Arrival: 2, Burst: 4},
		{ID: "P3", Arrival: 4, Burst: 1},
		{ID: "P4", Arrival: 5, Burst: 4},
		{ID: "P5", Arrival: 6, Burst: 3},
	}
}

// Generate returns n processes named P1..Pn with arrivals in [0, maxArrival]
// and bursts in [1, maxBurst]. The same seed always yields the same list.
func Generate(seed int64, n int, maxArrival, maxBurst int64) []sched.Process {
	if maxArrival < 0 {
		maxArrival = 0
	}
	if maxBurst < 1 {
		maxBurst = 1
	}

	rng := rand.New(rand.NewSource(seed))
	procs := make([]sched.Process, n)
	for i := range procs {
		procs[i] = sched.Process{
			ID:      fmt.Sprintf("P%d", i+1),
			Arrival: rng.Int63n(maxArrival + 1),
			Burst:   1 + rng.Int63n(maxBurst),
		}
	}
	return procs
}
