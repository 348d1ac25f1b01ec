package sched

import "github.com/pkg/errors"

// ProcessMetrics holds the timing results of a single process.
type ProcessMetrics struct {
	PID        string `json:"pid"`
	Arrival    int64  `json:"arrival"`
	Burst      int64  `json:"burst"`
	Start      int64  `json:"start"`  // start of the first interval
	Finish     int64  `json:"finish"` // end of the last interval
	Waiting    int64  `json:"waiting"`
	Turnaround int64  `json:"turnaround"`
	Response   int64  `json:"response"`
}

// Metrics is the per-process breakdown, in input order, plus run-wide figures.
type Metrics struct {
	Processes     []ProcessMetrics `json:"processes"`
	AvgWaiting    float64          `json:"avg_waiting"`
	AvgTurnaround float64          `json:"avg_turnaround"`
	AvgResponse   float64          `json:"avg_response"`
	Makespan      int64            `json:"makespan"`
	IdleTime      int64            `json:"idle_time"`
	Utilization   float64          `json:"utilization"` // busy / makespan
	Throughput    float64          `json:"throughput"`  // processes per tick
}

// ComputeMetrics derives waiting, turnaround and response times from a
// chronologically ordered schedule. Every process must appear in the
// schedule at least once.
func ComputeMetrics(schedule Schedule, procs []Process) (Metrics, error) {
	index := make(map[string]int, len(procs))
	for i, p := range procs {
		if _, dup := index[p.ID]; dup {
			return Metrics{}, errors.Wrapf(ErrDuplicateProcess, "%q", p.ID)
		}
		index[p.ID] = i
	}

	seen := make([]bool, len(procs))
	first := make([]int64, len(procs))
	finish := make([]int64, len(procs))
	for _, iv := range schedule {
		i, ok := index[iv.PID]
		if !ok {
			return Metrics{}, errors.Wrapf(ErrUnknownProcess, "%q", iv.PID)
		}
		if !seen[i] {
			seen[i] = true
			first[i] = iv.Start
		}
		finish[i] = iv.End
	}

	m := Metrics{Processes: make([]ProcessMetrics, 0, len(procs))}
	// Per-process values fit the clock but their sums may not.
	var sumWaiting, sumTurnaround, sumResponse float64
	for i, p := range procs {
		if !seen[i] {
			return Metrics{}, errors.Wrapf(ErrUnscheduled, "%q", p.ID)
		}
		turnaround := finish[i] - p.Arrival
		pm := ProcessMetrics{
			PID:        p.ID,
			Arrival:    p.Arrival,
			Burst:      p.Burst,
			Start:      first[i],
			Finish:     finish[i],
			Turnaround: turnaround,
			Waiting:    turnaround - p.Burst,
			Response:   first[i] - p.Arrival,
		}
		sumWaiting += float64(pm.Waiting)
		sumTurnaround += float64(pm.Turnaround)
		sumResponse += float64(pm.Response)
		m.Processes = append(m.Processes, pm)
	}

	if n := float64(len(procs)); n > 0 {
		m.AvgWaiting = sumWaiting / n
		m.AvgTurnaround = sumTurnaround / n
		m.AvgResponse = sumResponse / n
	}

	m.Makespan = schedule.Makespan()
	busy := schedule.BusyTime()
	m.IdleTime = m.Makespan - busy
	if m.Makespan > 0 {
		m.Utilization = float64(busy) / float64(m.Makespan)
		m.Throughput = float64(len(procs)) / float64(m.Makespan)
	}
	return m, nil
}
