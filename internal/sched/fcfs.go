package sched

import "math"

// fcfs runs every process to completion in arrival order. Equal arrivals
// keep their input order.
func (r *run) fcfs() {
	for _, idx := range r.pending.Admit(math.MaxInt64) {
		p := r.procs[idx]
		r.idleUntil(p.Arrival)
		r.enqueued(idx, p.Burst)
		r.execute(idx, p.Burst, 0)
	}
}
