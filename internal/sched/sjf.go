package sched

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// readyJob is an SJF ready-pool entry. seq is the admission sequence number
// and breaks ties between equal bursts: the job admitted first wins, which is
// arrival order and then input order.
type readyJob struct {
	index int
	burst int64
	seq   int
}

func cmpShortest(a, b any) int {
	ja, jb := a.(readyJob), b.(readyJob)
	switch {
	case ja.burst < jb.burst:
		return -1
	case ja.burst > jb.burst:
		return 1
	case ja.seq < jb.seq:
		return -1
	case ja.seq > jb.seq:
		return 1
	default:
		return 0
	}
}

// sjf is non-preemptive shortest-job-first: at each decision point the
// shortest ready burst runs to completion, even if a shorter job arrives
// while it runs.
func (r *run) sjf() {
	ready := binaryheap.NewWith(cmpShortest)
	seq := 0

	for !r.pending.Empty() || !ready.Empty() {
		for _, idx := range r.pending.Admit(r.clock.Now()) {
			ready.Push(readyJob{index: idx, burst: r.procs[idx].Burst, seq: seq})
			seq++
			r.enqueued(idx, r.procs[idx].Burst)
		}

		v, ok := ready.Pop()
		if !ok {
			r.idleUntilNextArrival()
			continue
		}
		job := v.(readyJob)
		r.execute(job.index, job.burst, 0)
	}
}
