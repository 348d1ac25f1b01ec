package sched

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"
)

// RequeuePolicy decides where a preempted process lands relative to the
// processes that arrived during its slice.
type RequeuePolicy int

const (
	// RequeueArrivalsFirst admits new arrivals, then appends the preempted process.
	RequeueArrivalsFirst RequeuePolicy = iota
	// RequeuePreemptedFirst appends the preempted process, then admits new arrivals.
	RequeuePreemptedFirst
)

func (p RequeuePolicy) String() string {
	switch p {
	case RequeueArrivalsFirst:
		return "arrivals-first"
	case RequeuePreemptedFirst:
		return "preempted-first"
	default:
		return "unknown"
	}
}

func (p RequeuePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParseRequeuePolicy maps a policy name to its value; empty means the default.
func ParseRequeuePolicy(s string) (RequeuePolicy, error) {
	switch s {
	case "", "arrivals-first":
		return RequeueArrivalsFirst, nil
	case "preempted-first":
		return RequeuePreemptedFirst, nil
	default:
		return 0, errors.Wrapf(ErrUnknownRequeue, "%q", s)
	}
}

// roundRobin time-slices the ready queue with a fixed quantum. remaining is
// indexed by the process's input position.
func (r *run) roundRobin(quantum int64, policy RequeuePolicy) {
	remaining := make([]int64, len(r.procs))
	for i, p := range r.procs {
		remaining[i] = p.Burst
	}

	ready := linkedlistqueue.New()
	admit := func() {
		for _, idx := range r.pending.Admit(r.clock.Now()) {
			ready.Enqueue(idx)
			r.enqueued(idx, remaining[idx])
		}
	}

	for !r.pending.Empty() || !ready.Empty() {
		admit()

		v, ok := ready.Dequeue()
		if !ok {
			r.idleUntilNextArrival()
			continue
		}
		idx := v.(int)

		slice := min(quantum, remaining[idx])
		remaining[idx] -= slice
		r.execute(idx, slice, remaining[idx])
		if remaining[idx] == 0 {
			continue
		}

		// The order of these two steps changes the schedule.
		if policy == RequeuePreemptedFirst {
			ready.Enqueue(idx)
			admit()
		} else {
			admit()
			ready.Enqueue(idx)
		}
	}
}
