// internal/sched/run.go

package sched

import (
	"github.com/rs/zerolog"
)

// run carries the mutable state of a single simulation. A fresh run is
// created per invocation so separate simulations never share state.
type run struct {
	procs    []Process
	pending  *arrivals
	clock    Clock
	schedule Schedule
	events   []Event
	log      zerolog.Logger
}

func newRun(procs []Process, log zerolog.Logger) *run {
	return &run{
		procs:    procs,
		pending:  newArrivals(procs),
		schedule: make(Schedule, 0, len(procs)),
		log:      log,
	}
}

func (r *run) record(ev Event) {
	r.events = append(r.events, ev)
	r.log.Debug().
		Int64("t", ev.Time).
		Str("event", ev.Kind.String()).
		Str("pid", ev.PID).
		Int64("ran", ev.Ran).
		Int64("remaining", ev.Remaining).
		Msg("sched event")
}

// idleUntil skips the processor forward to t, recording the gap.
func (r *run) idleUntil(t int64) {
	start := r.clock.Now()
	if gap := r.clock.AdvanceTo(t); gap > 0 {
		r.record(Event{Time: start, Kind: EventIdle, Ran: gap})
	}
}

// idleUntilNextArrival is used when nothing is ready but work is still pending.
func (r *run) idleUntilNextArrival() {
	if next, ok := r.pending.Next(); ok {
		r.idleUntil(next)
	}
}

func (r *run) enqueued(idx int, remaining int64) {
	r.record(Event{
		Time:      r.clock.Now(),
		Kind:      EventEnqueue,
		PID:       r.procs[idx].ID,
		Remaining: remaining,
	})
}

// execute gives process idx the CPU for d ticks starting now and appends the
// resulting interval. remaining is the burst left once the slice completes.
func (r *run) execute(idx int, d, remaining int64) {
	pid := r.procs[idx].ID
	start := r.clock.Now()
	r.record(Event{Time: start, Kind: EventDispatch, PID: pid, Ran: d, Remaining: remaining + d})

	r.clock.Advance(d)
	r.schedule = append(r.schedule, Interval{PID: pid, Start: start, End: r.clock.Now()})

	kind := EventPreempt
	if remaining == 0 {
		kind = EventFinish
	}
	r.record(Event{Time: r.clock.Now(), Kind: kind, PID: pid, Ran: d, Remaining: remaining})
}
