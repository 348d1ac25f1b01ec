// internal/sched/clock.go

package sched

// Clock is the simulated processor clock. It only moves when the
// scheduler tells it to; there is no relation to wall time.
type Clock struct {
	now int64
}

// Now returns the current simulation tick.
func (c *Clock) Now() int64 { return c.now }

// Advance moves the clock forward by d ticks.
func (c *Clock) Advance(d int64) {
	if d > 0 {
		c.now += d
	}
}

// AdvanceTo jumps the clock to t if t lies in the future and returns the
// number of idle ticks skipped.
func (c *Clock) AdvanceTo(t int64) int64 {
	if t <= c.now {
		return 0
	}
	gap := t - c.now
	c.now = t
	return gap
}
