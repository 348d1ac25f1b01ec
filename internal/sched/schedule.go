package sched

import (
	"fmt"
	"strings"
)

// Interval is one contiguous stretch of CPU time given to a process: [Start, End).
type Interval struct {
	PID   string `json:"pid"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

// Duration returns End - Start.
func (iv Interval) Duration() int64 { return iv.End - iv.Start }

func (iv Interval) String() string {
	return fmt.Sprintf("%s[%d-%d]", iv.PID, iv.Start, iv.End)
}

// Schedule is the chronologically ordered output of a scheduler.
// Idle gaps are implied by the distance between consecutive intervals.
type Schedule []Interval

// Makespan is the end time of the last interval, 0 for an empty schedule.
func (s Schedule) Makespan() int64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].End
}

// BusyTime is the total time the processor spent executing.
func (s Schedule) BusyTime() int64 {
	var busy int64
	for _, iv := range s {
		busy += iv.Duration()
	}
	return busy
}

// Gantt renders the schedule as a single line, e.g. "P1[0-7] | P2[7-11]".
func (s Schedule) Gantt() string {
	parts := make([]string, len(s))
	for i, iv := range s {
		parts[i] = iv.String()
	}
	return strings.Join(parts, " | ")
}
