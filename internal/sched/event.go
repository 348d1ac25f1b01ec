// internal/sched/event.go

package sched

import "strings"

// EventKind represents the type of scheduler event
type EventKind int

const (
	EventIdle EventKind = iota
	EventEnqueue
	EventDispatch
	EventPreempt
	EventFinish
)

// Event is recorded on every key action of a simulated run.
type Event struct {
	Time      int64     `json:"time"`
	Kind      EventKind `json:"kind"`
	PID       string    `json:"pid,omitempty"`
	Ran       int64     `json:"ran,omitempty"`       // ticks executed (dispatch slice or idle gap)
	Remaining int64     `json:"remaining,omitempty"` // burst left after the action
}

func (k EventKind) String() string {
	switch k {
	case EventIdle:
		return "Idle"
	case EventEnqueue:
		return "Enqueue"
	case EventDispatch:
		return "Dispatch"
	case EventPreempt:
		return "Preempt"
	case EventFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// MarshalText lets the kind appear by name in JSON output.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.String())), nil
}
