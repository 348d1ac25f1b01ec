// internal/sched/scheduler.go

package sched

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultQuantum is the Round-Robin time slice used when none is given.
const DefaultQuantum int64 = 2

// Algorithm selects one of the supported scheduling policies.
type Algorithm int

const (
	FCFS Algorithm = iota // first-come, first-served
	SJF                   // shortest job first, non-preemptive
	RR                    // round-robin
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm { return []Algorithm{FCFS, SJF, RR} }

func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case RR:
		return "RR"
	default:
		return "Unknown"
	}
}

// Title is the human readable name used in reports.
func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "First-Come-First-Served"
	case SJF:
		return "Shortest-Job-First"
	case RR:
		return "Round Robin"
	default:
		return "Unknown"
	}
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseAlgorithm accepts FCFS, SJF or RR, ignoring case and surrounding space.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FCFS":
		return FCFS, nil
	case "SJF":
		return SJF, nil
	case "RR":
		return RR, nil
	default:
		return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q (want FCFS, SJF or RR)", s)
	}
}

// Options configures a Simulator.
type Options struct {
	Quantum int64 // Round-Robin time slice, must be positive
	Requeue RequeuePolicy
	Logger  *zerolog.Logger // nil disables logging
}

// Outcome is everything produced by one simulated run.
type Outcome struct {
	Algorithm Algorithm     `json:"algorithm"`
	Quantum   int64         `json:"quantum,omitempty"` // set for RR only
	Requeue   RequeuePolicy `json:"requeue,omitempty"` // RR only, omitted for arrivals-first
	Schedule  Schedule      `json:"schedule"`
	Events    []Event       `json:"events"`
	Metrics   Metrics       `json:"metrics"`
}

// Simulator runs the scheduling algorithms over static process lists. It
// holds no per-run state and can be reused.
type Simulator struct {
	quantum int64
	requeue RequeuePolicy
	log     zerolog.Logger
}

// New creates a Simulator, rejecting invalid configuration up front.
func New(opts Options) (*Simulator, error) {
	if opts.Quantum <= 0 {
		return nil, errors.Wrapf(ErrInvalidQuantum, "got %d", opts.Quantum)
	}
	if opts.Requeue != RequeueArrivalsFirst && opts.Requeue != RequeuePreemptedFirst {
		return nil, errors.Wrapf(ErrUnknownRequeue, "%d", int(opts.Requeue))
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Simulator{
		quantum: opts.Quantum,
		requeue: opts.Requeue,
		log:     log,
	}, nil
}

// Run validates procs, schedules them with alg and computes the metrics.
func (s *Simulator) Run(alg Algorithm, procs []Process) (*Outcome, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}

	r := newRun(procs, s.log.With().Str("algo", alg.String()).Logger())
	out := &Outcome{Algorithm: alg}
	switch alg {
	case FCFS:
		r.fcfs()
	case SJF:
		r.sjf()
	case RR:
		r.roundRobin(s.quantum, s.requeue)
		out.Quantum = s.quantum
		out.Requeue = s.requeue
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%d", int(alg))
	}

	metrics, err := ComputeMetrics(r.schedule, procs)
	if err != nil {
		return nil, errors.Wrapf(err, "%s metrics", alg)
	}
	out.Schedule = r.schedule
	out.Events = r.events
	out.Metrics = metrics

	s.log.Info().
		Str("algo", alg.String()).
		Int("processes", len(procs)).
		Int("intervals", len(out.Schedule)).
		Int64("makespan", metrics.Makespan).
		Float64("avg_waiting", metrics.AvgWaiting).
		Msg("simulation finished")
	return out, nil
}

// RunAll runs every algorithm over the same process list.
func (s *Simulator) RunAll(procs []Process) ([]*Outcome, error) {
	outs := make([]*Outcome, 0, len(Algorithms()))
	for _, alg := range Algorithms() {
		out, err := s.Run(alg, procs)
		if err != nil {
			return nil, err
		}
		outs = append(outs, out)
	}
	return outs, nil
}

// Run is the one-shot entry point: it parses the algorithm name, checks the
// quantum and simulates procs with the default requeue policy.
func Run(algorithm string, procs []Process, quantum int64) (*Outcome, error) {
	alg, err := ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	sim, err := New(Options{Quantum: quantum})
	if err != nil {
		return nil, err
	}
	return sim.Run(alg, procs)
}
