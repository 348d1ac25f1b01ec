package sched

import "github.com/pkg/errors"

// Configuration errors are reported before any scheduling happens.
var (
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	ErrInvalidQuantum   = errors.New("quantum must be positive")
	ErrUnknownRequeue   = errors.New("unknown requeue policy")
)

// Input and metrics errors.
var (
	ErrInvalidProcess   = errors.New("invalid process")
	ErrDuplicateProcess = errors.New("duplicate process id")
	ErrUnscheduled      = errors.New("process was never scheduled")
	ErrUnknownProcess   = errors.New("schedule references unknown process")
)
