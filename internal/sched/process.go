package sched

import (
	"math"

	"github.com/pkg/errors"
)

// Process is one static unit of CPU work fed to the schedulers.
type Process struct {
	ID      string `yaml:"id" json:"id"`
	Arrival int64  `yaml:"arrival" json:"arrival"` // simulation tick the process becomes ready
	Burst   int64  `yaml:"burst" json:"burst"`     // total CPU ticks required
}

// ValidateProcesses rejects inputs the scheduling algorithms are not defined for.
// An empty list is valid and simply yields an empty schedule. The simulated
// clock never passes the latest arrival plus the total burst, so that sum must
// fit in an int64.
func ValidateProcesses(procs []Process) error {
	seen := make(map[string]struct{}, len(procs))
	var latest, total int64
	for i, p := range procs {
		if p.ID == "" {
			return errors.Wrapf(ErrInvalidProcess, "process #%d has an empty id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return errors.Wrapf(ErrDuplicateProcess, "%q", p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Arrival < 0 {
			return errors.Wrapf(ErrInvalidProcess, "process %q: negative arrival %d", p.ID, p.Arrival)
		}
		if p.Burst <= 0 {
			return errors.Wrapf(ErrInvalidProcess, "process %q: burst must be positive, got %d", p.ID, p.Burst)
		}
		if p.Burst > math.MaxInt64-total {
			return errors.Wrapf(ErrInvalidProcess, "process %q: total burst overflows the clock", p.ID)
		}
		total += p.Burst
		latest = max(latest, p.Arrival)
	}
	if latest > math.MaxInt64-total {
		return errors.Wrapf(ErrInvalidProcess, "latest arrival %d plus total burst %d overflows the clock", latest, total)
	}
	return nil
}
