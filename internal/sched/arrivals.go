// internal/sched/arrivals.go

package sched

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// arrivals holds the processes that have not entered a ready queue yet,
// ordered by arrival time and then by their position in the input.
type arrivals struct {
	tree *redblacktree.Tree
}

func newArrivals(procs []Process) *arrivals {
	tree := redblacktree.NewWith(cmpArrival)
	for i, p := range procs {
		tree.Put(arrivalKey{arrival: p.Arrival, index: i}, i)
	}
	return &arrivals{tree: tree}
}

// Empty reports whether every process has been admitted.
func (a *arrivals) Empty() bool { return a.tree.Empty() }

// Next returns the arrival time of the earliest pending process.
func (a *arrivals) Next() (int64, bool) {
	node := a.tree.Left()
	if node == nil {
		return 0, false
	}
	return node.Key.(arrivalKey).arrival, true
}

// Admit removes every pending process with arrival <= now and returns
// their input indices in arrival order.
func (a *arrivals) Admit(now int64) []int {
	var admitted []int
	for node := a.tree.Left(); node != nil; node = a.tree.Left() {
		key := node.Key.(arrivalKey)
		if key.arrival > now {
			break
		}
		a.tree.Remove(key)
		admitted = append(admitted, key.index)
	}
	return admitted
}

// arrivalKey is used as a key in the red-black tree.
type arrivalKey struct {
	arrival int64
	index   int
}

// cmpArrival orders keys by arrival, falling back to input order so equal
// arrivals stay stable.
func cmpArrival(a, b any) int {
	ka, kb := a.(arrivalKey), b.(arrivalKey)
	switch {
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.index < kb.index:
		return -1
	case ka.index > kb.index:
		return 1
	default:
		return 0
	}
}
