package workload

import (
	"reflect"
	"testing"

	"cpusched/internal/sched"
)

func TestDefaultIsValid(t *testing.T) {
	procs := Default()
	if len(procs) != 5 {
		t.Fatalf("expected 5 processes, got %d", len(procs))
	}
	if err := sched.ValidateProcesses(procs); err != nil {
		t.Fatalf("default dataset rejected: %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(42, 20, 30, 9)
	b := Generate(42, 20, 30, 9)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different workloads")
	}
	if err := sched.ValidateProcesses(a); err != nil {
		t.Fatalf("generated workload rejected: %v", err)
	}
	for _, p := range a {
		if p.Arrival < 0 || p.Arrival > 30 {
			t.Fatalf("%s arrival %d out of range", p.ID, p.Arrival)
		}
		if p.Burst < 1 || p.Burst > 9 {
			t.Fatalf("%s burst %d out of range", p.ID, p.Burst)
		}
	}
}

func TestGenerateClampsBounds(t *testing.T) {
	for _, p := range Generate(1, 5, -3, 0) {
		if p.Arrival != 0 || p.Burst != 1 {
			t.Fatalf("expected clamped process, got %+v", p)
		}
	}
}
