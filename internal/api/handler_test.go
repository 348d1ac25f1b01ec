package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"cpusched/internal/config"
	"cpusched/internal/sched"
)

type outcomeBody struct {
	Algorithm string           `json:"algorithm"`
	Quantum   int64            `json:"quantum"`
	Requeue   string           `json:"requeue"`
	Schedule  []sched.Interval `json:"schedule"`
	Metrics   sched.Metrics    `json:"metrics"`
}


func do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	return doWith(t, config.Default(), req)
}

func doWith(t *testing.T, cfg config.Config, req *http.Request) (int, []byte) {
	t.Helper()
	app := NewApp(NewSchedulerHandler(cfg, zerolog.Nop()))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, body
}

func TestGetAlgorithmUsesConfiguredWorkload(t *testing.T) {
	status, body := do(t, httptest.NewRequest(http.MethodGet, "/api/v1/fcfs", nil))
	if status != http.StatusOK {
		t.Fatalf("status %d: %s", status, body)
	}
	var out outcomeBody
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Algorithm != "FCFS" || len(out.Schedule) != 5 {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if out.Metrics.AvgWaiting != 5.8 {
		t.Fatalf("avg waiting = %v, want 5.8", out.Metrics.AvgWaiting)
	}
}

func TestGetRoundRobinQuantumQuery(t *testing.T) {
	status, body := do(t, httptest.NewRequest(http.MethodGet, "/api/v1/rr?quantum=100", nil))
	if status != http.StatusOK {
		t.Fatalf("status %d: %s", status, body)
	}
	var out outcomeBody
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Quantum != 100 || len(out.Schedule) != 5 {
		t.Fatalf("expected one slice per process with q=100, got %+v", out)
	}
}

func TestPostSchedule(t *testing.T) {
	payload := `{"algorithm":"sjf","processes":[{"id":"A","arrival":0,"burst":5},{"id":"B","arrival":1,"burst":2},{"id":"C","arrival":1,"burst":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	status, body := do(t, req)
	if status != http.StatusOK {
		t.Fatalf("status %d: %s", status, body)
	}
	var out outcomeBody
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []sched.Interval{{PID: "A", Start: 0, End: 5}, {PID: "C", Start: 5, End: 6}, {PID: "B", Start: 6, End: 8}}
	if len(out.Schedule) != len(want) {
		t.Fatalf("schedule %+v, want %+v", out.Schedule, want)
	}
	for i := range want {
		if out.Schedule[i] != want[i] {
			t.Fatalf("schedule %+v, want %+v", out.Schedule, want)
		}
	}
}

func TestGetAll(t *testing.T) {
	status, body := do(t, httptest.NewRequest(http.MethodGet, "/api/v1/all", nil))
	if status != http.StatusOK {
		t.Fatalf("status %d: %s", status, body)
	}
	var outs []outcomeBody
	if err := json.Unmarshal(body, &outs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(outs) != 3 || outs[0].Algorithm != "FCFS" || outs[1].Algorithm != "SJF" || outs[2].Algorithm != "RR" {
		t.Fatalf("unexpected outcomes: %+v", outs)
	}
}

func TestBadRequests(t *testing.T) {
	cases := []struct {
		name string
		req  func() *http.Request
		want string
	}{
		{"unknown algorithm", func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/api/v1/lottery", nil)
		}, "unknown scheduling algorithm"},
		{"zero quantum", func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/api/v1/rr?quantum=0", nil)
		}, "quantum must be positive"},
		{"garbage quantum", func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/api/v1/rr?quantum=two", nil)
		}, "quantum must be positive"},
		{"invalid process", func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/schedule",
				strings.NewReader(`{"algorithm":"FCFS","processes":[{"id":"A","arrival":0,"burst":0}]}`))
			r.Header.Set("Content-Type", "application/json")
			return r
		}, "invalid process"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, tc.req())
			if status != http.StatusBadRequest {
				t.Fatalf("status %d, want 400: %s", status, body)
			}
			if !strings.Contains(string(body), tc.want) {
				t.Fatalf("body %s does not mention %q", body, tc.want)
			}
		})
	}
}

func postJSON(payload string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRequeuePolicyInResponse(t *testing.T) {
	status, body := do(t, postJSON(`{"algorithm":"RR","requeue":"preempted-first"}`))
	if status != http.StatusOK {
		t.Fatalf("status %d: %s", status, body)
	}
	var out outcomeBody
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Requeue != "preempted-first" {
		t.Fatalf("requeue = %q, want preempted-first", out.Requeue)
	}

	status, body = do(t, httptest.NewRequest(http.MethodGet, "/api/v1/rr", nil))
	if status != http.StatusOK {
		t.Fatalf("status %d: %s", status, body)
	}
	if strings.Contains(string(body), `"requeue"`) {
		t.Fatalf("default policy should be omitted: %s", body)
	}
}

func TestWorkloadLimits(t *testing.T) {
	cfg := config.Default()
	cfg.MaxProcesses = 3
	cfg.MaxSlices = 100

	cases := []struct {
		name    string
		payload string
		status  int
	}{
		{"huge rr burst", `{"algorithm":"RR","quantum":1,"processes":[{"id":"A","arrival":0,"burst":1000000000000}]}`, http.StatusBadRequest},
		{"slices just over", `{"algorithm":"RR","quantum":1,"processes":[{"id":"A","arrival":0,"burst":60},{"id":"B","arrival":0,"burst":41}]}`, http.StatusBadRequest},
		{"slices at limit", `{"algorithm":"RR","quantum":2,"processes":[{"id":"A","arrival":0,"burst":120},{"id":"B","arrival":0,"burst":79}]}`, http.StatusOK},
		{"big burst is one slice outside rr", `{"algorithm":"FCFS","processes":[{"id":"A","arrival":0,"burst":1000000000000}]}`, http.StatusOK},
		{"too many processes", `{"algorithm":"FCFS","processes":[{"id":"A","burst":1},{"id":"B","burst":1},{"id":"C","burst":1},{"id":"D","burst":1}]}`, http.StatusBadRequest},
		{"overflowing burst", `{"algorithm":"FCFS","processes":[{"id":"A","arrival":9223372036854775806,"burst":5}]}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doWith(t, cfg, postJSON(tc.payload))
			if status != tc.status {
				t.Fatalf("status %d, want %d: %s", status, tc.status, body)
			}
			if tc.status == http.StatusBadRequest && !strings.Contains(string(body), "workload too large") &&
				!strings.Contains(string(body), "invalid process") {
				t.Fatalf("unexpected error body %s", body)
			}
		})
	}
}
