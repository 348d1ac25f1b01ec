package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cpusched/internal/sched"
)

// Title names an outcome the way the reports print it, e.g. "Round Robin (q=2)".
// A non-default requeue policy is appended to the RR title.
func Title(out *sched.Outcome) string {
	if out.Algorithm == sched.RR {
		if out.Requeue != sched.RequeueArrivalsFirst {
			return fmt.Sprintf("%s (q=%d, %s)", out.Algorithm.Title(), out.Quantum, out.Requeue)
		}
		return fmt.Sprintf("%s (q=%d)", out.Algorithm.Title(), out.Quantum)
	}
	return out.Algorithm.Title()
}

// WriteText renders the Gantt line, the per-process table and the averages.
func WriteText(w io.Writer, out *sched.Outcome) error {
	m := out.Metrics
	if _, err := fmt.Fprintf(w, "\n%s Schedule:\nGantt: %s\n", Title(out), out.Schedule.Gantt()); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Start", "Finish", "Waiting", "Turnaround", "Response"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, p := range m.Processes {
		table.Append([]string{
			p.PID,
			strconv.FormatInt(p.Arrival, 10),
			strconv.FormatInt(p.Burst, 10),
			strconv.FormatInt(p.Start, 10),
			strconv.FormatInt(p.Finish, 10),
			strconv.FormatInt(p.Waiting, 10),
			strconv.FormatInt(p.Turnaround, 10),
			strconv.FormatInt(p.Response, 10),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.1f", m.AvgWaiting),
		fmt.Sprintf("%.1f", m.AvgTurnaround),
		fmt.Sprintf("%.1f", m.AvgResponse),
	})
	table.Render()

	_, err := fmt.Fprintf(w, "Averages: Waiting=%.1f, Turnaround=%.1f, Response=%.1f\n"+
		"CPU: makespan=%d idle=%d utilization=%.1f%% throughput=%.2f/tick\n",
		m.AvgWaiting, m.AvgTurnaround, m.AvgResponse,
		m.Makespan, m.IdleTime, m.Utilization*100, m.Throughput)
	return err
}
