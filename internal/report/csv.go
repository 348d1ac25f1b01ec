package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"cpusched/internal/sched"
)

// WriteTraceCSV writes the event trace of a run, one row per event.
func WriteTraceCSV(w io.Writer, events []sched.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "event", "pid", "ran", "remaining"}); err != nil {
		return err
	}
	for _, ev := range events {
		rec := []string{
			strconv.FormatInt(ev.Time, 10),
			ev.Kind.String(),
			ev.PID,
			strconv.FormatInt(ev.Ran, 10),
			strconv.FormatInt(ev.Remaining, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScheduleCSV writes one row per execution interval.
func WriteScheduleCSV(w io.Writer, schedule sched.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"pid", "start", "end"}); err != nil {
		return err
	}
	for _, iv := range schedule {
		if err := cw.Write([]string{iv.PID, strconv.FormatInt(iv.Start, 10), strconv.FormatInt(iv.End, 10)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
