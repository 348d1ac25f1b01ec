package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"cpusched/internal/api"
	"cpusched/internal/config"
	"cpusched/internal/logx"
	"cpusched/internal/report"
	"cpusched/internal/sched"
	"cpusched/internal/workload"
)

const (
	exitOK    = 0
	exitRun   = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cpusched", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		algo      = fs.String("algo", "", "scheduling algorithm: FCFS, SJF or RR (required unless -serve)")
		quantum   = fs.Int64("quantum", sched.DefaultQuantum, "time quantum for RR")
		cfgPath   = fs.String("config", "", "YAML file with processes and defaults")
		requeue   = fs.String("requeue", "", "RR requeue policy: arrivals-first or preempted-first")
		tracePath = fs.String("trace", "", "write the event trace as CSV to this file")
		schedPath = fs.String("schedule-csv", "", "write the execution intervals as CSV to this file")
		logLevel  = fs.String("log-level", "", "debug, info, warn, error or off")
		randomN   = fs.Int("random", 0, "simulate N generated processes instead of the configured ones")
		seed      = fs.Int64("seed", 1, "seed for -random")
		serve     = fs.String("serve", "", "serve the HTTP API on this address instead of running once")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	// command line wins over the config file, but only for flags actually given
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	if set["algo"] {
		cfg.Algorithm = *algo
	}
	if set["quantum"] {
		cfg.Quantum = *quantum
	}
	if set["requeue"] {
		cfg.Requeue = *requeue
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if *randomN < 0 {
		fmt.Fprintf(stderr, "error: -random must not be negative, got %d\n", *randomN)
		return exitUsage
	}
	if *randomN > 0 {
		cfg.Processes = workload.Generate(*seed, *randomN, int64(*randomN)*2, 10)
	}

	log := logx.New(stderr, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}

	if *serve != "" {
		cfg.Listen = *serve
		app := api.NewApp(api.NewSchedulerHandler(cfg, log))
		log.Info().Str("addr", cfg.Listen).Int("processes", len(cfg.Processes)).Msg("serving scheduler API")
		if err := app.Listen(cfg.Listen); err != nil {
			log.Error().Err(err).Msg("server stopped")
			return exitRun
		}
		return exitOK
	}

	if cfg.Algorithm == "" {
		fmt.Fprintln(stderr, "error: -algo is required (FCFS, SJF or RR)")
		fs.Usage()
		return exitUsage
	}

	if err := simulate(cfg, log, stdout, *tracePath, *schedPath); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		return exitRun
	}
	return exitOK
}

func simulate(cfg config.Config, log zerolog.Logger, stdout io.Writer, tracePath, schedPath string) error {
	alg, err := sched.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Logger = &log
	sim, err := sched.New(opts)
	if err != nil {
		return err
	}

	out, err := sim.Run(alg, cfg.Processes)
	if err != nil {
		return err
	}
	if err := report.WriteText(stdout, out); err != nil {
		return errors.Wrap(err, "write report")
	}

	if tracePath != "" {
		err := writeFile(tracePath, func(w io.Writer) error { return report.WriteTraceCSV(w, out.Events) })
		if err != nil {
			return errors.Wrap(err, "write trace")
		}
		log.Debug().Str("path", tracePath).Int("events", len(out.Events)).Msg("trace written")
	}
	if schedPath != "" {
		err := writeFile(schedPath, func(w io.Writer) error { return report.WriteScheduleCSV(w, out.Schedule) })
		if err != nil {
			return errors.Wrap(err, "write schedule")
		}
		log.Debug().Str("path", schedPath).Int("intervals", len(out.Schedule)).Msg("schedule written")
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
