package config

import (
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"cpusched/internal/sched"
	"cpusched/internal/workload"
)

// Config mirrors config.yml
type Config struct {
	Algorithm string          `yaml:"algorithm"` // FCFS, SJF or RR; empty means "ask the caller"
	Quantum   int64           `yaml:"quantum"`   // 2 (by default)
	Requeue   string          `yaml:"requeue"`   // arrivals-first (by default)
	LogLevel  string          `yaml:"log_level"` // info (by default)
	Listen    string          `yaml:"listen"`    // address for the HTTP API

	// HTTP requests over these limits are refused; 0 means no limit
	MaxProcesses int   `yaml:"max_processes"` // 10000 (by default)
	MaxSlices    int64 `yaml:"max_slices"`    // 1000000 (by default)

	Processes []sched.Process `yaml:"processes"` // built-in dataset when omitted
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Quantum:   sched.DefaultQuantum,
		Requeue:   sched.RequeueArrivalsFirst.String(),
		LogLevel:  "info",
		Listen:    ":9095",

		MaxProcesses: 10000,
		MaxSlices:    1000000,

		Processes: workload.Default(),
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only.
// Values are not validated here, Validate does that.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes a YAML document on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// a processes key replaces the built-in dataset rather than merging into it
	cfg.Processes = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(err, "parse config")
	}
	if cfg.Processes == nil {
		cfg.Processes = workload.Default()
	}
	return cfg, nil
}

// ErrInvalidLimit reports a negative request limit.
var ErrInvalidLimit = errors.New("request limits must not be negative")

// Validate checks everything except the algorithm, which may still come
// from the command line.
func (c Config) Validate() error {
	if c.Quantum <= 0 {
		return errors.Wrapf(sched.ErrInvalidQuantum, "config quantum %d", c.Quantum)
	}
	if _, err := sched.ParseRequeuePolicy(c.Requeue); err != nil {
		return err
	}
	if c.MaxProcesses < 0 || c.MaxSlices < 0 {
		return errors.Wrapf(ErrInvalidLimit, "max_processes %d, max_slices %d", c.MaxProcesses, c.MaxSlices)
	}
	if c.Algorithm != "" {
		if _, err := sched.ParseAlgorithm(c.Algorithm); err != nil {
			return err
		}
	}
	return sched.ValidateProcesses(c.Processes)
}

// Options converts the config into simulator options.
func (c Config) Options() (sched.Options, error) {
	policy, err := sched.ParseRequeuePolicy(c.Requeue)
	if err != nil {
		return sched.Options{}, err
	}
	return sched.Options{Quantum: c.Quantum, Requeue: policy}, nil
}
