package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"cpusched/internal/config"
	"cpusched/internal/sched"
)

// ErrWorkloadTooLarge is returned for requests over the configured limits.
var ErrWorkloadTooLarge = errors.New("workload too large")

// ScheduleRequest is the body accepted by POST /api/v1/schedule.
type ScheduleRequest struct {
	Algorithm string          `json:"algorithm"`
	Quantum   int64           `json:"quantum"`
	Requeue   string          `json:"requeue"`
	Processes []sched.Process `json:"processes"`
}

// SchedulerHandler serves simulations over HTTP.
type SchedulerHandler struct {
	cfg config.Config
	log zerolog.Logger
}

func NewSchedulerHandler(cfg config.Config, log zerolog.Logger) *SchedulerHandler {
	return &SchedulerHandler{cfg: cfg, log: log}
}

// NewApp wires the routes onto a fresh fiber app.
func NewApp(h *SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/schedule", h.Schedule)
		v1.Get("/all", h.AllAlgorithms)
		v1.Get("/:algo", h.Algorithm)
	}
	return app
}

// Algorithm runs one algorithm over the configured workload.
// GET /api/v1/:algo?quantum=N
func (h *SchedulerHandler) Algorithm(ctx *fiber.Ctx) error {
	quantum, err := queryQuantum(ctx, h.cfg.Quantum)
	if err != nil {
		return badRequest(ctx, err)
	}
	return h.run(ctx, ScheduleRequest{Algorithm: ctx.Params("algo"), Quantum: quantum})
}

// Schedule runs the algorithm named in the body; processes default to the
// configured workload.
func (h *SchedulerHandler) Schedule(ctx *fiber.Ctx) error {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if req.Quantum == 0 {
		req.Quantum = h.cfg.Quantum
	}
	return h.run(ctx, req)
}

// AllAlgorithms runs FCFS, SJF and RR over the configured workload.
// GET /api/v1/all?quantum=N
func (h *SchedulerHandler) AllAlgorithms(ctx *fiber.Ctx) error {
	quantum, err := queryQuantum(ctx, h.cfg.Quantum)
	if err != nil {
		return badRequest(ctx, err)
	}
	sim, err := h.simulator(quantum, h.cfg.Requeue)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err := h.checkLimits(sched.RR, h.cfg.Processes, quantum); err != nil {
		return badRequest(ctx, err)
	}
	outs, err := sim.RunAll(h.cfg.Processes)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(outs)
}

func (h *SchedulerHandler) run(ctx *fiber.Ctx, req ScheduleRequest) error {
	alg, err := sched.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return badRequest(ctx, err)
	}
	requeue := req.Requeue
	if requeue == "" {
		requeue = h.cfg.Requeue
	}
	sim, err := h.simulator(req.Quantum, requeue)
	if err != nil {
		return badRequest(ctx, err)
	}
	procs := req.Processes
	if procs == nil {
		procs = h.cfg.Processes
	}
	if err := h.checkLimits(alg, procs, req.Quantum); err != nil {
		return badRequest(ctx, err)
	}
	out, err := sim.Run(alg, procs)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(out)
}

func (h *SchedulerHandler) simulator(quantum int64, requeue string) (*sched.Simulator, error) {
	policy, err := sched.ParseRequeuePolicy(requeue)
	if err != nil {
		return nil, err
	}
	return sched.New(sched.Options{Quantum: quantum, Requeue: policy, Logger: &h.log})
}

// checkLimits bounds the work of one request. Each interval costs a slice and
// two trace events, so RR is charged ceil(burst/quantum) slices per process.
// Invalid bursts are left to process validation.
func (h *SchedulerHandler) checkLimits(alg sched.Algorithm, procs []sched.Process, quantum int64) error {
	if h.cfg.MaxProcesses > 0 && len(procs) > h.cfg.MaxProcesses {
		return errors.Wrapf(ErrWorkloadTooLarge, "%d processes, limit %d", len(procs), h.cfg.MaxProcesses)
	}
	if h.cfg.MaxSlices <= 0 {
		return nil
	}

	var slices int64
	for _, p := range procs {
		n := int64(1)
		if alg == sched.RR && p.Burst > 0 && quantum > 0 {
			n = (p.Burst-1)/quantum + 1
		}
		if n > h.cfg.MaxSlices-slices {
			return errors.Wrapf(ErrWorkloadTooLarge, "more than %d time slices", h.cfg.MaxSlices)
		}
		slices += n
	}
	return nil
}

func queryQuantum(ctx *fiber.Ctx, def int64) (int64, error) {
	if ctx.Query("quantum") == "" {
		return def, nil
	}
	q, err := strconv.ParseInt(ctx.Query("quantum"), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(sched.ErrInvalidQuantum, "%q", ctx.Query("quantum"))
	}
	return q, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
