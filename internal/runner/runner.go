// Package runner generates an integer batch and a float batch either one
// after the other or in parallel, and times the whole run.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
	"pkg.jsn.cam/toypoll/internal/report"
	"pkg.jsn.cam/toypoll/pkg/sampler"
)

const DefaultCount = 5

var (
	DefaultIntRange   = sampler.Range[int]{Min: 0, Max: 10}
	DefaultFloatRange = sampler.Range[float64]{Min: 0.5, Max: 1.5}
)

// Progress labels. Sequential runs reuse the integer label for both batches.
const (
	intBatchID   = 1
	floatBatchID = 2
)

// Config holds runner configuration. Zero values fall back to the defaults.
type Config struct {
	Count      int
	Delay      time.Duration
	IntRange   sampler.Range[int]
	FloatRange sampler.Range[float64]

	Clock   clockwork.Clock
	Out     io.Writer // progress lines and the final report
	Logger  *slog.Logger
	NewRand func() *rand.Rand // one generator per batch
}

// Result is the outcome of one run.
type Result struct {
	RunID   string
	Mode    Mode
	Ints    []int
	Floats  []float64
	Elapsed time.Duration
}

// Runner orchestrates the two batches
type Runner struct {
	cfg     Config
	printer *report.Printer
	log     *slog.Logger
}

// New creates a new runner, applying defaults to unset fields
func New(cfg Config) (*Runner, error) {
	if cfg.Out == nil {
		return nil, ErrNoOutput
	}
	if cfg.Count == 0 {
		cfg.Count = DefaultCount
	}
	if cfg.Delay == 0 {
		cfg.Delay = sampler.DefaultDelay
	}
	if cfg.IntRange == (sampler.Range[int]{}) {
		cfg.IntRange = DefaultIntRange
	}
	if cfg.FloatRange == (sampler.Range[float64]{}) {
		cfg.FloatRange = DefaultFloatRange
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.NewRand == nil {
		cfg.NewRand = sampler.NewRand
	}

	return &Runner{
		cfg:     cfg,
		printer: report.NewPrinter(cfg.Out),
		log:     cfg.Logger,
	}, nil
}

// batches bundles the sources for one run
type batches struct {
	ints   sampler.Source[int]
	floats sampler.Source[float64]
}

func (r *Runner) sources() (batches, error) {
	ints, err := sampler.IntSource(r.cfg.NewRand(), r.cfg.IntRange)
	if err != nil {
		return batches{}, err
	}
	floats, err := sampler.FloatSource(r.cfg.NewRand(), r.cfg.FloatRange)
	if err != nil {
		return batches{}, err
	}
	return batches{ints: ints, floats: floats}, nil
}

// Run generates both batches in the given mode. Elapsed covers the span from
// just before the first batch starts to just after the last one finishes.
func (r *Runner) Run(ctx context.Context, mode Mode) (*Result, error) {
	runID := uuid.New().String()
	log := r.log.With("run_id", runID, "mode", mode.String())

	src, err := r.sources()
	if err != nil {
		return nil, fmt.Errorf("%s run: %w", mode, err)
	}

	s := &sampler.Sampler{
		Delay:    r.cfg.Delay,
		Clock:    r.cfg.Clock,
		Progress: r.printer,
	}

	log.Info("Starting run",
		"count", r.cfg.Count,
		"delay", r.cfg.Delay,
		"int_range", r.cfg.IntRange.String(),
		"float_range", r.cfg.FloatRange.String())

	start := r.cfg.Clock.Now()

	var ints []int
	var floats []float64
	switch mode {
	case ModeConcurrent:
		ints, floats, err = r.concurrent(ctx, s, src, log)
	default:
		ints, floats, err = r.sequential(ctx, s, src, log)
	}

	elapsed := r.cfg.Clock.Since(start)
	if err != nil {
		log.Error("Run failed", "error", err, "elapsed", elapsed)
		return nil, fmt.Errorf("%s run: %w", mode, err)
	}

	log.Info("Run finished", "elapsed", elapsed)

	return &Result{
		RunID:   runID,
		Mode:    mode,
		Ints:    ints,
		Floats:  floats,
		Elapsed: elapsed,
	}, nil
}

func (r *Runner) sequential(ctx context.Context, s *sampler.Sampler, src batches, log *slog.Logger) ([]int, []float64, error) {
	ints, err := collect(ctx, s, src.ints, r.cfg.Count, intBatchID, "int", log)
	if err != nil {
		return nil, nil, err
	}
	floats, err := collect(ctx, s, src.floats, r.cfg.Count, intBatchID, "float", log)
	if err != nil {
		return nil, nil, err
	}
	return ints, floats, nil
}

// concurrent runs both batches under one errgroup. A failure in either
// cancels the other, and the first error is returned once both have stopped.
func (r *Runner) concurrent(ctx context.Context, s *sampler.Sampler, src batches, log *slog.Logger) ([]int, []float64, error) {
	var ints []int
	var floats []float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ints, err = collect(gctx, s, src.ints, r.cfg.Count, intBatchID, "int", log)
		return err
	})
	g.Go(func() error {
		var err error
		floats, err = collect(gctx, s, src.floats, r.cfg.Count, floatBatchID, "float", log)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ints, floats, nil
}

// collect times one batch on the sampler's clock, which New always sets.
func collect[T sampler.Number](ctx context.Context, s *sampler.Sampler, src sampler.Source[T], n, id int, kind string, log *slog.Logger) ([]T, error) {
	clock := s.Clock
	start := clock.Now()
	vals, err := sampler.Collect(ctx, s, src, n, id)
	if err != nil {
		return nil, err
	}
	log.Debug("Batch complete", "batch", id, "type", kind, "count", len(vals), "elapsed", clock.Since(start))
	return vals, nil
}

// Report writes the duration and both batches to the runner's output.
func (r *Runner) Report(res *Result) error {
	return report.WriteResult(r.printer, res.Elapsed, res.Ints, res.Floats)
}
