// Command toypoll samples five random integers and five random floats, either
// one batch after the other or both at once, and prints how long it took.
//
//	toypoll          sequential run
//	toypoll async    concurrent run
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pkg.jsn.cam/toypoll/internal/logging"
	"pkg.jsn.cam/toypoll/internal/runner"
	"pkg.jsn.cam/toypoll/pkg/sampler"
)

const (
	sampleCount = 5
	sampleDelay = 500 * time.Millisecond
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, sampleDelay); err != nil {
		stop()
		os.Exit(1)
	}
}

// run only looks at args[0]; anything but "async" means a sequential run, so
// no flag parsing happens here.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, delay time.Duration) error {
	level, levelErr := logging.LevelFromEnv()
	log := logging.New(stderr, level)
	if levelErr != nil {
		log.Warn("Ignoring log level", "error", levelErr)
	}

	r, err := runner.New(runner.Config{
		Count:      sampleCount,
		Delay:      delay,
		IntRange:   sampler.Range[int]{Min: 0, Max: 10},
		FloatRange: sampler.Range[float64]{Min: 0.5, Max: 1.5},
		Out:        stdout,
		Logger:     log,
	})
	if err != nil {
		log.Error("Failed to create runner", "error", err)
		return err
	}

	res, err := r.Run(ctx, runner.ParseMode(args))
	if err != nil {
		log.Error("Run failed", "error", err)
		return err
	}

	if err := r.Report(res); err != nil {
		log.Error("Failed to write report", "error", err)
		return err
	}
	return nil
}
