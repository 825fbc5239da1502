package integration

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"pkg.jsn.cam/toypoll/internal/logging"
	"pkg.jsn.cam/toypoll/internal/runner"
)

const delay = 10 * time.Millisecond

// runPipeline runs one mode end to end and returns stdout split into lines
func runPipeline(t *testing.T, mode runner.Mode) (*runner.Result, []string) {
	t.Helper()

	var out bytes.Buffer
	bw := bufio.NewWriter(&out)

	r, err := runner.New(runner.Config{
		Delay:  delay,
		Out:    bw,
		Logger: logging.New(io.Discard, slog.LevelError),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	res, err := r.Run(context.Background(), mode)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if err := r.Report(res); err != nil {
		t.Fatalf("Report() error: %v", err)
	}

	// Every line was flushed as it was written
	if bw.Buffered() != 0 {
		t.Errorf("%d bytes left unflushed", bw.Buffered())
	}

	return res, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

// TestPipeline checks the output shape for both modes
func TestPipeline(t *testing.T) {
	t.Parallel()

	for _, mode := range []runner.Mode{runner.ModeSequential, runner.ModeConcurrent} {
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()

			res, lines := runPipeline(t, mode)

			// 10 progress lines, duration, blank, ints, floats
			if len(lines) != 14 {
				t.Fatalf("Got %d lines, want 14:\n%s", len(lines), strings.Join(lines, "\n"))
			}

			wantDuration := "Duration: " + strconv.FormatInt(res.Elapsed.Milliseconds(), 10) + "ms"
			if lines[10] != wantDuration {
				t.Errorf("duration line = %q, want %q", lines[10], wantDuration)
			}

			ints := strings.Fields(lines[12])
			if len(ints) != 5 {
				t.Fatalf("Got %d ints, want 5", len(ints))
			}
			for i, field := range ints {
				v, err := strconv.Atoi(field)
				if err != nil || v < 0 || v > 10 {
					t.Errorf("bad int %q", field)
				}
				if v != res.Ints[i] {
					t.Errorf("int %d printed as %d, generated %d", i, v, res.Ints[i])
				}
			}
			if !strings.HasSuffix(lines[12], " ") {
				t.Errorf("int line should end with a space: %q", lines[12])
			}

			floats := strings.Fields(lines[13])
			if len(floats) != 5 {
				t.Fatalf("Got %d floats, want 5", len(floats))
			}
			for i, field := range floats {
				v, err := strconv.ParseFloat(field, 32)
				if err != nil || v < 0.5 || v > 1.5 {
					t.Errorf("bad float %q", field)
				}
				// Printed at float32 precision
				if float32(v) != float32(res.Floats[i]) {
					t.Errorf("float %d printed as %v, generated %v", i, v, res.Floats[i])
				}
			}
		})
	}
}

// TestPipeline_ConcurrentIsFaster compares both modes under the same batch sizes
func TestPipeline_ConcurrentIsFaster(t *testing.T) {
	t.Parallel()

	seq, _ := runPipeline(t, runner.ModeSequential)
	conc, _ := runPipeline(t, runner.ModeConcurrent)

	if seq.Elapsed < 10*delay {
		t.Errorf("sequential elapsed %v below %v", seq.Elapsed, 10*delay)
	}
	if conc.Elapsed < 5*delay {
		t.Errorf("concurrent elapsed %v below %v", conc.Elapsed, 5*delay)
	}
	if conc.Elapsed >= seq.Elapsed {
		t.Errorf("concurrent (%v) not faster than sequential (%v)", conc.Elapsed, seq.Elapsed)
	}
}
