// Package sampler produces batches of random numbers, one sample at a time,
// with a fixed delay before every sample to simulate slow I/O.
package sampler

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultDelay is the pause taken before each sample.
const DefaultDelay = 500 * time.Millisecond

// Progress receives one notification per sample, before the delay for that
// sample starts. Implementations must make the notification visible
// immediately.
type Progress interface {
	Progress(id, index, total int) error
}

// Sampler holds the timing and reporting settings shared by batches.
type Sampler struct {
	Delay    time.Duration   // non-positive means DefaultDelay
	Clock    clockwork.Clock // nil means the real clock
	Progress Progress        // nil discards notifications
}

func (s *Sampler) delay() time.Duration {
	if s == nil || s.Delay <= 0 {
		return DefaultDelay
	}
	return s.Delay
}

func (s *Sampler) clock() clockwork.Clock {
	if s == nil || s.Clock == nil {
		return clockwork.NewRealClock()
	}
	return s.Clock
}

func (s *Sampler) notify(id, index, total int) error {
	if s == nil || s.Progress == nil {
		return nil
	}
	return s.Progress.Progress(id, index, total)
}

// Collect draws n values from src in order. For every position it first
// notifies progress, then waits the sampler's delay, then samples once.
// The id only labels progress notifications.
func Collect[T Number](ctx context.Context, s *Sampler, src Source[T], n, id int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("batch %d: count %d: %w", id, n, ErrInvalidCount)
	}

	clock := s.clock()
	delay := s.delay()

	out := make([]T, 0, n)
	for i := 1; i <= n; i++ {
		if err := s.notify(id, i, n); err != nil {
			return nil, fmt.Errorf("batch %d: progress %d/%d: %w", id, i, n, err)
		}

		timer := clock.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("batch %d: interrupted at %d/%d: %w", id, i, n, ctx.Err())
		case <-timer.Chan():
		}

		out = append(out, src())
	}

	return out, nil
}
