// Package report formats the program's console output: progress lines while
// batches are sampled, and the final duration and result lines.
package report

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"
)

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// Printer writes progress lines to an underlying writer. It is safe for
// concurrent use; each line is written and flushed under one lock so lines
// from parallel batches never interleave mid-line.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter creates a new Printer around w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Progress prints "[ID: <id>] Polling random number <index>/<total>!" and
// flushes it.
func (p *Printer) Progress(id, index, total int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := fmt.Fprintf(p.w, "[ID: %d] Polling random number %d/%d!\n", id, index, total); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return flush(p.w)
}

// Write lets the printer share its lock with other output on the same writer.
func (p *Printer) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, err := p.w.Write(b)
	if err != nil {
		return n, err
	}
	return n, flush(p.w)
}

func flush(w io.Writer) error {
	switch f := w.(type) {
	case flusher:
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	case syncer:
		// Sync fails on terminals and pipes; the bytes are already out.
		_ = f.Sync()
	}
	return nil
}

// WriteResult writes the duration line, a blank line, the integers on one
// line and the floats on the next. Every value is followed by a space.
// Floats are printed as the shortest text that round-trips at float32
// precision, e.g. 0.873451.
func WriteResult(w io.Writer, elapsed time.Duration, ints []int, floats []float64) error {
	buf := make([]byte, 0, 64+8*len(ints)+24*len(floats))

	buf = fmt.Appendf(buf, "Duration: %dms\n\n", elapsed.Milliseconds())
	for _, v := range ints {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')
	for _, v := range floats {
		buf = strconv.AppendFloat(buf, v, 'g', -1, 32)
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return flush(w)
}
