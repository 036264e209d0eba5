// Package diag accumulates non-fatal diagnostics raised while scanning
// sources and resolving types.
//
// Each diagnostic is written to the sink's writer the moment it is reported,
// so a human watching the run sees problems incrementally. The aggregate
// state is consulted once, at the end, to decide whether the run failed.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Sink collects diagnostic messages and remembers whether any were reported.
type Sink struct {
	w    io.Writer
	msgs []string
}

// New creates a sink that streams diagnostics to w.
// A nil writer defaults to stderr.
func New(w io.Writer) *Sink {
	if w == nil {
		w = os.Stderr
	}
	return &Sink{w: w}
}

// Reportf records a diagnostic and writes it to the sink's writer immediately.
func (s *Sink) Reportf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.msgs = append(s.msgs, msg)
	fmt.Fprintln(s.w, msg)
}

// Failed reports whether any diagnostic was recorded.
func (s *Sink) Failed() bool {
	return len(s.msgs) > 0
}

// Messages returns all recorded diagnostics in report order.
func (s *Sink) Messages() []string {
	return s.msgs
}
