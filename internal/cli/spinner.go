package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a single status line on w while a raster or Graphviz
// conversion runs. The line is erased when it stops.
type Spinner struct {
	w      io.Writer
	label  string
	parent context.Context

	halt    context.CancelFunc
	tick    context.Context
	stopped chan struct{}
	once    sync.Once
}

func newSpinner(ctx context.Context, label string) *Spinner {
	return newSpinnerTo(ctx, os.Stderr, label)
}

func newSpinnerTo(ctx context.Context, w io.Writer, label string) *Spinner {
	tick, halt := context.WithCancel(ctx)
	return &Spinner{w: w, label: label, parent: ctx, tick: tick, halt: halt, stopped: make(chan struct{})}
}

func (s *Spinner) Start() { go s.loop() }

func (s *Spinner) loop() {
	defer close(s.stopped)
	t := time.NewTicker(spinnerInterval)
	defer t.Stop()
	for n := 0; ; n++ {
		select {
		case <-t.C:
			frame := styleIconSpinner.Render(spinnerFrames[n%len(spinnerFrames)])
			fmt.Fprintf(s.w, "\r%s %s", frame, StyleDim.Render(s.label))
		case <-s.tick.Done():
			fmt.Fprint(s.w, "\r"+strings.Repeat(" ", len(s.label)+4)+"\r")
			return
		}
	}
}

// Stop halts the animation and waits for the line to be cleared. Extra
// calls are no-ops. Start must have been called.
func (s *Spinner) Stop() {
	s.once.Do(s.halt)
	<-s.stopped
}

// Interrupted reports whether the command's context ended rather than the
// conversion finishing.
func (s *Spinner) Interrupted() bool { return s.parent.Err() != nil }
