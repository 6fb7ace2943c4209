package cli

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Reporter surfaces progress text to the user while a command performs a
// long-running operation.
type Reporter interface {
	// Update replaces the in-progress message.
	Update(message string)

	// Success stops reporting with a final success message.
	Success(message string)

	// Error stops reporting with a final failure message.
	Error(message string)
}

// NopReporter discards all messages. Used when no interactive feedback is
// wanted, e.g. in tests or when output is not a terminal.
type NopReporter struct{}

func (NopReporter) Update(string)  {}
func (NopReporter) Success(string) {}
func (NopReporter) Error(string)   {}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner renders an animated progress indicator on a background ticker. The
// animation is visual feedback only: callers block until their operation
// completes, and Success or Error stops the loop synchronously.
type Spinner struct {
	out io.Writer

	mu      sync.Mutex
	message string
	running bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSpinner returns a spinner writing to out. The animation starts on the
// first Update call.
func NewSpinner(out io.Writer) *Spinner {
	return &Spinner{out: out}
}

func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	if s.running {
		return
	}
	s.running = true
	s.done = make(chan struct{})
	s.wg.Add(1)
	go s.loop(s.done)
}

func (s *Spinner) Success(message string) { s.stop("✓", message) }

func (s *Spinner) Error(message string) { s.stop("✗", message) }

func (s *Spinner) loop(done <-chan struct{}) {
	defer s.wg.Done()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	frame := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			fmt.Fprintf(s.out, "\r%s %s  ", spinnerFrames[frame%len(spinnerFrames)], s.message)
			s.mu.Unlock()
			frame++
		}
	}
}

func (s *Spinner) stop(mark, message string) {
	s.mu.Lock()
	if s.running {
		close(s.done)
		s.running = false
	}
	s.mu.Unlock()
	s.wg.Wait()
	fmt.Fprintf(s.out, "\r%s %s\n", mark, message)
}
