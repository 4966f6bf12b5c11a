package points

import (
	"sync"
	"time"
)

// debouncedWriter batches rapid successive writes into one. It holds a single
// pending value and a cancellable timer: scheduling a new value while one is
// pending replaces the value and rearms the timer, so only the last value
// within a quiescence window is written.
type debouncedWriter struct {
	mu      sync.Mutex
	delay   time.Duration
	write   func(Record)
	pending *Record
	timer   *time.Timer
}

func newDebouncedWriter(delay time.Duration, write func(Record)) *debouncedWriter {
	return &debouncedWriter{
		delay: delay,
		write: write,
	}
}

// Schedule queues the record for writing after the quiescence window. A zero
// delay writes synchronously.
func (w *debouncedWriter) Schedule(record Record) {
	if w.delay <= 0 {
		w.write(record)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = &record
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

func (w *debouncedWriter) fire() {
	w.mu.Lock()
	record := w.pending
	w.pending = nil
	w.timer = nil
	w.mu.Unlock()

	if record != nil {
		w.write(*record)
	}
}

// Flush writes any pending record immediately and cancels the timer. Used on
// shutdown so a queued score is not lost.
func (w *debouncedWriter) Flush() {
	w.mu.Lock()
	record := w.pending
	w.pending = nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	if record != nil {
		w.write(*record)
	}
}
