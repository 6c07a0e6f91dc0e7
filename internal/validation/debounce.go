package validation

import (
	"sync"
	"time"
)

// timer is the cancellable handle behind a pending debounced call.
type timer interface {
	Stop() bool
}

// Debouncer coalesces bursts of validation requests. Each provider has
// its own window: scheduling for one provider never delays another, and
// within a window only the last scheduled call fires.
type Debouncer struct {
	window  time.Duration
	factory func(d time.Duration, fn func()) timer

	mu      sync.Mutex
	pending map[string]timer
}

// NewDebouncer builds a debouncer with the given window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window: window,
		factory: func(d time.Duration, fn func()) timer {
			return time.AfterFunc(d, fn)
		},
		pending: make(map[string]timer),
	}
}

// Schedule queues fn to run after the window elapses. A prior pending
// call for the same provider is cancelled first.
func (d *Debouncer) Schedule(providerID string, fn func()) {
	key := normalize(providerID)

	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.pending[key]; ok {
		prev.Stop()
	}
	d.pending[key] = d.factory(d.window, func() {
		d.mu.Lock()
		delete(d.pending, key)
		d.mu.Unlock()
		fn()
	})
}

// Flush cancels every pending call without running it.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, pending := range d.pending {
		pending.Stop()
		delete(d.pending, key)
	}
}
