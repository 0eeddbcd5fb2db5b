package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of events to end.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer batches rapid file events. Callbacks never overlap: events that
// arrive while one runs are delivered in the next batch.
type Debouncer struct {
	duration time.Duration
	callback func([]fsnotify.Event)

	mu       sync.Mutex
	timer    *time.Timer
	events   []fsnotify.Event
	pending  []fsnotify.Event
	inFlight bool
	stopped  bool
}

// NewDebouncer returns a Debouncer calling cb once d has passed without a new
// event.
func NewDebouncer(d time.Duration, cb func([]fsnotify.Event)) *Debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Debouncer{duration: d, callback: cb}
}

// Add records ev and restarts the quiet period.
func (d *Debouncer) Add(ev fsnotify.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.events = append(d.events, ev)
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.flush)
}

func (d *Debouncer) flush() {
	d.mu.Lock()
	if d.stopped || len(d.events) == 0 {
		d.mu.Unlock()
		return
	}

	events := d.events
	d.events = nil
	if d.inFlight {
		d.pending = append(d.pending, events...)
		d.mu.Unlock()
		return
	}
	d.inFlight = true
	d.mu.Unlock()

	d.callback(events)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight = false
	if len(d.pending) > 0 && !d.stopped {
		d.events = d.pending
		d.pending = nil
		d.timer = time.AfterFunc(d.duration, d.flush)
	}
}

// Stop drops queued events and disables the Debouncer. A callback already
// running is not interrupted.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.events = nil
	d.pending = nil
}
