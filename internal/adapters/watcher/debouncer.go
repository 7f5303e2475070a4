// Package watcher implements file system watching for re-running a script on change.
package watcher

import (
	"sort"
	"sync"
	"time"

	"go.trai.ch/rscript/internal/core/ports"
)

// Debouncer coalesces rapid file system events into one event per path.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]ports.WatchOp
	timer    *time.Timer
	window   time.Duration
	callback func(events []ports.WatchEvent)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]ports.WatchOp),
		window:   window,
		callback: callback,
	}
}

// Add records an event. The latest operation for a path wins.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[event.Path] = event.Operation

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	events := d.drain()
	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// Flush immediately triggers the callback with all pending events.
// It blocks until the callback completes.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than processing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	d.mu.Unlock()

	d.fire()
}

// Stop discards pending events and cancels the timer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = make(map[string]ports.WatchOp)
}

func (d *Debouncer) drain() []ports.WatchEvent {
	d.mu.Lock()
	defer d.mu.Unlock()

	events := make([]ports.WatchEvent, 0, len(d.pending))
	for path, op := range d.pending {
		events = append(events, ports.WatchEvent{Path: path, Operation: op})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Path < events[j].Path })

	d.pending = make(map[string]ports.WatchOp)
	d.timer = nil
	return events
}
