// Package clock provides a fixed-rate tick source that keeps at most one
// tick stream alive at a time.
package clock

import (
	"sync"
	"time"
)

// DefaultInterval is the reference cadence of the simulation.
const DefaultInterval = 10 * time.Millisecond

// TickFunc is called once per tick with a 1-based tick count for the
// current stream.
type TickFunc func(n uint64)

// Ticker drives a TickFunc at a fixed interval from a single goroutine.
// Starting an already running Ticker does nothing, so a repeated start
// request can never double the simulation speed.
type Ticker struct {
	interval time.Duration

	mu      sync.Mutex
	gen     uint64
	running bool
	stop    chan struct{}

	// fire serializes callbacks across streams so a stale stream can
	// never run alongside a fresh one.
	fire sync.Mutex
}

// New creates a stopped Ticker. A non-positive interval uses DefaultInterval.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{interval: interval}
}

// Interval returns the tick period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Start arms the tick stream. It returns false without side effects when
// the Ticker is already running.
func (t *Ticker) Start(fn TickFunc) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return false
	}
	t.gen++
	t.running = true
	t.stop = make(chan struct{})

	go t.loop(t.gen, t.stop, fn)
	return true
}

// Stop disarms the tick stream. It is idempotent and may be called from
// inside the TickFunc; it does not wait for the goroutine to exit.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	t.running = false
	close(t.stop)
}

// Running reports whether a tick stream is armed.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Ticker) current(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running && t.gen == gen
}

func (t *Ticker) loop(gen uint64, stop <-chan struct{}, fn TickFunc) {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	var n uint64
	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			t.fire.Lock()
			if !t.current(gen) {
				t.fire.Unlock()
				return
			}
			n++
			fn(n)
			t.fire.Unlock()
		}
	}
}
