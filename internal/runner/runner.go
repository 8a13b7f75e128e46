// Package runner drives a breakout session headlessly: it owns the tick
// source, samples an intent source each tick and reports frames to an
// optional observer.
package runner

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/clock"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrTickLimit is returned when a session is still running after the
// configured maximum number of ticks.
var ErrTickLimit = errors.New("runner: tick limit reached")

// IntentSource supplies the player intent for the next tick.
type IntentSource interface {
	Intent(snap breakout.Snapshot) core.Intent
}

// IntentFunc adapts a function to IntentSource.
type IntentFunc func(snap breakout.Snapshot) core.Intent

// Intent implements IntentSource.
func (f IntentFunc) Intent(snap breakout.Snapshot) core.Intent { return f(snap) }

// Idle is an IntentSource that never presses anything.
var Idle = IntentFunc(func(breakout.Snapshot) core.Intent { return core.Intent{} })

// FrameFunc observes the scene after each tick. It runs on the tick
// goroutine and must not block.
type FrameFunc func(snap breakout.Snapshot)

// Option configures a Runner.
type Option func(*Runner)

// WithFrameObserver sets the per-tick observer.
func WithFrameObserver(fn FrameFunc) Option {
	return func(r *Runner) { r.onFrame = fn }
}

// WithMaxTicks bounds a run. Zero means unbounded.
func WithMaxTicks(n uint64) Option {
	return func(r *Runner) { r.maxTicks = n }
}

// WithTicker replaces the tick source, e.g. to run faster than real time.
func WithTicker(t *clock.Ticker) Option {
	return func(r *Runner) {
		if t != nil {
			r.ticker = t
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner couples a Session with a tick source and an intent source.
type Runner struct {
	session  *breakout.Session
	source   IntentSource
	ticker   *clock.Ticker
	onFrame  FrameFunc
	maxTicks uint64
	logger   *log.Logger

	mu sync.Mutex // guards session while the ticker is armed
}

// New creates a Runner. A nil source behaves like Idle.
func New(session *breakout.Session, source IntentSource, opts ...Option) *Runner {
	if source == nil {
		source = Idle
	}
	r := &Runner{
		session: session,
		source:  source,
		ticker:  clock.New(session.TickInterval()),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Play starts a session and steps it once per tick until it ends, the tick
// limit is hit or ctx is cancelled. It returns the last step result.
func (r *Runner) Play(ctx context.Context) (breakout.StepResult, error) {
	type outcome struct {
		res breakout.StepResult
		err error
	}
	done := make(chan outcome, 1)

	r.mu.Lock()
	r.session.Start()
	r.mu.Unlock()

	var last breakout.StepResult
	armed := r.ticker.Start(func(uint64) {
		r.mu.Lock()
		defer r.mu.Unlock()

		res, stop := r.advance()
		last = res
		if !stop {
			return
		}
		r.ticker.Stop()

		var err error
		if !res.Ended {
			err = ErrTickLimit
		}
		done <- outcome{res: res, err: err}
	})
	if !armed {
		return breakout.StepResult{}, errors.New("runner: ticker already running")
	}
	r.logger.Debug("runner armed", "interval", r.ticker.Interval(), "max_ticks", r.maxTicks)

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		r.ticker.Stop()
		r.mu.Lock()
		defer r.mu.Unlock()
		return last, ctx.Err()
	}
}

// Simulate steps the session as fast as possible without a clock. It is
// used for headless runs where wall time does not matter.
func (r *Runner) Simulate(ctx context.Context) (breakout.StepResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session.Start()
	var last breakout.StepResult
	for {
		if err := ctx.Err(); err != nil {
			return last, err
		}
		res, stop := r.advance()
		last = res
		if stop {
			if !res.Ended {
				return res, ErrTickLimit
			}
			return res, nil
		}
	}
}

// advance runs one tick. It reports whether the run should stop.
func (r *Runner) advance() (breakout.StepResult, bool) {
	in := r.source.Intent(r.session.Snapshot())
	if in.Start {
		r.session.Start()
	}
	res := r.session.Step(in)

	if r.onFrame != nil {
		r.onFrame(r.session.Snapshot())
	}

	if res.Ended {
		return res, true
	}
	if r.maxTicks > 0 && res.Tick >= r.maxTicks {
		return res, true
	}
	return res, false
}
