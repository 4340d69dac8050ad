package recorder

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler runs callbacks on the controller's single timeline. After
// schedules fn once after d and returns a cancel func; after cancel returns
// fn will not run.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Loop is a single-goroutine event loop implementing Scheduler for headless
// use. Every posted task and every timer callback runs on the loop goroutine,
// one at a time.
type Loop struct {
	logger *slog.Logger
	tasks  chan func()
	done   chan struct{}
	once   sync.Once
}

// NewLoop starts the loop goroutine.
func NewLoop(logger *slog.Logger) *Loop {
	l := &Loop{logger: logger, tasks: make(chan func(), 64), done: make(chan struct{})}
	go l.run()
	return l
}

func (l *Loop) run() {
	for {
		select {
		case fn := <-l.tasks:
			l.exec(fn)
		case <-l.done:
			return
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil && l.logger != nil {
			l.logger.Error("loop task panic", "error", r, "stack", string(debug.Stack()))
		}
	}()
	fn()
}

// Post enqueues fn. It reports false once the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop and waits for it to finish.
func (l *Loop) Do(fn func()) bool {
	finished := make(chan struct{})
	if !l.Post(func() { defer close(finished); fn() }) {
		return false
	}
	select {
	case <-finished:
		return true
	case <-l.done:
		return false
	}
}

// After implements Scheduler. The cancel func must be called from the loop.
func (l *Loop) After(d time.Duration, fn func()) func() {
	var cancelled atomic.Bool
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}

// Close stops the loop. Pending tasks are dropped.
func (l *Loop) Close() { l.once.Do(func() { close(l.done) }) }
