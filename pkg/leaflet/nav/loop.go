package nav

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// Scheduler runs controller code on the UI loop.
type Scheduler interface {
	// Post queues task to run on the UI loop. It never blocks.
	Post(task func())
	// Go runs work off the UI loop. The function work returns, if not
	// nil, is then posted to the UI loop.
	Go(work func() func())
}

// Loop is a single-threaded task queue: every task runs on the goroutine
// that calls Run, Drain or Settle, one at a time, in the order posted.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	signal  chan struct{}
	pending *atomic.Int64
}

var _ Scheduler = (*Loop)(nil)

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{
		signal:  make(chan struct{}, 1),
		pending: atomic.NewInt64(0),
	}
}

// Post queues task. It is safe to call from any goroutine, including from
// inside a running task.
func (l *Loop) Post(task func()) {
	l.mu.Lock()
	l.queue = append(l.queue, task)
	l.mu.Unlock()
	l.notify()
}

// Go runs work on a new goroutine and posts its continuation.
func (l *Loop) Go(work func() func()) {
	l.pending.Inc()
	go func() {
		if done := work(); done != nil {
			l.Post(done)
		}
		l.pending.Dec()
		l.notify()
	}()
}

// Drain runs queued tasks, including ones they post, until the queue is
// empty. It returns the number of tasks run and never waits for work
// started with Go.
func (l *Loop) Drain() int {
	ran := 0
	for {
		l.mu.Lock()
		tasks := l.queue
		l.queue = nil
		l.mu.Unlock()

		if len(tasks) == 0 {
			return ran
		}
		for _, task := range tasks {
			task()
			ran++
		}
	}
}

// Ready returns a channel that receives a value after tasks were posted or
// background work finished. Surfaces with their own event loop select on
// it and call Drain.
func (l *Loop) Ready() <-chan struct{} {
	return l.signal
}

// Run drains the queue whenever work arrives until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.signal:
		}
	}
}

// Settle drains the queue until it is empty and no background work is
// outstanding, or ctx is done.
func (l *Loop) Settle(ctx context.Context) error {
	for {
		l.Drain()
		if l.pending.Load() == 0 && l.empty() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.signal:
		}
	}
}

// Pending returns the number of Go calls whose work has not finished.
func (l *Loop) Pending() int64 {
	return l.pending.Load()
}

func (l *Loop) empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue) == 0
}

func (l *Loop) notify() {
	select {
	case l.signal <- struct{}{}:
	default:
	}
}
