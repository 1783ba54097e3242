// Package fetch tracks the loading/error/data lifecycle of one remote
// data dependency. A Loader runs a producer, exposes a tri-state result,
// and re-runs the producer when its dependency key changes.
package fetch

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Result is the tri-state outcome of a Loader. At most one of Loading and
// Err is meaningful at a time. After the first success Data keeps the last
// good value even when a later refresh fails (stale-while-error); callers
// that need strict freshness must check Err before rendering Data.
type Result[T any] struct {
	Data    T
	Loaded  bool
	Loading bool
	Err     string
}

// Loader owns the result state for one producer. Only the most recently
// started invocation may commit its outcome; anything that finishes after
// being superseded, or after Close, is dropped.
type Loader[T any] struct {
	producer func(ctx context.Context) (T, error)

	mu       sync.Mutex
	res      Result[T]
	gen      uint64
	depKey   string
	started  bool
	closed   bool
	inflight bool
	cancel   context.CancelFunc
	settled  chan struct{}
}

// NewLoader wraps a producer. Nothing runs until the first Load.
func NewLoader[T any](producer func(ctx context.Context) (T, error)) *Loader[T] {
	return &Loader[T]{producer: producer}
}

// Load starts the producer if it has never run or if depKey differs from
// the key of the last started invocation. A repeat of the current key is
// a no-op.
func (l *Loader[T]) Load(depKey string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	if l.started && l.depKey == depKey {
		return
	}
	l.depKey = depKey
	l.started = true
	l.begin()
}

// Reload forces a re-invocation with the current key. This is the only
// retry mechanism the loader offers; it never retries on its own.
func (l *Loader[T]) Reload() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || !l.started {
		return
	}
	l.begin()
}

// begin starts a new generation. Callers hold mu.
func (l *Loader[T]) begin() {
	l.gen++
	if l.cancel != nil {
		l.cancel()
	}
	if l.inflight {
		// wake waiters so they move on to the new generation
		close(l.settled)
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.settled = make(chan struct{})
	l.inflight = true
	l.res.Loading = true
	l.res.Err = ""
	go l.run(ctx, l.gen)
}

func (l *Loader[T]) run(ctx context.Context, gen uint64) {
	data, err := l.producer(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || gen != l.gen {
		zap.S().Debugw("dropped stale response", "generation", gen, "current", l.gen)
		return
	}
	l.inflight = false
	l.res.Loading = false
	if err != nil {
		l.res.Err = err.Error()
		if !l.res.Loaded {
			var zero T
			l.res.Data = zero
		}
	} else {
		l.res.Data = data
		l.res.Loaded = true
		l.res.Err = ""
	}
	close(l.settled)
}

// Snapshot returns a copy of the current result.
func (l *Loader[T]) Snapshot() Result[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.res
}

// Wait blocks until the loader is not loading, then returns the result.
// It returns early with the in-flight snapshot when ctx expires.
func (l *Loader[T]) Wait(ctx context.Context) Result[T] {
	for {
		l.mu.Lock()
		if l.closed || !l.res.Loading {
			res := l.res
			l.mu.Unlock()
			return res
		}
		settled := l.settled
		res := l.res
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return res
		case <-settled:
		}
	}
}

// Close cancels any in-flight invocation and bars all further state
// mutation. The result freezes as-is.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
	if l.inflight {
		l.inflight = false
		close(l.settled)
	}
}
