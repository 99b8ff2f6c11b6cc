package fetch

import (
	"context"
	"sync"
)

// Result is the observable state of a Latest runner.
type Result[T any] struct {
	Key     string
	Value   T
	Err     error
	Loading bool
}

// Latest runs at most one operation at a time. Starting a new operation
// cancels the one in flight; only the operation that is still current when it
// finishes may publish its outcome.
type Latest[T any] struct {
	mu      sync.Mutex
	cancel  context.CancelFunc
	state   Result[T]
	changes chan struct{}
}

// New returns an idle runner.
func New[T any]() *Latest[T] {
	return &Latest[T]{changes: make(chan struct{}, 1)}
}

// Start cancels any in-flight operation and runs fn in a new goroutine.
// The previous value is kept while loading; the error is cleared.
func (l *Latest[T]) Start(parent context.Context, key string, fn func(ctx context.Context) (T, error)) {
	if parent == nil {
		parent = context.Background()
	}

	l.mu.Lock()
	l.cancelLocked()
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	l.state = Result[T]{Key: key, Value: l.state.Value, Loading: true}
	l.signalLocked()
	l.mu.Unlock()

	go l.run(ctx, cancel, key, fn)
}

func (l *Latest[T]) run(ctx context.Context, cancel context.CancelFunc, key string, fn func(ctx context.Context) (T, error)) {
	value, err := fn(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Superseded, reset, stopped, or the parent went away. Cancel always
	// happens under l.mu, so this check cannot race with a newer Start.
	if ctx.Err() != nil {
		return
	}
	cancel()
	l.cancel = nil

	if err != nil {
		var zero T
		value = zero
	}
	l.state = Result[T]{Key: key, Value: value, Err: err}
	l.signalLocked()
}

// Reset cancels any in-flight operation and publishes an idle, empty state.
func (l *Latest[T]) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cancelLocked()
	l.state = Result[T]{Key: key}
	l.signalLocked()
}

// Stop cancels any in-flight operation and keeps the last published value.
func (l *Latest[T]) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel == nil && !l.state.Loading {
		return
	}
	l.cancelLocked()
	l.state.Loading = false
	l.signalLocked()
}

// Snapshot returns the current state.
func (l *Latest[T]) Snapshot() Result[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Changes is signalled after every state change. Signals coalesce: a reader
// that falls behind sees one pending signal and should read Snapshot.
func (l *Latest[T]) Changes() <-chan struct{} {
	return l.changes
}

func (l *Latest[T]) cancelLocked() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *Latest[T]) signalLocked() {
	select {
	case l.changes <- struct{}{}:
	default:
	}
}
