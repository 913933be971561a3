// Package promise provides a single-assignment result that any number of goroutines can await.
//
// A Promise is settled exactly once, with a value, an error, or a recovered panic. Work can be
// attached eagerly with Go, which starts it in a new goroutine, or lazily with Lazy, which runs it
// in the goroutine of the first caller of Await.
package promise

import (
	"context"
	"errors"
	"sync"
)

// ErrNotReady is returned by Current while the promise is unsettled.
var ErrNotReady = errors.New("promise: not ready")

// Awaitable is anything that eventually yields a T or an error.
type Awaitable[T any] interface {
	Await(ctx context.Context) (T, error)
}

var _ Awaitable[int] = (*Promise[int])(nil)

// Promise holds the eventual result of a computation.
type Promise[T any] struct {
	ready chan struct{}

	mutex    sync.Mutex
	produced bool
	result   T
	err      error
	panicked bool
	panicVal any
	cancel   func()
	run      func(context.Context)
}

// NewPromise returns an unsettled promise. Settle it with Produce or ProduceError.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{ready: make(chan struct{})}
}

// Resolved returns a promise already settled with value.
func Resolved[T any](value T) *Promise[T] {
	p := NewPromise[T]()
	p.Produce(value)
	return p
}

// Rejected returns a promise already settled with err.
func Rejected[T any](err error) *Promise[T] {
	p := NewPromise[T]()
	p.ProduceError(err)
	return p
}

// Go starts fn in a new goroutine and returns a promise for its result.
// The context passed to fn is cancelled when the promise is cancelled or fn returns.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Promise[T] {
	ctx, cancel := context.WithCancel(ctx)
	p := NewPromise[T]()
	p.SetCancel(cancel)
	go func() {
		defer cancel()
		p.settle(ctx, fn)
	}()
	return p
}

// Lazy returns a promise whose work has not started. fn runs once, in the goroutine of the
// first caller of Await and with that caller's context; later callers share its result.
// Cancelling a lazy promise before it starts settles it with context.Canceled.
func Lazy[T any](fn func(context.Context) (T, error)) *Promise[T] {
	p := NewPromise[T]()
	p.run = func(ctx context.Context) {
		p.settle(ctx, fn)
	}
	return p
}

func (p *Promise[T]) settle(ctx context.Context, fn func(context.Context) (T, error)) {
	defer func() {
		if r := recover(); r != nil {
			p.producePanic(r)
		}
	}()
	v, err := fn(ctx)
	if err != nil {
		p.ProduceError(err)
		return
	}
	p.Produce(v)
}

// Produce settles the promise with value. Only the first settlement takes effect.
func (p *Promise[T]) Produce(value T) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.produced {
		return
	}
	p.result = value
	p.markProduced()
}

// ProduceError settles the promise with err. Only the first settlement takes effect.
func (p *Promise[T]) ProduceError(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.produced {
		return
	}
	p.err = err
	p.markProduced()
}

func (p *Promise[T]) producePanic(v any) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.produced {
		return
	}
	p.panicked = true
	p.panicVal = v
	p.markProduced()
}

// must hold mutex
func (p *Promise[T]) markProduced() {
	p.produced = true
	p.run = nil
	close(p.ready)
}

func (p *Promise[T]) start(ctx context.Context) {
	p.mutex.Lock()
	run := p.run
	p.run = nil
	p.mutex.Unlock()
	if run != nil {
		run(ctx)
	}
}

// Await blocks until the promise settles or ctx is done, starting lazy work if needed.
// If ctx is done first, the promise's cancel function is called and ctx.Err() returned.
// A panic recorded by the promise's work is re-raised in the caller.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	p.start(ctx)
	select {
	case <-p.ready:
		return p.outcome()
	default:
	}
	select {
	case <-p.ready:
		return p.outcome()
	case <-ctx.Done():
		p.Cancel()
		var zero T
		return zero, ctx.Err()
	}
}

// Current returns the settled result without blocking, or ErrNotReady.
// It never starts lazy work.
func (p *Promise[T]) Current() (T, error) {
	if !p.Ready() {
		var zero T
		return zero, ErrNotReady
	}
	return p.outcome()
}

func (p *Promise[T]) outcome() (T, error) {
	p.mutex.Lock()
	result, err, panicked, panicVal := p.result, p.err, p.panicked, p.panicVal
	p.mutex.Unlock()
	if panicked {
		panic(panicVal)
	}
	return result, err
}

// Ready reports whether the promise has settled.
func (p *Promise[T]) Ready() bool {
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

// ReadyChan returns a channel that is closed once the promise settles.
func (p *Promise[T]) ReadyChan() <-chan struct{} {
	return p.ready
}

// SetCancel sets the function called by Cancel.
func (p *Promise[T]) SetCancel(cancel func()) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.cancel = cancel
}

// Cancel calls the promise's cancel function, if any. An unstarted lazy promise
// is settled with context.Canceled and its work never runs.
func (p *Promise[T]) Cancel() {
	p.mutex.Lock()
	cancel := p.cancel
	unstarted := p.run != nil
	p.run = nil
	p.mutex.Unlock()

	if cancel != nil {
		cancel()
	}
	if unstarted {
		p.ProduceError(context.Canceled)
	}
}
