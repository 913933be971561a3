// Package async provides the option combinators over pending computations.
//
// Every combinator takes its source as a promise.Awaitable of an option and returns a lazy
// *promise.Promise: nothing runs until the result is awaited. Inputs are then awaited in argument
// order and the result is computed by the matching function in package option, so once all inputs
// are resolved the semantics are exactly the synchronous ones.
//
// User functions receive the awaiting context and may fail. Their errors, and errors from any
// awaited input, are returned unchanged.
package async

import (
	"context"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/promise"
)

// Func is a possibly asynchronous function from T to U.
type Func[T, U any] func(context.Context, T) (U, error)

// Func2 is a possibly asynchronous function of two arguments.
type Func2[T1, T2, U any] func(context.Context, T1, T2) (U, error)

// Func3 is a possibly asynchronous function of three arguments.
type Func3[T1, T2, T3, U any] func(context.Context, T1, T2, T3) (U, error)

// Thunk is a possibly asynchronous producer of a T.
type Thunk[T any] func(context.Context) (T, error)

// Action is a possibly asynchronous side effect over a T.
type Action[T any] func(context.Context, T) error

// Folder is a possibly asynchronous fold step.
type Folder[S, T any] func(context.Context, S, T) (S, error)

// Pure lifts a plain function.
func Pure[T, U any](f func(T) U) Func[T, U] {
	return func(_ context.Context, v T) (U, error) {
		return f(v), nil
	}
}

// Pure2 lifts a plain function of two arguments.
func Pure2[T1, T2, U any](f func(T1, T2) U) Func2[T1, T2, U] {
	return func(_ context.Context, a T1, b T2) (U, error) {
		return f(a, b), nil
	}
}

// Pure3 lifts a plain function of three arguments.
func Pure3[T1, T2, T3, U any](f func(T1, T2, T3) U) Func3[T1, T2, T3, U] {
	return func(_ context.Context, a T1, b T2, c T3) (U, error) {
		return f(a, b, c), nil
	}
}

// Pending lifts a function that starts a pending computation. The returned
// awaitable is awaited with the caller's context.
func Pending[T, U any](f func(T) promise.Awaitable[U]) Func[T, U] {
	return func(ctx context.Context, v T) (U, error) {
		return f(v).Await(ctx)
	}
}

// Value lifts a plain thunk.
func Value[T any](f func() T) Thunk[T] {
	return func(context.Context) (T, error) {
		return f(), nil
	}
}

// Deferred lifts a thunk that starts a pending computation.
func Deferred[T any](f func() promise.Awaitable[T]) Thunk[T] {
	return func(ctx context.Context) (T, error) {
		return f().Await(ctx)
	}
}

// Do lifts a plain action.
func Do[T any](f func(T)) Action[T] {
	return func(_ context.Context, v T) error {
		f(v)
		return nil
	}
}

// Accumulate lifts a plain fold step.
func Accumulate[S, T any](f func(S, T) S) Folder[S, T] {
	return func(_ context.Context, s S, v T) (S, error) {
		return f(s, v), nil
	}
}

// From lifts a resolved option.
func From[T any](o option.Option[T]) *promise.Promise[option.Option[T]] {
	return promise.Resolved(o)
}

// then awaits src and hands the option to fn.
func then[T, R any](src promise.Awaitable[option.Option[T]], fn func(context.Context, option.Option[T]) (R, error)) *promise.Promise[R] {
	return promise.Lazy(func(ctx context.Context) (R, error) {
		o, err := src.Await(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(ctx, o)
	})
}

// trap records the first error returned by a user function called from inside
// a synchronous combinator.
type trap struct {
	err error
}

func (t *trap) keep(err error) {
	if t.err == nil && err != nil {
		t.err = err
	}
}

func unary[T, U any](ctx context.Context, t *trap, f Func[T, U]) func(T) U {
	return func(v T) U {
		u, err := f(ctx, v)
		t.keep(err)
		return u
	}
}

func thunk[T any](ctx context.Context, t *trap, f Thunk[T]) func() T {
	return func() T {
		v, err := f(ctx)
		t.keep(err)
		return v
	}
}

// result returns v, or the zero R with the trapped error.
func result[R any](t *trap, v R) (R, error) {
	if t.err != nil {
		var zero R
		return zero, t.err
	}
	return v, nil
}
