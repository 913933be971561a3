package async

import (
	"context"
	"iter"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/promise"
)

// Get rejects with option.ErrNoneValue when src resolves to None.
func Get[T any](src promise.Awaitable[option.Option[T]]) *promise.Promise[T] {
	return then(src, func(_ context.Context, o option.Option[T]) (T, error) {
		return option.Get(o)
	})
}

// GetOrError rejects with the error built by newErr when src resolves to None.
func GetOrError[T any](src promise.Awaitable[option.Option[T]], newErr func() error) *promise.Promise[T] {
	return then(src, func(_ context.Context, o option.Option[T]) (T, error) {
		return option.GetOrError(o, newErr)
	})
}

// OfNullable resolves to Some of the pointed-to value, or None for a nil pointer.
func OfNullable[T any](src promise.Awaitable[*T]) *promise.Promise[option.Option[T]] {
	return promise.Lazy(func(ctx context.Context) (option.Option[T], error) {
		p, err := src.Await(ctx)
		if err != nil {
			return option.None[T](), err
		}
		return option.OfNullable(p), nil
	})
}

// OfObj resolves to None when the value of src is nil, as option.OfObj does.
func OfObj[T any](src promise.Awaitable[T]) *promise.Promise[option.Option[T]] {
	return promise.Lazy(func(ctx context.Context) (option.Option[T], error) {
		v, err := src.Await(ctx)
		if err != nil {
			return option.None[T](), err
		}
		return option.OfObj(v), nil
	})
}

// ToNullable resolves to a pointer to a copy of the value, or nil for None.
func ToNullable[T any](src promise.Awaitable[option.Option[T]]) *promise.Promise[*T] {
	return then(src, func(_ context.Context, o option.Option[T]) (*T, error) {
		return option.ToNullable(o), nil
	})
}

// ToObj resolves to the value of src, or the zero value for None.
func ToObj[T any](src promise.Awaitable[option.Option[T]]) *promise.Promise[T] {
	return then(src, func(_ context.Context, o option.Option[T]) (T, error) {
		return option.ToObj(o), nil
	})
}

// ToSlice resolves to a slice holding the value of src, empty for None.
func ToSlice[T any](src promise.Awaitable[option.Option[T]]) *promise.Promise[[]T] {
	return then(src, func(_ context.Context, o option.Option[T]) ([]T, error) {
		return option.ToSlice(o), nil
	})
}

// ToSeq returns a sequence of the value of src. src is awaited once, with ctx,
// when iteration first starts; later iterations reuse that result. A failure is
// yielded as a single (zero, err) pair.
func ToSeq[T any](ctx context.Context, src promise.Awaitable[option.Option[T]]) iter.Seq2[T, error] {
	once := promise.Lazy(func(ctx context.Context) (option.Option[T], error) {
		return src.Await(ctx)
	})
	return func(yield func(T, error) bool) {
		o, err := once.Await(ctx)
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		if v, ok := o.Unwrap(); ok {
			yield(v, nil)
		}
	}
}
