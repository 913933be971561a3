package async

import (
	"context"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/promise"
)

// Bind awaits src and, if it is Some, awaits binder on its value.
func Bind[T, U any](src promise.Awaitable[option.Option[T]], binder Func[T, option.Option[U]]) *promise.Promise[option.Option[U]] {
	return then(src, func(ctx context.Context, o option.Option[T]) (option.Option[U], error) {
		var t trap
		return result(&t, option.Bind(o, unary(ctx, &t, binder)))
	})
}

// Contains reports whether src resolves to Some(value).
func Contains[T comparable](src promise.Awaitable[option.Option[T]], value T) *promise.Promise[bool] {
	return then(src, func(_ context.Context, o option.Option[T]) (bool, error) {
		return option.Contains(o, value), nil
	})
}

// Count resolves to 1 for Some and 0 for None.
func Count[T any](src promise.Awaitable[option.Option[T]]) *promise.Promise[int] {
	return then(src, func(_ context.Context, o option.Option[T]) (int, error) {
		return option.Count(o), nil
	})
}

// DefaultValue resolves to the value of src, or value when src is None.
func DefaultValue[T any](src promise.Awaitable[option.Option[T]], value T) *promise.Promise[T] {
	return then(src, func(_ context.Context, o option.Option[T]) (T, error) {
		return option.DefaultValue(o, value), nil
	})
}

// DefaultWith runs defThunk only when src resolves to None.
func DefaultWith[T any](src promise.Awaitable[option.Option[T]], defThunk Thunk[T]) *promise.Promise[T] {
	return then(src, func(ctx context.Context, o option.Option[T]) (T, error) {
		var t trap
		return result(&t, option.DefaultWith(o, thunk(ctx, &t, defThunk)))
	})
}

// Exists resolves to false for None, else to predicate applied to the value.
func Exists[T any](src promise.Awaitable[option.Option[T]], predicate Func[T, bool]) *promise.Promise[bool] {
	return then(src, func(ctx context.Context, o option.Option[T]) (bool, error) {
		var t trap
		return result(&t, option.Exists(o, unary(ctx, &t, predicate)))
	})
}

// Filter keeps the value of src only when predicate holds for it.
func Filter[T any](src promise.Awaitable[option.Option[T]], predicate Func[T, bool]) *promise.Promise[option.Option[T]] {
	return then(src, func(ctx context.Context, o option.Option[T]) (option.Option[T], error) {
		var t trap
		return result(&t, option.Filter(o, unary(ctx, &t, predicate)))
	})
}

// Flatten removes one level of nesting from src.
func Flatten[T any](src promise.Awaitable[option.Option[option.Option[T]]]) *promise.Promise[option.Option[T]] {
	return then(src, func(_ context.Context, o option.Option[option.Option[T]]) (option.Option[T], error) {
		return option.Flatten(o), nil
	})
}

// Fold applies folder to state and the value of src, or returns state for None.
func Fold[T, S any](src promise.Awaitable[option.Option[T]], folder Folder[S, T], state S) *promise.Promise[S] {
	return then(src, func(ctx context.Context, o option.Option[T]) (S, error) {
		var t trap
		step := func(s S, v T) S {
			next, err := folder(ctx, s, v)
			t.keep(err)
			return next
		}
		return result(&t, option.Fold(o, step, state))
	})
}

// FoldBack is Fold; an option has at most one element.
func FoldBack[T, S any](src promise.Awaitable[option.Option[T]], folder Folder[S, T], state S) *promise.Promise[S] {
	return Fold(src, folder, state)
}

// ForAll resolves to true for None, else to predicate applied to the value.
func ForAll[T any](src promise.Awaitable[option.Option[T]], predicate Func[T, bool]) *promise.Promise[bool] {
	return then(src, func(ctx context.Context, o option.Option[T]) (bool, error) {
		var t trap
		return result(&t, option.ForAll(o, unary(ctx, &t, predicate)))
	})
}

// IsNone reports whether src resolves to None.
func IsNone[T any](src promise.Awaitable[option.Option[T]]) *promise.Promise[bool] {
	return then(src, func(_ context.Context, o option.Option[T]) (bool, error) {
		return o.IsNone(), nil
	})
}

// IsSome reports whether src resolves to Some.
func IsSome[T any](src promise.Awaitable[option.Option[T]]) *promise.Promise[bool] {
	return then(src, func(_ context.Context, o option.Option[T]) (bool, error) {
		return o.IsSome(), nil
	})
}

// Iter runs action on the value of src, if any. The returned promise carries
// only the outcome.
func Iter[T any](src promise.Awaitable[option.Option[T]], action Action[T]) *promise.Promise[struct{}] {
	return then(src, func(ctx context.Context, o option.Option[T]) (struct{}, error) {
		var t trap
		option.Iter(o, func(v T) { t.keep(action(ctx, v)) })
		return result(&t, struct{}{})
	})
}

// Map applies mapping to the value of src, if any.
func Map[T, U any](src promise.Awaitable[option.Option[T]], mapping Func[T, U]) *promise.Promise[option.Option[U]] {
	return then(src, func(ctx context.Context, o option.Option[T]) (option.Option[U], error) {
		var t trap
		return result(&t, option.Map(o, unary(ctx, &t, mapping)))
	})
}

// Map2 awaits src1 and then src2, and applies mapping if both are Some.
// Both sources are awaited even when src1 is None.
func Map2[T1, T2, U any](
	src1 promise.Awaitable[option.Option[T1]],
	src2 promise.Awaitable[option.Option[T2]],
	mapping Func2[T1, T2, U],
) *promise.Promise[option.Option[U]] {
	return promise.Lazy(func(ctx context.Context) (option.Option[U], error) {
		o1, err := src1.Await(ctx)
		if err != nil {
			return option.None[U](), err
		}
		o2, err := src2.Await(ctx)
		if err != nil {
			return option.None[U](), err
		}
		var t trap
		return result(&t, option.Map2(o1, o2, func(a T1, b T2) U {
			u, err := mapping(ctx, a, b)
			t.keep(err)
			return u
		}))
	})
}

// Map3 awaits src1, src2 and src3 in order, and applies mapping if all are Some.
func Map3[T1, T2, T3, U any](
	src1 promise.Awaitable[option.Option[T1]],
	src2 promise.Awaitable[option.Option[T2]],
	src3 promise.Awaitable[option.Option[T3]],
	mapping Func3[T1, T2, T3, U],
) *promise.Promise[option.Option[U]] {
	return promise.Lazy(func(ctx context.Context) (option.Option[U], error) {
		o1, err := src1.Await(ctx)
		if err != nil {
			return option.None[U](), err
		}
		o2, err := src2.Await(ctx)
		if err != nil {
			return option.None[U](), err
		}
		o3, err := src3.Await(ctx)
		if err != nil {
			return option.None[U](), err
		}
		var t trap
		return result(&t, option.Map3(o1, o2, o3, func(a T1, b T2, c T3) U {
			u, err := mapping(ctx, a, b, c)
			t.keep(err)
			return u
		}))
	})
}

// OrElse awaits ifNone only when src resolves to None.
func OrElse[T any](src, ifNone promise.Awaitable[option.Option[T]]) *promise.Promise[option.Option[T]] {
	return OrElseWith(src, func(ctx context.Context) (option.Option[T], error) {
		return ifNone.Await(ctx)
	})
}

// OrElseWith runs ifNoneThunk only when src resolves to None.
func OrElseWith[T any](src promise.Awaitable[option.Option[T]], ifNoneThunk Thunk[option.Option[T]]) *promise.Promise[option.Option[T]] {
	return then(src, func(ctx context.Context, o option.Option[T]) (option.Option[T], error) {
		var t trap
		return result(&t, option.OrElseWith(o, thunk(ctx, &t, ifNoneThunk)))
	})
}
