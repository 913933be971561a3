package option

// Bind returns binder applied to the held value, or None when o is empty.
// binder is not called for None.
func Bind[T, U any](o Option[T], binder func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return binder(o.value)
}

// Contains reports whether o holds a value equal to value.
func Contains[T comparable](o Option[T], value T) bool {
	return o.some && o.value == value
}

// Count returns 1 for Some and 0 for None.
func Count[T any](o Option[T]) int {
	if o.some {
		return 1
	}
	return 0
}

// DefaultValue returns the held value, or value when o is empty.
func DefaultValue[T any](o Option[T], value T) T {
	if o.some {
		return o.value
	}
	return value
}

// DefaultWith returns the held value, or the result of defThunk when o is empty.
// defThunk is only evaluated for None.
func DefaultWith[T any](o Option[T], defThunk func() T) T {
	if o.some {
		return o.value
	}
	return defThunk()
}

// Exists returns false for None, otherwise predicate applied to the held value.
func Exists[T any](o Option[T], predicate func(T) bool) bool {
	return o.some && predicate(o.value)
}

// Filter returns o when it holds a value satisfying predicate, otherwise None.
func Filter[T any](o Option[T], predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Flatten removes one level of nesting: Some(Some(v)) becomes Some(v),
// anything else becomes None.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}

// Fold returns state for None, otherwise folder(state, value).
func Fold[T, S any](o Option[T], folder func(S, T) S, state S) S {
	if !o.some {
		return state
	}
	return folder(state, o.value)
}

// FoldBack is Fold. An option holds at most one element, so there is no order to reverse.
func FoldBack[T, S any](o Option[T], folder func(S, T) S, state S) S {
	return Fold(o, folder, state)
}

// ForAll returns true for None, otherwise predicate applied to the held value.
func ForAll[T any](o Option[T], predicate func(T) bool) bool {
	return !o.some || predicate(o.value)
}

// Iter calls action with the held value. It does nothing for None.
func Iter[T any](o Option[T], action func(T)) {
	if o.some {
		action(o.value)
	}
}

// Map returns Some(mapping(value)), or None when o is empty.
func Map[T, U any](o Option[T], mapping func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(mapping(o.value))
}

// Map2 returns Some(mapping(v1, v2)) when both options hold values, otherwise None.
func Map2[T1, T2, U any](o1 Option[T1], o2 Option[T2], mapping func(T1, T2) U) Option[U] {
	if !o1.some || !o2.some {
		return None[U]()
	}
	return Some(mapping(o1.value, o2.value))
}

// Map3 returns Some(mapping(v1, v2, v3)) when all three options hold values, otherwise None.
func Map3[T1, T2, T3, U any](o1 Option[T1], o2 Option[T2], o3 Option[T3], mapping func(T1, T2, T3) U) Option[U] {
	if !o1.some || !o2.some || !o3.some {
		return None[U]()
	}
	return Some(mapping(o1.value, o2.value, o3.value))
}

// OrElse returns o when it holds a value, otherwise ifNone.
func OrElse[T any](o Option[T], ifNone Option[T]) Option[T] {
	if o.some {
		return o
	}
	return ifNone
}

// OrElseWith returns o when it holds a value, otherwise the result of ifNoneThunk.
// ifNoneThunk is only evaluated for None.
func OrElseWith[T any](o Option[T], ifNoneThunk func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return ifNoneThunk()
}

// Count returns 1 for Some and 0 for None.
func (o Option[T]) Count() int { return Count(o) }

// DefaultValue returns the held value, or value when o is empty.
func (o Option[T]) DefaultValue(value T) T { return DefaultValue(o, value) }

// DefaultWith returns the held value, or the result of defThunk when o is empty.
func (o Option[T]) DefaultWith(defThunk func() T) T { return DefaultWith(o, defThunk) }

// Exists returns false for None, otherwise predicate applied to the held value.
func (o Option[T]) Exists(predicate func(T) bool) bool { return Exists(o, predicate) }

// Filter returns o when it holds a value satisfying predicate, otherwise None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] { return Filter(o, predicate) }

// ForAll returns true for None, otherwise predicate applied to the held value.
func (o Option[T]) ForAll(predicate func(T) bool) bool { return ForAll(o, predicate) }

// Iter calls action with the held value. It does nothing for None.
func (o Option[T]) Iter(action func(T)) { Iter(o, action) }

// OrElse returns o when it holds a value, otherwise ifNone.
func (o Option[T]) OrElse(ifNone Option[T]) Option[T] { return OrElse(o, ifNone) }

// OrElseWith returns o when it holds a value, otherwise the result of ifNoneThunk.
func (o Option[T]) OrElseWith(ifNoneThunk func() Option[T]) Option[T] {
	return OrElseWith(o, ifNoneThunk)
}
