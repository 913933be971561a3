package option

import (
	"database/sql"
	"iter"
	"reflect"
)

// OfNullable returns Some(*value), or None when value is nil.
// The pointed-to value is copied.
func OfNullable[T any](value *T) Option[T] {
	if value == nil {
		return None[T]()
	}
	return Some(*value)
}

// ToNullable returns a pointer to a copy of the held value, or nil for None.
func ToNullable[T any](o Option[T]) *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// OfObj returns None when value is nil and Some(value) otherwise.
// Pointers, maps, slices, channels, functions and interfaces can be nil;
// values of any other kind always produce Some. An interface holding a typed nil
// pointer counts as nil, so ToObj(OfObj(v)) returns an untyped nil for it.
func OfObj[T any](value T) Option[T] {
	if isNil(value) {
		return None[T]()
	}
	return Some(value)
}

// ToObj returns the held value, or the zero value of T for None,
// which is nil for reference kinds.
func ToObj[T any](o Option[T]) T {
	return o.value
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// FromSQL converts a database/sql nullable value.
func FromSQL[T any](n sql.Null[T]) Option[T] {
	if !n.Valid {
		return None[T]()
	}
	return Some(n.V)
}

// ToSQL converts o to a database/sql nullable value.
func ToSQL[T any](o Option[T]) sql.Null[T] {
	return sql.Null[T]{V: o.value, Valid: o.some}
}

// FromOK builds an Option from a comma-ok pair, as returned by map lookups
// and type assertions.
func FromOK[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// ToSlice returns a slice of length 1 holding the value, or an empty slice for None.
// The result is never nil.
func ToSlice[T any](o Option[T]) []T {
	if !o.some {
		return []T{}
	}
	return []T{o.value}
}

// ToSeq returns a sequence yielding the held value once, or nothing for None.
func ToSeq[T any](o Option[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// ToSlice returns a slice of length 0 or 1.
func (o Option[T]) ToSlice() []T { return ToSlice(o) }

// ToSeq returns a sequence of length 0 or 1.
func (o Option[T]) ToSeq() iter.Seq[T] { return ToSeq(o) }
