package option

import "errors"

// ErrNoneValue is returned when the value of an empty Option is requested.
var ErrNoneValue = errors.New("option: the option value was None")

// Get returns the held value, or ErrNoneValue when o is empty.
func Get[T any](o Option[T]) (T, error) {
	if !o.some {
		var zero T
		return zero, ErrNoneValue
	}
	return o.value, nil
}

// GetOrError returns the held value, or the error built by newErr when o is empty.
// newErr is only called for None.
func GetOrError[T any](o Option[T], newErr func() error) (T, error) {
	if !o.some {
		var zero T
		return zero, newErr()
	}
	return o.value, nil
}

// MustGet returns the held value and panics with ErrNoneValue when o is empty.
func MustGet[T any](o Option[T]) T {
	v, err := Get(o)
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns the held value, or ErrNoneValue when o is empty.
func (o Option[T]) Get() (T, error) { return Get(o) }
